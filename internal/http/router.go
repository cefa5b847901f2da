package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(SecurityHeadersMiddleware())

	health := NewHealthController(cfg.Database, cfg.Version)
	books := NewBooksController(cfg.BookService)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Book endpoints
	router.POST("/book", books.Create)
	router.GET("/book", books.GetAll)
	router.GET("/book/:id", books.GetOne)
	router.PUT("/book/:id", books.Update)
	router.DELETE("/book/:id", books.Delete)

	return router
}
