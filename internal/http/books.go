package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cos/book/internal/entities"
	"github.com/cos/book/internal/services"
)

// BookService is the book use-case surface the controller depends on.
type BookService interface {
	Create(ctx context.Context, book *entities.Book) (*entities.Book, error)
	GetOne(ctx context.Context, id uint) (*entities.Book, error)
	GetAll(ctx context.Context) ([]entities.Book, error)
	Update(ctx context.Context, id uint, patch *entities.Book) (*entities.Book, error)
	Delete(ctx context.Context, id uint) (string, error)
}

type BooksController struct {
	service BookService
}

func NewBooksController(service BookService) *BooksController {
	return &BooksController{
		service: service,
	}
}

func (controller *BooksController) Create(c *gin.Context) {
	var book entities.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		respondBadRequest(c, "invalid book payload")
		return
	}

	saved, err := controller.service.Create(c.Request.Context(), &book)
	if err != nil {
		respondInternalError(c, err, "create book")
		return
	}
	respondCreated(c, saved)
}

func (controller *BooksController) GetAll(c *gin.Context) {
	books, err := controller.service.GetAll(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, books)
}

func (controller *BooksController) GetOne(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.service.GetOne(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

func (controller *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch entities.Book
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "invalid book payload")
		return
	}

	book, err := controller.service.Update(c.Request.Context(), id, &patch)
	if err != nil {
		respondServiceError(c, err, "update book")
		return
	}
	c.JSON(http.StatusOK, book)
}

func (controller *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := controller.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	c.String(http.StatusOK, result)
}

// respondServiceError maps NotFound to 404 and everything else to 500.
func respondServiceError(c *gin.Context, err error, action string) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: CodeNotFound})
		return
	}
	respondInternalError(c, err, action)
}
