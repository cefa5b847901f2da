package http

import (
	"github.com/cos/book/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	BookService BookService
	Database    *database.Database // nil disables the database health check

	// Build info reported by /health
	Version string
}
