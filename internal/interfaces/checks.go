package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/cos/book/internal/database/books"
	"github.com/cos/book/internal/http"
	"github.com/cos/book/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.BookGateway = (*books.Repository)(nil)
var _ services.BookStore = (*books.Repository)(nil)

// =============================================================================
// Use Cases
// =============================================================================

var _ http.BookService = (*services.BookService)(nil)
