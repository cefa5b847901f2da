// Package interfaces documents the core abstractions used throughout the application.
//
// # Layers
//
//   - services.BookGateway: raw save/find/delete access to books (internal/services/interfaces.go)
//   - services.BookStore: transaction boundary around gateway calls (internal/services/interfaces.go)
//   - http.BookService: use cases the controller calls (internal/http/books.go)
//
// books.Repository implements both gateway and store; services.BookService
// implements http.BookService. Tests swap each layer for a fake:
// an in-memory BookStore in the services tests, a testify mock of
// http.BookService in the controller tests.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
