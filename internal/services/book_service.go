package services

import (
	"context"
	"database/sql"

	"github.com/cos/book/internal/entities"
)

// DeleteResult is returned by Delete whether or not a row was removed.
const DeleteResult = "ok"

// Reads don't need write tracking; concurrent inserts may still show up between calls.
var readOnly = &sql.TxOptions{ReadOnly: true}

// BookService orchestrates gateway calls. Each method runs in exactly one transaction.
type BookService struct {
	store BookStore
}

func NewBookService(store BookStore) *BookService {
	return &BookService{store: store}
}

// Create saves book and returns it with its assigned ID.
func (s *BookService) Create(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	err := s.store.Transaction(ctx, func(books BookGateway) error {
		return books.Save(ctx, book)
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// GetOne returns the book with the given id or a *NotFoundError.
func (s *BookService) GetOne(ctx context.Context, id uint) (*entities.Book, error) {
	var book *entities.Book
	err := s.store.Transaction(ctx, func(books BookGateway) error {
		var err error
		book, err = findExisting(ctx, books, id)
		return err
	}, readOnly)
	if err != nil {
		return nil, err
	}
	return book, nil
}

// GetAll returns every stored book in storage order.
func (s *BookService) GetAll(ctx context.Context) ([]entities.Book, error) {
	var result []entities.Book
	err := s.store.Transaction(ctx, func(books BookGateway) error {
		var err error
		result, err = books.FindAll(ctx)
		return err
	}, readOnly)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []entities.Book{}
	}
	return result, nil
}

// Update overwrites title and author of an existing book. patch.ID is ignored.
func (s *BookService) Update(ctx context.Context, id uint, patch *entities.Book) (*entities.Book, error) {
	var book *entities.Book
	err := s.store.Transaction(ctx, func(books BookGateway) error {
		var err error
		book, err = findExisting(ctx, books, id)
		if err != nil {
			return err
		}
		book.Title = patch.Title
		book.Author = patch.Author
		return books.Save(ctx, book)
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// Delete removes the book with the given id. Missing ids are not an error.
func (s *BookService) Delete(ctx context.Context, id uint) (string, error) {
	err := s.store.Transaction(ctx, func(books BookGateway) error {
		return books.DeleteByID(ctx, id)
	})
	if err != nil {
		return "", err
	}
	return DeleteResult, nil
}

func findExisting(ctx context.Context, books BookGateway, id uint) (*entities.Book, error) {
	book, found, err := books.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{ID: id}
	}
	return book, nil
}
