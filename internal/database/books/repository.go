// Package books provides the gorm-backed book gateway.
//
// Repository implements services.BookGateway for single calls and
// services.BookStore for running several calls in one transaction:
//
//	repo := books.NewRepository(db)
//	err := repo.Transaction(ctx, func(gw services.BookGateway) error {
//		book, found, err := gw.FindByID(ctx, 1)
//		...
//	}, &sql.TxOptions{ReadOnly: true})
package books

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/cos/book/internal/entities"
	"github.com/cos/book/internal/services"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Transaction runs fn against a repository bound to a single gorm transaction.
// The transaction is rolled back if fn returns an error or panics.
func (r *Repository) Transaction(ctx context.Context, fn func(books services.BookGateway) error, opts ...*sql.TxOptions) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	}, opts...)
}

// Save inserts a book without an ID (writing the new ID back) or upserts by ID.
func (r *Repository) Save(ctx context.Context, book *entities.Book) error {
	return r.db.WithContext(ctx).Save(book).Error
}

// SaveAll saves books in one batch, assigning IDs to those without one.
func (r *Repository) SaveAll(ctx context.Context, books []entities.Book) error {
	if len(books) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Save(&books).Error
}

// FindByID returns found=false without an error when no book has the given ID.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Book, bool, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &book, true, nil
}

// FindAll returns every book in the order the store scans them.
func (r *Repository) FindAll(ctx context.Context) ([]entities.Book, error) {
	books := []entities.Book{}
	err := r.db.WithContext(ctx).Find(&books).Error
	return books, err
}

// DeleteByID removes the book with the given ID. Missing IDs are a no-op.
func (r *Repository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.Book{}, id).Error
}

// Count returns the number of stored books.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Book{}).Count(&count).Error
	return count, err
}
