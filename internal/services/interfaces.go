package services

import (
	"context"
	"database/sql"

	"github.com/cos/book/internal/entities"
)

// BookGateway provides raw create/read/update/delete access to stored books.
type BookGateway interface {
	Save(ctx context.Context, book *entities.Book) error
	FindByID(ctx context.Context, id uint) (*entities.Book, bool, error)
	FindAll(ctx context.Context) ([]entities.Book, error)
	DeleteByID(ctx context.Context, id uint) error
}

// BookStore runs gateway calls inside a single transaction.
// fn returning an error rolls the transaction back; nil commits it.
type BookStore interface {
	Transaction(ctx context.Context, fn func(books BookGateway) error, opts ...*sql.TxOptions) error
}
