// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup (sqlite or postgres) and migrations
//	└── books/           # Book gateway and transaction boundary
//
// # Usage
//
//	db, err := database.NewDatabase(cfg.Database)
//	repo := books.NewRepository(db.DB)
//
//	err = repo.Transaction(ctx, func(gw services.BookGateway) error {
//		return gw.Save(ctx, &entities.Book{Title: "Title", Author: "Author"})
//	})
//
// The sqlite driver is opened through mattn/go-sqlite3 with WAL journaling and a
// busy timeout; the postgres driver uses the DSN from DATABASE_DSN.
package database
