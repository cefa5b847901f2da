package config

// DefaultDatabasePath is the default sqlite file for the books table.
const DefaultDatabasePath = "./books.db"
