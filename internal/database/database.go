package database

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Connect opens the warehouse SQLite database at the provided DSN. SQLite
// allows a single writer, so the pool is capped at one connection.
func Connect(dsn string) *sqlx.DB {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database %s: %v", dsn, err)
	}
	db.SetMaxOpenConns(1)
	return db
}
