package dataset

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryPath opens a private in-memory catalog.
const MemoryPath = ":memory:"

// DB wraps the SQLite connection that holds the seeded catalog.
type DB struct {
	*sql.DB
}

// Open creates a SQLite connection. An in-memory database only lives as long
// as its single connection, so the pool is pinned to one.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return &DB{db}, nil
}
