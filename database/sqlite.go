package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteClient struct {
	DB *sql.DB
}

// NewSQLiteDB opens (or creates) the local SQLite database that backs all
// storage slots. Pass ":memory:" for an ephemeral database in tests.
func NewSQLiteDB(path string) (*SQLiteClient, error) {
	if path == "" {
		path = "./safarsorted.db"
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}

	// A single connection serializes all slot reads/writes and keeps
	// in-memory databases from evaporating between pool connections.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to sqlite database (ping failed): %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS storage_slots (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating storage_slots table: %w", err)
	}

	log.Printf("Successfully opened SQLite database at %s", path)
	return &SQLiteClient{DB: db}, nil
}

func (c *SQLiteClient) Close() {
	if c.DB != nil {
		err := c.DB.Close()
		if err != nil {
			log.Printf("Error closing sqlite database: %v", err)
		} else {
			log.Println("SQLite database closed.")
		}
	}
}
