// Package storage persists project and entity records in SQLite.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates a SQLite database at the given path, creating
// parent directories as needed.
func OpenDB(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS project (
			ProjectNumber TEXT PRIMARY KEY,
			ProjectName TEXT NOT NULL,
			Deadline TEXT NOT NULL,
			BuildingType TEXT,
			PhysicalAddress TEXT,
			ERFNumber TEXT,
			TotalFee REAL NOT NULL,
			TotalPaid REAL NOT NULL,
			ArchitectID TEXT,
			ContractorID TEXT,
			CustomerID TEXT,
			Finalised INTEGER NOT NULL DEFAULT 0,
			CompletionDate TEXT
		);

		CREATE TABLE IF NOT EXISTS architect (
			ArchitectID TEXT PRIMARY KEY,
			FirstName TEXT,
			Surname TEXT,
			Telephone TEXT,
			Email TEXT,
			PhysicalAddress TEXT
		);

		CREATE TABLE IF NOT EXISTS contractor (
			ContractorID TEXT PRIMARY KEY,
			FirstName TEXT,
			Surname TEXT,
			Telephone TEXT,
			Email TEXT,
			PhysicalAddress TEXT
		);

		CREATE TABLE IF NOT EXISTS customer (
			CustomerID TEXT PRIMARY KEY,
			FirstName TEXT,
			Surname TEXT,
			Telephone TEXT,
			Email TEXT,
			PhysicalAddress TEXT
		);
	`
	_, err := db.Exec(schema)
	return err
}
