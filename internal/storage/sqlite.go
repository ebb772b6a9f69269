// Package storage persists prepared datasets and mined rule sets in a
// local SQLite database so reports can be re-ranked without re-mining.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage implements the results store on SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// Dataset describes one stored snapshot of prepared transactions.
type Dataset struct {
	CreatedAt time.Time
	Source    string
	ID        int64
	Rows      int
	Items     int
}

// Run describes one mining run over a dataset.
type Run struct {
	CreatedAt     time.Time
	ID            int64
	DatasetID     int64
	RuleCount     int
	MinSupport    float64
	MinConfidence float64
}

// NewSQLiteStorage opens (creating if needed) the results database.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
