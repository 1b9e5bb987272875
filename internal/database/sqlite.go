// Package database provides database connectivity and analysis history
// storage.
package database

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const (
	// DefaultMaxOpenConns is the default maximum number of open connections
	DefaultMaxOpenConns = 10
	// DefaultConnMaxLifetime is the default maximum connection lifetime
	DefaultConnMaxLifetime = 5 * time.Minute
)

const schema = `
CREATE TABLE IF NOT EXISTS analysis_history (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	text_excerpt   TEXT    NOT NULL,
	classification TEXT    NOT NULL,
	confidence     INTEGER NOT NULL,
	processing_ms  INTEGER NOT NULL,
	created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_analysis_history_created_at
	ON analysis_history (created_at DESC);
`

// Config holds database configuration.
type Config struct {
	Path           string
	MaxConnections int
}

// NewSQLiteConnection opens the SQLite database at cfg.Path and ensures the
// schema exists. Use ":memory:" for an ephemeral database.
func NewSQLiteConnection(cfg Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", cfg.Path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Path, err)
	}

	maxConns := cfg.MaxConnections
	if maxConns == 0 {
		maxConns = DefaultMaxOpenConns
	}
	db.SetMaxOpenConns(maxConns)
	db.SetConnMaxLifetime(DefaultConnMaxLifetime)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}
