// Package sqlite provides SQLite-based storage implementations for draft
// services.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string

	// Now returns the current time. Overridable in tests to simulate
	// clock advance for expiry behavior.
	Now func() time.Time

	// Logger receives storage housekeeping events.
	Logger *slog.Logger
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{
		path:   path,
		Now:    time.Now,
		Logger: slog.Default(),
	}
}

// Open opens the database connection, creates the schema if needed, and
// eagerly purges expired cache rows so storage growth stays bounded
// between process restarts.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Enable WAL mode for file-based databases for better write performance.
	// Note: WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := db.sweepExpired(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to sweep expired cache entries: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS reference_cache (
			query_hash TEXT PRIMARY KEY,
			query_text TEXT NOT NULL,
			refs_json TEXT NOT NULL,
			created_at TEXT NOT NULL,
			expires_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_reference_cache_expires_at ON reference_cache(expires_at);
	`

	_, err := db.db.Exec(schema)
	return err
}

// sweepExpired deletes all cache rows whose expiry has passed.
// Timestamps are stored as RFC3339 UTC, so string comparison orders them.
func (db *DB) sweepExpired() error {
	result, err := db.db.Exec(
		"DELETE FROM reference_cache WHERE expires_at < ?",
		db.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	if deleted, err := result.RowsAffected(); err == nil && deleted > 0 {
		db.Logger.Info("purged expired cache entries", "count", deleted)
	}
	return nil
}
