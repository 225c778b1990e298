// Package sqlite provides a SQLite-backed implementation of the storage.Store
// interface. The database lives in memory only; it exists to exercise the
// same repository contracts on a relational backend, not to persist anything
// across runs.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mnordli/stufflend/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// dateLayout is how contract dates are stored; date-only, lexicographically
// comparable.
const dateLayout = "2006-01-02"

// Store implements storage.Store using an in-memory SQLite database.
type Store struct {
	db *sql.DB
}

// New creates a new Store backed by a fresh in-memory database and runs the
// schema migrations.
func New() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// An in-memory database is private to its connection; a second pooled
	// connection would see an empty schema.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection, discarding all data.
func (s *Store) Close() error {
	return s.db.Close()
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
