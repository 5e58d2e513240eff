package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/thenoetrevino/arbor/internal/database"
)

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// every connection to :memory: is its own database, so keep exactly one
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if err := database.Migrate(context.Background(), db, database.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

// SetupTestStore returns a node store over a fresh in-memory database
func SetupTestStore(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t), database.DialectSQLite)
}
