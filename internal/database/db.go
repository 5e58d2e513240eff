// Package database implements the node store: typed nodes and directed typed
// edges on top of database/sql, backed by SQLite (default) or PostgreSQL
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/thenoetrevino/arbor/internal/config"
)

// Dialect selects placeholder syntax for the underlying driver
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// DialectFor maps a configured driver name to its dialect
func DialectFor(driver string) Dialect {
	if driver == config.DriverPgx {
		return DialectPostgres
	}
	return DialectSQLite
}

// InitDB opens the configured database, applies connection settings and runs
// migrations
func InitDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, Dialect, error) {
	dialect := DialectFor(cfg.Driver)

	var (
		db  *sql.DB
		err error
	)
	switch dialect {
	case DialectPostgres:
		db, err = openPostgres(ctx, cfg.DSN)
	default:
		db, err = openSQLite(ctx, cfg.DSN)
	}
	if err != nil {
		return nil, dialect, err
	}

	if err := Migrate(ctx, db, dialect); err != nil {
		closeQuietly(db)
		return nil, dialect, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, dialect, nil
}

func openSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		// WAL mode for better concurrency between readers and the writer
		"PRAGMA journal_mode = WAL",
		// SQLite will retry for this duration before reporting SQLITE_BUSY
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Error("failed to apply pragma", "pragma", pragma, "error", err)
			closeQuietly(db)
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	// SQLite benefits from a single writer connection; it is also what keeps
	// an in-memory database shared between callers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return db, nil
}

func openPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(20)

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
