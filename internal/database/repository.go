package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/arbor/internal/models"
)

// Repository implements NodeStore over database/sql. A Repository created by
// NewRepository owns the pool; the copy handed to a WithTx callback is bound
// to the transaction.
type Repository struct {
	db      DBTX
	pool    *sql.DB
	dialect Dialect
}

var _ NodeStore = (*Repository)(nil)

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB, dialect Dialect) *Repository {
	return &Repository{db: db, pool: db, dialect: dialect}
}

// WithTx runs fn inside a transaction. Nested calls reuse the outer
// transaction.
func (r *Repository) WithTx(ctx context.Context, fn func(tx NodeStore) error) error {
	if r.pool == nil {
		return fn(r)
	}
	return withTx(ctx, r.pool, func(tx *sql.Tx) error {
		return fn(&Repository{db: tx, dialect: r.dialect})
	})
}

func (r *Repository) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return r.db.ExecContext(ctx, rebind(r.dialect, query), args...)
}

func (r *Repository) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return r.db.QueryContext(ctx, rebind(r.dialect, query), args...)
}

func (r *Repository) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return r.db.QueryRowContext(ctx, rebind(r.dialect, query), args...)
}

// expectOne turns a zero-row update or delete into err
func expectOne(res sql.Result, err error) error {
	rows, rerr := res.RowsAffected()
	if rerr != nil {
		return rerr
	}
	if rows == 0 {
		return err
	}
	return nil
}

func notFound(what string, id any) error {
	return fmt.Errorf("%s %v: %w", what, id, models.ErrNotFound)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
