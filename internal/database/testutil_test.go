package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/types"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db, DialectSQLite))
	return db
}

// setupTestRepo returns a repository over a fresh in-memory database
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(setupTestDB(t), DialectSQLite)
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arbor-test.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db, DialectSQLite))
	return db, path
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, path string) *sql.DB {
	t.Helper()
	require.NoError(t, db.Close())
	newDB, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = newDB.Close() })
	return newDB
}

// seedList creates a group owning an empty list: group -NEXT-> end
func seedList(t *testing.T, repo *Repository, name string) (group, end types.NodeID) {
	t.Helper()
	ctx := context.Background()

	g := &models.Node{Kind: types.KindGroup, Name: name}
	require.NoError(t, repo.CreateNode(ctx, g))
	e := &models.Node{Kind: types.KindEnd, ListID: g.ID}
	require.NoError(t, repo.CreateNode(ctx, e))
	require.NoError(t, repo.CreateEdge(ctx, models.Edge{From: g.ID, Type: types.EdgeNext, To: e.ID}))
	return g.ID, e.ID
}

// seedBoard creates a board in listID without linking it into the chain
func seedBoard(t *testing.T, repo *Repository, listID types.NodeID, name string) types.NodeID {
	t.Helper()
	b := &models.Node{Kind: types.KindBoard, ListID: listID, Content: models.BoardContent{Name: name}}
	require.NoError(t, repo.CreateNode(context.Background(), b))
	return b.ID
}
