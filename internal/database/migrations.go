package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is valid for both SQLite and PostgreSQL. The two partial unique
// indexes on NEXT edges let the store itself reject a second successor or a
// second predecessor for any node.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS nodes (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		list_id TEXT,
		name TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		assignee TEXT NOT NULL DEFAULT '',
		deadline TIMESTAMP,
		tags TEXT NOT NULL DEFAULT '[]',
		encrypted BOOLEAN NOT NULL DEFAULT FALSE,
		encryption_key TEXT NOT NULL DEFAULT '',
		is_public BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS edges (
		from_id TEXT NOT NULL,
		edge_type TEXT NOT NULL,
		to_id TEXT NOT NULL,
		ord INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (from_id, edge_type, to_id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		username TEXT PRIMARY KEY,
		node_id TEXT NOT NULL UNIQUE,
		root_group_id TEXT NOT NULL,
		display_name TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL DEFAULT '',
		public_key TEXT NOT NULL DEFAULT '',
		private_key TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_nodes_list ON nodes(list_id, kind)`,
	`CREATE INDEX IF NOT EXISTS idx_edges_to ON edges(to_id, edge_type)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_edges_next_from ON edges(from_id) WHERE edge_type = 'NEXT'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_edges_next_to ON edges(to_id) WHERE edge_type = 'NEXT'`,
}

// Migrate creates the node store schema. It is idempotent.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, rebind(dialect, stmt)); err != nil {
			return fmt.Errorf("migration statement %d: %w", i, err)
		}
	}
	return nil
}
