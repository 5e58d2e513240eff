package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/types"
)

const nodeColumns = `n.id, n.kind, n.list_id, n.name, n.description, n.assignee, n.deadline,
	n.tags, n.encrypted, n.encryption_key, n.is_public, n.created_at, n.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanNode reads one row selected with nodeColumns, followed by extra
// destinations
func scanNode(row rowScanner, extra ...any) (*models.Node, error) {
	var (
		n        models.Node
		listID   sql.NullString
		deadline sql.NullTime
		tags     string
		content  models.BoardContent
	)
	dest := []any{
		&n.ID, &n.Kind, &listID, &n.Name, &content.Description, &content.Assignee, &deadline,
		&tags, &content.Encrypted, &content.EncryptionKey, &content.Public, &n.CreatedAt, &n.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	n.ListID = nullStringToID(listID)
	if n.Kind == types.KindBoard {
		decoded, err := decodeTags(tags)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
		content.Name = n.Name
		content.Tags = decoded
		content.Deadline = nullTimeToPtr(deadline)
		n.Content = content
	}
	return &n, nil
}

// GetNode retrieves a node by id
func (r *Repository) GetNode(ctx context.Context, id types.NodeID) (*models.Node, error) {
	row := r.queryRow(ctx, `SELECT `+nodeColumns+` FROM nodes n WHERE n.id = ?`, string(id))
	n, err := scanNode(row)
	if isNoRows(err) {
		return nil, notFound("node", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get node %s: %w", id, err)
	}
	return n, nil
}

// ListMembers loads every member of a list and its successor in one query.
// Ordering is left to the caller, which walks the NEXT chain from the owner.
func (r *Repository) ListMembers(ctx context.Context, listID types.NodeID) ([]models.ChainMember, error) {
	rows, err := r.query(ctx, `
		SELECT `+nodeColumns+`, e.to_id
		FROM nodes n
		LEFT JOIN edges e ON e.from_id = n.id AND e.edge_type = 'NEXT'
		WHERE n.list_id = ?`, string(listID))
	if err != nil {
		return nil, fmt.Errorf("list members of %s: %w", listID, err)
	}
	defer func() { _ = rows.Close() }()

	var members []models.ChainMember
	for rows.Next() {
		var next sql.NullString
		n, err := scanNode(rows, &next)
		if err != nil {
			return nil, err
		}
		members = append(members, models.ChainMember{Node: n, Next: nullStringToID(next)})
	}
	return members, rows.Err()
}

// FindEnd returns the end sentinel of a list. A list with zero or several end
// sentinels is corrupt.
func (r *Repository) FindEnd(ctx context.Context, listID types.NodeID) (types.NodeID, error) {
	rows, err := r.query(ctx, `SELECT id FROM nodes WHERE list_id = ? AND kind = ?`,
		string(listID), string(types.KindEnd))
	if err != nil {
		return "", fmt.Errorf("find end of %s: %w", listID, err)
	}
	defer func() { _ = rows.Close() }()

	var ends []types.NodeID
	for rows.Next() {
		var id types.NodeID
		if err := rows.Scan(&id); err != nil {
			return "", err
		}
		ends = append(ends, id)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}
	if len(ends) != 1 {
		return "", fmt.Errorf("list %s has %d end sentinels: %w", listID, len(ends), models.ErrStructuralIntegrity)
	}
	return ends[0], nil
}

// CreateNode inserts a node. An empty ID is filled with a fresh UUID and zero
// timestamps with the current time.
func (r *Repository) CreateNode(ctx context.Context, n *models.Node) error {
	if !n.Kind.Valid() {
		return fmt.Errorf("node kind %q: %w", n.Kind, models.ErrInvalidArgument)
	}
	if n.ID.IsZero() {
		n.ID = types.NodeID(uuid.NewString())
	}
	now := time.Now().UTC()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = n.CreatedAt
	}

	content := n.Content
	if n.Kind == types.KindBoard {
		n.Name = content.Name
	}
	tags, err := encodeTags(content.Tags)
	if err != nil {
		return err
	}

	_, err = r.exec(ctx, `
		INSERT INTO nodes (id, kind, list_id, name, description, assignee, deadline,
			tags, encrypted, encryption_key, is_public, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(n.ID), string(n.Kind), nullableID(n.ListID), n.Name, content.Description,
		content.Assignee, nullableTime(content.Deadline), tags, content.Encrypted,
		content.EncryptionKey, content.Public, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create node %s: %w", n.ID, err)
	}
	return nil
}

// UpdateBoardContent replaces the editable fields of a board
func (r *Repository) UpdateBoardContent(ctx context.Context, id types.NodeID, content models.BoardContent) error {
	tags, err := encodeTags(content.Tags)
	if err != nil {
		return err
	}
	res, err := r.exec(ctx, `
		UPDATE nodes SET name = ?, description = ?, assignee = ?, deadline = ?, tags = ?,
			encrypted = ?, encryption_key = ?, is_public = ?, updated_at = ?
		WHERE id = ? AND kind = ?`,
		content.Name, content.Description, content.Assignee, nullableTime(content.Deadline), tags,
		content.Encrypted, content.EncryptionKey, content.Public, time.Now().UTC(),
		string(id), string(types.KindBoard),
	)
	if err != nil {
		return fmt.Errorf("update board %s: %w", id, err)
	}
	return expectOne(res, notFound("board", id))
}

// RenameNode sets the name of a group or user node
func (r *Repository) RenameNode(ctx context.Context, id types.NodeID, name string) error {
	res, err := r.exec(ctx, `UPDATE nodes SET name = ?, updated_at = ? WHERE id = ?`,
		name, time.Now().UTC(), string(id))
	if err != nil {
		return fmt.Errorf("rename node %s: %w", id, err)
	}
	return expectOne(res, notFound("node", id))
}

// SetListID moves a member into another list. It only updates the pointer;
// the NEXT edges are the caller's responsibility.
func (r *Repository) SetListID(ctx context.Context, id, listID types.NodeID) error {
	res, err := r.exec(ctx, `UPDATE nodes SET list_id = ? WHERE id = ?`, nullableID(listID), string(id))
	if err != nil {
		return fmt.Errorf("set list of %s: %w", id, err)
	}
	return expectOne(res, notFound("node", id))
}

// DeleteNode removes a node row. Edges are not touched.
func (r *Repository) DeleteNode(ctx context.Context, id types.NodeID) error {
	res, err := r.exec(ctx, `DELETE FROM nodes WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("delete node %s: %w", id, err)
	}
	return expectOne(res, notFound("node", id))
}
