package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/types"
)

func (r *Repository) scanEdges(ctx context.Context, query string, args ...any) ([]models.Edge, error) {
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var edges []models.Edge
	for rows.Next() {
		var e models.Edge
		if err := rows.Scan(&e.From, &e.Type, &e.To, &e.Order); err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// EdgesFrom returns outgoing edges of one type, ordered by (ord, to_id)
func (r *Repository) EdgesFrom(ctx context.Context, from types.NodeID, typ types.EdgeType) ([]models.Edge, error) {
	edges, err := r.scanEdges(ctx, `
		SELECT from_id, edge_type, to_id, ord FROM edges
		WHERE from_id = ? AND edge_type = ?
		ORDER BY ord, to_id`, string(from), string(typ))
	if err != nil {
		return nil, fmt.Errorf("edges from %s: %w", from, err)
	}
	return edges, nil
}

// EdgesTo returns incoming edges of one type, ordered by from_id
func (r *Repository) EdgesTo(ctx context.Context, to types.NodeID, typ types.EdgeType) ([]models.Edge, error) {
	edges, err := r.scanEdges(ctx, `
		SELECT from_id, edge_type, to_id, ord FROM edges
		WHERE to_id = ? AND edge_type = ?
		ORDER BY from_id`, string(to), string(typ))
	if err != nil {
		return nil, fmt.Errorf("edges to %s: %w", to, err)
	}
	return edges, nil
}

// FindLinks returns the links in listID whose SHARED_BOARD edge targets boardID
func (r *Repository) FindLinks(ctx context.Context, listID, boardID types.NodeID) ([]types.NodeID, error) {
	rows, err := r.query(ctx, `
		SELECT n.id FROM nodes n
		JOIN edges e ON e.from_id = n.id AND e.edge_type = ?
		WHERE n.list_id = ? AND n.kind = ? AND e.to_id = ?
		ORDER BY n.id`,
		string(types.EdgeSharedBoard), string(listID), string(types.KindLink), string(boardID))
	if err != nil {
		return nil, fmt.Errorf("find links to %s: %w", boardID, err)
	}
	defer func() { _ = rows.Close() }()

	var ids []types.NodeID
	for rows.Next() {
		var id types.NodeID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CreateEdge inserts an edge. A second NEXT successor or predecessor for the
// same node is rejected by the schema.
func (r *Repository) CreateEdge(ctx context.Context, e models.Edge) error {
	_, err := r.exec(ctx, `INSERT INTO edges (from_id, edge_type, to_id, ord) VALUES (?, ?, ?, ?)`,
		string(e.From), string(e.Type), string(e.To), e.Order)
	if err != nil {
		return fmt.Errorf("create edge %s-%s->%s: %w", e.From, e.Type, e.To, err)
	}
	return nil
}

// DeleteEdge removes one edge. The caller expected it to exist, so a missing
// edge means the structure changed underneath it.
func (r *Repository) DeleteEdge(ctx context.Context, from types.NodeID, typ types.EdgeType, to types.NodeID) error {
	res, err := r.exec(ctx, `DELETE FROM edges WHERE from_id = ? AND edge_type = ? AND to_id = ?`,
		string(from), string(typ), string(to))
	if err != nil {
		return fmt.Errorf("delete edge %s-%s->%s: %w", from, typ, to, err)
	}
	return expectOne(res, fmt.Errorf("edge %s-%s->%s missing: %w", from, typ, to, models.ErrStructuralIntegrity))
}

// UpdateEdgeOrder sets the display order carried by an edge
func (r *Repository) UpdateEdgeOrder(ctx context.Context, from types.NodeID, typ types.EdgeType, to types.NodeID, order int) error {
	res, err := r.exec(ctx, `UPDATE edges SET ord = ? WHERE from_id = ? AND edge_type = ? AND to_id = ?`,
		order, string(from), string(typ), string(to))
	if err != nil {
		return fmt.Errorf("update edge order: %w", err)
	}
	return expectOne(res, notFound("edge", fmt.Sprintf("%s-%s->%s", from, typ, to)))
}
