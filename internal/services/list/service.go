// Package list maintains the sibling chains of the board tree: one singly
// linked NEXT chain per group, from the group through its members to an End
// sentinel. Every structural mutation holds the chain's lock and rewrites its
// edges inside one transaction.
package list

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/thenoetrevino/arbor/internal/database"
	"github.com/thenoetrevino/arbor/internal/lock"
	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/types"
)

// Hook runs under the operation's locks inside its transaction. A non-nil
// error aborts the operation with nothing written.
type Hook func(ctx context.Context, tx database.NodeStore) error

// Service defines all chain operations
type Service interface {
	// Read operations
	Walk(ctx context.Context, listID types.NodeID) ([]*models.Node, error)
	Verify(ctx context.Context, listID types.NodeID) error
	ResolveList(ctx context.Context, parent models.ParentRef) (types.NodeID, error)

	// Write operations
	InsertAtHead(ctx context.Context, req InsertRequest) (types.NodeID, error)
	InsertAtTail(ctx context.Context, req InsertRequest) (types.NodeID, error)
	Delete(ctx context.Context, nodeID types.NodeID) error
	Move(ctx context.Context, req MoveRequest) (bool, error)

	// Run inside a caller's transaction, under locks the caller already holds
	DeleteIn(ctx context.Context, tx database.NodeStore, nodeID types.NodeID) error
	CreateList(ctx context.Context, tx database.NodeStore, owner types.NodeID, name string, order int) (*models.Group, error)
	DeleteList(ctx context.Context, tx database.NodeStore, groupID types.NodeID) error
}

// InsertRequest describes a new board or link and where it goes
type InsertRequest struct {
	Parent models.ParentRef
	// Node is inserted as given; an empty ID is replaced by a fresh UUID
	Node *models.Node
	// Edges are created alongside the node. An empty From means the new node.
	Edges []models.Edge
	// Host is an extra lock key taken before the list's own key
	Host         string
	Precondition Hook
}

// MoveRequest places NodeID immediately after TargetID. A group id, user node
// id or username as target means the head of that list.
type MoveRequest struct {
	Host     types.NodeID
	NodeID   types.NodeID
	TargetID types.NodeID
	IsRoot   bool
}

// service implements Service over a node store and a locker
type service struct {
	store    database.NodeStore
	locker   lock.Locker
	maxDepth int
}

// NewService creates a new list service. maxDepth caps every chain walk.
func NewService(store database.NodeStore, locker lock.Locker, maxDepth int) Service {
	if maxDepth <= 0 {
		maxDepth = 10000
	}
	return &service{store: store, locker: locker, maxDepth: maxDepth}
}

// ResolveList maps a parent reference to the group owning its chain
func (s *service) ResolveList(ctx context.Context, parent models.ParentRef) (types.NodeID, error) {
	return resolveList(ctx, s.store, parent)
}

func resolveList(ctx context.Context, r database.NodeStore, parent models.ParentRef) (types.NodeID, error) {
	if parent.IsRoot() {
		u, err := r.GetUser(ctx, parent.Username)
		if err != nil {
			return "", err
		}
		return u.RootGroupID, nil
	}
	if parent.GroupID.IsZero() {
		return "", fmt.Errorf("empty parent: %w", models.ErrInvalidArgument)
	}
	n, err := r.GetNode(ctx, parent.GroupID)
	if err != nil {
		return "", err
	}
	if n.Kind != types.KindGroup {
		return "", fmt.Errorf("%s is a %s, not a group: %w", n.ID, n.Kind, models.ErrNotFound)
	}
	return n.ID, nil
}

func validateInsert(req InsertRequest) error {
	if req.Node == nil {
		return fmt.Errorf("nil node: %w", models.ErrInvalidArgument)
	}
	if req.Node.Kind != types.KindBoard && req.Node.Kind != types.KindLink {
		return fmt.Errorf("insert %s: %w", req.Node.Kind, models.ErrInvalidArgument)
	}
	return nil
}

// InsertAtHead places a new node directly after the list owner
func (s *service) InsertAtHead(ctx context.Context, req InsertRequest) (types.NodeID, error) {
	return s.insert(ctx, req, func(ctx context.Context, tx database.NodeStore, listID types.NodeID) (types.NodeID, types.NodeID, error) {
		first, err := successor(ctx, tx, listID)
		return listID, first, err
	})
}

// InsertAtTail places a new node directly before the list's End sentinel
func (s *service) InsertAtTail(ctx context.Context, req InsertRequest) (types.NodeID, error) {
	return s.insert(ctx, req, func(ctx context.Context, tx database.NodeStore, listID types.NodeID) (types.NodeID, types.NodeID, error) {
		end, err := tx.FindEnd(ctx, listID)
		if err != nil {
			return "", "", err
		}
		pred, err := predecessor(ctx, tx, end)
		return pred, end, err
	})
}

// slotFunc locates the pair (before, after) the new node is spliced between
type slotFunc func(ctx context.Context, tx database.NodeStore, listID types.NodeID) (types.NodeID, types.NodeID, error)

func (s *service) insert(ctx context.Context, req InsertRequest, slot slotFunc) (types.NodeID, error) {
	if err := validateInsert(req); err != nil {
		return "", err
	}
	listID, err := s.ResolveList(ctx, req.Parent)
	if err != nil {
		return "", err
	}

	release, err := lock.AcquireAll(ctx, s.locker, req.Host, lock.ListKey(listID))
	if err != nil {
		return "", err
	}
	defer release()

	node := *req.Node
	if node.ID.IsZero() {
		node.ID = types.NodeID(uuid.NewString())
	}
	node.ListID = listID

	err = s.store.WithTx(ctx, func(tx database.NodeStore) error {
		// the group may have been removed while we waited for its lock
		if _, err := tx.GetNode(ctx, listID); err != nil {
			return err
		}
		if req.Precondition != nil {
			if err := req.Precondition(ctx, tx); err != nil {
				return err
			}
		}

		before, after, err := slot(ctx, tx, listID)
		if err != nil {
			return err
		}

		if err := tx.CreateNode(ctx, &node); err != nil {
			return err
		}
		if err := tx.DeleteEdge(ctx, before, types.EdgeNext, after); err != nil {
			return err
		}
		if err := tx.CreateEdge(ctx, models.Edge{From: before, Type: types.EdgeNext, To: node.ID}); err != nil {
			return err
		}
		if err := tx.CreateEdge(ctx, models.Edge{From: node.ID, Type: types.EdgeNext, To: after}); err != nil {
			return err
		}
		for _, e := range req.Edges {
			if e.From.IsZero() {
				e.From = node.ID
			}
			if err := tx.CreateEdge(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return node.ID, nil
}

// Delete splices a board or link out of its chain and removes it. Boards that
// still own groups are refused.
func (s *service) Delete(ctx context.Context, nodeID types.NodeID) error {
	for attempt := 0; attempt < maxLockAttempts; attempt++ {
		err := s.deleteOnce(ctx, nodeID)
		if !errors.Is(err, errListChanged) {
			return err
		}
	}
	return fmt.Errorf("delete %s: %w: %v", nodeID, models.ErrLockTimeout, errListChanged)
}

func (s *service) deleteOnce(ctx context.Context, nodeID types.NodeID) error {
	node, err := s.store.GetNode(ctx, nodeID)
	if err != nil {
		return err
	}
	if node.Kind != types.KindBoard && node.Kind != types.KindLink {
		return fmt.Errorf("delete %s: %w: %v", node.ID, models.ErrInvalidArgument, errNotMember)
	}

	release, err := s.locker.Acquire(ctx, lock.ListKey(node.ListID))
	if err != nil {
		return err
	}
	defer release()

	return s.store.WithTx(ctx, func(tx database.NodeStore) error {
		current, err := tx.GetNode(ctx, node.ID)
		if err != nil {
			return err
		}
		if current.ListID != node.ListID {
			return errListChanged
		}
		return s.DeleteIn(ctx, tx, current.ID)
	})
}

// DeleteIn removes a board or link from its chain. The caller holds the
// chain's lock and owns tx.
func (s *service) DeleteIn(ctx context.Context, tx database.NodeStore, nodeID types.NodeID) error {
	node, err := tx.GetNode(ctx, nodeID)
	if err != nil {
		return err
	}
	switch node.Kind {
	case types.KindBoard:
		groups, err := tx.EdgesFrom(ctx, node.ID, types.EdgeChildGroup)
		if err != nil {
			return err
		}
		if len(groups) > 0 {
			return fmt.Errorf("board %s owns %d groups: %w", node.ID, len(groups), models.ErrNotEmpty)
		}
	case types.KindLink:
	default:
		return fmt.Errorf("delete %s: %w: %v", node.ID, models.ErrInvalidArgument, errNotMember)
	}

	if err := splice(ctx, tx, node.ID); err != nil {
		return err
	}

	shared, err := tx.EdgesFrom(ctx, node.ID, types.EdgeSharedBoard)
	if err != nil {
		return err
	}
	for _, e := range shared {
		if err := tx.DeleteEdge(ctx, e.From, e.Type, e.To); err != nil {
			return err
		}
	}
	return tx.DeleteNode(ctx, node.ID)
}

// splice detaches id from its chain, linking its predecessor to its successor
func splice(ctx context.Context, tx database.NodeStore, id types.NodeID) error {
	pred, err := predecessor(ctx, tx, id)
	if err != nil {
		return err
	}
	succ, err := successor(ctx, tx, id)
	if err != nil {
		return err
	}
	if err := tx.DeleteEdge(ctx, pred, types.EdgeNext, id); err != nil {
		return err
	}
	if err := tx.DeleteEdge(ctx, id, types.EdgeNext, succ); err != nil {
		return err
	}
	return tx.CreateEdge(ctx, models.Edge{From: pred, Type: types.EdgeNext, To: succ})
}

// successor returns the single NEXT target of id
func successor(ctx context.Context, r database.EdgeReader, id types.NodeID) (types.NodeID, error) {
	edges, err := r.EdgesFrom(ctx, id, types.EdgeNext)
	if err != nil {
		return "", err
	}
	if len(edges) != 1 {
		return "", fmt.Errorf("%s has %d successors: %w", id, len(edges), models.ErrStructuralIntegrity)
	}
	return edges[0].To, nil
}

// predecessor returns the single NEXT source pointing at id
func predecessor(ctx context.Context, r database.EdgeReader, id types.NodeID) (types.NodeID, error) {
	edges, err := r.EdgesTo(ctx, id, types.EdgeNext)
	if err != nil {
		return "", err
	}
	if len(edges) != 1 {
		return "", fmt.Errorf("%s has %d predecessors: %w", id, len(edges), models.ErrStructuralIntegrity)
	}
	return edges[0].From, nil
}

// CreateList creates a group under owner with an empty chain
func (s *service) CreateList(ctx context.Context, tx database.NodeStore, owner types.NodeID, name string, order int) (*models.Group, error) {
	group := &models.Node{Kind: types.KindGroup, Name: name}
	if err := tx.CreateNode(ctx, group); err != nil {
		return nil, err
	}
	end := &models.Node{Kind: types.KindEnd, ListID: group.ID}
	if err := tx.CreateNode(ctx, end); err != nil {
		return nil, err
	}
	if err := tx.CreateEdge(ctx, models.Edge{From: group.ID, Type: types.EdgeNext, To: end.ID}); err != nil {
		return nil, err
	}
	if err := tx.CreateEdge(ctx, models.Edge{From: owner, Type: types.EdgeChildGroup, To: group.ID, Order: order}); err != nil {
		return nil, err
	}
	return &models.Group{
		ID:        group.ID,
		Name:      name,
		Order:     order,
		ParentID:  owner,
		CreatedAt: group.CreatedAt,
	}, nil
}

// DeleteList removes a group whose chain holds only its End sentinel
func (s *service) DeleteList(ctx context.Context, tx database.NodeStore, groupID types.NodeID) error {
	end, err := tx.FindEnd(ctx, groupID)
	if err != nil {
		return err
	}
	first, err := successor(ctx, tx, groupID)
	if err != nil {
		return err
	}
	if first != end {
		return fmt.Errorf("group %s: %w", groupID, models.ErrNotEmpty)
	}

	if err := tx.DeleteEdge(ctx, groupID, types.EdgeNext, end); err != nil {
		return err
	}
	parents, err := tx.EdgesTo(ctx, groupID, types.EdgeChildGroup)
	if err != nil {
		return err
	}
	for _, e := range parents {
		if err := tx.DeleteEdge(ctx, e.From, e.Type, e.To); err != nil {
			return err
		}
	}
	if err := tx.DeleteNode(ctx, end); err != nil {
		return err
	}
	return tx.DeleteNode(ctx, groupID)
}
