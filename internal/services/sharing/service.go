// Package sharing adds boards to other users' root lists through link nodes,
// so a board keeps a single owner and a single copy of its content.
package sharing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/thenoetrevino/arbor/internal/database"
	"github.com/thenoetrevino/arbor/internal/lock"
	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/services/hierarchy"
	"github.com/thenoetrevino/arbor/internal/services/list"
	"github.com/thenoetrevino/arbor/internal/types"
)

// Service defines all collaborator operations
type Service interface {
	AddCollaborator(ctx context.Context, boardID types.NodeID, username string) (bool, error)
	RemoveCollaborator(ctx context.Context, boardID types.NodeID, username string) error
	ListCollaborators(ctx context.Context, boardID types.NodeID) ([]string, error)

	// Cascade support for board deletion
	LinkLists(ctx context.Context, boardID types.NodeID) ([]types.NodeID, error)
	RemoveAllLinks(ctx context.Context, tx database.NodeStore, boardID types.NodeID) (int, error)
}

type service struct {
	store     database.NodeStore
	lists     list.Service
	hierarchy hierarchy.Service
}

// NewService creates a new sharing service
func NewService(store database.NodeStore, lists list.Service, h hierarchy.Service) Service {
	return &service{store: store, lists: lists, hierarchy: h}
}

// AddCollaborator links a board into username's root list. It returns false
// without error when the user owns the board or already has a link to it.
func (s *service) AddCollaborator(ctx context.Context, boardID types.NodeID, username string) (bool, error) {
	if _, err := s.store.GetUser(ctx, username); err != nil {
		return false, err
	}
	owner, err := s.hierarchy.Owner(ctx, boardID)
	if err != nil {
		return false, err
	}
	if owner.Username == username {
		return false, nil
	}

	_, err = s.lists.InsertAtHead(ctx, list.InsertRequest{
		Parent: models.UserParent(username),
		Node:   &models.Node{Kind: types.KindLink},
		Edges:  []models.Edge{{Type: types.EdgeSharedBoard, To: boardID}},
		// the board lock keeps a concurrent delete from orphaning the link
		Host: lock.NodeKey(boardID),
		Precondition: func(ctx context.Context, tx database.NodeStore) error {
			n, err := tx.GetNode(ctx, boardID)
			if err != nil {
				return err
			}
			if !n.IsBoard() {
				return fmt.Errorf("%s is not a board: %w", boardID, models.ErrNotFound)
			}
			user, err := tx.GetUser(ctx, username)
			if err != nil {
				return err
			}
			links, err := tx.FindLinks(ctx, user.RootGroupID, boardID)
			if err != nil {
				return err
			}
			if len(links) > 0 {
				return errAlreadyLinked
			}
			return nil
		},
	})
	if errors.Is(err, errAlreadyLinked) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RemoveCollaborator deletes username's link to the board. The board itself
// is never touched.
func (s *service) RemoveCollaborator(ctx context.Context, boardID types.NodeID, username string) error {
	user, err := s.store.GetUser(ctx, username)
	if err != nil {
		return err
	}
	links, err := s.store.FindLinks(ctx, user.RootGroupID, boardID)
	if err != nil {
		return err
	}
	if len(links) == 0 {
		return fmt.Errorf("%s has no link to %s: %w", username, boardID, models.ErrNotFound)
	}
	for _, id := range links {
		if err := s.lists.Delete(ctx, id); err != nil && !errors.Is(err, models.ErrNotFound) {
			return err
		}
	}
	return nil
}

// ListCollaborators returns the sorted usernames holding a link to the board,
// owner excluded
func (s *service) ListCollaborators(ctx context.Context, boardID types.NodeID) ([]string, error) {
	owner, err := s.hierarchy.Owner(ctx, boardID)
	if err != nil {
		return nil, err
	}
	edges, err := s.store.EdgesTo(ctx, boardID, types.EdgeSharedBoard)
	if err != nil {
		return nil, err
	}

	usernames := make([]string, 0, len(edges))
	for _, e := range edges {
		user, err := s.linkOwner(ctx, e.From)
		if errors.Is(err, models.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if user.Username != owner.Username {
			usernames = append(usernames, user.Username)
		}
	}
	slices.Sort(usernames)
	return slices.Compact(usernames), nil
}

// linkOwner returns the user whose root list holds the link
func (s *service) linkOwner(ctx context.Context, linkID types.NodeID) (*models.User, error) {
	link, err := s.store.GetNode(ctx, linkID)
	if err != nil {
		return nil, err
	}
	parents, err := s.store.EdgesTo(ctx, link.ListID, types.EdgeChildGroup)
	if err != nil {
		return nil, err
	}
	if len(parents) != 1 {
		return nil, fmt.Errorf("link %s is not in a root list: %w", linkID, models.ErrStructuralIntegrity)
	}
	return s.store.GetUserByNode(ctx, parents[0].From)
}

// LinkLists returns the root lists holding links to the board, deduplicated
func (s *service) LinkLists(ctx context.Context, boardID types.NodeID) ([]types.NodeID, error) {
	edges, err := s.store.EdgesTo(ctx, boardID, types.EdgeSharedBoard)
	if err != nil {
		return nil, err
	}
	lists := make([]types.NodeID, 0, len(edges))
	for _, e := range edges {
		link, err := s.store.GetNode(ctx, e.From)
		if errors.Is(err, models.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		lists = append(lists, link.ListID)
	}
	slices.Sort(lists)
	return slices.Compact(lists), nil
}

// RemoveAllLinks deletes every link pointing at the board and reports how
// many went away. The caller holds the locks of every list from LinkLists
// and owns tx.
func (s *service) RemoveAllLinks(ctx context.Context, tx database.NodeStore, boardID types.NodeID) (int, error) {
	edges, err := tx.EdgesTo(ctx, boardID, types.EdgeSharedBoard)
	if err != nil {
		return 0, err
	}
	for i, e := range edges {
		if err := s.lists.DeleteIn(ctx, tx, e.From); err != nil {
			return i, err
		}
	}
	if len(edges) > 0 {
		slog.Debug("removed links", "board_id", boardID, "count", len(edges))
	}
	return len(edges), nil
}
