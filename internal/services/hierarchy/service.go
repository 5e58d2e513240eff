// Package hierarchy answers read-only questions about where a board sits in
// the tree: its ancestors, its owner, who may see it, and what it contains.
// Nothing here takes a lock; every upward or downward walk is hop-capped.
package hierarchy

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/arbor/internal/database"
	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/services/list"
	"github.com/thenoetrevino/arbor/internal/types"
)

// Service defines all hierarchy queries
type Service interface {
	ResolveAncestors(ctx context.Context, boardID types.NodeID) ([]*models.Board, *models.User, error)
	Owner(ctx context.Context, boardID types.NodeID) (*models.User, error)
	UserHasAccess(ctx context.Context, boardID types.NodeID, username string) (bool, error)
	AccessLevel(ctx context.Context, boardID types.NodeID, username string) (models.AccessLevel, error)
	Groups(ctx context.Context, boardID types.NodeID) ([]*models.Group, error)
	GetContents(ctx context.Context, boardID types.NodeID, username string) (models.BoardContents, error)
	RootEntries(ctx context.Context, username string) ([]models.RootEntry, error)
	GetBoard(ctx context.Context, boardID types.NodeID) (*models.Board, error)
}

type service struct {
	store    database.NodeStore
	lists    list.Service
	maxDepth int
}

// NewService creates a new hierarchy service
func NewService(store database.NodeStore, lists list.Service, maxDepth int) Service {
	if maxDepth <= 0 {
		maxDepth = 10000
	}
	return &service{store: store, lists: lists, maxDepth: maxDepth}
}

// GetBoard loads a board node. Any other kind of node reads as not found.
func (s *service) GetBoard(ctx context.Context, boardID types.NodeID) (*models.Board, error) {
	n, err := s.store.GetNode(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if !n.IsBoard() {
		return nil, fmt.Errorf("%s is a %s, not a board: %w", n.ID, n.Kind, models.ErrNotFound)
	}
	return models.BoardFromNode(n), nil
}

// ResolveAncestors walks up from a board through its list's group to the
// group's parent, repeating until it reaches a user. It returns the boards
// passed on the way, nearest-root first, and the owning user.
func (s *service) ResolveAncestors(ctx context.Context, boardID types.NodeID) ([]*models.Board, *models.User, error) {
	board, err := s.GetBoard(ctx, boardID)
	if err != nil {
		return nil, nil, err
	}

	var ancestors []*models.Board
	listID := board.ListID
	for hops := 0; hops < s.maxDepth; hops++ {
		parents, err := s.store.EdgesTo(ctx, listID, types.EdgeChildGroup)
		if err != nil {
			return nil, nil, err
		}
		if len(parents) != 1 {
			return nil, nil, fmt.Errorf("group %s has %d parents: %w", listID, len(parents), models.ErrStructuralIntegrity)
		}
		parent, err := s.store.GetNode(ctx, parents[0].From)
		if err != nil {
			return nil, nil, err
		}

		switch parent.Kind {
		case types.KindUser:
			owner, err := s.store.GetUserByNode(ctx, parent.ID)
			if err != nil {
				return nil, nil, err
			}
			slices.Reverse(ancestors)
			return ancestors, owner, nil
		case types.KindBoard:
			if parent.ID == board.ID || slices.ContainsFunc(ancestors, func(b *models.Board) bool { return b.ID == parent.ID }) {
				return nil, nil, fmt.Errorf("ancestry of %s loops at %s: %w", boardID, parent.ID, models.ErrStructuralIntegrity)
			}
			ancestors = append(ancestors, models.BoardFromNode(parent))
			listID = parent.ListID
		default:
			return nil, nil, fmt.Errorf("group %s has a %s parent: %w", listID, parent.Kind, models.ErrStructuralIntegrity)
		}
	}
	return nil, nil, fmt.Errorf("ancestry of %s exceeds %d hops: %w", boardID, s.maxDepth, models.ErrStructuralIntegrity)
}

// Owner returns the user whose root list (transitively) holds the board
func (s *service) Owner(ctx context.Context, boardID types.NodeID) (*models.User, error) {
	_, owner, err := s.ResolveAncestors(ctx, boardID)
	return owner, err
}

// UserHasAccess reports whether username owns the board or has a link to it,
// or to any board above it, in their root list
func (s *service) UserHasAccess(ctx context.Context, boardID types.NodeID, username string) (bool, error) {
	level, err := s.AccessLevel(ctx, boardID, username)
	if err != nil {
		return false, err
	}
	return level >= models.AccessCollaborator, nil
}

// AccessLevel grades what username may do with the board. Public boards (or
// boards under a public ancestor) are readable by everyone.
func (s *service) AccessLevel(ctx context.Context, boardID types.NodeID, username string) (models.AccessLevel, error) {
	board, err := s.GetBoard(ctx, boardID)
	if err != nil {
		return models.AccessNone, err
	}
	ancestors, owner, err := s.ResolveAncestors(ctx, boardID)
	if err != nil {
		return models.AccessNone, err
	}
	return s.accessLevel(ctx, board, ancestors, owner, username)
}

// viewer looks up the requesting user, returning nil for an anonymous or
// unregistered one
func (s *service) viewer(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, nil
	}
	user, err := s.store.GetUser(ctx, username)
	if err != nil {
		return nil, ignoreNotFound(err)
	}
	return user, nil
}

func (s *service) accessLevel(ctx context.Context, board *models.Board, ancestors []*models.Board, owner *models.User, username string) (models.AccessLevel, error) {
	if username != "" && owner.Username == username {
		return models.AccessOwner, nil
	}

	chain := append(slices.Clone(ancestors), board)
	// an unknown viewer holds no links and is graded like an anonymous one
	user, err := s.viewer(ctx, username)
	if err != nil {
		return models.AccessNone, err
	}
	if user != nil {
		for _, b := range chain {
			links, err := s.store.FindLinks(ctx, user.RootGroupID, b.ID)
			if err != nil {
				return models.AccessNone, err
			}
			if len(links) > 0 {
				return models.AccessCollaborator, nil
			}
		}
	}

	for _, b := range chain {
		if b.Public {
			return models.AccessPublic, nil
		}
	}
	return models.AccessNone, nil
}

// Groups returns a board's groups ordered by (order, id)
func (s *service) Groups(ctx context.Context, boardID types.NodeID) ([]*models.Group, error) {
	edges, err := s.store.EdgesFrom(ctx, boardID, types.EdgeChildGroup)
	if err != nil {
		return nil, err
	}
	groups := make([]*models.Group, 0, len(edges))
	for _, e := range edges {
		n, err := s.store.GetNode(ctx, e.To)
		if err != nil {
			return nil, err
		}
		groups = append(groups, &models.Group{
			ID:        n.ID,
			Name:      n.Name,
			Order:     e.Order,
			ParentID:  boardID,
			CreatedAt: n.CreatedAt,
		})
	}
	slices.SortFunc(groups, func(a, b *models.Group) int {
		if a.Less(b) {
			return -1
		}
		if b.Less(a) {
			return 1
		}
		return 0
	})
	return groups, nil
}

// GetContents reads a board together with its groups, ancestors and the
// requesting user's access level. Boards without groups come back as NotSetUp.
func (s *service) GetContents(ctx context.Context, boardID types.NodeID, username string) (models.BoardContents, error) {
	board, err := s.GetBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	ancestors, owner, err := s.ResolveAncestors(ctx, boardID)
	if err != nil {
		return nil, err
	}
	access, err := s.accessLevel(ctx, board, ancestors, owner, username)
	if err != nil {
		return nil, err
	}

	header := models.ContentsHeader{
		Board:     board,
		Ancestors: ancestors,
		Owner:     owner.Username,
		Access:    access,
	}

	groups, err := s.Groups(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return &models.NotSetUp{ContentsHeader: header}, nil
	}

	result := make([]models.GroupBoards, len(groups))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, group := range groups {
		g.Go(func() error {
			nodes, err := s.lists.Walk(gctx, group.ID)
			if err != nil {
				return err
			}
			boards := make([]*models.Board, 0, len(nodes))
			for _, n := range nodes {
				if n.IsBoard() {
					boards = append(boards, models.BoardFromNode(n))
				}
			}
			result[i] = models.GroupBoards{Group: group, Boards: boards}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &models.SetUp{ContentsHeader: header, Groups: result}, nil
}

// RootEntries resolves a user's root list in chain order. Links resolve to
// the board they point at; a link whose board vanished mid-read is skipped.
func (s *service) RootEntries(ctx context.Context, username string) ([]models.RootEntry, error) {
	user, err := s.store.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}
	nodes, err := s.lists.Walk(ctx, user.RootGroupID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.RootEntry, 0, len(nodes))
	for _, n := range nodes {
		switch n.Kind {
		case types.KindBoard:
			entries = append(entries, models.RootEntry{Board: models.BoardFromNode(n)})
		case types.KindLink:
			entry, ok, err := s.resolveLink(ctx, n)
			if err != nil {
				return nil, err
			}
			if ok {
				entries = append(entries, entry)
			}
		}
	}
	return entries, nil
}

func (s *service) resolveLink(ctx context.Context, link *models.Node) (models.RootEntry, bool, error) {
	targets, err := s.store.EdgesFrom(ctx, link.ID, types.EdgeSharedBoard)
	if err != nil || len(targets) == 0 {
		return models.RootEntry{}, false, err
	}
	board, err := s.GetBoard(ctx, targets[0].To)
	if err != nil {
		return models.RootEntry{}, false, ignoreNotFound(err)
	}
	owner, err := s.Owner(ctx, board.ID)
	if err != nil {
		return models.RootEntry{}, false, ignoreNotFound(err)
	}
	return models.RootEntry{Board: board, LinkID: link.ID, SharedFrom: owner.Username}, true, nil
}
