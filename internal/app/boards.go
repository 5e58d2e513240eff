package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/arbor/internal/database"
	"github.com/thenoetrevino/arbor/internal/events"
	"github.com/thenoetrevino/arbor/internal/lock"
	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/services/list"
	"github.com/thenoetrevino/arbor/internal/types"
)

// maxDeleteAttempts bounds how often DeleteBoard re-reads the board's
// surroundings when they change between the read and the lock
const maxDeleteAttempts = 3

var errBoardChanged = errors.New("board surroundings changed while waiting for locks")

// AddRootBoard creates a board at the head of owner's root list
func (a *App) AddRootBoard(ctx context.Context, content models.BoardContent, owner string) (types.NodeID, error) {
	const op = "add root board"
	content = content.Normalize()
	if err := validateContent(content); err != nil {
		return "", err
	}
	if err := validateUsername(owner); err != nil {
		return "", err
	}

	id, err := a.Lists.InsertAtHead(ctx, list.InsertRequest{
		Parent: models.UserParent(owner),
		Node:   &models.Node{Kind: types.KindBoard, Content: content},
	})
	if err != nil {
		return "", a.classify(op, err)
	}

	a.logger.Info("board created", "board_id", id, "owner", owner)
	a.publish(events.Event{Type: events.EventBoardCreated, BoardID: id.String(), Username: owner})
	return id, nil
}

// AddChildBoard creates a board at the tail of a board's group. The group
// must belong to a board; root lists take boards through AddRootBoard.
func (a *App) AddChildBoard(ctx context.Context, content models.BoardContent, groupID types.NodeID, owner string) (types.NodeID, error) {
	const op = "add child board"
	content = content.Normalize()
	if err := validateContent(content); err != nil {
		return "", err
	}
	if groupID.IsZero() {
		return "", ErrEmptyID
	}
	if err := validateUsername(owner); err != nil {
		return "", err
	}
	if _, err := a.store.GetUser(ctx, owner); err != nil {
		return "", a.classify(op, err)
	}

	id, err := a.Lists.InsertAtTail(ctx, list.InsertRequest{
		Parent: models.GroupParent(groupID),
		Node:   &models.Node{Kind: types.KindBoard, Content: content},
		Precondition: func(ctx context.Context, tx database.NodeStore) error {
			parent, err := groupParent(ctx, tx, groupID)
			if err != nil {
				return err
			}
			if parent.Kind != types.KindBoard {
				return fmt.Errorf("group %s: %w", groupID, ErrRootGroup)
			}
			return nil
		},
	})
	if err != nil {
		return "", a.classify(op, err)
	}

	a.logger.Info("board created", "board_id", id, "group_id", groupID, "owner", owner)
	a.publish(events.Event{Type: events.EventBoardCreated, BoardID: id.String(), GroupID: groupID.String(), Username: owner})
	return id, nil
}

// GetBoard returns a single board
func (a *App) GetBoard(ctx context.Context, id types.NodeID) (*models.Board, error) {
	if id.IsZero() {
		return nil, ErrEmptyID
	}
	board, err := a.Hierarchy.GetBoard(ctx, id)
	return board, a.classify("get board", err)
}

// EditBoard replaces a board's content. Structure is untouched.
func (a *App) EditBoard(ctx context.Context, id types.NodeID, content models.BoardContent) error {
	const op = "edit board"
	if id.IsZero() {
		return ErrEmptyID
	}
	content = content.Normalize()
	if err := validateContent(content); err != nil {
		return err
	}
	if err := a.store.UpdateBoardContent(ctx, id, content); err != nil {
		return a.classify(op, err)
	}

	a.logger.Info("board edited", "board_id", id)
	a.publish(events.Event{Type: events.EventBoardEdited, BoardID: id.String()})
	return nil
}

// DeleteBoard removes a board and every link pointing at it. Its groups are
// removed too, provided they hold no boards; otherwise nothing changes and
// ErrNotEmpty is returned.
func (a *App) DeleteBoard(ctx context.Context, id types.NodeID) error {
	const op = "delete board"
	if id.IsZero() {
		return ErrEmptyID
	}
	var err error
	for attempt := 0; attempt < maxDeleteAttempts; attempt++ {
		if err = a.deleteBoardOnce(ctx, id); !errors.Is(err, errBoardChanged) {
			break
		}
	}
	if errors.Is(err, errBoardChanged) {
		err = fmt.Errorf("board %s: %w: %v", id, models.ErrLockTimeout, err)
	}
	if err != nil {
		return a.classify(op, err)
	}

	a.logger.Info("board deleted", "board_id", id)
	a.publish(events.Event{Type: events.EventBoardDeleted, BoardID: id.String()})
	return nil
}

// deleteBoardOnce takes the board's host key and, in one acquisition, the
// keys of its own list, its groups and every root list holding a link to it.
// The host key keeps groups from being added and links from being created
// while the cascade runs.
func (a *App) deleteBoardOnce(ctx context.Context, id types.NodeID) error {
	board, err := a.Hierarchy.GetBoard(ctx, id)
	if err != nil {
		return err
	}
	groups, err := a.Hierarchy.Groups(ctx, id)
	if err != nil {
		return err
	}
	linkLists, err := a.Sharing.LinkLists(ctx, id)
	if err != nil {
		return err
	}

	locked := map[types.NodeID]bool{board.ListID: true}
	keys := []string{lock.ListKey(board.ListID)}
	for _, g := range groups {
		locked[g.ID] = true
		keys = append(keys, lock.ListKey(g.ID))
	}
	for _, l := range linkLists {
		locked[l] = true
		keys = append(keys, lock.ListKey(l))
	}
	release, err := lock.AcquireAll(ctx, a.locker, lock.NodeKey(id), keys...)
	if err != nil {
		return err
	}
	defer release()

	return a.store.WithTx(ctx, func(tx database.NodeStore) error {
		current, err := tx.GetNode(ctx, id)
		if err != nil {
			return err
		}
		if current.ListID != board.ListID {
			return errBoardChanged
		}
		children, err := tx.EdgesFrom(ctx, id, types.EdgeChildGroup)
		if err != nil {
			return err
		}
		if len(children) != len(groups) {
			return errBoardChanged
		}
		shared, err := tx.EdgesTo(ctx, id, types.EdgeSharedBoard)
		if err != nil {
			return err
		}
		for _, e := range shared {
			link, err := tx.GetNode(ctx, e.From)
			if err != nil {
				return err
			}
			if !locked[link.ListID] {
				return errBoardChanged
			}
		}
		for _, g := range groups {
			if err := a.Lists.DeleteList(ctx, tx, g.ID); err != nil {
				return fmt.Errorf("group %q: %w", g.Name, err)
			}
		}
		removed, err := a.Sharing.RemoveAllLinks(ctx, tx, id)
		if err != nil {
			return err
		}
		if removed > 0 {
			a.logger.Debug("board links removed", "board_id", id, "count", removed)
		}
		return a.Lists.DeleteIn(ctx, tx, id)
	})
}

// MoveBoard places a board (or, within root lists, a link) right after
// target. A group, user node or username as target means the head of that
// list. Moving onto the current position reports false.
func (a *App) MoveBoard(ctx context.Context, host, id, target types.NodeID, isRoot bool) (bool, error) {
	const op = "move board"
	if host.IsZero() || id.IsZero() || target.IsZero() {
		return false, ErrEmptyID
	}
	moved, err := a.Lists.Move(ctx, list.MoveRequest{Host: host, NodeID: id, TargetID: target, IsRoot: isRoot})
	if err != nil {
		return false, a.classify(op, err)
	}
	if moved {
		a.logger.Info("board moved", "board_id", id, "target", target, "root", isRoot)
		a.publish(events.Event{Type: events.EventBoardMoved, BoardID: id.String()})
	}
	return moved, nil
}

// SetupBoard attaches the configured default groups to a board that has
// none yet. A board is set up once.
func (a *App) SetupBoard(ctx context.Context, id types.NodeID) ([]*models.Group, error) {
	const op = "setup board"
	if id.IsZero() {
		return nil, ErrEmptyID
	}
	if _, err := a.Hierarchy.GetBoard(ctx, id); err != nil {
		return nil, a.classify(op, err)
	}

	release, err := a.locker.Acquire(ctx, lock.NodeKey(id))
	if err != nil {
		return nil, a.classify(op, err)
	}
	defer release()

	var groups []*models.Group
	err = a.store.WithTx(ctx, func(tx database.NodeStore) error {
		existing, err := tx.EdgesFrom(ctx, id, types.EdgeChildGroup)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return fmt.Errorf("board %s has %d groups: %w", id, len(existing), models.ErrAlreadyInitialized)
		}
		for i, name := range a.cfg.Boards.DefaultGroups {
			g, err := a.Lists.CreateList(ctx, tx, id, name, i)
			if err != nil {
				return err
			}
			groups = append(groups, g)
		}
		return nil
	})
	if err != nil {
		return nil, a.classify(op, err)
	}

	a.logger.Info("board set up", "board_id", id, "groups", len(groups))
	a.publish(events.Event{Type: events.EventBoardSetUp, BoardID: id.String()})
	return groups, nil
}

// GetBoardContents reads a board with its groups, ancestors and the access
// level of username. An empty username reads anonymously.
func (a *App) GetBoardContents(ctx context.Context, id types.NodeID, username string) (models.BoardContents, error) {
	if id.IsZero() {
		return nil, ErrEmptyID
	}
	contents, err := a.Hierarchy.GetContents(ctx, id, username)
	return contents, a.classify("get board contents", err)
}

// GetAllRootBoards returns username's root list, own boards and shared
// boards alike, most recent first
func (a *App) GetAllRootBoards(ctx context.Context, username string) ([]models.RootEntry, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	entries, err := a.Hierarchy.RootEntries(ctx, username)
	return entries, a.classify("get root boards", err)
}

// groupParent returns the node owning a group: a board, or a user for a
// root list
func groupParent(ctx context.Context, r database.NodeStore, groupID types.NodeID) (*models.Node, error) {
	group, err := r.GetNode(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.Kind != types.KindGroup {
		return nil, fmt.Errorf("%s is not a group: %w", groupID, models.ErrNotFound)
	}
	parents, err := r.EdgesTo(ctx, groupID, types.EdgeChildGroup)
	if err != nil {
		return nil, err
	}
	if len(parents) != 1 {
		return nil, fmt.Errorf("group %s has %d parents: %w", groupID, len(parents), models.ErrStructuralIntegrity)
	}
	return r.GetNode(ctx, parents[0].From)
}
