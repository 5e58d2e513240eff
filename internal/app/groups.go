package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/thenoetrevino/arbor/internal/database"
	"github.com/thenoetrevino/arbor/internal/events"
	"github.com/thenoetrevino/arbor/internal/lock"
	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/types"
)

// AddGroup attaches a new empty group after the board's last group. Orders
// are max+1, so removals leave gaps that never get reused.
func (a *App) AddGroup(ctx context.Context, boardID types.NodeID, name string) (*models.Group, error) {
	const op = "add group"
	if boardID.IsZero() {
		return nil, ErrEmptyID
	}
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if _, err := a.Hierarchy.GetBoard(ctx, boardID); err != nil {
		return nil, a.classify(op, err)
	}

	release, err := a.locker.Acquire(ctx, lock.NodeKey(boardID))
	if err != nil {
		return nil, a.classify(op, err)
	}
	defer release()

	var group *models.Group
	err = a.store.WithTx(ctx, func(tx database.NodeStore) error {
		board, err := tx.GetNode(ctx, boardID)
		if err != nil {
			return err
		}
		if !board.IsBoard() {
			return fmt.Errorf("%s is not a board: %w", boardID, models.ErrNotFound)
		}
		existing, err := tx.EdgesFrom(ctx, boardID, types.EdgeChildGroup)
		if err != nil {
			return err
		}
		order := 0
		for _, e := range existing {
			if e.Order >= order {
				order = e.Order + 1
			}
		}
		group, err = a.Lists.CreateList(ctx, tx, boardID, name, order)
		return err
	})
	if err != nil {
		return nil, a.classify(op, err)
	}

	a.logger.Info("group created", "group_id", group.ID, "board_id", boardID, "order", group.Order)
	a.publish(events.Event{Type: events.EventGroupCreated, BoardID: boardID.String(), GroupID: group.ID.String()})
	return group, nil
}

// RenameGroup changes a board group's name. Root lists keep the owner's name.
func (a *App) RenameGroup(ctx context.Context, groupID types.NodeID, name string) error {
	const op = "rename group"
	if groupID.IsZero() {
		return ErrEmptyID
	}
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}

	parent, err := groupParent(ctx, a.store, groupID)
	if err != nil {
		return a.classify(op, err)
	}
	if parent.Kind != types.KindBoard {
		return fmt.Errorf("group %s: %w", groupID, ErrRootGroup)
	}
	if err := a.store.RenameNode(ctx, groupID, name); err != nil {
		return a.classify(op, err)
	}

	a.logger.Info("group renamed", "group_id", groupID, "name", name)
	a.publish(events.Event{Type: events.EventGroupRenamed, BoardID: parent.ID.String(), GroupID: groupID.String()})
	return nil
}

// ReorderGroup sets the position a board group sorts at. Groups sharing a
// position fall back to id order.
func (a *App) ReorderGroup(ctx context.Context, groupID types.NodeID, order int) error {
	const op = "reorder group"
	if groupID.IsZero() {
		return ErrEmptyID
	}
	if order < 0 {
		return fmt.Errorf("order %d: %w", order, ErrNegativeOrder)
	}
	parent, err := groupParent(ctx, a.store, groupID)
	if err != nil {
		return a.classify(op, err)
	}
	if parent.Kind != types.KindBoard {
		return fmt.Errorf("group %s: %w", groupID, ErrRootGroup)
	}

	release, err := a.locker.Acquire(ctx, lock.NodeKey(parent.ID))
	if err != nil {
		return a.classify(op, err)
	}
	defer release()

	if err := a.store.UpdateEdgeOrder(ctx, parent.ID, types.EdgeChildGroup, groupID, order); err != nil {
		return a.classify(op, err)
	}

	a.logger.Info("group reordered", "group_id", groupID, "board_id", parent.ID, "order", order)
	a.publish(events.Event{Type: events.EventGroupReordered, BoardID: parent.ID.String(), GroupID: groupID.String()})
	return nil
}

// RemoveGroup deletes an empty group from its board
func (a *App) RemoveGroup(ctx context.Context, groupID types.NodeID) error {
	const op = "remove group"
	if groupID.IsZero() {
		return ErrEmptyID
	}
	parent, err := groupParent(ctx, a.store, groupID)
	if err != nil {
		return a.classify(op, err)
	}
	if parent.Kind != types.KindBoard {
		return fmt.Errorf("group %s: %w", groupID, ErrRootGroup)
	}

	release, err := lock.AcquireAll(ctx, a.locker, lock.NodeKey(parent.ID), lock.ListKey(groupID))
	if err != nil {
		return a.classify(op, err)
	}
	defer release()

	err = a.store.WithTx(ctx, func(tx database.NodeStore) error {
		return a.Lists.DeleteList(ctx, tx, groupID)
	})
	if err != nil {
		return a.classify(op, err)
	}

	a.logger.Info("group removed", "group_id", groupID, "board_id", parent.ID)
	a.publish(events.Event{Type: events.EventGroupRemoved, BoardID: parent.ID.String(), GroupID: groupID.String()})
	return nil
}
