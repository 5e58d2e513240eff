package app

import (
	"context"

	"github.com/thenoetrevino/arbor/internal/events"
	"github.com/thenoetrevino/arbor/internal/types"
)

// AddCollaborator shares a board with username. It reports false when the
// user already owns or already has the board.
func (a *App) AddCollaborator(ctx context.Context, boardID types.NodeID, username string) (bool, error) {
	if boardID.IsZero() {
		return false, ErrEmptyID
	}
	if err := validateUsername(username); err != nil {
		return false, err
	}
	added, err := a.Sharing.AddCollaborator(ctx, boardID, username)
	if err != nil {
		return false, a.classify("add collaborator", err)
	}
	if added {
		a.logger.Info("collaborator added", "board_id", boardID, "username", username)
		a.publish(events.Event{Type: events.EventCollaboratorAdded, BoardID: boardID.String(), Username: username})
	}
	return added, nil
}

// RemoveCollaborator unshares a board from username
func (a *App) RemoveCollaborator(ctx context.Context, boardID types.NodeID, username string) error {
	if boardID.IsZero() {
		return ErrEmptyID
	}
	if err := validateUsername(username); err != nil {
		return err
	}
	if err := a.Sharing.RemoveCollaborator(ctx, boardID, username); err != nil {
		return a.classify("remove collaborator", err)
	}
	a.logger.Info("collaborator removed", "board_id", boardID, "username", username)
	a.publish(events.Event{Type: events.EventCollaboratorRemoved, BoardID: boardID.String(), Username: username})
	return nil
}

// ListCollaborators returns who the board is shared with, sorted
func (a *App) ListCollaborators(ctx context.Context, boardID types.NodeID) ([]string, error) {
	if boardID.IsZero() {
		return nil, ErrEmptyID
	}
	users, err := a.Sharing.ListCollaborators(ctx, boardID)
	return users, a.classify("list collaborators", err)
}
