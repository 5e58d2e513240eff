package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/arbor/internal/database"
	"github.com/thenoetrevino/arbor/internal/events"
	"github.com/thenoetrevino/arbor/internal/lock"
	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/types"
)

// CreateUserRequest carries the account fields stored with a user. The
// password must already be hashed.
type CreateUserRequest struct {
	Username     string
	DisplayName  string
	PasswordHash string
	PublicKey    string
	PrivateKey   string
}

// CreateUser registers a user together with their root list
func (a *App) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	const op = "create user"
	req.Username = strings.TrimSpace(req.Username)
	if err := validateUsername(req.Username); err != nil {
		return nil, err
	}
	if req.DisplayName == "" {
		req.DisplayName = req.Username
	}

	release, err := a.locker.Acquire(ctx, lock.UserKey(req.Username))
	if err != nil {
		return nil, a.classify(op, err)
	}
	defer release()

	var user *models.User
	err = a.store.WithTx(ctx, func(tx database.NodeStore) error {
		_, err := tx.GetUser(ctx, req.Username)
		if err == nil {
			return fmt.Errorf("user %q: %w", req.Username, models.ErrAlreadyExists)
		}
		if !errors.Is(err, models.ErrNotFound) {
			return err
		}
		node := &models.Node{Kind: types.KindUser, Name: req.Username}
		if err := tx.CreateNode(ctx, node); err != nil {
			return err
		}
		root, err := a.Lists.CreateList(ctx, tx, node.ID, req.Username, 0)
		if err != nil {
			return err
		}
		user = &models.User{
			Username:     req.Username,
			NodeID:       node.ID,
			RootGroupID:  root.ID,
			DisplayName:  req.DisplayName,
			PasswordHash: req.PasswordHash,
			PublicKey:    req.PublicKey,
			PrivateKey:   req.PrivateKey,
		}
		return tx.CreateUser(ctx, user)
	})
	if err != nil {
		return nil, a.classify(op, err)
	}

	a.logger.Info("user created", "username", user.Username)
	a.publish(events.Event{Type: events.EventUserCreated, Username: user.Username})
	return user, nil
}

// GetUser looks a user up by username
func (a *App) GetUser(ctx context.Context, username string) (*models.User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	user, err := a.store.GetUser(ctx, username)
	return user, a.classify("get user", err)
}

// ListUsers returns every registered user
func (a *App) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := a.store.ListUsers(ctx)
	return users, a.classify("list users", err)
}
