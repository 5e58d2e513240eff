package database

import (
	"context"
	"fmt"
	"time"

	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/types"
)

const userColumns = `username, node_id, root_group_id, display_name, password_hash,
	public_key, private_key, created_at`

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.Username, &u.NodeID, &u.RootGroupID, &u.DisplayName, &u.PasswordHash,
		&u.PublicKey, &u.PrivateKey, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser retrieves a user by username
func (r *Repository) GetUser(ctx context.Context, username string) (*models.User, error) {
	u, err := scanUser(r.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username))
	if isNoRows(err) {
		return nil, notFound("user", username)
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", username, err)
	}
	return u, nil
}

// GetUserByNode retrieves the user whose user node is nodeID
func (r *Repository) GetUserByNode(ctx context.Context, nodeID types.NodeID) (*models.User, error) {
	u, err := scanUser(r.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE node_id = ?`, string(nodeID)))
	if isNoRows(err) {
		return nil, notFound("user node", nodeID)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by node %s: %w", nodeID, err)
	}
	return u, nil
}

// ListUsers returns every user ordered by username
func (r *Repository) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := r.query(ctx, `SELECT `+userColumns+` FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateUser inserts the user row. The user node and root group must already
// exist; an existing username yields ErrAlreadyExists.
func (r *Repository) CreateUser(ctx context.Context, u *models.User) error {
	if _, err := r.GetUser(ctx, u.Username); err == nil {
		return fmt.Errorf("user %s: %w", u.Username, models.ErrAlreadyExists)
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	_, err := r.exec(ctx, `INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Username, string(u.NodeID), string(u.RootGroupID), u.DisplayName, u.PasswordHash,
		u.PublicKey, u.PrivateKey, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("create user %s: %w", u.Username, err)
	}
	return nil
}
