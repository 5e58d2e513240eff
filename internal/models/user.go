package models

import (
	"time"

	"github.com/thenoetrevino/arbor/internal/types"
)

// User owns exactly one root list through a synthetic root group named after them
type User struct {
	Username     string
	NodeID       types.NodeID
	RootGroupID  types.NodeID
	DisplayName  string
	PasswordHash string
	PublicKey    string
	PrivateKey   string
	CreatedAt    time.Time
}

// ParentRef addresses the owner of a chain: either a user's root list or a group
type ParentRef struct {
	Username string
	GroupID  types.NodeID
}

// UserParent refers to the root list of username
func UserParent(username string) ParentRef {
	return ParentRef{Username: username}
}

// GroupParent refers to the list owned by a group
func GroupParent(groupID types.NodeID) ParentRef {
	return ParentRef{GroupID: groupID}
}

// IsRoot reports whether the reference addresses a user's root list
func (p ParentRef) IsRoot() bool {
	return p.Username != ""
}
