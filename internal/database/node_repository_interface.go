package database

import (
	"context"

	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/types"
)

// NodeReader defines read operations for nodes.
type NodeReader interface {
	GetNode(ctx context.Context, id types.NodeID) (*models.Node, error)
	// ListMembers returns every node whose list_id is listID together with
	// its NEXT successor, in no particular order.
	ListMembers(ctx context.Context, listID types.NodeID) ([]models.ChainMember, error)
	FindEnd(ctx context.Context, listID types.NodeID) (types.NodeID, error)
}

// NodeWriter defines write operations for nodes.
type NodeWriter interface {
	CreateNode(ctx context.Context, n *models.Node) error
	UpdateBoardContent(ctx context.Context, id types.NodeID, content models.BoardContent) error
	RenameNode(ctx context.Context, id types.NodeID, name string) error
	SetListID(ctx context.Context, id, listID types.NodeID) error
	DeleteNode(ctx context.Context, id types.NodeID) error
}

// EdgeReader defines read operations for edges.
type EdgeReader interface {
	EdgesFrom(ctx context.Context, from types.NodeID, typ types.EdgeType) ([]models.Edge, error)
	EdgesTo(ctx context.Context, to types.NodeID, typ types.EdgeType) ([]models.Edge, error)
	// FindLinks returns the links in listID that point at boardID
	FindLinks(ctx context.Context, listID, boardID types.NodeID) ([]types.NodeID, error)
}

// EdgeWriter defines write operations for edges.
type EdgeWriter interface {
	CreateEdge(ctx context.Context, e models.Edge) error
	DeleteEdge(ctx context.Context, from types.NodeID, typ types.EdgeType, to types.NodeID) error
	UpdateEdgeOrder(ctx context.Context, from types.NodeID, typ types.EdgeType, to types.NodeID, order int) error
}

// UserReader defines read operations for users.
type UserReader interface {
	GetUser(ctx context.Context, username string) (*models.User, error)
	GetUserByNode(ctx context.Context, nodeID types.NodeID) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	CreateUser(ctx context.Context, u *models.User) error
}

// NodeStore combines all node store operations. WithTx runs fn against a
// store bound to a single transaction; every read and write made through
// that store commits or rolls back together.
type NodeStore interface {
	NodeReader
	NodeWriter
	EdgeReader
	EdgeWriter
	UserReader
	UserWriter
	WithTx(ctx context.Context, fn func(tx NodeStore) error) error
}
