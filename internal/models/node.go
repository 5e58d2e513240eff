package models

import (
	"time"

	"github.com/thenoetrevino/arbor/internal/types"
)

// Node is a row of the node table. Structural fields (ID, Kind, ListID) are
// written only by the list manager; Content only by edit operations.
type Node struct {
	ID        types.NodeID
	Kind      types.NodeKind
	ListID    types.NodeID // owning list (group) for boards, links and end sentinels
	Name      string       // group and user nodes carry only a name
	Content   BoardContent // populated for boards
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Edge is a directed, typed edge between two nodes
type Edge struct {
	From  types.NodeID
	Type  types.EdgeType
	To    types.NodeID
	Order int // display order, meaningful for CHILD_GROUP edges
}

// IsBoard reports whether the node is a board
func (n *Node) IsBoard() bool {
	return n != nil && n.Kind == types.KindBoard
}

// IsLink reports whether the node is a link
func (n *Node) IsLink() bool {
	return n != nil && n.Kind == types.KindLink
}

// IsEnd reports whether the node is an end sentinel
func (n *Node) IsEnd() bool {
	return n != nil && n.Kind == types.KindEnd
}

// ChainMember is one element of a walked chain together with its successor
type ChainMember struct {
	Node *Node
	Next types.NodeID
}
