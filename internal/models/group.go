package models

import (
	"time"

	"github.com/thenoetrevino/arbor/internal/types"
)

// Group is a column of a board. It owns one chain terminated by an End sentinel.
// Groups are not chained themselves; Order (from the parent's CHILD_GROUP edge)
// gives display order, with ID breaking ties.
type Group struct {
	ID        types.NodeID
	Name      string
	Order     int
	ParentID  types.NodeID // board, or the user node for a root list
	CreatedAt time.Time
}

// GroupBoards pairs a group with its boards in chain order
type GroupBoards struct {
	Group  *Group
	Boards []*Board
}

// Less orders groups by (Order, ID)
func (g *Group) Less(other *Group) bool {
	if g.Order != other.Order {
		return g.Order < other.Order
	}
	return g.ID < other.ID
}
