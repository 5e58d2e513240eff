package types

// ID type aliases give semantic meaning to the string identifiers that flow
// between the node store and the services above it.

// NodeID identifies any node in the store (user, group, board, link, end)
type NodeID string

// NodeKind tags what a node represents
type NodeKind string

// EdgeType tags what a directed edge between two nodes represents
type EdgeType string

const (
	KindUser  NodeKind = "user"
	KindGroup NodeKind = "group"
	KindBoard NodeKind = "board"
	KindLink  NodeKind = "link"
	KindEnd   NodeKind = "end"
)

const (
	// EdgeNext chains a list owner to its first element and each element to its successor
	EdgeNext EdgeType = "NEXT"

	// EdgeChildGroup attaches a group to its parent board (or to a user for the root list)
	EdgeChildGroup EdgeType = "CHILD_GROUP"

	// EdgeSharedBoard points a link at the board it stands in for
	EdgeSharedBoard EdgeType = "SHARED_BOARD"
)

// String returns the raw identifier
func (id NodeID) String() string {
	return string(id)
}

// IsZero reports whether the id is unset
func (id NodeID) IsZero() bool {
	return id == ""
}

// IsMember reports whether nodes of this kind live inside a sibling chain
func (k NodeKind) IsMember() bool {
	return k == KindBoard || k == KindLink || k == KindEnd
}

// Valid reports whether the kind is one the store knows about
func (k NodeKind) Valid() bool {
	switch k {
	case KindUser, KindGroup, KindBoard, KindLink, KindEnd:
		return true
	}
	return false
}
