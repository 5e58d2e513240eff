package models

import "github.com/thenoetrevino/arbor/internal/types"

// AccessLevel describes what a requesting user may do with a board
type AccessLevel int

const (
	AccessNone AccessLevel = iota
	AccessPublic
	AccessCollaborator
	AccessOwner
)

// String returns the lowercase name used in output
func (a AccessLevel) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessCollaborator:
		return "collaborator"
	case AccessOwner:
		return "owner"
	default:
		return "none"
	}
}

// CanRead reports whether the level allows viewing the board
func (a AccessLevel) CanRead() bool {
	return a != AccessNone
}

// CanWrite reports whether the level allows mutating the board
func (a AccessLevel) CanWrite() bool {
	return a >= AccessCollaborator
}

// BoardContents is the result of reading a board. It is either NotSetUp (no
// groups attached yet) or SetUp (groups attached, possibly all empty).
type BoardContents interface {
	Header() *ContentsHeader
	isBoardContents()
}

// ContentsHeader carries what both variants share
type ContentsHeader struct {
	Board     *Board
	Ancestors []*Board // nearest-root first, excluding Board
	Owner     string
	Access    AccessLevel
}

// NotSetUp is a board that has never been set up
type NotSetUp struct {
	ContentsHeader
}

// SetUp is a board with groups attached
type SetUp struct {
	ContentsHeader
	Groups []GroupBoards
}

func (c *NotSetUp) Header() *ContentsHeader { return &c.ContentsHeader }
func (c *SetUp) Header() *ContentsHeader { return &c.ContentsHeader }

func (*NotSetUp) isBoardContents() {}
func (*SetUp) isBoardContents() {}

// RootEntry is one element of a user's root list. SharedFrom names the owner
// when the entry is reached through a link.
type RootEntry struct {
	Board      *Board
	LinkID     types.NodeID
	SharedFrom string
}

// IsShared reports whether the entry is a link to someone else's board
func (e RootEntry) IsShared() bool {
	return e.SharedFrom != ""
}
