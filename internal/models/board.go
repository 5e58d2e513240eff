package models

import (
	"strings"
	"time"

	"github.com/thenoetrevino/arbor/internal/types"
)

// BoardContent holds the editable fields of a board. Edit operations replace
// it wholesale; structural operations never touch it.
type BoardContent struct {
	Name          string
	Description   string
	Assignee      string
	Deadline      *time.Time
	Tags          []string
	Encrypted     bool
	EncryptionKey string
	Public        bool
}

// Board is a task board: a member of exactly one chain
type Board struct {
	ID        types.NodeID
	ListID    types.NodeID
	BoardContent
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BoardFromNode projects a board node onto the Board model
func BoardFromNode(n *Node) *Board {
	return &Board{
		ID:           n.ID,
		ListID:       n.ListID,
		BoardContent: n.Content,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}

// Normalize trims whitespace and drops empty tags
func (c BoardContent) Normalize() BoardContent {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	c.Assignee = strings.TrimSpace(c.Assignee)
	tags := make([]string, 0, len(c.Tags))
	for _, tag := range c.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	c.Tags = tags
	if !c.Encrypted {
		c.EncryptionKey = ""
	}
	return c
}
