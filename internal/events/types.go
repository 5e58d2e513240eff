// Package events carries change notifications out of the repository facade.
// Delivery is fire-and-forget: a failed publish is logged, never returned to
// the caller of the mutation.
package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardCreated        EventType = "board_created"
	EventBoardEdited         EventType = "board_edited"
	EventBoardMoved          EventType = "board_moved"
	EventBoardDeleted        EventType = "board_deleted"
	EventBoardSetUp          EventType = "board_set_up"
	EventGroupCreated        EventType = "group_created"
	EventGroupRenamed        EventType = "group_renamed"
	EventGroupRemoved        EventType = "group_removed"
	EventGroupReordered      EventType = "group_reordered"
	EventCollaboratorAdded   EventType = "collaborator_added"
	EventCollaboratorRemoved EventType = "collaborator_removed"
	EventUserCreated         EventType = "user_created"
)

// Event represents a change to the board tree
type Event struct {
	Type       EventType `json:"type"`
	BoardID    string    `json:"board_id,omitempty"`
	GroupID    string    `json:"group_id,omitempty"`
	Username   string    `json:"username,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	SequenceID int64     `json:"sequence_id"` // monotonically increasing per publisher
}
