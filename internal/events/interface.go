package events

import "errors"

// EventPublisher defines the interface for sending events.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type EventPublisher interface {
	// SendEvent delivers one event
	SendEvent(event Event) error

	// Close flushes and releases the publisher
	Close() error
}

// Compile-time verification that LogPublisher implements EventPublisher
var _ EventPublisher = (*LogPublisher)(nil)

// ErrPublisherClosed is returned by SendEvent after Close
var ErrPublisherClosed = errors.New("publisher closed")
