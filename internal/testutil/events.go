package testutil

import (
	"sync"

	"github.com/thenoetrevino/arbor/internal/events"
)

// RecordingPublisher records every event it is sent
type RecordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	closed bool
}

// NewRecordingPublisher creates an empty recorder
func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{}
}

// SendEvent records the event for later verification.
func (r *RecordingPublisher) SendEvent(event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Close marks the recorder closed
func (r *RecordingPublisher) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Events returns a copy of everything recorded so far
func (r *RecordingPublisher) Events() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the recorded event types in order
func (r *RecordingPublisher) Types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

// Reset forgets every recorded event
func (r *RecordingPublisher) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
