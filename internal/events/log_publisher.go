package events

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// LogPublisher writes each event as one structured log record. It is the
// default publisher when nothing else is configured.
type LogPublisher struct {
	logger *slog.Logger
	level  slog.Level
	seq    atomic.Int64
	closed atomic.Bool
}

// NewLogPublisher creates a publisher logging at level. A nil logger uses
// slog.Default().
func NewLogPublisher(logger *slog.Logger, level slog.Level) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger, level: level}
}

// SendEvent implements EventPublisher
func (p *LogPublisher) SendEvent(event Event) error {
	if p.closed.Load() {
		return ErrPublisherClosed
	}
	if event.SequenceID == 0 {
		event.SequenceID = p.seq.Add(1)
	}
	p.logger.Log(context.Background(), p.level, "event",
		"type", event.Type,
		"seq", event.SequenceID,
		"board_id", event.BoardID,
		"group_id", event.GroupID,
		"username", event.Username,
		"timestamp", event.Timestamp)
	return nil
}

// Close implements EventPublisher
func (p *LogPublisher) Close() error {
	p.closed.Store(true)
	return nil
}
