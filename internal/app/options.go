package app

import (
	"log/slog"

	"github.com/thenoetrevino/arbor/internal/config"
	"github.com/thenoetrevino/arbor/internal/events"
	"github.com/thenoetrevino/arbor/internal/lock"
)

// Option customizes New
type Option func(*settings)

type settings struct {
	publisher events.EventPublisher
	logger    *slog.Logger
	locker    lock.Locker
	cfg       *config.Config
}

// resolve applies opts and fills whatever they left unset
func resolve(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg == nil {
		s.cfg = config.Default()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.locker == nil {
		s.locker = lock.NewMemoryLocker(s.cfg.Lock.Timeout)
	}
	if s.publisher == nil {
		s.publisher = events.NewLogPublisher(s.logger, slog.LevelDebug)
	}
	return s
}

// WithEventPublisher routes change events to p
func WithEventPublisher(p events.EventPublisher) Option {
	return func(s *settings) { s.publisher = p }
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithLocker sets the locker guarding structural mutations
func WithLocker(l lock.Locker) Option {
	return func(s *settings) { s.locker = l }
}

// WithConfig sets the configuration (default groups, walk depth, publish retries)
func WithConfig(c *config.Config) Option {
	return func(s *settings) { s.cfg = c }
}
