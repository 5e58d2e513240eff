// Package app is the repository facade: the one entry point for every board,
// group, user and collaborator operation. It composes the list, hierarchy and
// sharing services, takes the locks each mutation needs, keeps errors inside
// the models taxonomy and publishes a change event after each mutation.
package app

import (
	"log/slog"

	"github.com/thenoetrevino/arbor/internal/config"
	"github.com/thenoetrevino/arbor/internal/database"
	"github.com/thenoetrevino/arbor/internal/events"
	"github.com/thenoetrevino/arbor/internal/lock"
	"github.com/thenoetrevino/arbor/internal/services/hierarchy"
	"github.com/thenoetrevino/arbor/internal/services/list"
	"github.com/thenoetrevino/arbor/internal/services/sharing"
)

// App holds all application services and provides dependency injection.
type App struct {
	// Repository layer (direct database access)
	store database.NodeStore

	locker lock.Locker
	cfg    *config.Config
	logger *slog.Logger

	// Event system for change notifications
	eventClient events.EventPublisher

	// Service layer
	Lists     list.Service
	Hierarchy hierarchy.Service
	Sharing   sharing.Service
}

// New creates a new App with all services initialized. Without options it
// uses an in-process locker, default config, slog.Default() and publishes
// events to the log.
func New(store database.NodeStore, opts ...Option) *App {
	ac := resolve(opts)

	depth := ac.cfg.Boards.MaxWalkDepth
	lists := list.NewService(store, ac.locker, depth)
	h := hierarchy.NewService(store, lists, depth)

	return &App{
		store:       store,
		locker:      ac.locker,
		cfg:         ac.cfg,
		logger:      ac.logger,
		eventClient: ac.publisher,
		Lists:       lists,
		Hierarchy:   h,
		Sharing:     sharing.NewService(store, lists, h),
	}
}

// Store returns the underlying node store
func (a *App) Store() database.NodeStore {
	return a.store
}

// Config returns the configuration the app was built with
func (a *App) Config() *config.Config {
	return a.cfg
}

// Close releases the event publisher
func (a *App) Close() error {
	if a.eventClient == nil {
		return nil
	}
	return a.eventClient.Close()
}

// publish sends a change event. Delivery failures are logged by
// PublishWithRetry and never reach the caller.
func (a *App) publish(event events.Event) {
	_ = events.PublishWithRetry(a.eventClient, event, a.cfg.Events.PublishRetries)
}
