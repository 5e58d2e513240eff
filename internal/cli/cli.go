// Package cli holds what every arbor command shares: the application handle,
// output formatting and the mapping from errors to exit codes.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"

	"github.com/thenoetrevino/arbor/internal/app"
	"github.com/thenoetrevino/arbor/internal/config"
	"github.com/thenoetrevino/arbor/internal/database"
	"github.com/thenoetrevino/arbor/internal/events"
	"github.com/thenoetrevino/arbor/internal/lock"
	"github.com/thenoetrevino/arbor/internal/logging"
	"github.com/thenoetrevino/arbor/internal/models"
)

// CLI represents the CLI application context
type CLI struct {
	App     *app.App // Application container with services
	Config  *config.Config
	closers []io.Closer
	// borrowed apps belong to whoever injected them
	borrowed bool
}

// NewCLI opens the configured node store and locker and builds the app
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	c := &CLI{Config: cfg}

	logFile, err := logging.Init(cfg.Logging)
	if err != nil {
		// logging is best effort; commands still work without a log file
		log.Printf("Error initializing logging: %v", err)
	} else {
		c.closers = append(c.closers, logFile)
	}

	db, dialect, err := database.InitDB(ctx, cfg.Database)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to initialize database: %w: %v", models.ErrStorage, err)
	}
	c.closers = append(c.closers, db)

	locker, err := lock.New(ctx, cfg.Lock)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to initialize locks: %w: %v", models.ErrStorage, err)
	}
	if closer, ok := locker.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}

	logger := slog.Default()
	c.App = app.New(database.NewRepository(db, dialect),
		app.WithConfig(cfg),
		app.WithLocker(locker),
		app.WithLogger(logger),
		app.WithEventPublisher(events.NewLogPublisher(logger, slog.LevelInfo)),
	)
	return c, nil
}

// Close cleans up CLI resources in reverse order of creation
func (c *CLI) Close() error {
	var firstErr error
	if c.App != nil && !c.borrowed {
		firstErr = c.App.Close()
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
