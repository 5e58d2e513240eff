package cli

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/thenoetrevino/arbor/internal/app"
	"github.com/thenoetrevino/arbor/internal/config"
	"github.com/thenoetrevino/arbor/internal/database"
	"github.com/thenoetrevino/arbor/internal/lock"
	"github.com/thenoetrevino/arbor/internal/models"
	"github.com/thenoetrevino/arbor/internal/testutil"
	"github.com/thenoetrevino/arbor/internal/types"
)

// SetupCLITest creates an in-memory store and returns both the store and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*database.Repository, *app.App) {
	t.Helper()
	store := testutil.SetupTestStore(t)

	appInstance := app.New(store,
		app.WithConfig(config.Default()),
		app.WithLocker(lock.NewMemoryLocker(5*time.Second)),
		app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		app.WithEventPublisher(testutil.NewRecordingPublisher()),
	)
	t.Cleanup(func() { _ = appInstance.Close() })

	return store, appInstance
}

// CreateTestUser creates a user with its root list
func CreateTestUser(t *testing.T, a *app.App, username string) {
	t.Helper()
	if _, err := a.CreateUser(context.Background(), app.CreateUserRequest{Username: username}); err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
}

// CreateTestRootBoard adds a board at the head of a user's root list
func CreateTestRootBoard(t *testing.T, a *app.App, owner, name string) types.NodeID {
	t.Helper()
	id, err := a.AddRootBoard(context.Background(), models.BoardContent{Name: name}, owner)
	if err != nil {
		t.Fatalf("Failed to create board %s: %v", name, err)
	}
	return id
}

// SetupTestBoard sets up a board with the default groups and returns them
func SetupTestBoard(t *testing.T, a *app.App, id types.NodeID) []*models.Group {
	t.Helper()
	groups, err := a.SetupBoard(context.Background(), id)
	if err != nil {
		t.Fatalf("Failed to set up board %s: %v", id, err)
	}
	return groups
}

// CreateTestChildBoard adds a board at the head of a group
func CreateTestChildBoard(t *testing.T, a *app.App, owner string, group types.NodeID, name string) types.NodeID {
	t.Helper()
	id, err := a.AddChildBoard(context.Background(), models.BoardContent{Name: name}, group, owner)
	if err != nil {
		t.Fatalf("Failed to create child board %s: %v", name, err)
	}
	return id
}
