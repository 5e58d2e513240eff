package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/arbor/internal/models"
)

func TestExitCodeFor(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("add board: %w", err) }

	tests := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{"nil", nil, ExitSuccess, ""},
		{"usage", &UsageError{Msg: "--id is required"}, ExitUsage, "USAGE_ERROR"},
		{"not found", wrap(models.ErrNotFound), ExitNotFound, "NOT_FOUND"},
		{"integrity", wrap(models.ErrStructuralIntegrity), ExitDataErr, "STRUCTURAL_INTEGRITY"},
		{"invalid", wrap(models.ErrInvalidArgument), ExitValidation, "VALIDATION_ERROR"},
		{"cycle", wrap(models.ErrCycleRejected), ExitValidation, "CYCLE_REJECTED"},
		{"exists", wrap(models.ErrAlreadyExists), ExitConflict, "ALREADY_EXISTS"},
		{"initialized", wrap(models.ErrAlreadyInitialized), ExitConflict, "ALREADY_INITIALIZED"},
		{"not empty", wrap(models.ErrNotEmpty), ExitConflict, "NOT_EMPTY"},
		{"lock timeout", wrap(models.ErrLockTimeout), ExitError, "LOCK_TIMEOUT"},
		{"storage", wrap(models.ErrStorage), ExitError, "STORAGE_ERROR"},
		{"canceled", wrap(context.Canceled), ExitError, "CANCELED"},
		{"unknown", errors.New("boom"), ExitError, "STORAGE_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ExitCodeFor(tt.err))
			if tt.err != nil {
				assert.Equal(t, tt.kind, ErrorCode(tt.err))
			}
		})
	}
}

func TestSuggestion(t *testing.T) {
	assert.Contains(t, Suggestion(fmt.Errorf("x: %w", models.ErrAlreadyInitialized)), "arbor group add")
	assert.Contains(t, Suggestion(models.ErrStructuralIntegrity), "arbor check")
	assert.Empty(t, Suggestion(models.ErrNotFound))
}
