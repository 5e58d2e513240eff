package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/arbor/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage failures, lock timeouts, or any error that doesn't
	// fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested user, board or group was not found.
	ExitNotFound = 3

	// ExitDataErr indicates the stored tree is corrupted.
	ExitDataErr = 4

	// ExitValidation indicates input failed validation or the operation is
	// not allowed in the tree's current state.
	ExitValidation = 5

	// ExitConflict indicates the operation collided with existing state:
	// a name taken, a board already set up or a group still holding boards.
	ExitConflict = 6
)

// UsageError marks errors in how a command was invoked
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// ExitCodeFor maps an error to the process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var usage *UsageError
	switch {
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrStructuralIntegrity):
		return ExitDataErr
	case errors.Is(err, models.ErrInvalidArgument), errors.Is(err, models.ErrCycleRejected):
		return ExitValidation
	case errors.Is(err, models.ErrAlreadyExists),
		errors.Is(err, models.ErrAlreadyInitialized),
		errors.Is(err, models.ErrNotEmpty):
		return ExitConflict
	default:
		return ExitError
	}
}

// ErrorCode is the machine-readable code printed for err in JSON output
func ErrorCode(err error) string {
	var usage *UsageError
	if errors.As(err, &usage) {
		return "USAGE_ERROR"
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "CANCELED"
	}
	switch models.Kind(err) {
	case models.ErrNotFound:
		return "NOT_FOUND"
	case models.ErrStructuralIntegrity:
		return "STRUCTURAL_INTEGRITY"
	case models.ErrAlreadyInitialized:
		return "ALREADY_INITIALIZED"
	case models.ErrNotEmpty:
		return "NOT_EMPTY"
	case models.ErrLockTimeout:
		return "LOCK_TIMEOUT"
	case models.ErrCycleRejected:
		return "CYCLE_REJECTED"
	case models.ErrInvalidArgument:
		return "VALIDATION_ERROR"
	case models.ErrAlreadyExists:
		return "ALREADY_EXISTS"
	default:
		return "STORAGE_ERROR"
	}
}

// Suggestion returns a hint for errors the user can act on, or ""
func Suggestion(err error) string {
	switch models.Kind(err) {
	case models.ErrAlreadyInitialized:
		return "Add more groups with: arbor group add --board <board-id> --name <name>"
	case models.ErrNotEmpty:
		return "Move or delete the boards inside first"
	case models.ErrCycleRejected:
		return "A board cannot be moved into one of its own groups"
	case models.ErrLockTimeout:
		return "Another change is in progress; try again"
	case models.ErrStructuralIntegrity:
		return "Run: arbor check --user <username>"
	}
	return ""
}
