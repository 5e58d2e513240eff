package models

import "errors"

// Domain errors shared by every layer. Callers test with errors.Is; the
// wrapping message carries which entity or chain was involved.
var (
	// ErrNotFound indicates a referenced user, group, board or link does not exist
	ErrNotFound = errors.New("not found")

	// ErrStructuralIntegrity indicates a chain did not have the expected shape
	// (missing predecessor, missing sentinel, branching, or a cycle)
	ErrStructuralIntegrity = errors.New("structural integrity violation")

	// ErrAlreadyInitialized indicates SetupBoard was called on a board that already has groups
	ErrAlreadyInitialized = errors.New("board already initialized")

	// ErrNotEmpty indicates an attempt to remove a group (or a board owning groups) that still holds boards
	ErrNotEmpty = errors.New("not empty")

	// ErrLockTimeout indicates an exclusive lock could not be acquired in bounded time
	ErrLockTimeout = errors.New("lock acquisition timed out")

	// ErrCycleRejected indicates a move would place a board inside its own subtree
	ErrCycleRejected = errors.New("move would create a cycle")

	// ErrInvalidArgument indicates input that fails validation before any I/O
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyExists indicates a unique key (such as a username) is taken
	ErrAlreadyExists = errors.New("already exists")

	// ErrStorage hides an unexpected storage engine failure from callers
	ErrStorage = errors.New("storage failure")
)

// Taxonomy lists every error kind the repository facade may return.
var Taxonomy = []error{
	ErrNotFound,
	ErrStructuralIntegrity,
	ErrAlreadyInitialized,
	ErrNotEmpty,
	ErrLockTimeout,
	ErrCycleRejected,
	ErrInvalidArgument,
	ErrAlreadyExists,
	ErrStorage,
}

// Kind returns the taxonomy member err belongs to, or nil when it belongs to none
func Kind(err error) error {
	for _, kind := range Taxonomy {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
