// Package lock provides exclusive per-key locks with a bounded wait. Every
// structural mutation of a chain holds the lock of the chain (and of any host
// node) for the whole read-modify-write.
package lock

import (
	"context"
	"fmt"
	"slices"

	"github.com/thenoetrevino/arbor/internal/config"
	"github.com/thenoetrevino/arbor/internal/types"
)

// Locker acquires exclusive locks on string keys. Acquire blocks until the
// lock is held, the configured wait elapses (models.ErrLockTimeout) or ctx is
// done. The returned release function is safe to call more than once.
type Locker interface {
	Acquire(ctx context.Context, key string) (func(), error)
}

// ListKey is the lock key of the chain owned by group
func ListKey(group types.NodeID) string {
	return "list:" + string(group)
}

// NodeKey is the lock key of a host node (board, group or user)
func NodeKey(id types.NodeID) string {
	return "node:" + string(id)
}

// NestedMoveKey is held by every board move that changes lists below the
// root. Two such moves can each pass their cycle check in separate
// transactions and together form a loop; holding this key serializes them.
// It sorts after every list and node key.
const NestedMoveKey = "tree:nested-moves"

// UserKey serializes creation of the user named username
func UserKey(username string) string {
	return "user:" + username
}

// AcquireAll takes host first (when non-empty) and then the remaining keys in
// sorted order, skipping duplicates. Every caller uses the same order, so two
// multi-key holders can never wait on each other. On failure nothing is held.
func AcquireAll(ctx context.Context, l Locker, host string, keys ...string) (func(), error) {
	ordered := make([]string, 0, len(keys)+1)
	if host != "" {
		ordered = append(ordered, host)
	}
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	for _, k := range slices.Compact(sorted) {
		if k != "" && k != host {
			ordered = append(ordered, k)
		}
	}

	releases := make([]func(), 0, len(ordered))
	releaseAll := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}
	for _, k := range ordered {
		release, err := l.Acquire(ctx, k)
		if err != nil {
			releaseAll()
			return nil, err
		}
		releases = append(releases, release)
	}
	return releaseAll, nil
}

// New builds the locker selected by cfg.Backend
func New(ctx context.Context, cfg config.LockConfig) (Locker, error) {
	switch cfg.Backend {
	case config.LockRedis:
		return NewRedisLocker(ctx, cfg)
	case config.LockMemory, "":
		return NewMemoryLocker(cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown lock backend %q", cfg.Backend)
	}
}
