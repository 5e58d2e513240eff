package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/thenoetrevino/arbor/internal/models"
)

// MemoryLocker is an in-process keyed mutex. Each key is a one-slot channel;
// entries are reference counted and dropped once nobody holds or waits on them.
type MemoryLocker struct {
	timeout time.Duration

	mu    sync.Mutex
	locks map[string]*memoryEntry
}

type memoryEntry struct {
	slot chan struct{}
	refs int
}

// NewMemoryLocker creates a locker that waits at most timeout for a key.
// A non-positive timeout waits until ctx is done.
func NewMemoryLocker(timeout time.Duration) *MemoryLocker {
	return &MemoryLocker{
		timeout: timeout,
		locks:   make(map[string]*memoryEntry),
	}
}

func (m *MemoryLocker) ref(key string) *memoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.locks[key]
	if !ok {
		e = &memoryEntry{slot: make(chan struct{}, 1)}
		m.locks[key] = e
	}
	e.refs++
	return e
}

func (m *MemoryLocker) unref(key string, e *memoryEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(m.locks, key)
	}
}

// Acquire implements Locker
func (m *MemoryLocker) Acquire(ctx context.Context, key string) (func(), error) {
	e := m.ref(key)

	waitCtx := ctx
	if m.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	select {
	case e.slot <- struct{}{}:
	case <-waitCtx.Done():
		m.unref(key, e)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("lock %s after %s: %w", key, m.timeout, models.ErrLockTimeout)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.slot
			m.unref(key, e)
		})
	}, nil
}

// held reports how many keys currently have holders or waiters
func (m *MemoryLocker) held() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
