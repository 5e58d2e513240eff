package lock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/thenoetrevino/arbor/internal/config"
	"github.com/thenoetrevino/arbor/internal/models"
)

// releaseScript deletes the lease only if it still carries our token, so an
// expired holder can never release a lease that has since been taken over.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker implements Locker with leases in redis, so several processes
// sharing one database can coordinate. A lease expires after its TTL even if
// the holder dies.
type RedisLocker struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
	ttl     time.Duration
	retry   time.Duration
}

// NewRedisLocker connects to cfg.RedisURL and verifies the connection
func NewRedisLocker(ctx context.Context, cfg config.LockConfig) (*RedisLocker, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisLockerWithClient(client, cfg), nil
}

// NewRedisLockerWithClient creates a locker from an existing client
func NewRedisLockerWithClient(client *redis.Client, cfg config.LockConfig) *RedisLocker {
	l := &RedisLocker{
		client:  client,
		prefix:  "arbor:lock:",
		timeout: cfg.Timeout,
		ttl:     cfg.LeaseTTL,
		retry:   cfg.RetryInterval,
	}
	if l.ttl <= 0 {
		l.ttl = 30 * time.Second
	}
	if l.retry <= 0 {
		l.retry = 25 * time.Millisecond
	}
	return l
}

func (l *RedisLocker) key(k string) string {
	return l.prefix + k
}

// Acquire implements Locker by polling SET NX until the deadline
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	rkey := l.key(key)

	var deadline <-chan time.Time
	if l.timeout > 0 {
		timer := time.NewTimer(l.timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	ticker := time.NewTicker(l.retry)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, rkey, token, l.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("acquire lease %s: %w", key, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline:
			return nil, fmt.Errorf("lock %s after %s: %w", key, l.timeout, models.ErrLockTimeout)
		case <-ticker.C:
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(rkey, token) })
	}, nil
}

func (l *RedisLocker) release(rkey, token string) {
	// the caller's context may already be cancelled; release regardless
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, l.client, []string{rkey}, token).Err(); err != nil {
		slog.Error("failed to release lease", "key", rkey, "error", err)
	}
}

// Close closes the redis connection
func (l *RedisLocker) Close() error {
	return l.client.Close()
}
