package bookinglock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var ErrNotAcquired = errors.New("booking lock not acquired")

// Locker serializes the conflict-check-and-write critical section for one
// staff member's calendar. The database transaction plus the exclusion
// constraint stay authoritative; the lock just keeps concurrent booking
// attempts from burning a transaction each.
type Locker interface {
	WithStaffLock(ctx context.Context, staffID uint, fn func(ctx context.Context) error) error
}

type redisStaffLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStaffLocker(client *redis.Client, ttl time.Duration) Locker {
	return &redisStaffLocker{
		client: client,
		ttl:    ttl,
	}
}

func (l *redisStaffLocker) WithStaffLock(ctx context.Context, staffID uint, fn func(ctx context.Context) error) error {
	key := fmt.Sprintf("lock:staff:%d", staffID)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire booking lock: %w", err)
	}
	if !ok {
		return ErrNotAcquired
	}

	defer func() {
		_ = l.release(ctx, key, token)
	}()

	lockCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(lockCtx)
}

// Only the holder's token may delete the key, so an expired lock picked up
// by another request is never released from here.
var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *redisStaffLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release booking lock: %w", err)
	}
	return nil
}

// Noop runs the critical section without any cross-process lock. Used in
// tests and in single-instance deployments without Redis.
type Noop struct{}

func (Noop) WithStaffLock(ctx context.Context, staffID uint, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
