package service

import (
	"context"
	"errors"
	"time"
)

// ErrLockNotAcquired is returned when another holder owns the lock.
var ErrLockNotAcquired = errors.New("lock is held by another worker")

// ReleaseFunc releases a lock obtained from a Locker.
type ReleaseFunc func(ctx context.Context) error

// Locker provides per-key mutual exclusion across workers.
type Locker interface {
	// TryLock acquires key for at most ttl without waiting. It returns ErrLockNotAcquired when the key is held.
	TryLock(ctx context.Context, key string, ttl time.Duration) (ReleaseFunc, error)
}
