package dispatch

import (
	"context"
	"sync"
	"time"

	"pricealert/internal/domain/service"
)

// LocalLocker is an in-process service.Locker for single-instance deployments and tests.
type LocalLocker struct {
	mu    sync.Mutex
	held  map[string]uint64
	seq   uint64
	clock func() time.Time
	exp   map[string]time.Time
}

// NewLocalLocker creates an empty in-process locker.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		held:  make(map[string]uint64),
		exp:   make(map[string]time.Time),
		clock: time.Now,
	}
}

// TryLock implements service.Locker. Expired holds are taken over.
func (l *LocalLocker) TryLock(_ context.Context, key string, ttl time.Duration) (service.ReleaseFunc, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if _, ok := l.held[key]; ok {
		if exp, ok := l.exp[key]; !ok || now.Before(exp) {
			return nil, service.ErrLockNotAcquired
		}
	}

	l.seq++
	token := l.seq
	l.held[key] = token
	if ttl > 0 {
		l.exp[key] = now.Add(ttl)
	} else {
		delete(l.exp, key)
	}

	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()

		if l.held[key] == token {
			delete(l.held, key)
			delete(l.exp, key)
		}

		return nil
	}, nil
}
