package dispatch

import (
	"context"
	"maps"
	"sync"
	"time"

	"pricealert/internal/domain/service"
)

// MemoryStatisticsStore is an in-process service.StatisticsStore for single-instance runs and tests.
type MemoryStatisticsStore struct {
	mu      sync.Mutex
	scopes  map[string]map[string]int64
	updated map[string]time.Time
}

// NewMemoryStatisticsStore creates an empty store.
func NewMemoryStatisticsStore() *MemoryStatisticsStore {
	return &MemoryStatisticsStore{
		scopes:  make(map[string]map[string]int64),
		updated: make(map[string]time.Time),
	}
}

var _ service.StatisticsStore = (*MemoryStatisticsStore)(nil)

// Add implements service.StatisticsStore.
func (m *MemoryStatisticsStore) Add(_ context.Context, scope string, counters map[string]int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bucket, ok := m.scopes[scope]
	if !ok {
		bucket = make(map[string]int64, len(counters))
		m.scopes[scope] = bucket
	}
	for k, v := range counters {
		bucket[k] += v
	}
	m.updated[scope] = at

	return nil
}

// Load implements service.StatisticsStore.
func (m *MemoryStatisticsStore) Load(_ context.Context, scope string) (map[string]int64, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return maps.Clone(m.scopes[scope]), m.updated[scope], nil
}
