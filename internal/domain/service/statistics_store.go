package service

import (
	"context"
	"time"
)

// StatisticsScopeGlobal names the aggregate over every user.
const StatisticsScopeGlobal = "global"

// StatisticsStore keeps additive delivery counters that every API and worker instance shares.
type StatisticsStore interface {
	// Add increments the named counters of scope and stamps it with at.
	Add(ctx context.Context, scope string, counters map[string]int64, at time.Time) error
	// Load returns the counters of scope and when they last changed. An unknown scope is empty.
	Load(ctx context.Context, scope string) (map[string]int64, time.Time, error)
}
