package dispatch

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/service"
	"pricealert/internal/errors"

	"github.com/google/uuid"
)

// Counter names inside a statistics scope.
const (
	counterTotal        = "total"
	counterSuccessful   = "successful"
	counterFailed       = "failed"
	counterSuppressed   = "suppressed"
	counterTimingCount  = "timing_count"
	counterTimingSumMs  = "timing_sum_ms"
	counterTypePrefix   = "type:"
	counterSentPrefix   = "sent:"
	counterFailedPrefix = "failed:"
)

// Statistics aggregates delivery outcomes globally and per user on top of a shared store.
type Statistics struct {
	store  service.StatisticsStore
	logger *slog.Logger
	now    func() time.Time
}

// NewStatistics creates an aggregate backed by store.
func NewStatistics(store service.StatisticsStore, logger *slog.Logger) *Statistics {
	if logger == nil {
		logger = slog.Default()
	}

	return &Statistics{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Record adds results to the global and per-user aggregates. Dry-run results must not be passed in.
// A store failure is logged; the delivery outcome it describes is already persisted.
func (s *Statistics) Record(ctx context.Context, results []entity.DeliveryResult) {
	if len(results) == 0 {
		return
	}

	global := make(map[string]int64)
	perUser := make(map[uuid.UUID]map[string]int64)
	for i := range results {
		r := &results[i]
		addCounters(global, r)
		if r.UserID == uuid.Nil {
			continue
		}
		user, ok := perUser[r.UserID]
		if !ok {
			user = make(map[string]int64)
			perUser[r.UserID] = user
		}
		addCounters(user, r)
	}

	ctx = context.WithoutCancel(ctx)
	now := s.now()
	s.add(ctx, service.StatisticsScopeGlobal, global, now)
	for userID, counters := range perUser {
		s.add(ctx, userID.String(), counters, now)
	}
}

func (s *Statistics) add(ctx context.Context, scope string, counters map[string]int64, now time.Time) {
	if err := s.store.Add(ctx, scope, counters, now); err != nil {
		s.logger.Warn("[Dispatch] Failed to record statistics",
			slog.String("scope", scope),
			slog.Any("error", err),
		)
	}
}

func addCounters(c map[string]int64, r *entity.DeliveryResult) {
	if r.Postponed {
		c[counterSuppressed]++

		return
	}

	c[counterTotal]++
	if r.AlertType != "" {
		c[counterTypePrefix+string(r.AlertType)]++
	}
	if r.Success {
		c[counterSuccessful]++
	} else {
		c[counterFailed]++
	}

	// Synthetic results without a channel carry no timing.
	if r.Channel == "" {
		return
	}

	if r.Success {
		c[counterSentPrefix+string(r.Channel)]++
	} else {
		c[counterFailedPrefix+string(r.Channel)]++
	}
	c[counterTimingCount]++
	c[counterTimingSumMs] += r.Metadata.DeliveryTimeMs
}

// Snapshot returns the global aggregate, or one user's when userID is set.
func (s *Statistics) Snapshot(ctx context.Context, userID *uuid.UUID) (entity.AlertStatistics, error) {
	scope := service.StatisticsScopeGlobal
	if userID != nil {
		scope = userID.String()
	}

	counters, updatedAt, err := s.store.Load(ctx, scope)
	if err != nil {
		return entity.AlertStatistics{}, errors.Wrap(err, "load statistics")
	}

	return statisticsFromCounters(counters, updatedAt), nil
}

func statisticsFromCounters(c map[string]int64, updatedAt time.Time) entity.AlertStatistics {
	out := entity.AlertStatistics{
		TotalDeliveries:      c[counterTotal],
		SuccessfulDeliveries: c[counterSuccessful],
		FailedDeliveries:     c[counterFailed],
		SuppressedPasses:     c[counterSuppressed],
		ByType:               make(map[entity.AlertType]int64),
		ByChannel:            make(map[entity.NotificationChannel]entity.ChannelStatistics),
		UpdatedAt:            updatedAt,
	}
	if n := c[counterTimingCount]; n > 0 {
		out.AverageDeliveryTimeMs = float64(c[counterTimingSumMs]) / float64(n)
	}

	for key, v := range c {
		switch {
		case strings.HasPrefix(key, counterTypePrefix):
			out.ByType[entity.AlertType(strings.TrimPrefix(key, counterTypePrefix))] += v
		case strings.HasPrefix(key, counterSentPrefix):
			ch := entity.NotificationChannel(strings.TrimPrefix(key, counterSentPrefix))
			stats := out.ByChannel[ch]
			stats.Sent += v
			out.ByChannel[ch] = stats
		case strings.HasPrefix(key, counterFailedPrefix):
			ch := entity.NotificationChannel(strings.TrimPrefix(key, counterFailedPrefix))
			stats := out.ByChannel[ch]
			stats.Failed += v
			out.ByChannel[ch] = stats
		}
	}

	return out
}
