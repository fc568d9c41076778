package cache

import (
	"context"
	"strconv"
	"time"

	"pricealert/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	statisticsKeyPrefix   = "alert:stats:"
	statisticsUpdatedAtMs = "updated_at_ms"
)

type redisStatisticsStore struct {
	client redis.UniversalClient
}

// NewRedisStatisticsStore keeps statistics in one hash per scope so every instance reads the same figures.
func NewRedisStatisticsStore(client redis.UniversalClient) service.StatisticsStore {
	return &redisStatisticsStore{client: client}
}

// Add applies every counter with HINCRBY in a single MULTI block.
func (s *redisStatisticsStore) Add(ctx context.Context, scope string, counters map[string]int64, at time.Time) error {
	key := statisticsKeyPrefix + scope

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for field, delta := range counters {
			pipe.HIncrBy(ctx, key, field, delta)
		}
		pipe.HSet(ctx, key, statisticsUpdatedAtMs, at.UnixMilli())

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "increment statistics %s", scope)
	}

	return nil
}

// Load reads the scope hash. Fields that are not integers are skipped.
func (s *redisStatisticsStore) Load(ctx context.Context, scope string) (map[string]int64, time.Time, error) {
	raw, err := s.client.HGetAll(ctx, statisticsKeyPrefix+scope).Result()
	if err != nil {
		return nil, time.Time{}, errors.Wrapf(err, "read statistics %s", scope)
	}

	var updatedAt time.Time
	counters := make(map[string]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		if field == statisticsUpdatedAtMs {
			updatedAt = time.UnixMilli(n).UTC()

			continue
		}
		counters[field] = n
	}

	return counters, updatedAt, nil
}
