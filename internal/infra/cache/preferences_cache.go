package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	preferencesKeyPrefix  = "alert:prefs:"
	defaultPreferencesTTL = 5 * time.Minute
)

type cachedPreferences struct {
	next   repository.PreferencesRepository
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedPreferences wraps a preferences repository with a Redis read-through cache.
// Cache failures are logged and the read falls through to the repository.
func NewCachedPreferences(next repository.PreferencesRepository, client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) repository.PreferencesRepository {
	if ttl <= 0 {
		ttl = defaultPreferencesTTL
	}

	return &cachedPreferences{next: next, client: client, ttl: ttl, logger: logger}
}

func (c *cachedPreferences) FindPreferencesByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error) {
	key := preferencesKeyPrefix + userID.String()

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var prefs entity.NotificationPreferences
		if jsonErr := json.Unmarshal(raw, &prefs); jsonErr == nil {
			return &prefs, nil
		}
		c.logger.WarnContext(ctx, "Discarding unreadable cached preferences", slog.String("user_id", userID.String()))
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "Preferences cache read failed", slog.Any("error", err))
	}

	prefs, err := c.next.FindPreferencesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, jsonErr := json.Marshal(prefs); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, data, c.ttl).Err(); setErr != nil {
			c.logger.WarnContext(ctx, "Preferences cache write failed", slog.Any("error", setErr))
		}
	}

	return prefs, nil
}
