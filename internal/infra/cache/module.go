package cache

import (
	"log/slog"

	"pricealert/config"
	"pricealert/internal/dispatch"
	"pricealert/internal/domain/repository"
	"pricealert/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Module provides the Redis client, the alert locker, the statistics store and the cached preferences reader
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		NewLocker,
		NewStatisticsStore,
	),
	fx.Decorate(DecoratePreferences),
)

// NewLocker shares dispatch locks through Redis, or keeps them in-process without it.
func NewLocker(client *redis.Client) service.Locker {
	if client == nil {
		return dispatch.NewLocalLocker()
	}

	return NewRedisLocker(client)
}

// NewStatisticsStore shares delivery statistics through Redis, or keeps them in-process without it.
func NewStatisticsStore(client *redis.Client) service.StatisticsStore {
	if client == nil {
		return dispatch.NewMemoryStatisticsStore()
	}

	return NewRedisStatisticsStore(client)
}

// PreferencesParams holds what DecoratePreferences needs, injected by Fx.
type PreferencesParams struct {
	fx.In

	Next   repository.PreferencesRepository
	Client *redis.Client
	Config *config.Config
	Logger *slog.Logger
}

// DecoratePreferences wraps the database reader with a read-through cache when Redis is configured.
func DecoratePreferences(p PreferencesParams) repository.PreferencesRepository {
	if p.Client == nil {
		return p.Next
	}

	return NewCachedPreferences(p.Next, p.Client, p.Config.Redis.PreferencesTTL, p.Logger)
}
