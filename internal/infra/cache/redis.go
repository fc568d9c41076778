// Package cache holds the Redis-backed alert lock, delivery statistics and preferences cache.
package cache

import (
	"context"
	"log/slog"
	"time"

	"pricealert/config"
	"pricealert/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ErrRedisNotReady is returned when every connection attempt failed.
var ErrRedisNotReady = errors.New("redis is not ready")

// Params holds dependencies for the Redis client, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New connects to Redis. It returns a nil client when Redis is not configured, in which case
// the process falls back to in-process locking and statistics and uncached preference reads.
func New(params Params) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.URL == "" {
		params.Logger.Info("Redis not configured, using in-process alert locks and statistics")

		return nil, nil
	}

	client, err := Connect(params.Ctx, cfg)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// Connect parses the URL and pings the server until it answers or the attempts run out.
func Connect(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = lifecycle.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis url")
	}

	attempts := max(cfg.RetryAttempts, 1)
	for range attempts {
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ErrRedisNotReady, ctx.Err().Error())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}
