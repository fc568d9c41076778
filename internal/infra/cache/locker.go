package cache

import (
	"context"
	"time"

	"pricealert/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisLocker struct {
	client redis.UniversalClient
}

// NewRedisLocker returns a Locker shared by every API and worker instance.
func NewRedisLocker(client redis.UniversalClient) service.Locker {
	return &redisLocker{client: client}
}

// TryLock sets key with NX and a PX expiry. The token guards release against a holder whose ttl lapsed.
func (l *redisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (service.ReleaseFunc, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "acquire lock %s", key)
	}
	if !ok {
		return nil, service.ErrLockNotAcquired
	}

	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			return errors.Wrapf(err, "release lock %s", key)
		}

		return nil
	}, nil
}
