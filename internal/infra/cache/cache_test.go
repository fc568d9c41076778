package cache

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"pricealert/config"
	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/repository"
	"pricealert/internal/domain/service"
	mockRepo "pricealert/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testRedis connects to PRICEALERT_TEST_REDIS_URL or skips the test.
func testRedis(t *testing.T) *redis.Client {
	t.Helper()

	url := os.Getenv("PRICEALERT_TEST_REDIS_URL")
	if url == "" {
		t.Skip("PRICEALERT_TEST_REDIS_URL not set")
	}

	client, err := Connect(context.Background(), &config.RedisConfig{URL: url, RetryAttempts: 1, ConnectTimeout: 2 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), &config.RedisConfig{URL: "not a url"})
	assert.Error(t, err)
}

func TestRedisLocker(t *testing.T) {
	client := testRedis(t)
	locker := NewRedisLocker(client)
	ctx := context.Background()
	key := "alert:dispatch:test:" + uuid.NewString()

	release, err := locker.TryLock(ctx, key, time.Minute)
	require.NoError(t, err)

	_, err = locker.TryLock(ctx, key, time.Minute)
	assert.ErrorIs(t, err, service.ErrLockNotAcquired)

	require.NoError(t, release(ctx))

	release2, err := locker.TryLock(ctx, key, time.Minute)
	require.NoError(t, err)

	// A stale release must not free the new holder's lock.
	require.NoError(t, release(ctx))
	_, err = locker.TryLock(ctx, key, time.Minute)
	assert.ErrorIs(t, err, service.ErrLockNotAcquired)

	require.NoError(t, release2(ctx))
}

func TestCachedPreferences(t *testing.T) {
	client := testRedis(t)
	ctx := context.Background()
	userID := uuid.New()
	t.Cleanup(func() { client.Del(ctx, preferencesKeyPrefix+userID.String()) })

	prefs := &entity.NotificationPreferences{
		UserID:                 userID,
		EnabledChannels:        []entity.NotificationChannel{entity.ChannelEmail},
		QuietHours:             &entity.QuietHours{Start: "22:00", End: "08:00"},
		MaxNotificationsPerDay: 5,
	}

	next := mockRepo.NewMockPreferencesRepository(t)
	next.EXPECT().FindPreferencesByUser(mock.Anything, userID).Return(prefs, nil).Once()

	cached := NewCachedPreferences(next, client, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	first, err := cached.FindPreferencesByUser(ctx, userID)
	require.NoError(t, err)
	second, err := cached.FindPreferencesByUser(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, prefs, first)
	assert.Equal(t, prefs, second, "second read is served from redis")
}

func TestCachedPreferences_NotFoundIsNotCached(t *testing.T) {
	client := testRedis(t)
	ctx := context.Background()
	userID := uuid.New()

	next := mockRepo.NewMockPreferencesRepository(t)
	next.EXPECT().FindPreferencesByUser(mock.Anything, userID).Return(nil, repository.ErrPreferencesNotFound).Twice()

	cached := NewCachedPreferences(next, client, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	for range 2 {
		_, err := cached.FindPreferencesByUser(ctx, userID)
		assert.ErrorIs(t, err, repository.ErrPreferencesNotFound)
	}
}

func TestRedisStatisticsStore(t *testing.T) {
	client := testRedis(t)
	store := NewRedisStatisticsStore(client)
	ctx := context.Background()
	scope := "test:" + uuid.NewString()
	t.Cleanup(func() { client.Del(ctx, statisticsKeyPrefix+scope) })

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Add(ctx, scope, map[string]int64{"total": 2, "sent:push": 1}, at))
	require.NoError(t, store.Add(ctx, scope, map[string]int64{"total": 1}, at.Add(time.Minute)))

	counters, updatedAt, err := store.Load(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"total": 3, "sent:push": 1}, counters)
	assert.Equal(t, at.Add(time.Minute), updatedAt)

	empty, _, err := store.Load(ctx, "test:"+uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestNewStatisticsStore_WithoutRedis(t *testing.T) {
	store := NewStatisticsStore(nil)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, service.StatisticsScopeGlobal, map[string]int64{"total": 1}, time.Now()))
	counters, _, err := store.Load(ctx, service.StatisticsScopeGlobal)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counters["total"])
}
