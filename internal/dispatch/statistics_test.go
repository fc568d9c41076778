package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/service"
	mockService "pricealert/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func snapshotOf(t *testing.T, stats *Statistics, userID *uuid.UUID) entity.AlertStatistics {
	t.Helper()
	snap, err := stats.Snapshot(context.Background(), userID)
	require.NoError(t, err)

	return snap
}

func TestStatistics_RecordAndSnapshot(t *testing.T) {
	ctx := context.Background()
	stats := NewStatistics(NewMemoryStatisticsStore(), nil)
	alert := newTestAlert(entity.ChannelPush, entity.ChannelEmail)
	other := newTestAlert(entity.ChannelSMS)
	other.Type = entity.AlertTypeBackInStock

	okPush := succeed(alert, entity.ChannelPush)
	okPush.Metadata.DeliveryTimeMs = 10
	badEmail := fail(alert, entity.ChannelEmail, "bounced", false)
	badEmail.Metadata.DeliveryTimeMs = 30

	stats.Record(ctx, []entity.DeliveryResult{okPush, badEmail})
	stats.Record(ctx, []entity.DeliveryResult{entity.NewPostponedResult(other, entity.SuppressCooldown, nil)})

	global := snapshotOf(t, stats, nil)
	assert.Equal(t, int64(2), global.TotalDeliveries)
	assert.Equal(t, int64(1), global.SuccessfulDeliveries)
	assert.Equal(t, int64(1), global.FailedDeliveries)
	assert.Equal(t, int64(1), global.SuppressedPasses)
	assert.Equal(t, int64(2), global.ByType[entity.AlertTypePriceDrop])
	assert.Zero(t, global.ByType[entity.AlertTypeBackInStock])
	assert.Equal(t, entity.ChannelStatistics{Sent: 1}, global.ByChannel[entity.ChannelPush])
	assert.Equal(t, entity.ChannelStatistics{Failed: 1}, global.ByChannel[entity.ChannelEmail])
	assert.InDelta(t, 20.0, global.AverageDeliveryTimeMs, 0.001)
	assert.False(t, global.UpdatedAt.IsZero())

	mine := snapshotOf(t, stats, &other.UserID)
	assert.Equal(t, int64(1), mine.SuppressedPasses)
	assert.Zero(t, mine.TotalDeliveries)

	stranger := uuid.New()
	assert.Zero(t, snapshotOf(t, stats, &stranger).TotalDeliveries)
}

func TestStatistics_OwnerlessResultsOnlyCountGlobally(t *testing.T) {
	store := NewMemoryStatisticsStore()
	stats := NewStatistics(store, nil)

	stats.Record(context.Background(), []entity.DeliveryResult{{AlertID: uuid.New(), Error: entity.DeliveryErrTimeout}})

	assert.Equal(t, int64(1), snapshotOf(t, stats, nil).FailedDeliveries)
	assert.Zero(t, snapshotOf(t, stats, &uuid.Nil).FailedDeliveries)
}

func TestStatistics_SharedStoreAcrossInstances(t *testing.T) {
	store := NewMemoryStatisticsStore()
	worker := NewStatistics(store, nil)
	api := NewStatistics(store, nil)
	alert := newTestAlert(entity.ChannelPush)

	worker.Record(context.Background(), []entity.DeliveryResult{succeed(alert, entity.ChannelPush)})

	assert.Equal(t, int64(1), snapshotOf(t, api, nil).SuccessfulDeliveries)
	assert.Equal(t, int64(1), snapshotOf(t, api, &alert.UserID).ByChannel[entity.ChannelPush].Sent)
}

func TestStatistics_StoreFailures(t *testing.T) {
	ctx := context.Background()
	alert := newTestAlert(entity.ChannelPush)
	store := mockService.NewMockStatisticsStore(t)
	store.EXPECT().
		Add(mock.Anything, service.StatisticsScopeGlobal, map[string]int64{
			counterTotal:                     1,
			counterSuccessful:                1,
			counterTypePrefix + "price_drop": 1,
			counterSentPrefix + "push":       1,
			counterTimingCount:               1,
			counterTimingSumMs:               5,
		}, mock.AnythingOfType("time.Time")).
		Return(errors.New("redis down"))
	store.EXPECT().
		Add(mock.Anything, alert.UserID.String(), mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil)
	store.EXPECT().Load(ctx, service.StatisticsScopeGlobal).Return(nil, time.Time{}, errors.New("redis down"))
	stats := NewStatistics(store, nil)

	// A failed write is logged, never surfaced to the pass that produced the results.
	stats.Record(ctx, []entity.DeliveryResult{succeed(alert, entity.ChannelPush)})

	_, err := stats.Snapshot(ctx, nil)
	assert.ErrorContains(t, err, "redis down")
}

func TestStatistics_ConcurrentRecordLosesNothing(t *testing.T) {
	stats := NewStatistics(NewMemoryStatisticsStore(), nil)
	alert := newTestAlert(entity.ChannelPush)

	const workers, perWorker = 32, 50
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				stats.Record(context.Background(), []entity.DeliveryResult{succeed(alert, entity.ChannelPush)})
			}
		}()
	}
	wg.Wait()

	snap := snapshotOf(t, stats, nil)
	assert.Equal(t, int64(workers*perWorker), snap.TotalDeliveries)
	assert.Equal(t, int64(workers*perWorker), snap.ByChannel[entity.ChannelPush].Sent)
	assert.Equal(t, int64(workers*perWorker), snapshotOf(t, stats, &alert.UserID).SuccessfulDeliveries)
}
