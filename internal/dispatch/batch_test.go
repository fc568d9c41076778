package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"pricealert/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchProcessor_SkipsMissingAlerts(t *testing.T) {
	a1 := newTestAlert(entity.ChannelPush)
	a2 := newTestAlert(entity.ChannelPush)
	a3 := newTestAlert(entity.ChannelPush)
	h := newHarness(t, []ChannelAdapter{&fakeAdapter{channel: entity.ChannelPush}}, a1, a2, a3)
	bp := NewBatchProcessor(h.orch, h.stats, nil)

	ids := []uuid.UUID{a1.ID, uuid.New(), a2.ID, uuid.New(), a3.ID}
	results := bp.Process(context.Background(), ids, BatchConfig{BatchSize: 2}, DispatchOptions{})

	require.Len(t, results, 3)
	seen := map[uuid.UUID]bool{}
	for _, r := range results {
		assert.True(t, r.Success)
		seen[r.AlertID] = true
	}
	assert.True(t, seen[a1.ID])
	assert.True(t, seen[a2.ID])
	assert.True(t, seen[a3.ID])
}

func TestBatchProcessor_DuplicateIDsDispatchOnce(t *testing.T) {
	a := newTestAlert(entity.ChannelPush)
	push := &fakeAdapter{channel: entity.ChannelPush}
	h := newHarness(t, []ChannelAdapter{push}, a)
	bp := NewBatchProcessor(h.orch, h.stats, nil)

	results := bp.Process(context.Background(), []uuid.UUID{a.ID, a.ID, a.ID}, BatchConfig{BatchSize: 3}, DispatchOptions{})

	assert.Len(t, results, 1)
	assert.Equal(t, int32(1), push.calls.Load())
}

// scriptedDispatcher lets batch tests control each pass directly.
type scriptedDispatcher struct {
	mu       sync.Mutex
	inFlight int
	peak     int
	fn       func(ctx context.Context, id uuid.UUID) ([]entity.DeliveryResult, error)
}

func (d *scriptedDispatcher) Dispatch(ctx context.Context, id uuid.UUID, _ DispatchOptions) ([]entity.DeliveryResult, error) {
	d.mu.Lock()
	d.inFlight++
	d.peak = max(d.peak, d.inFlight)
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.inFlight--
		d.mu.Unlock()
	}()

	return d.fn(ctx, id)
}

func TestBatchProcessor_ConcurrencyLimitedByBatchSize(t *testing.T) {
	d := &scriptedDispatcher{fn: func(_ context.Context, id uuid.UUID) ([]entity.DeliveryResult, error) {
		time.Sleep(5 * time.Millisecond)

		return []entity.DeliveryResult{{AlertID: id, Success: true}}, nil
	}}
	bp := NewBatchProcessor(d, nil, nil)

	ids := make([]uuid.UUID, 10)
	for i := range ids {
		ids[i] = uuid.New()
	}
	results := bp.Process(context.Background(), ids, BatchConfig{BatchSize: 3}, DispatchOptions{})

	assert.Len(t, results, 10)
	assert.LessOrEqual(t, d.peak, 3)
}

func TestBatchProcessor_TimeoutYieldsSyntheticFailure(t *testing.T) {
	slow := uuid.New()
	fast := uuid.New()
	release := make(chan struct{})
	d := &scriptedDispatcher{fn: func(_ context.Context, id uuid.UUID) ([]entity.DeliveryResult, error) {
		if id == slow {
			// Ignores its context like a stuck transport would.
			<-release
		}

		return []entity.DeliveryResult{{AlertID: id, Success: true}}, nil
	}}
	stats := NewStatistics(NewMemoryStatisticsStore(), nil)
	bp := NewBatchProcessor(d, stats, nil)

	results := bp.Process(context.Background(), []uuid.UUID{slow, fast}, BatchConfig{BatchSize: 2, Timeout: 20 * time.Millisecond}, DispatchOptions{})

	require.Len(t, results, 2)
	byID := map[uuid.UUID]entity.DeliveryResult{}
	for _, r := range results {
		byID[r.AlertID] = r
	}
	assert.True(t, byID[fast].Success)
	assert.False(t, byID[slow].Success)
	assert.Equal(t, entity.DeliveryErrTimeout, byID[slow].Error)
	snap, err := stats.Snapshot(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), snap.FailedDeliveries)

	close(release)
	bp.Wait()
}

func TestBatchProcessor_RepositoryFailure(t *testing.T) {
	broken := uuid.New()
	partial := uuid.New()
	d := &scriptedDispatcher{fn: func(_ context.Context, id uuid.UUID) ([]entity.DeliveryResult, error) {
		repoErr := &RepositoryError{Op: "load alert", Err: assert.AnError}
		if id == partial {
			return []entity.DeliveryResult{{AlertID: id, Channel: entity.ChannelPush, Success: true}}, repoErr
		}

		return nil, repoErr
	}}
	bp := NewBatchProcessor(d, nil, nil)

	results := bp.Process(context.Background(), []uuid.UUID{broken, partial}, BatchConfig{BatchSize: 1}, DispatchOptions{})

	require.Len(t, results, 2)
	for _, r := range results {
		if r.AlertID == broken {
			assert.Equal(t, entity.DeliveryErrRepository, r.Error)
		} else {
			assert.True(t, r.Success)
		}
	}
}

func TestBatchProcessor_PassesRetryPolicy(t *testing.T) {
	var got *RetryPolicy
	d := dispatcherFunc(func(_ context.Context, _ uuid.UUID, opts DispatchOptions) ([]entity.DeliveryResult, error) {
		got = opts.Retry

		return nil, nil
	})
	bp := NewBatchProcessor(d, nil, nil)

	bp.Process(context.Background(), []uuid.UUID{uuid.New()}, BatchConfig{BatchSize: 1, MaxRetries: 5, RetryDelay: time.Second}, DispatchOptions{})

	require.NotNil(t, got)
	assert.Equal(t, RetryPolicy{MaxAttempts: 5, BaseDelay: time.Second}, *got)
}

type dispatcherFunc func(ctx context.Context, id uuid.UUID, opts DispatchOptions) ([]entity.DeliveryResult, error)

func (f dispatcherFunc) Dispatch(ctx context.Context, id uuid.UUID, opts DispatchOptions) ([]entity.DeliveryResult, error) {
	return f(ctx, id, opts)
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	bp := NewBatchProcessor(dispatcherFunc(func(context.Context, uuid.UUID, DispatchOptions) ([]entity.DeliveryResult, error) {
		t.Fatal("dispatcher must not be called")

		return nil, nil
	}), nil, nil)

	assert.Empty(t, bp.Process(context.Background(), nil, BatchConfig{BatchSize: 10}, DispatchOptions{}))
}

func TestBatchProcessor_SyntheticFailureCarriesOwner(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush)
	alert.Type = entity.AlertTypeBackInStock
	repo := newMemAlertRepo(alert)
	d := &scriptedDispatcher{fn: func(context.Context, uuid.UUID) ([]entity.DeliveryResult, error) {
		return nil, errors.New("unexpected failure")
	}}
	stats := NewStatistics(NewMemoryStatisticsStore(), nil)
	bp := NewBatchProcessor(d, stats, nil, WithAlertLookup(repo))

	results := bp.Process(context.Background(), []uuid.UUID{alert.ID}, BatchConfig{BatchSize: 1}, DispatchOptions{})

	require.Len(t, results, 1)
	assert.Equal(t, entity.DeliveryErrRepository, results[0].Error)
	assert.Equal(t, alert.UserID, results[0].UserID)
	assert.Equal(t, entity.AlertTypeBackInStock, results[0].AlertType)

	mine := snapshotOf(t, stats, &alert.UserID)
	assert.Equal(t, int64(1), mine.FailedDeliveries)
	assert.Equal(t, int64(1), mine.ByType[entity.AlertTypeBackInStock])
}

func TestBatchProcessor_RepeatedSweepsAreIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.Local)

	deliverable := newTestAlert(entity.ChannelPush)
	quiet := newTestAlert(entity.ChannelPush)
	quiet.Schedule.QuietHours = &entity.QuietHours{Start: "22:00", End: "08:00"}
	unreachable := newTestAlert(entity.ChannelPush)
	for _, a := range []*entity.Alert{deliverable, quiet, unreachable} {
		a.CreatedAt = now.Add(-2 * time.Hour)
		a.ScheduledAt = now.Add(-time.Hour)
	}

	push := &fakeAdapter{channel: entity.ChannelPush}
	h := newHarness(t, []ChannelAdapter{push}, deliverable, quiet, unreachable)
	h.orch.now = func() time.Time { return now }
	h.prefs.prefs[unreachable.UserID] = &entity.NotificationPreferences{
		UserID:          unreachable.UserID,
		EnabledChannels: []entity.NotificationChannel{entity.ChannelSMS},
	}
	bp := NewBatchProcessor(h.orch, h.stats, nil, WithAlertLookup(h.alerts))

	sweep := func() {
		ids, err := h.alerts.FindDueAlertIDs(context.Background(), now, 100)
		require.NoError(t, err)
		bp.Process(context.Background(), ids, BatchConfig{BatchSize: 10}, DispatchOptions{})
	}

	sweep()
	first := h.snapshot(t)
	assert.Equal(t, int64(2), first.TotalDeliveries)
	assert.Equal(t, int64(1), first.SuccessfulDeliveries)
	assert.Equal(t, int64(1), first.FailedDeliveries)
	assert.Equal(t, int64(1), first.SuppressedPasses)
	savesAfterFirst := h.alerts.saves

	for i := 2; i <= 3; i++ {
		sweep()
		snap := h.snapshot(t)
		assert.Equal(t, first.TotalDeliveries, snap.TotalDeliveries, "sweep %d", i)
		assert.Equal(t, first.SuccessfulDeliveries, snap.SuccessfulDeliveries, "sweep %d", i)
		assert.Equal(t, first.FailedDeliveries, snap.FailedDeliveries, "sweep %d", i)
		// The quiet-hours alert is still due, so each sweep adds its own suppressed no-op.
		assert.Equal(t, int64(i), snap.SuppressedPasses, "sweep %d", i)
	}

	assert.Equal(t, int32(1), push.calls.Load())
	assert.Equal(t, savesAfterFirst, h.alerts.saves)
	assert.Equal(t, entity.AlertStatusSent, h.alerts.get(t, deliverable.ID).Status)
	assert.Equal(t, entity.AlertStatusPending, h.alerts.get(t, quiet.ID).Status)
	failed := h.alerts.get(t, unreachable.ID)
	assert.Equal(t, entity.AlertStatusFailed, failed.Status)
	assert.Zero(t, failed.DeliveryAttempts)
}
