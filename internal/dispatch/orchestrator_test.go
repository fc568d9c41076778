package dispatch

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"pricealert/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestDispatch_NoEnabledChannels(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush)
	push := &fakeAdapter{channel: entity.ChannelPush}
	h := newHarness(t, []ChannelAdapter{push}, alert)
	h.prefs.prefs[alert.UserID] = &entity.NotificationPreferences{
		UserID:          alert.UserID,
		EnabledChannels: []entity.NotificationChannel{entity.ChannelSMS},
	}

	results, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Equal(t, entity.DeliveryErrNoEnabledChannels, results[0].Error)
	assert.Zero(t, push.calls.Load())

	stored := h.alerts.get(t, alert.ID)
	assert.Equal(t, entity.AlertStatusFailed, stored.Status)
	assert.Equal(t, 0, stored.DeliveryAttempts)
}

func TestDispatch_QuietHoursPostpones(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush)
	alert.Schedule.QuietHours = &entity.QuietHours{Start: "22:00", End: "08:00"}
	alert.ScheduledAt = time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	push := &fakeAdapter{channel: entity.ChannelPush}
	h := newHarness(t, []ChannelAdapter{push}, alert)
	h.orch.now = func() time.Time { return time.Date(2026, 3, 10, 23, 30, 0, 0, time.Local) }

	results, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Postponed)
	assert.Equal(t, string(entity.SuppressQuietHours), results[0].Error)
	require.NotNil(t, results[0].RetryAfter)
	assert.Equal(t, time.Date(2026, 3, 11, 8, 0, 0, 0, time.Local), *results[0].RetryAfter)
	assert.Zero(t, push.calls.Load())

	stored := h.alerts.get(t, alert.ID)
	assert.Equal(t, entity.AlertStatusPending, stored.Status)
	assert.Equal(t, 0, stored.DeliveryAttempts)
	assert.Equal(t, int64(1), h.snapshot(t).SuppressedPasses)
	assert.Zero(t, h.snapshot(t).TotalDeliveries)
}

func TestDispatch_SentAlertIsNotDispatchedAgain(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush, entity.ChannelEmail)
	push := &fakeAdapter{channel: entity.ChannelPush}
	email := &fakeAdapter{channel: entity.ChannelEmail}
	h := newHarness(t, []ChannelAdapter{push, email}, alert)

	results, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 2)

	again, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{})
	assert.ErrorIs(t, err, ErrAlertNotDispatchable)
	assert.Empty(t, again)

	assert.Equal(t, int32(1), push.calls.Load())
	assert.Equal(t, int32(1), email.calls.Load())

	stored := h.alerts.get(t, alert.ID)
	assert.Equal(t, entity.AlertStatusSent, stored.Status)
	assert.Equal(t, 1, stored.DeliveryAttempts)
	require.NotNil(t, stored.SentAt)
}

func TestDispatch_ConcurrentPassesDeliverOnce(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush)
	started := make(chan struct{})
	unblock := make(chan struct{})
	push := &fakeAdapter{channel: entity.ChannelPush, script: func(_ int, a *entity.Alert) entity.DeliveryResult {
		close(started)
		<-unblock

		return succeed(a, entity.ChannelPush)
	}}
	h := newHarness(t, []ChannelAdapter{push}, alert)

	done := make(chan error, 1)
	go func() {
		_, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{})
		done <- err
	}()

	<-started
	_, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{})
	assert.ErrorIs(t, err, ErrAlertInFlight)

	close(unblock)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), push.calls.Load())
}

func TestDispatch_ChannelIsolation(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush, entity.ChannelEmail)
	push := &fakeAdapter{channel: entity.ChannelPush, script: func(_ int, a *entity.Alert) entity.DeliveryResult {
		return fail(a, entity.ChannelPush, "invalid registration", false)
	}}
	email := &fakeAdapter{channel: entity.ChannelEmail}
	h := newHarness(t, []ChannelAdapter{push, email}, alert)

	results, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{})

	require.NoError(t, err)
	require.Len(t, results, 2)
	byChannel := map[entity.NotificationChannel]entity.DeliveryResult{}
	for _, r := range results {
		byChannel[r.Channel] = r
	}
	assert.False(t, byChannel[entity.ChannelPush].Success)
	assert.True(t, byChannel[entity.ChannelEmail].Success)
	assert.Equal(t, "msg-email", byChannel[entity.ChannelEmail].MessageID)

	stored := h.alerts.get(t, alert.ID)
	assert.Equal(t, entity.AlertStatusFailed, stored.Status)
	assert.Equal(t, 1, stored.DeliveryAttempts)
	assert.Nil(t, stored.SentAt)

	stats := h.snapshot(t)
	assert.Equal(t, int64(2), stats.TotalDeliveries)
	assert.Equal(t, int64(1), stats.ByChannel[entity.ChannelEmail].Sent)
	assert.Equal(t, int64(1), stats.ByChannel[entity.ChannelPush].Failed)

	logs, err := h.logs.FindLogsByAlert(context.Background(), alert.ID, 10)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
	assert.Equal(t, logs[0].PassID, logs[1].PassID)
}

func TestDispatch_RetryBackoffThenTerminal(t *testing.T) {
	alert := newTestAlert(entity.ChannelSMS)
	sms := &fakeAdapter{channel: entity.ChannelSMS, script: func(_ int, a *entity.Alert) entity.DeliveryResult {
		return fail(a, entity.ChannelSMS, "gateway unavailable", true)
	}}
	h := newHarness(t, []ChannelAdapter{sms}, alert)

	results, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.True(t, strings.HasPrefix(results[0].Error, entity.DeliveryErrRetryExhausted))
	assert.Equal(t, 3, results[0].Metadata.Attempts)
	assert.Equal(t, int32(3), sms.calls.Load())

	base := 10 * time.Millisecond
	assert.Equal(t, []time.Duration{base, 2 * base}, h.sleeps)
	var total time.Duration
	for _, d := range h.sleeps {
		total += d
	}
	assert.Equal(t, 3*base, total)

	// Channel retries never consume the alert's attempt budget.
	assert.Equal(t, 1, h.alerts.get(t, alert.ID).DeliveryAttempts)
}

func TestDispatch_FailedTwiceThenSent(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush, entity.ChannelEmail)
	push := &fakeAdapter{channel: entity.ChannelPush, script: func(call int, a *entity.Alert) entity.DeliveryResult {
		if call < 3 {
			return fail(a, entity.ChannelPush, "device unreachable", false)
		}

		return succeed(a, entity.ChannelPush)
	}}
	email := &fakeAdapter{channel: entity.ChannelEmail}
	h := newHarness(t, []ChannelAdapter{push, email}, alert)
	ctx := context.Background()

	for pass := 1; pass <= 2; pass++ {
		_, err := h.orch.Dispatch(ctx, alert.ID, DispatchOptions{})
		require.NoError(t, err)
		stored := h.alerts.get(t, alert.ID)
		assert.Equal(t, entity.AlertStatusFailed, stored.Status, "pass %d", pass)
		assert.Equal(t, pass, stored.DeliveryAttempts, "pass %d", pass)
	}

	results, err := h.orch.Dispatch(ctx, alert.ID, DispatchOptions{})
	require.NoError(t, err)
	for _, r := range results {
		assert.True(t, r.Success)
	}

	stored := h.alerts.get(t, alert.ID)
	assert.Equal(t, entity.AlertStatusSent, stored.Status)
	assert.Equal(t, 3, stored.DeliveryAttempts)
	assert.NotNil(t, stored.SentAt)

	_, err = h.orch.Dispatch(ctx, alert.ID, DispatchOptions{})
	assert.ErrorIs(t, err, ErrAlertNotDispatchable)
}

func TestDispatch_ExhaustedBudgetStopsDispatch(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush)
	alert.Status = entity.AlertStatusFailed
	alert.DeliveryAttempts = 3
	push := &fakeAdapter{channel: entity.ChannelPush}
	h := newHarness(t, []ChannelAdapter{push}, alert)

	_, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{})

	assert.ErrorIs(t, err, ErrAlertNotDispatchable)
	assert.Zero(t, push.calls.Load())
}

func TestDispatch_DryRunLeavesNoTrace(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush, entity.ChannelEmail)
	push := &fakeAdapter{channel: entity.ChannelPush}
	email := &fakeAdapter{channel: entity.ChannelEmail}
	h := newHarness(t, []ChannelAdapter{push, email}, alert)

	results, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{DryRun: true})

	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.Metadata.DryRun)
	}
	assert.Zero(t, push.calls.Load())
	assert.Zero(t, email.calls.Load())
	assert.Zero(t, h.alerts.saves)
	assert.Empty(t, h.logs.logs)
	assert.Zero(t, h.snapshot(t).TotalDeliveries)

	stored := h.alerts.get(t, alert.ID)
	assert.Equal(t, entity.AlertStatusPending, stored.Status)
}

func TestDispatch_CancelDuringPassWins(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush)
	var h *harness
	push := &fakeAdapter{channel: entity.ChannelPush, script: func(_ int, a *entity.Alert) entity.DeliveryResult {
		h.alerts.update(a.ID, func(stored *entity.Alert) {
			stored.Status = entity.AlertStatusCancelled
		})

		return succeed(a, entity.ChannelPush)
	}}
	h = newHarness(t, []ChannelAdapter{push}, alert)

	results, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{})

	require.NoError(t, err)
	require.Len(t, results, 1)
	stored := h.alerts.get(t, alert.ID)
	assert.Equal(t, entity.AlertStatusCancelled, stored.Status)
	assert.Equal(t, 0, stored.DeliveryAttempts)
	assert.Nil(t, stored.SentAt)
	assert.Len(t, h.logs.logs, 1)
}

func TestDispatch_CancelledBeforeChannelIsSkipped(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush, entity.ChannelEmail)
	var h *harness
	email := &fakeAdapter{channel: entity.ChannelEmail}
	push := &fakeAdapter{channel: entity.ChannelPush}
	h = newHarness(t, []ChannelAdapter{push, email}, alert)
	// Simulate the user cancelling between load and fan-out.
	h.orch.now = func() time.Time {
		h.alerts.update(alert.ID, func(stored *entity.Alert) {
			stored.Status = entity.AlertStatusCancelled
		})

		return time.Now()
	}

	_, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{})

	require.NoError(t, err)
	assert.Zero(t, push.calls.Load())
	assert.Zero(t, email.calls.Load())
	assert.Equal(t, entity.AlertStatusCancelled, h.alerts.get(t, alert.ID).Status)
}

func TestDispatch_OwnerMismatchLooksMissing(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush)
	h := newHarness(t, []ChannelAdapter{&fakeAdapter{channel: entity.ChannelPush}}, alert)
	stranger := uuid.New()

	_, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{Owner: &stranger})
	assert.ErrorIs(t, err, ErrAlertNotFound)

	_, err = h.orch.Dispatch(context.Background(), uuid.New(), DispatchOptions{})
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestDispatch_MissingAdapter(t *testing.T) {
	alert := newTestAlert(entity.ChannelInApp)
	h := newHarness(t, nil, alert)

	results, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, entity.DeliveryErrNoAdapter, results[0].Error)
	assert.Equal(t, entity.AlertStatusFailed, h.alerts.get(t, alert.ID).Status)
}

func TestDispatch_PersistenceFailureLeavesAlertUntouched(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush)
	h := newHarness(t, []ChannelAdapter{&fakeAdapter{channel: entity.ChannelPush}}, alert)
	h.logs.err = assert.AnError

	results, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{})

	var repoErr *RepositoryError
	require.ErrorAs(t, err, &repoErr)
	assert.Len(t, results, 1)
	assert.Zero(t, h.snapshot(t).TotalDeliveries)

	stored := h.alerts.get(t, alert.ID)
	assert.Equal(t, entity.AlertStatusPending, stored.Status)
	assert.Equal(t, 0, stored.DeliveryAttempts)
}

func TestDispatch_EmailPermanentlyDownExhaustsAttempts(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush, entity.ChannelEmail)
	push := &fakeAdapter{channel: entity.ChannelPush}
	email := &fakeAdapter{channel: entity.ChannelEmail, script: func(call int, a *entity.Alert) entity.DeliveryResult {
		if call == 1 {
			return fail(a, entity.ChannelEmail, "smtp 451", false)
		}

		return fail(a, entity.ChannelEmail, "provider down", true)
	}}
	h := newHarness(t, []ChannelAdapter{push, email}, alert)
	ctx := context.Background()

	for range 3 {
		_, err := h.orch.Dispatch(ctx, alert.ID, DispatchOptions{})
		require.NoError(t, err)
	}

	stored := h.alerts.get(t, alert.ID)
	assert.Equal(t, entity.AlertStatusFailed, stored.Status)
	assert.Equal(t, 3, stored.DeliveryAttempts)
	assert.Nil(t, stored.SentAt)
	assert.Equal(t, int32(3), push.calls.Load())

	_, err := h.orch.Dispatch(ctx, alert.ID, DispatchOptions{})
	assert.ErrorIs(t, err, ErrAlertNotDispatchable)
}

func TestDispatch_PeerPassesConsumeOneAttempt(t *testing.T) {
	tests := []struct {
		name         string
		status       entity.AlertStatus
		attempts     int
		result       func(a *entity.Alert) entity.DeliveryResult
		wantStatus   entity.AlertStatus
		wantAttempts int
	}{
		{
			name:         "pending alert delivered by two processes",
			status:       entity.AlertStatusPending,
			result:       func(a *entity.Alert) entity.DeliveryResult { return succeed(a, entity.ChannelPush) },
			wantStatus:   entity.AlertStatusSent,
			wantAttempts: 1,
		},
		{
			name:         "last attempt of a failed alert",
			status:       entity.AlertStatusFailed,
			attempts:     2,
			result:       func(a *entity.Alert) entity.DeliveryResult { return fail(a, entity.ChannelPush, "unregistered", false) },
			wantStatus:   entity.AlertStatusFailed,
			wantAttempts: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := newTestAlert(entity.ChannelPush)
			alert.Status = tt.status
			alert.DeliveryAttempts = tt.attempts

			// Both passes reach the transport before either persists.
			var arrived sync.WaitGroup
			arrived.Add(2)
			push := &fakeAdapter{channel: entity.ChannelPush, script: func(_ int, a *entity.Alert) entity.DeliveryResult {
				arrived.Done()
				arrived.Wait()

				return tt.result(a)
			}}
			h := newHarness(t, []ChannelAdapter{push}, alert)
			other := h.peer(push)

			var g errgroup.Group
			for _, orch := range []*Orchestrator{h.orch, other} {
				g.Go(func() error {
					_, err := orch.Dispatch(context.Background(), alert.ID, DispatchOptions{})

					return err
				})
			}
			require.NoError(t, g.Wait())

			assert.Equal(t, int32(2), push.calls.Load())
			stored := h.alerts.get(t, alert.ID)
			assert.Equal(t, tt.wantStatus, stored.Status)
			assert.Equal(t, tt.wantAttempts, stored.DeliveryAttempts)
			assert.LessOrEqual(t, stored.DeliveryAttempts, stored.MaxDeliveryAttempts)
			// Both passes keep their delivery logs.
			assert.Len(t, h.logs.logs, 2)
		})
	}
}

func TestDispatch_ReArmDuringPassKeepsOutcome(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush)
	alert.Status = entity.AlertStatusFailed
	alert.DeliveryAttempts = 1
	var h *harness
	push := &fakeAdapter{channel: entity.ChannelPush, script: func(_ int, a *entity.Alert) entity.DeliveryResult {
		h.alerts.update(a.ID, func(stored *entity.Alert) {
			stored.Status = entity.AlertStatusPending
		})

		return succeed(a, entity.ChannelPush)
	}}
	h = newHarness(t, []ChannelAdapter{push}, alert)

	_, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{})

	require.NoError(t, err)
	stored := h.alerts.get(t, alert.ID)
	assert.Equal(t, entity.AlertStatusSent, stored.Status)
	assert.Equal(t, 2, stored.DeliveryAttempts)
}

func TestDispatch_NoEnabledChannelsRecordedOnce(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush)
	h := newHarness(t, []ChannelAdapter{&fakeAdapter{channel: entity.ChannelPush}}, alert)
	h.prefs.prefs[alert.UserID] = &entity.NotificationPreferences{
		UserID:          alert.UserID,
		EnabledChannels: []entity.NotificationChannel{entity.ChannelSMS},
	}

	for range 3 {
		results, err := h.orch.Dispatch(context.Background(), alert.ID, DispatchOptions{})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, entity.DeliveryErrNoEnabledChannels, results[0].Error)
	}

	assert.Equal(t, int64(1), h.snapshot(t).FailedDeliveries)
	assert.Equal(t, 1, h.alerts.saves)
	assert.Equal(t, 0, h.alerts.get(t, alert.ID).DeliveryAttempts)
}

func TestDispatch_PersistsAfterCallerGivesUp(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush)
	ctx, cancel := context.WithCancel(context.Background())
	push := &fakeAdapter{channel: entity.ChannelPush, script: func(_ int, a *entity.Alert) entity.DeliveryResult {
		// The batch timeout fires while the transport is still finishing.
		cancel()

		return succeed(a, entity.ChannelPush)
	}}
	h := newHarness(t, []ChannelAdapter{push}, alert)

	_, err := h.orch.Dispatch(ctx, alert.ID, DispatchOptions{})

	require.NoError(t, err)
	stored := h.alerts.get(t, alert.ID)
	assert.Equal(t, entity.AlertStatusSent, stored.Status)
	assert.Equal(t, 1, stored.DeliveryAttempts)
	assert.Equal(t, int64(1), h.snapshot(t).SuccessfulDeliveries)
}
