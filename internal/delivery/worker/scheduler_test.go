package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"pricealert/config"
	"pricealert/internal/domain/entity"
	mockUsecase "pricealert/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestScheduler(t *testing.T, interval time.Duration) (*fxtest.Lifecycle, *scheduler, *mockUsecase.MockAlertUsecase) {
	t.Helper()

	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{}
	cfg.Delivery.ProcessInterval = interval
	alerts := mockUsecase.NewMockAlertUsecase(t)

	s := NewScheduler(SchedulerParams{
		Lc:      lc,
		Cfg:     cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		AlertUC: alerts,
	}).(*scheduler)

	return lc, s, alerts
}

func TestScheduler_SweepsUntilStopped(t *testing.T) {
	lc, s, alerts := newTestScheduler(t, 5*time.Millisecond)

	var calls atomic.Int32
	alerts.EXPECT().ProcessAlerts(mock.Anything, (*uuid.UUID)(nil), false).
		Run(func(context.Context, *uuid.UUID, bool) { calls.Add(1) }).
		Return([]entity.DeliveryResult{}, nil)

	lc.RequireStart()
	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	lc.RequireStop()
	assert.NoError(t, <-served)

	settled := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, calls.Load())
}

func TestScheduler_DisabledWithoutInterval(t *testing.T) {
	lc, s, _ := newTestScheduler(t, 0)

	lc.RequireStart()
	assert.NoError(t, s.Serve(context.Background()))
	lc.RequireStop()
}

func TestScheduler_SurvivesFailedSweeps(t *testing.T) {
	lc, s, alerts := newTestScheduler(t, 5*time.Millisecond)

	var calls atomic.Int32
	alerts.EXPECT().ProcessAlerts(mock.Anything, (*uuid.UUID)(nil), false).
		Run(func(context.Context, *uuid.UUID, bool) { calls.Add(1) }).
		Return(nil, assert.AnError)

	lc.RequireStart()
	go func() { _ = s.Serve(context.Background()) }()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	lc.RequireStop()
}
