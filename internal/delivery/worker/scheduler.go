package worker

import (
	"context"
	"log/slog"
	"time"

	"pricealert/config"
	"pricealert/internal/delivery"
	deliverycontext "pricealert/internal/delivery/context"
	"pricealert/internal/dispatch"
	"pricealert/internal/domain/lifecycle"
	"pricealert/internal/usecase"

	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the periodic sweep.
type SchedulerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	AlertUC usecase.AlertUsecase
	Batch   *dispatch.BatchProcessor `optional:"true"`
}

// scheduler runs ProcessAlerts over every due alert at a fixed interval. It catches alerts whose
// trigger message was lost and re-drives failed alerts that still have attempts left.
type scheduler struct {
	interval time.Duration
	alertUC  usecase.AlertUsecase
	batch    *dispatch.BatchProcessor
	logger   *slog.Logger

	stop chan struct{}
	done chan struct{}
}

// NewScheduler creates the sweep. A zero delivery.processInterval leaves it idle.
func NewScheduler(params SchedulerParams) delivery.Delivery {
	s := &scheduler{
		interval: params.Cfg.Delivery.ProcessInterval,
		alertUC:  params.AlertUC,
		batch:    params.Batch,
		logger:   params.Logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.shutdown,
	})

	return s
}

// Serve ticks until shutdown. The pass in progress at shutdown is allowed to finish.
func (s *scheduler) Serve(ctx context.Context) error {
	defer close(s.done)

	if s.interval <= 0 {
		s.logger.Info("[Worker] Periodic alert sweep disabled")

		return nil
	}

	s.logger.Info("[Worker] Starting periodic alert sweep", slog.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *scheduler) sweep(ctx context.Context) {
	ctx, logger := deliverycontext.Scoped(ctx, s.logger, "")

	start := time.Now()
	results, err := s.alertUC.ProcessAlerts(ctx, nil, false)
	if err != nil {
		logger.Error("[Worker] Periodic alert sweep failed", slog.Any("error", err))

		return
	}

	if len(results) > 0 {
		logger.Info("[Worker] Periodic alert sweep finished",
			slog.Int("results", len(results)),
			slog.Duration("took", time.Since(start)),
		)
	}
}

func (s *scheduler) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	close(s.stop)

	select {
	case <-s.done:
	case <-ctx.Done():
		s.logger.Warn("[Worker] Alert sweep still running at shutdown")

		return nil
	}

	if s.batch != nil {
		waited := make(chan struct{})
		go func() {
			s.batch.Wait()
			close(waited)
		}()
		select {
		case <-waited:
		case <-ctx.Done():
			s.logger.Warn("[Worker] Timed-out alert passes still running at shutdown")
		}
	}

	return nil
}
