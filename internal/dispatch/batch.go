package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/repository"
	"pricealert/internal/errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// lookupTimeout bounds the alert read behind a synthetic failure.
const lookupTimeout = 2 * time.Second

// BatchConfig shapes one batch run.
type BatchConfig struct {
	// BatchSize is both the chunk size and the concurrency limit within a chunk.
	BatchSize int
	// MaxRetries is the per-channel attempt budget. Zero keeps the orchestrator default.
	MaxRetries int
	// RetryDelay is the base backoff delay between channel attempts.
	RetryDelay time.Duration
	// Timeout bounds a single alert's pass. Zero disables it.
	Timeout time.Duration
}

// Dispatcher runs one orchestration pass for an alert.
type Dispatcher interface {
	Dispatch(ctx context.Context, alertID uuid.UUID, opts DispatchOptions) ([]entity.DeliveryResult, error)
}

// BatchProcessor drives many alerts through a Dispatcher.
type BatchProcessor struct {
	dispatcher Dispatcher
	stats      *Statistics
	logger     *slog.Logger
	alerts     repository.AlertRepository

	// stragglers tracks passes that outlived their timeout.
	stragglers sync.WaitGroup
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithAlertLookup lets synthetic failures carry the owner and type of their alert.
func WithAlertLookup(alerts repository.AlertRepository) BatchOption {
	return func(p *BatchProcessor) {
		p.alerts = alerts
	}
}

// NewBatchProcessor creates a batch processor. Synthetic failures are recorded into stats.
func NewBatchProcessor(dispatcher Dispatcher, stats *Statistics, logger *slog.Logger, opts ...BatchOption) *BatchProcessor {
	if logger == nil {
		logger = slog.Default()
	}

	p := &BatchProcessor{
		dispatcher: dispatcher,
		stats:      stats,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Process dispatches ids in sequential chunks of cfg.BatchSize, concurrently within a chunk.
// Ids that are missing, not owned, not dispatchable or already in flight contribute no results.
// The order of the returned results is not guaranteed.
func (p *BatchProcessor) Process(ctx context.Context, ids []uuid.UUID, cfg BatchConfig, opts DispatchOptions) []entity.DeliveryResult {
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return []entity.DeliveryResult{}
	}

	size := cfg.BatchSize
	if size <= 0 {
		size = len(ids)
	}
	if opts.Retry == nil && cfg.MaxRetries > 0 {
		opts.Retry = &RetryPolicy{MaxAttempts: cfg.MaxRetries, BaseDelay: cfg.RetryDelay}
	}

	var (
		mu      sync.Mutex
		results = make([]entity.DeliveryResult, 0, len(ids))
	)

	for start := 0; start < len(ids); start += size {
		if ctx.Err() != nil {
			p.logger.Warn("[Dispatch] Batch cancelled", slog.Int("remaining", len(ids)-start))

			break
		}

		end := min(start+size, len(ids))

		var g errgroup.Group
		g.SetLimit(size)
		for _, id := range ids[start:end] {
			g.Go(func() error {
				out := p.processOne(ctx, id, cfg.Timeout, opts)
				mu.Lock()
				results = append(results, out...)
				mu.Unlock()

				return nil
			})
		}
		_ = g.Wait()
	}

	return results
}

func (p *BatchProcessor) processOne(ctx context.Context, id uuid.UUID, timeout time.Duration, opts DispatchOptions) []entity.DeliveryResult {
	if timeout <= 0 {
		results, err := p.dispatcher.Dispatch(ctx, id, opts)

		return p.settle(ctx, id, results, err, opts)
	}

	alertCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		results []entity.DeliveryResult
		err     error
	}
	done := make(chan outcome, 1)

	p.stragglers.Add(1)
	go func() {
		defer p.stragglers.Done()
		results, err := p.dispatcher.Dispatch(alertCtx, id, opts)
		done <- outcome{results: results, err: err}
	}()

	select {
	case out := <-done:
		return p.settle(ctx, id, out.results, out.err, opts)
	case <-alertCtx.Done():
		if ctx.Err() != nil {
			return nil
		}
		p.logger.Warn("[Dispatch] Alert pass timed out",
			slog.String("alert_id", id.String()),
			slog.Duration("timeout", timeout),
		)

		return p.synthetic(ctx, id, entity.DeliveryErrTimeout, opts)
	}
}

// settle maps a pass outcome onto batch results.
func (p *BatchProcessor) settle(
	ctx context.Context,
	id uuid.UUID,
	results []entity.DeliveryResult,
	err error,
	opts DispatchOptions,
) []entity.DeliveryResult {
	if err == nil {
		return results
	}

	if errors.IsAny(err, ErrAlertNotFound, ErrAlertNotDispatchable, ErrAlertInFlight) {
		p.logger.Debug("[Dispatch] Skipping alert",
			slog.String("alert_id", id.String()),
			slog.String("reason", err.Error()),
		)

		return nil
	}

	var repoErr *RepositoryError
	if errors.As(err, &repoErr) && len(results) > 0 {
		return results
	}

	p.logger.Error("[Dispatch] Alert pass failed",
		slog.String("alert_id", id.String()),
		slog.Any("error", err),
	)

	return p.synthetic(ctx, id, entity.DeliveryErrRepository, opts)
}

// synthetic builds a failure for a pass that produced no results of its own. When the alert
// can still be read, the result carries its owner and type so per-user figures stay correct.
func (p *BatchProcessor) synthetic(ctx context.Context, id uuid.UUID, code string, opts DispatchOptions) []entity.DeliveryResult {
	result := entity.DeliveryResult{
		AlertID:  id,
		Error:    code,
		Metadata: entity.DeliveryMetadata{DryRun: opts.DryRun},
	}
	if p.alerts != nil {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupTimeout)
		alert, err := p.alerts.FindAlertByID(lookupCtx, id)
		cancel()
		if err == nil {
			result.UserID = alert.UserID
			result.AlertType = alert.Type
		}
	}

	results := []entity.DeliveryResult{result}
	if !opts.DryRun && p.stats != nil {
		p.stats.Record(ctx, results)
	}

	return results
}

// Wait blocks until passes abandoned by a timeout have returned.
func (p *BatchProcessor) Wait() {
	p.stragglers.Wait()
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
