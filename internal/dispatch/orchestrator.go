package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "pricealert/internal/delivery/context"
	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/lifecycle"
	"pricealert/internal/domain/repository"
	"pricealert/internal/domain/service"
	"pricealert/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const lockKeyPrefix = "alert:dispatch:"

// OrchestratorConfig tunes a single orchestration pass.
type OrchestratorConfig struct {
	// ChannelTimeout bounds each transport call.
	ChannelTimeout time.Duration
	// LockTTL bounds how long a crashed worker can keep an alert locked.
	LockTTL time.Duration
	// SaveRetries is how many optimistic-lock conflicts a pass absorbs before giving up.
	SaveRetries int
	// Retry is the default per-channel retry policy.
	Retry RetryPolicy
}

// DispatchOptions are per-call switches.
type DispatchOptions struct {
	// DryRun runs the full decision logic but skips transports, persistence and statistics.
	DryRun bool
	// Owner restricts the pass to alerts owned by this user.
	Owner *uuid.UUID
	// Retry overrides the configured retry policy.
	Retry *RetryPolicy
}

// OrchestratorParams holds dependencies for the orchestrator.
type OrchestratorParams struct {
	fx.In

	Config      OrchestratorConfig
	Alerts      repository.AlertRepository
	Preferences repository.PreferencesRepository
	Recipients  repository.RecipientRepository
	TxManager   repository.TransactionManager
	Locker      service.Locker
	Registry    *AdapterRegistry
	Suppression *SuppressionPolicy
	Stats       *Statistics
	Logger      *slog.Logger
}

// Orchestrator runs one orchestration pass per alert.
type Orchestrator struct {
	cfg         OrchestratorConfig
	alerts      repository.AlertRepository
	preferences repository.PreferencesRepository
	recipients  repository.RecipientRepository
	txManager   repository.TransactionManager
	locker      service.Locker
	registry    *AdapterRegistry
	suppression *SuppressionPolicy
	stats       *Statistics
	logger      *slog.Logger

	now         func() time.Time
	retrierOpts []RetrierOption
}

// NewOrchestrator creates a delivery orchestrator.
func NewOrchestrator(p OrchestratorParams) *Orchestrator {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		cfg:         p.Config,
		alerts:      p.Alerts,
		preferences: p.Preferences,
		recipients:  p.Recipients,
		txManager:   p.TxManager,
		locker:      p.Locker,
		registry:    p.Registry,
		suppression: p.Suppression,
		stats:       p.Stats,
		logger:      logger,
		now:         time.Now,
	}
}

// Dispatch runs one pass for the alert and returns its results.
//
// It returns ErrAlertInFlight when another pass holds the alert, ErrAlertNotFound when the
// alert is missing or not owned by opts.Owner, ErrAlertNotDispatchable for terminal, exhausted
// or expired alerts, and a *RepositoryError when persistence fails. In the latter case the
// results of a pass whose transports already ran are still returned.
func (o *Orchestrator) Dispatch(ctx context.Context, alertID uuid.UUID, opts DispatchOptions) ([]entity.DeliveryResult, error) {
	// Queries issued during the pass are logged against the alert.
	ctx = deliverycontext.WithLogger(ctx,
		deliverycontext.GetLoggerOrDefault(ctx, o.logger).With(slog.String("alert_id", alertID.String())))

	release, err := o.locker.TryLock(ctx, lockKeyPrefix+alertID.String(), o.cfg.LockTTL)
	if err != nil {
		if errors.Is(err, service.ErrLockNotAcquired) {
			return nil, ErrAlertInFlight
		}

		return nil, &RepositoryError{Op: "acquire alert lock", Err: err}
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			o.logger.Warn("[Dispatch] Failed to release alert lock",
				slog.String("alert_id", alertID.String()),
				slog.Any("error", err),
			)
		}
	}()

	alert, err := o.alerts.FindAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, ErrAlertNotFound
		}

		return nil, &RepositoryError{Op: "load alert", Err: err}
	}

	if opts.Owner != nil && alert.UserID != *opts.Owner {
		return nil, ErrAlertNotFound
	}

	now := o.now()
	if alert.IsExpired(now) || !alert.IsDispatchable() {
		return nil, ErrAlertNotDispatchable
	}

	prefs, err := o.preferences.FindPreferencesByUser(ctx, alert.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrPreferencesNotFound) {
			return nil, &RepositoryError{Op: "load preferences", Err: err}
		}
		prefs = entity.DefaultPreferences(alert.UserID)
	}

	channels := prefs.EffectiveChannels(alert.Channels)
	if len(channels) == 0 {
		return o.failWithoutChannels(ctx, alert, opts, now)
	}

	decision, err := o.suppression.Evaluate(ctx, alert, prefs, now)
	if err != nil {
		return nil, err
	}
	if decision.Suppressed {
		result := entity.NewPostponedResult(alert, decision.Reason, decision.RetryAfter)
		result.Metadata.DryRun = opts.DryRun
		results := []entity.DeliveryResult{result}
		if !opts.DryRun {
			o.stats.Record(ctx, results)
		}
		o.logger.Debug("[Dispatch] Alert suppressed",
			slog.String("alert_id", alert.ID.String()),
			slog.String("reason", string(decision.Reason)),
		)

		return results, nil
	}

	rcpt, err := o.recipients.FindRecipient(ctx, alert.UserID)
	if err != nil {
		return nil, &RepositoryError{Op: "load recipient", Err: err}
	}

	results := o.fanOut(ctx, alert, rcpt, channels, opts)
	if opts.DryRun {
		return results, nil
	}

	// Transports have run. The outcome is persisted even if the caller gave up meanwhile, so
	// a timed-out pass cannot leave sent notifications unrecorded.
	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := o.persistPass(persistCtx, alert, results); err != nil {
		o.logger.Error("[Dispatch] Failed to persist delivery outcome",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)

		return results, err
	}

	o.stats.Record(persistCtx, results)

	return results, nil
}

// failWithoutChannels closes a pass that has nowhere to deliver. Attempts are left untouched.
// Only the pass that moves the alert to failed is recorded; repeating it on an alert that is
// already failed for the same reason changes nothing.
func (o *Orchestrator) failWithoutChannels(
	ctx context.Context,
	alert *entity.Alert,
	opts DispatchOptions,
	now time.Time,
) ([]entity.DeliveryResult, error) {
	result := entity.NewDeliveryResult(alert, "")
	result.Error = entity.DeliveryErrNoEnabledChannels
	result.Metadata.DryRun = opts.DryRun
	results := []entity.DeliveryResult{result}

	if opts.DryRun || alert.Status == entity.AlertStatusFailed {
		return results, nil
	}

	updated := alert.Clone()
	updated.Status = entity.AlertStatusFailed
	updated.UpdatedAt = now
	if err := o.alerts.SaveAlert(ctx, updated); err != nil {
		if !errors.Is(err, repository.ErrAlertVersionConflict) {
			return results, &RepositoryError{Op: "save alert", Err: err}
		}
		// The alert changed under us; the next pass sees the new state.
		o.logger.Warn("[Dispatch] Alert changed before no-channel failure was saved",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)

		return results, nil
	}

	o.stats.Record(ctx, results)

	return results, nil
}

// fanOut dispatches every channel concurrently. One channel's failure never affects another.
func (o *Orchestrator) fanOut(
	ctx context.Context,
	alert *entity.Alert,
	rcpt *entity.Recipient,
	channels []entity.NotificationChannel,
	opts DispatchOptions,
) []entity.DeliveryResult {
	policy := o.cfg.Retry
	if opts.Retry != nil {
		policy = *opts.Retry
	}
	retrier := NewRetrier(policy, o.retrierOpts...)

	results := make([]entity.DeliveryResult, len(channels))

	var g errgroup.Group
	for i, ch := range channels {
		g.Go(func() error {
			results[i] = o.deliverChannel(ctx, retrier, alert.Clone(), rcpt, ch, opts.DryRun)

			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (o *Orchestrator) deliverChannel(
	ctx context.Context,
	retrier *Retrier,
	alert *entity.Alert,
	rcpt *entity.Recipient,
	channel entity.NotificationChannel,
	dryRun bool,
) entity.DeliveryResult {
	adapter, ok := o.registry.Lookup(channel)
	if !ok {
		result := entity.NewDeliveryResult(alert, channel)
		result.Error = entity.DeliveryErrNoAdapter
		result.Metadata.DryRun = dryRun

		return result
	}

	if dryRun {
		return adapter.Preview(ctx, alert, rcpt)
	}

	if o.cancelledSinceLoad(ctx, alert.ID) {
		result := entity.NewDeliveryResult(alert, channel)
		result.Error = entity.DeliveryErrCancelled

		return result
	}

	result, err := retrier.Do(ctx, adapter, alert, rcpt)
	var terminal *TerminalDeliveryError
	if errors.As(err, &terminal) {
		result.Success = false
		result.Error = fmt.Sprintf("%s: %s", entity.DeliveryErrRetryExhausted, terminal.LastErr)
		o.logger.Warn("[Dispatch] Channel retries exhausted",
			slog.String("alert_id", alert.ID.String()),
			slog.String("channel", string(channel)),
			slog.Int("attempts", terminal.Attempts),
			slog.String("last_error", terminal.LastErr),
		)
	}

	return result
}

// cancelledSinceLoad re-reads the alert status right before a transport call.
func (o *Orchestrator) cancelledSinceLoad(ctx context.Context, alertID uuid.UUID) bool {
	current, err := o.alerts.FindAlertByID(ctx, alertID)
	if err != nil {
		return false
	}

	return current.Status == entity.AlertStatusCancelled
}

// applyOutcome advances the state machine after a dispatched pass.
func applyOutcome(alert *entity.Alert, success bool, now time.Time) {
	alert.DeliveryAttempts++
	alert.UpdatedAt = now
	if success {
		alert.Status = entity.AlertStatusSent
		alert.SentAt = &now

		return
	}
	alert.Status = entity.AlertStatusFailed
}

func allSucceeded(results []entity.DeliveryResult) bool {
	for i := range results {
		if !results[i].Success {
			return false
		}
	}

	return len(results) > 0
}

// persistPass writes the new alert state and the delivery logs in one transaction. On a
// version conflict it reloads the alert: if another writer already advanced the state machine
// (another pass, or a cancel) that writer owns the outcome and only the logs are appended.
// Edits that leave the state machine alone are merged by reapplying the outcome.
func (o *Orchestrator) persistPass(ctx context.Context, loaded *entity.Alert, results []entity.DeliveryResult) error {
	now := o.now()
	success := allSucceeded(results)
	logs := buildDeliveryLogs(loaded, results, now)

	current := loaded.Clone()
	for attempt := 0; ; attempt++ {
		saveAlert := !advancedSince(loaded, current) && current.CanTransition(entity.AlertStatusSent)
		if saveAlert {
			applyOutcome(current, success, now)
		} else if attempt > 0 {
			o.logger.Warn("[Dispatch] Alert advanced by another writer, keeping its outcome",
				slog.String("alert_id", loaded.ID.String()),
				slog.String("status", string(current.Status)),
				slog.Int("delivery_attempts", current.DeliveryAttempts),
			)
		}

		err := o.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			if saveAlert {
				if err := f.NewAlertRepository().SaveAlert(ctx, current); err != nil {
					return err
				}
			}

			return f.NewDeliveryLogRepository().AppendLogs(ctx, logs)
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrAlertVersionConflict) || attempt >= o.cfg.SaveRetries {
			return &RepositoryError{Op: "persist delivery outcome", Err: err}
		}

		o.logger.Warn("[Dispatch] Alert changed during pass, reloading",
			slog.String("alert_id", loaded.ID.String()),
			slog.Int("attempt", attempt+1),
		)

		current, err = o.alerts.FindAlertByID(ctx, loaded.ID)
		if err != nil {
			return &RepositoryError{Op: "reload alert", Err: err}
		}
	}
}

// advancedSince reports whether another writer moved the state machine after the alert was
// loaded: another pass consumed an attempt, or the alert became sent or cancelled. A re-arm
// (failed to pending at the same attempt count) is not an advance.
func advancedSince(loaded, current *entity.Alert) bool {
	if current.DeliveryAttempts != loaded.DeliveryAttempts {
		return true
	}
	if current.Status == entity.AlertStatusSent || current.Status == entity.AlertStatusCancelled {
		return true
	}

	return current.SentAt != nil && (loaded.SentAt == nil || !loaded.SentAt.Equal(*current.SentAt))
}

func buildDeliveryLogs(alert *entity.Alert, results []entity.DeliveryResult, now time.Time) []*entity.DeliveryLog {
	passID := uuid.New()
	logs := make([]*entity.DeliveryLog, 0, len(results))
	for i := range results {
		r := &results[i]
		logs = append(logs, &entity.DeliveryLog{
			ID:             uuid.New(),
			AlertID:        alert.ID,
			UserID:         alert.UserID,
			ProductID:      alert.ProductID,
			PassID:         passID,
			Channel:        r.Channel,
			Success:        r.Success,
			ErrorMessage:   r.Error,
			MessageID:      r.MessageID,
			DeliveryTimeMs: r.Metadata.DeliveryTimeMs,
			CreatedAt:      now,
		})
	}

	return logs
}
