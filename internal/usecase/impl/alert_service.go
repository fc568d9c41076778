package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"pricealert/internal/dispatch"
	"pricealert/internal/domain/entity"
	domainerrors "pricealert/internal/domain/errors"
	"pricealert/internal/domain/repository"
	"pricealert/internal/errors"
	"pricealert/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultListLimit      = 20
	maxListLimit          = 100
	maxBatchAlertIDs      = 500
	maxDeliveryAttempts   = 10
	cancelConflictRetries = 3
)

// AlertServiceConfig tunes the alert use cases.
type AlertServiceConfig struct {
	// Batch shapes ProcessAlerts and ProcessBatchAlerts runs.
	Batch dispatch.BatchConfig
	// ProcessLimit caps how many due alerts one ProcessAlerts pass picks up.
	ProcessLimit int
	// HistoryLimit caps the log entries read for a delivery report.
	HistoryLimit int
}

// AlertServiceParams holds dependencies for the alert service.
type AlertServiceParams struct {
	fx.In

	Config    AlertServiceConfig
	AlertRepo repository.AlertRepository
	LogRepo   repository.DeliveryLogRepository
	Batch     *dispatch.BatchProcessor
	Stats     *dispatch.Statistics
	Logger    *slog.Logger
}

type alertService struct {
	cfg       AlertServiceConfig
	alertRepo repository.AlertRepository
	logRepo   repository.DeliveryLogRepository
	batch     *dispatch.BatchProcessor
	stats     *dispatch.Statistics
	logger    *slog.Logger
	now       func() time.Time
}

// NewAlertService creates a new alert service instance
func NewAlertService(p AlertServiceParams) usecase.AlertUsecase {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &alertService{
		cfg:       p.Config,
		alertRepo: p.AlertRepo,
		logRepo:   p.LogRepo,
		batch:     p.Batch,
		stats:     p.Stats,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateAlert validates and stores a new pending alert
func (s *alertService) CreateAlert(ctx context.Context, req *usecase.AlertCreationRequest) (*entity.Alert, error) {
	now := s.now()

	alert, err := buildAlert(req, now)
	if err != nil {
		return nil, err
	}

	if err := s.alertRepo.CreateAlert(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	s.logger.Info("Alert created",
		slog.String("alert_id", alert.ID.String()),
		slog.String("user_id", alert.UserID.String()),
		slog.String("type", string(alert.Type)),
	)

	return alert, nil
}

func buildAlert(req *usecase.AlertCreationRequest, now time.Time) (*entity.Alert, error) {
	if req.UserID == uuid.Nil {
		return nil, domainerrors.NewValidationError("user is required")
	}
	if req.ProductID == "" {
		return nil, domainerrors.NewValidationError("product is required")
	}
	if !req.Type.IsValid() {
		return nil, domainerrors.NewValidationError(fmt.Sprintf("unknown alert type %q", req.Type))
	}
	if req.Title == "" {
		return nil, domainerrors.NewValidationError("title is required")
	}

	priority := req.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, domainerrors.NewValidationError(fmt.Sprintf("unknown priority %q", priority))
	}

	channels, err := validateChannels(req.Channels)
	if err != nil {
		return nil, err
	}

	if err := validateConditions(req.Type, &req.Conditions); err != nil {
		return nil, err
	}

	schedule := entity.AlertSchedule{Active: true}
	if req.Schedule != nil {
		schedule = *req.Schedule
	}
	if err := validateSchedule(&schedule); err != nil {
		return nil, err
	}

	maxAttempts := req.MaxDeliveryAttempts
	if maxAttempts == 0 {
		maxAttempts = entity.DefaultMaxDeliveryAttempts
	}
	if maxAttempts < 1 || maxAttempts > maxDeliveryAttempts {
		return nil, domainerrors.NewValidationError(fmt.Sprintf("max delivery attempts must be between 1 and %d", maxDeliveryAttempts))
	}

	scheduledAt := now
	if req.ScheduledAt != nil {
		scheduledAt = *req.ScheduledAt
	}

	expiresAt := now.Add(priority.DefaultLifetime())
	if req.ExpiresAt != nil {
		if !req.ExpiresAt.After(now) {
			return nil, domainerrors.NewValidationError("expiration must be in the future")
		}
		expiresAt = *req.ExpiresAt
	}

	alert := &entity.Alert{
		ID:                  uuid.New(),
		UserID:              req.UserID,
		ProductID:           req.ProductID,
		Type:                req.Type,
		Priority:            priority,
		Status:              entity.AlertStatusPending,
		Conditions:          req.Conditions,
		Schedule:            schedule,
		Channels:            channels,
		Title:               req.Title,
		Message:             req.Message,
		AlertData:           req.AlertData,
		MaxDeliveryAttempts: maxAttempts,
		CreatedAt:           now,
		ScheduledAt:         scheduledAt,
		ExpiresAt:           &expiresAt,
		UpdatedAt:           now,
	}

	return alert.Clone(), nil
}

func validateChannels(channels []entity.NotificationChannel) ([]entity.NotificationChannel, error) {
	channels = entity.NormalizeChannels(channels)
	if len(channels) == 0 {
		return nil, domainerrors.NewValidationError("at least one channel is required")
	}
	for _, ch := range channels {
		if !ch.IsValid() {
			return nil, domainerrors.NewValidationError(fmt.Sprintf("unknown channel %q", ch))
		}
	}

	return channels, nil
}

func validateConditions(alertType entity.AlertType, c *entity.AlertConditions) error {
	if c.TargetPrice != nil && !c.TargetPrice.IsPositive() {
		return domainerrors.NewValidationError("target price must be positive")
	}
	if alertType == entity.AlertTypePriceTarget && c.TargetPrice == nil {
		return domainerrors.NewValidationError("target price is required for price target alerts")
	}
	if c.PercentageDrop != nil && (*c.PercentageDrop <= 0 || *c.PercentageDrop > 100) {
		return domainerrors.NewValidationError("percentage drop must be between 0 and 100")
	}
	if c.MinRating != nil && (*c.MinRating < 0 || *c.MinRating > 5) {
		return domainerrors.NewValidationError("minimum rating must be between 0 and 5")
	}

	return nil
}

func validateSchedule(s *entity.AlertSchedule) error {
	if s.QuietHours != nil {
		if err := s.QuietHours.Validate(); err != nil {
			return domainerrors.NewValidationError("quiet hours start must precede end")
		}
	}
	if s.MaxAlertsPerDay < 0 {
		return domainerrors.NewValidationError("max alerts per day cannot be negative")
	}
	if s.CooldownMinutes < 0 {
		return domainerrors.NewValidationError("cooldown cannot be negative")
	}

	return nil
}

// UpdateAlert applies a patch to an alert owned by userID
func (s *alertService) UpdateAlert(ctx context.Context, userID, alertID uuid.UUID, patch *usecase.AlertPatch) (*entity.Alert, error) {
	alert, err := s.findOwnedAlert(ctx, userID, alertID)
	if err != nil {
		return nil, err
	}

	if patch == nil || patch.IsEmpty() {
		return alert, nil
	}

	if alert.Status != entity.AlertStatusPending && alert.Status != entity.AlertStatusFailed {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(fmt.Sprintf("alert is %s", alert.Status))
	}

	now := s.now()
	if err := applyPatch(alert, patch, now); err != nil {
		return nil, err
	}
	alert.UpdatedAt = now

	if err := s.alertRepo.SaveAlert(ctx, alert); err != nil {
		if errors.Is(err, repository.ErrAlertVersionConflict) {
			return nil, domainerrors.ErrAlertBusy
		}

		return nil, fmt.Errorf("failed to save alert: %w", err)
	}

	return alert, nil
}

func applyPatch(alert *entity.Alert, patch *usecase.AlertPatch, now time.Time) error {
	if patch.Title != nil {
		if *patch.Title == "" {
			return domainerrors.NewValidationError("title cannot be empty")
		}
		alert.Title = *patch.Title
	}
	if patch.Message != nil {
		alert.Message = *patch.Message
	}
	if patch.Priority != nil {
		if !patch.Priority.IsValid() {
			return domainerrors.NewValidationError(fmt.Sprintf("unknown priority %q", *patch.Priority))
		}
		alert.Priority = *patch.Priority
	}
	if patch.Channels != nil {
		channels, err := validateChannels(patch.Channels)
		if err != nil {
			return err
		}
		alert.Channels = channels
	}
	if patch.Schedule != nil {
		schedule := *patch.Schedule
		if err := validateSchedule(&schedule); err != nil {
			return err
		}
		alert.Schedule = schedule
	}
	if patch.ExpiresAt != nil {
		if !patch.ExpiresAt.After(now) {
			return domainerrors.NewValidationError("expiration must be in the future")
		}
		expiresAt := *patch.ExpiresAt
		alert.ExpiresAt = &expiresAt
	}
	if patch.Status != nil {
		return applyStatusPatch(alert, *patch.Status)
	}

	return nil
}

// applyStatusPatch only allows re-arming: failed -> pending while attempts remain. The attempt
// count is kept so a re-armed alert never exceeds its budget.
func applyStatusPatch(alert *entity.Alert, status entity.AlertStatus) error {
	if status != entity.AlertStatusPending {
		return domainerrors.ErrInvalidStatusTransition.WithDetails(fmt.Sprintf("status can only be set to %s", entity.AlertStatusPending))
	}

	switch alert.Status {
	case entity.AlertStatusPending:
		return nil
	case entity.AlertStatusFailed:
		if !alert.CanTransition(entity.AlertStatusPending) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails("delivery attempts are exhausted")
		}
		alert.Status = entity.AlertStatusPending

		return nil
	default:
		return domainerrors.ErrInvalidStatusTransition.WithDetails(fmt.Sprintf("alert is %s", alert.Status))
	}
}

// DeleteAlert cancels an alert. A cancel racing with a delivery pass wins.
func (s *alertService) DeleteAlert(ctx context.Context, userID, alertID uuid.UUID) error {
	for attempt := 0; ; attempt++ {
		alert, err := s.findOwnedAlert(ctx, userID, alertID)
		if err != nil {
			return err
		}

		switch alert.Status {
		case entity.AlertStatusCancelled:
			return nil
		case entity.AlertStatusSent:
			return domainerrors.ErrInvalidStatusTransition.WithDetails("alert was already sent")
		}

		alert.Status = entity.AlertStatusCancelled
		alert.UpdatedAt = s.now()

		err = s.alertRepo.SaveAlert(ctx, alert)
		if err == nil {
			s.logger.Info("Alert cancelled", slog.String("alert_id", alertID.String()))

			return nil
		}
		if !errors.Is(err, repository.ErrAlertVersionConflict) {
			return fmt.Errorf("failed to cancel alert: %w", err)
		}
		if attempt >= cancelConflictRetries {
			return domainerrors.ErrAlertBusy
		}
	}
}

// GetAlert returns an alert owned by userID
func (s *alertService) GetAlert(ctx context.Context, userID, alertID uuid.UUID) (*entity.Alert, error) {
	return s.findOwnedAlert(ctx, userID, alertID)
}

// ListAlerts returns a page of the user's alerts
func (s *alertService) ListAlerts(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Alert, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)
	offset = max(offset, 0)

	alerts, err := s.alertRepo.FindAlertsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find alerts by user: %w", err)
	}

	return alerts, nil
}

// ProcessAlerts runs one pass over due alerts
func (s *alertService) ProcessAlerts(ctx context.Context, owner *uuid.UUID, dryRun bool) ([]entity.DeliveryResult, error) {
	now := s.now()

	var ids []uuid.UUID
	if owner == nil {
		due, err := s.alertRepo.FindDueAlertIDs(ctx, now, s.cfg.ProcessLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to find due alerts: %w", err)
		}
		ids = due
	} else {
		alerts, err := s.alertRepo.FindAlertsByUser(ctx, *owner, s.cfg.ProcessLimit, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to find alerts by user: %w", err)
		}
		for _, a := range alerts {
			if a.IsDispatchable() && !a.IsExpired(now) {
				ids = append(ids, a.ID)
			}
		}
	}

	results := s.batch.Process(ctx, ids, s.cfg.Batch, dispatch.DispatchOptions{DryRun: dryRun, Owner: owner})

	s.logger.Info("Processed due alerts",
		slog.Int("alerts", len(ids)),
		slog.Int("results", len(results)),
		slog.Bool("dry_run", dryRun),
	)

	return results, nil
}

// ProcessBatchAlerts runs one pass over the given alerts
func (s *alertService) ProcessBatchAlerts(ctx context.Context, owner *uuid.UUID, alertIDs []uuid.UUID, dryRun bool) ([]entity.DeliveryResult, error) {
	if len(alertIDs) == 0 {
		return nil, domainerrors.NewValidationError("alert ids are required")
	}
	if len(alertIDs) > maxBatchAlertIDs {
		return nil, domainerrors.NewValidationError(fmt.Sprintf("at most %d alert ids per batch", maxBatchAlertIDs))
	}

	return s.batch.Process(ctx, alertIDs, s.cfg.Batch, dispatch.DispatchOptions{DryRun: dryRun, Owner: owner}), nil
}

// GetAlertStatistics returns aggregated delivery statistics
func (s *alertService) GetAlertStatistics(ctx context.Context, userID *uuid.UUID) (*entity.AlertStatistics, error) {
	stats, err := s.stats.Snapshot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load statistics: %w", err)
	}

	return &stats, nil
}

// GetAlertDeliveryReport summarises the recorded delivery history of an alert
func (s *alertService) GetAlertDeliveryReport(ctx context.Context, userID, alertID uuid.UUID) (*entity.AlertDeliveryReport, error) {
	alert, err := s.findOwnedAlert(ctx, userID, alertID)
	if err != nil {
		return nil, err
	}

	logs, err := s.logRepo.FindLogsByAlert(ctx, alertID, s.cfg.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to find delivery logs: %w", err)
	}

	return buildDeliveryReport(alert, logs), nil
}

// buildDeliveryReport expects logs newest first.
func buildDeliveryReport(alert *entity.Alert, logs []*entity.DeliveryLog) *entity.AlertDeliveryReport {
	order := slices.Clone(alert.Channels)
	byChannel := make(map[entity.NotificationChannel]*entity.ChannelReport)
	for _, ch := range order {
		byChannel[ch] = &entity.ChannelReport{Channel: ch}
	}

	for _, l := range logs {
		if l.Channel == "" {
			continue
		}
		cr, ok := byChannel[l.Channel]
		if !ok {
			cr = &entity.ChannelReport{Channel: l.Channel}
			byChannel[l.Channel] = cr
			order = append(order, l.Channel)
		}

		cr.Attempts++
		if l.Success {
			cr.Successes++
			if cr.LastDeliveredAt == nil {
				at := l.CreatedAt
				cr.LastDeliveredAt = &at
			}
		} else {
			cr.Failures++
			if cr.LastError == "" {
				cr.LastError = l.ErrorMessage
			}
		}
	}

	channels := make([]entity.ChannelReport, 0, len(order))
	for _, ch := range order {
		channels = append(channels, *byChannel[ch])
	}

	recent := logs
	if recent == nil {
		recent = []*entity.DeliveryLog{}
	}

	return &entity.AlertDeliveryReport{
		AlertID:             alert.ID,
		Status:              alert.Status,
		DeliveryAttempts:    alert.DeliveryAttempts,
		MaxDeliveryAttempts: alert.MaxDeliveryAttempts,
		SentAt:              alert.SentAt,
		Channels:            channels,
		Recent:              recent,
	}
}

// findOwnedAlert hides alerts of other users behind the not-found error.
func (s *alertService) findOwnedAlert(ctx context.Context, userID, alertID uuid.UUID) (*entity.Alert, error) {
	alert, err := s.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, domainerrors.ErrAlertNotFound
		}

		return nil, fmt.Errorf("failed to find alert by ID: %w", err)
	}

	if alert.UserID != userID {
		return nil, domainerrors.ErrAlertNotFound
	}

	return alert, nil
}
