package dispatch

import (
	"context"
	"time"

	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/repository"
)

// SuppressionDecision says whether a pass may proceed. Suppression is a skip, not a failure.
type SuppressionDecision struct {
	Suppressed bool
	Reason     entity.SuppressionReason
	RetryAfter *time.Time
}

func allow() SuppressionDecision {
	return SuppressionDecision{}
}

func suppress(reason entity.SuppressionReason, retryAfter time.Time) SuppressionDecision {
	return SuppressionDecision{Suppressed: true, Reason: reason, RetryAfter: &retryAfter}
}

// SuppressionPolicy decides whether an alert may fire right now. It has no side effects.
type SuppressionPolicy struct {
	history repository.DeliveryHistory
}

// NewSuppressionPolicy creates a policy that reads past deliveries from history.
func NewSuppressionPolicy(history repository.DeliveryHistory) *SuppressionPolicy {
	return &SuppressionPolicy{history: history}
}

// Evaluate runs the checks in order and returns the first one that blocks the pass.
// Quiet hours, cooldown and caps are evaluated against now's wall clock in now's location.
func (p *SuppressionPolicy) Evaluate(
	ctx context.Context,
	alert *entity.Alert,
	prefs *entity.NotificationPreferences,
	now time.Time,
) (SuppressionDecision, error) {
	if !alert.Schedule.Active {
		return SuppressionDecision{Suppressed: true, Reason: entity.SuppressScheduleInactive}, nil
	}

	if alert.ScheduledAt.After(now) {
		return suppress(entity.SuppressNotDue, alert.ScheduledAt), nil
	}

	if qh := alert.Schedule.QuietHours; qh != nil && qh.Contains(now) {
		return suppress(entity.SuppressQuietHours, qh.NextEnd(now)), nil
	}
	if prefs != nil && prefs.QuietHours != nil && prefs.QuietHours.Contains(now) {
		return suppress(entity.SuppressQuietHours, prefs.QuietHours.NextEnd(now)), nil
	}

	if alert.Schedule.CooldownMinutes > 0 {
		last, err := p.history.LastSuccessfulDelivery(ctx, alert.UserID, alert.ProductID)
		if err != nil {
			return SuppressionDecision{}, &RepositoryError{Op: "last successful delivery", Err: err}
		}
		cooldown := time.Duration(alert.Schedule.CooldownMinutes) * time.Minute
		if last != nil && now.Sub(*last) < cooldown {
			return suppress(entity.SuppressCooldown, last.Add(cooldown)), nil
		}
	}

	midnight := startOfDay(now)
	tomorrow := midnight.AddDate(0, 0, 1)

	if alert.Schedule.MaxAlertsPerDay > 0 {
		n, err := p.history.CountAlertPassesSince(ctx, alert.ID, midnight)
		if err != nil {
			return SuppressionDecision{}, &RepositoryError{Op: "count alert passes", Err: err}
		}
		if n >= alert.Schedule.MaxAlertsPerDay {
			return suppress(entity.SuppressDailyCap, tomorrow), nil
		}
	}

	if prefs == nil {
		return allow(), nil
	}

	if prefs.MaxNotificationsPerDay > 0 {
		n, err := p.history.CountUserPassesSince(ctx, alert.UserID, midnight)
		if err != nil {
			return SuppressionDecision{}, &RepositoryError{Op: "count user passes", Err: err}
		}
		if n >= prefs.MaxNotificationsPerDay {
			return suppress(entity.SuppressDailyCap, tomorrow), nil
		}
	}

	if prefs.MaxNotificationsPerHour > 0 {
		n, err := p.history.CountUserPassesSince(ctx, alert.UserID, now.Add(-time.Hour))
		if err != nil {
			return SuppressionDecision{}, &RepositoryError{Op: "count user passes", Err: err}
		}
		if n >= prefs.MaxNotificationsPerHour {
			return suppress(entity.SuppressHourlyCap, now.Add(time.Hour)), nil
		}
	}

	return allow(), nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
