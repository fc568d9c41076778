package dispatch

import (
	"context"
	"time"

	"pricealert/internal/domain/entity"
)

// RetryPolicy bounds how often a single channel is re-attempted within one pass.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryPolicy is used when the caller does not supply one.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second}

// Backoff returns the delay before the given retry: base * 2^(attempt-1).
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		return 0
	}

	return p.BaseDelay << (attempt - 1)
}

// Retrier re-runs an adapter on transient transport failures.
type Retrier struct {
	policy RetryPolicy
	sleep  func(ctx context.Context, d time.Duration) error
}

// RetrierOption configures a Retrier.
type RetrierOption func(*Retrier)

// WithSleep replaces the backoff sleep, mainly for tests.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) RetrierOption {
	return func(r *Retrier) {
		r.sleep = sleep
	}
}

// NewRetrier creates a retry controller. A non-positive MaxAttempts means a single attempt.
func NewRetrier(policy RetryPolicy, opts ...RetrierOption) *Retrier {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}

	r := &Retrier{policy: policy, sleep: sleepContext}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Do delivers through adapter, retrying retryable failures with exponential backoff.
// Non-retryable failures come back as the result with a nil error. Once the budget is spent it
// returns the last result together with a *TerminalDeliveryError.
func (r *Retrier) Do(
	ctx context.Context,
	adapter ChannelAdapter,
	alert *entity.Alert,
	rcpt *entity.Recipient,
) (entity.DeliveryResult, error) {
	var result entity.DeliveryResult

	for attempt := 1; ; attempt++ {
		result = adapter.Deliver(ctx, alert, rcpt)
		result.Metadata.Attempts = attempt

		if result.Success || !result.Retryable {
			return result, nil
		}

		if attempt >= r.policy.MaxAttempts {
			return result, &TerminalDeliveryError{
				Channel:  adapter.Channel(),
				Attempts: attempt,
				LastErr:  result.Error,
			}
		}

		if err := r.sleep(ctx, r.policy.Backoff(attempt)); err != nil {
			result.Error = entity.DeliveryErrCancelled
			result.Retryable = false

			return result, nil
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
