// Package dispatch is the alert delivery engine: it decides whether a pending alert may
// fire, fans it out over the user's channels and records what happened.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pricealert/internal/domain/entity"
	"pricealert/internal/errors"
)

// ChannelAdapter delivers a rendered alert over one channel. Adapters never return errors:
// every failure, including a panic inside the transport, becomes a failed DeliveryResult.
type ChannelAdapter interface {
	// Channel returns the channel this adapter serves.
	Channel() entity.NotificationChannel

	// Deliver renders the alert and hands it to the transport.
	Deliver(ctx context.Context, alert *entity.Alert, rcpt *entity.Recipient) entity.DeliveryResult

	// Preview renders and validates the alert without calling the transport.
	Preview(ctx context.Context, alert *entity.Alert, rcpt *entity.Recipient) entity.DeliveryResult
}

// AdapterRegistry maps each channel to the adapter that serves it.
type AdapterRegistry struct {
	adapters map[entity.NotificationChannel]ChannelAdapter
}

// NewAdapterRegistry builds a lookup table. A later adapter for the same channel replaces an earlier one.
func NewAdapterRegistry(adapters ...ChannelAdapter) *AdapterRegistry {
	r := &AdapterRegistry{adapters: make(map[entity.NotificationChannel]ChannelAdapter, len(adapters))}
	for _, a := range adapters {
		r.adapters[a.Channel()] = a
	}

	return r
}

// Lookup returns the adapter for channel, if one is registered.
func (r *AdapterRegistry) Lookup(channel entity.NotificationChannel) (ChannelAdapter, bool) {
	a, ok := r.adapters[channel]

	return a, ok
}

// sendFunc performs the transport call and returns the gateway message ID.
type sendFunc func(ctx context.Context) (string, error)

// baseAdapter holds what every channel adapter shares.
type baseAdapter struct {
	channel entity.NotificationChannel
	timeout time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

func newBaseAdapter(channel entity.NotificationChannel, timeout time.Duration, logger *slog.Logger) baseAdapter {
	if logger == nil {
		logger = slog.Default()
	}

	return baseAdapter{
		channel: channel,
		timeout: timeout,
		logger:  logger.With(slog.String("channel", string(channel))),
		now:     time.Now,
	}
}

// Channel implements ChannelAdapter.
func (b *baseAdapter) Channel() entity.NotificationChannel {
	return b.channel
}

// run converts one prepared delivery into a result. prepErr reports a rendering or
// destination problem found before any transport call; dryRun stops right before send.
func (b *baseAdapter) run(
	ctx context.Context,
	alert *entity.Alert,
	dryRun bool,
	prepErr error,
	send sendFunc,
) (result entity.DeliveryResult) {
	result = entity.NewDeliveryResult(alert, b.channel)
	result.Metadata.DryRun = dryRun
	start := b.now()

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("[Dispatch] Adapter panicked",
				slog.String("alert_id", alert.ID.String()),
				slog.Any("panic", r),
			)
			result.Success = false
			result.DeliveredAt = nil
			result.MessageID = ""
			result.Error = fmt.Sprintf("adapter panic: %v", r)
			result.Retryable = false
		}
		result.Metadata.DeliveryTimeMs = b.now().Sub(start).Milliseconds()
	}()

	if prepErr != nil {
		result.Error = prepErr.Error()

		return result
	}

	if dryRun {
		result.Success = true

		return result
	}

	sendCtx := ctx
	if b.timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	messageID, err := send(sendCtx)
	if err != nil {
		result.Error = err.Error()
		result.Retryable = !isPermanent(err) && ctx.Err() == nil
		if errors.IsTimeout(err) && ctx.Err() == nil {
			result.Error = entity.DeliveryErrTimeout
		}

		return result
	}

	deliveredAt := b.now()
	result.Success = true
	result.DeliveredAt = &deliveredAt
	result.MessageID = messageID

	return result
}

// transportError wraps a gateway failure, marking rejections as permanent.
func transportError(channel entity.NotificationChannel, err error) error {
	te := &TransportError{Channel: channel, Err: err}
	if errors.Is(err, errRejected) {
		return Permanent(te)
	}

	return te
}
