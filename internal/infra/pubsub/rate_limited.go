package pubsub

import (
	"context"

	"pricealert/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// rateLimitedSender throttles hand-offs to the gateway
type rateLimitedSender struct {
	next    service.SMSSender
	limiter *rate.Limiter
}

func newRateLimitedSender(next service.SMSSender, perSecond float64, burst int) service.SMSSender {
	if burst <= 0 {
		burst = 1
	}

	return &rateLimitedSender{next: next, limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// SendSMS waits for a token and forwards the message. A wait cut short by the context is a transport failure.
func (s *rateLimitedSender) SendSMS(ctx context.Context, msg *service.SMSMessage) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", errors.Wrap(err, "sms rate limit wait")
	}

	return s.next.SendSMS(ctx, msg)
}

func (s *rateLimitedSender) Close() error {
	return s.next.Close()
}
