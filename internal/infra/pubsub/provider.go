package pubsub

import (
	"context"
	"log/slog"

	"pricealert/config"
	"pricealert/internal/domain/constants"
	"pricealert/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopSender is used when no SMS gateway is configured
type noopSender struct {
	logger *slog.Logger
}

func (p *noopSender) SendSMS(ctx context.Context, msg *service.SMSMessage) (string, error) {
	p.logger.DebugContext(ctx, "[NoopSMS] SMS gateway disabled, skipping",
		slog.String("alert_id", msg.AlertID),
	)

	return "noop-" + msg.RequestID, nil
}

func (p *noopSender) Close() error {
	return nil
}

// SenderParams holds dependencies for SMSSender, injected by Fx
type SenderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSMSSender creates an SMSSender based on configuration
func NewSMSSender(params SenderParams) (service.SMSSender, error) {
	cfg := params.Config.SMS
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("SMS gateway not configured, using no-op sender")

		return &noopSender{logger: logger}, nil
	}

	var sender service.SMSSender
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for SMS",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		sender = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		sender, err = NewGoogleSMSPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown sms provider: %s", cfg.Provider)
	}

	if cfg.RatePerSecond > 0 {
		sender = newRateLimitedSender(sender, cfg.RatePerSecond, cfg.Burst)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing SMSSender")

			return sender.Close()
		},
	})

	return sender, nil
}

// Module provides the SMS gateway FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSMSSender),
)
