package dispatch

import (
	"log/slog"

	"pricealert/config"
	"pricealert/internal/domain/repository"
	"pricealert/internal/domain/service"

	"go.uber.org/fx"
)

// Module provides the delivery engine: adapters, orchestrator, batch processor and statistics
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewOrchestratorConfig,
		NewStatistics,
		NewSuppressionPolicy,
		NewAdapterRegistryFromTransports,
		NewOrchestrator,
		newBatchProcessor,
	),
)

// NewOrchestratorConfig maps the delivery section of the configuration.
func NewOrchestratorConfig(cfg *config.Config) OrchestratorConfig {
	d := cfg.Delivery

	return OrchestratorConfig{
		ChannelTimeout: d.ChannelTimeout,
		LockTTL:        d.LockTTL,
		SaveRetries:    d.SaveRetries,
		Retry:          RetryPolicy{MaxAttempts: d.MaxAttempts, BaseDelay: d.BaseDelay},
	}
}

// TransportParams holds the transports behind the four channel adapters, injected by Fx.
type TransportParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Push    service.PushSender
	Email   service.EmailSender
	SMS     service.SMSSender
	InApp   service.InAppStore
	Devices repository.DeviceRepository
}

// NewAdapterRegistryFromTransports builds one adapter per channel.
func NewAdapterRegistryFromTransports(p TransportParams) *AdapterRegistry {
	timeout := p.Config.Delivery.ChannelTimeout

	return NewAdapterRegistry(
		NewPushAdapter(p.Push, p.Devices, timeout, p.Logger),
		NewEmailAdapter(p.Email, timeout, p.Logger),
		NewSMSAdapter(p.SMS, timeout, p.Logger),
		NewInAppAdapter(p.InApp, timeout, p.Logger),
	)
}

func newBatchProcessor(o *Orchestrator, alerts repository.AlertRepository, stats *Statistics, logger *slog.Logger) *BatchProcessor {
	return NewBatchProcessor(o, stats, logger, WithAlertLookup(alerts))
}
