package impl

import (
	"pricealert/config"
	"pricealert/internal/dispatch"

	"go.uber.org/fx"
)

// Module provides the alert use cases
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewAlertServiceConfig,
		NewAlertService,
	),
)

// NewAlertServiceConfig maps the delivery section of the configuration.
func NewAlertServiceConfig(cfg *config.Config) AlertServiceConfig {
	d := cfg.Delivery

	return AlertServiceConfig{
		Batch: dispatch.BatchConfig{
			BatchSize:  d.BatchSize,
			MaxRetries: d.BatchMaxRetries,
			RetryDelay: d.BatchRetryDelay,
			Timeout:    d.BatchTimeout,
		},
		ProcessLimit: d.ProcessLimit,
		HistoryLimit: d.HistoryLimit,
	}
}
