package postgres

import "go.uber.org/fx"

// Module provides the database handle and every repository
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		NewTransactionManager,
		NewAlertRepository,
		NewDeliveryLogRepository,
		NewDeliveryHistory,
		NewPreferencesRepository,
		NewRecipientRepository,
		NewDeviceRepository,
	),
)
