// Package notification implements the push, email and in-app transports.
package notification

import "go.uber.org/fx"

// Module provides the notification transports
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewFirebaseApp,
		NewPushSender,
		NewEmailSender,
		NewInAppStore,
	),
)
