package notification

import (
	"context"
	"log/slog"

	"pricealert/config"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// FirebaseParams holds dependencies for the Firebase app, injected by Fx
type FirebaseParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebaseApp initialises the Firebase app shared by push and in-app delivery.
// It returns a nil app when Firebase is not configured.
func NewFirebaseApp(params FirebaseParams) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push and in-app delivery use log senders")

		return nil, nil
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(params.Ctx, fbConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}
