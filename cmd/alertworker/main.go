package main

import (
	"context"
	"log/slog"
	"os"

	"pricealert/config"
	"pricealert/internal/delivery"
	"pricealert/internal/delivery/worker"
	"pricealert/internal/delivery/worker/handler"
	"pricealert/internal/dispatch"
	"pricealert/internal/infra/cache"
	logs "pricealert/internal/infra/log"
	"pricealert/internal/infra/notification"
	"pricealert/internal/infra/persistence/postgres"
	"pricealert/internal/infra/pubsub"
	"pricealert/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		postgres.Module,
		cache.Module,
		notification.Module,
		pubsub.Module,
		dispatch.Module,
		impl.Module,
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewPushHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			worker.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
		fx.Annotate(
			worker.NewScheduler,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
