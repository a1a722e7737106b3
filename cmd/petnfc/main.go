package main

import (
	"context"
	"log/slog"
	"os"

	"petnfc/config"
	"petnfc/internal/delivery"
	"petnfc/internal/delivery/api"
	"petnfc/internal/delivery/api/router/handler"
	"petnfc/internal/infra/geo"
	logs "petnfc/internal/infra/log"
	"petnfc/internal/infra/persistence/postgres"
	"petnfc/internal/infra/pubsub"
	"petnfc/internal/infra/qrcode"
	"petnfc/internal/infra/ratelimit"
	"petnfc/internal/infra/webhook"
	"petnfc/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPetRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			ratelimit.NewRateLimiter,
			geo.NewGeoLocator,
			webhook.NewAlertDispatcher,
			qrcode.NewTagCodeGenerator,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewPetService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNotifyHandler,
			handler.NewPetHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
