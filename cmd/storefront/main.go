package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/firebase"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

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
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startFeed,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			firebase.NewApps,
		),
		persistence.Module,
		pubsub.Module,
		auth.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
		),
	)
}

// newQRCodeService creates the share code renderer from qrcode config
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewStoreFeed,
			impl.NewFavoriteService,
			impl.NewStoreService,
			impl.NewMapSessionFactory,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewFeedHandler,
			handler.NewStoreHandler,
			handler.NewFavoriteHandler,
			handler.NewSellerHandler,
			handler.NewMapSessionHandler,
			handler.NewTestHandler,
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

// startFeed keeps one shared store subscription for every client of this process.
func startFeed(lc fx.Lifecycle, feed usecase.StoreFeed) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			// The start context ends once startup completes; the subscription must outlive it.
			return feed.Start(context.Background())
		},
		OnStop: func(context.Context) error {
			feed.Close()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
