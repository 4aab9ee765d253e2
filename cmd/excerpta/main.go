package main

import (
	"context"
	"log/slog"
	"os"

	"excerpta/config"
	"excerpta/internal/delivery"
	"excerpta/internal/delivery/api"
	apimiddleware "excerpta/internal/delivery/api/middleware"
	apihandler "excerpta/internal/delivery/api/router/handler"
	"excerpta/internal/delivery/http"
	"excerpta/internal/delivery/http/middleware"
	"excerpta/internal/delivery/http/router/handler"
	"excerpta/internal/domain/service"
	"excerpta/internal/infra/auth"
	"excerpta/internal/infra/clock"
	logs "excerpta/internal/infra/log"
	"excerpta/internal/infra/persistence/postgres"
	"excerpta/internal/infra/qrcode"
	"excerpta/internal/usecase/impl"

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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			postgres.NewDeviceRepository,
			postgres.NewSourceRepository,
			postgres.NewHighlightRepository,
			postgres.NewTagRepository,
			postgres.NewCollectionRepository,
			postgres.NewReminderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			auth.NewKeyGenerator,
			clock.NewSystemClock,
			newQRCodeService,
		),
	)
}

// newPasswordHasher creates a password hasher with dependency injection
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Password == nil {
		return auth.NewPBKDF2Hasher(0)
	}

	return auth.NewPBKDF2Hasher(cfg.Password.Iterations)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewDeviceService,
			impl.NewHighlightService,
			impl.NewSourceService,
			impl.NewCollectionService,
			impl.NewReminderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			apimiddleware.NewDeviceAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewDeviceHandler,
			handler.NewHighlightHandler,
			handler.NewSourceHandler,
			handler.NewCollectionHandler,
			handler.NewReminderHandler,
			apihandler.NewIngestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
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
