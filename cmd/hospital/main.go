package main

import (
	"context"
	"log/slog"
	"os"

	"hospital/config"
	"hospital/internal/delivery"
	"hospital/internal/delivery/api"
	apimiddleware "hospital/internal/delivery/api/middleware"
	"hospital/internal/delivery/api/router/handler"
	deliverymiddleware "hospital/internal/delivery/middleware"
	"hospital/internal/infra/auth"
	logs "hospital/internal/infra/log"
	"hospital/internal/infra/persistence/migration"
	"hospital/internal/infra/persistence/postgres"
	"hospital/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
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
			migration.RegisterAutoMigrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPatientRepository,
			postgres.NewDietChartRepository,
			postgres.NewMealRepository,
			postgres.NewDeliveryRepository,
			postgres.NewPantryStaffRepository,
			postgres.NewDashboardRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPatientService,
			impl.NewDietChartService,
			impl.NewMealService,
			impl.NewDeliveryService,
			impl.NewPantryService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			deliverymiddleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPatientHandler,
			handler.NewDietChartHandler,
			handler.NewMealHandler,
			handler.NewDeliveryHandler,
			handler.NewPantryHandler,
			handler.NewDashboardHandler,
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

// startServer begins serving once every earlier start hook, migrations included, has completed.
func startServer(params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(context.Background()); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
