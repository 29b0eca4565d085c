package migration

import (
	"context"
	"log/slog"

	"hospital/config"
	"hospital/internal/domain/lifecycle"
	"hospital/internal/errors"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// AutoMigrateParams defines the dependencies of the start-up migration hook.
type AutoMigrateParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// RegisterAutoMigrate applies pending migrations on start when migration.autoMigrate is set.
// It must be invoked after the database constructor so the pool is already pinged.
func RegisterAutoMigrate(params AutoMigrateParams) {
	if params.Config.Migration == nil || !params.Config.Migration.AutoMigrate {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return Run(ctx, params.DB, params.Logger, func(m *Migrator) error {
				return m.Up()
			})
		},
	})
}

// Run opens a Migrator on db, hands it to fn and closes it afterwards.
func Run(ctx context.Context, db *gorm.DB, logger *slog.Logger, fn func(m *Migrator) error) (err error) {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB for migrations")
	}

	m, err := New(ctx, sqlDB, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := m.Close(); closeErr != nil {
			err = errors.Join(err, errors.Wrap(closeErr, "failed to close migrator"))
		}
	}()

	return fn(m)
}
