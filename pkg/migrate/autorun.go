package migrate

import (
	"context"
	"fmt"

	"github.com/washlane/washlane-backend/pkg/config"
	"github.com/washlane/washlane-backend/pkg/db"
	"github.com/washlane/washlane-backend/pkg/db/models"
	"github.com/washlane/washlane-backend/pkg/logger"
)

// MaybeRun prepares the schema at startup. The SQLite fallback always uses
// GORM AutoMigrate (it has no migration history, matching how the local file
// store is created from scratch). Postgres runs goose migrations only in dev
// mode with the feature flag enabled; deployed environments migrate through
// cmd/migrate.
func MaybeRun(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if cfg.DB.IsSQLite() {
		logg.Info(logg.WithField(ctx, "path", cfg.DB.SQLitePath), "preparing sqlite schema")
		if err := client.DB().WithContext(ctx).AutoMigrate(&models.User{}, &models.Booking{}); err != nil {
			return fmt.Errorf("auto-migrating sqlite schema: %w", err)
		}
		return nil
	}

	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dir": DefaultDir})
	logg.Info(ctx, "running goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, cfg.DB.Driver, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "goose migrations completed")
	return nil
}
