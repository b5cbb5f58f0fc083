// Package initializer builds the application dependencies from config.
package initializer

import (
	"fmt"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/infra/cache"
	"github.com/amirasaad/ledger/infra/repository/memory"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
)

// InitializeDependencies sets up logging, the store selected by
// DATABASE_DRIVER and, when REDIS_URL is set, the shared limiter storage.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := SetupLogger(cfg.Log)
	deps.Logger = logger

	switch cfg.DB.Driver {
	case config.DriverMemory:
		logger.Warn("Using in-memory store; data is lost on exit")
		deps.Uow = memory.NewUoW(memory.NewStore())
	default:
		db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
		if err != nil {
			logger.Error("Failed to initialize database", "error", err)
			return nil, err
		}
		if err := infra.RunMigrations(db); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		deps.Uow = infra.NewUoW(db)
	}

	if cfg.Redis != nil && cfg.Redis.URL != "" {
		storage, err := cache.NewRedisStorage(cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		deps.LimiterStorage = storage
	}

	return deps, nil
}
