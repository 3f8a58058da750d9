package app

import (
	"fmt"

	"go-timeoff/internal/config"
	"go-timeoff/internal/database"
	"go-timeoff/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the stores, applies migrations when enabled and mounts
// every module on router. The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	log := logger.Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(sqlDB, log); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
	if err != nil {
		// Redis only backs the organization cache and idempotency replay.
		log.Warn("redis unavailable, continuing without cache", zap.Error(err))
		rdb = nil
	}

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		_ = sqlDB.Close()
	}

	if err := registerModules(router, cfg, sqlDB, gormDB, rdb, logger); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}
