package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"milestone-escrow/internal/adapter/cache"
	"milestone-escrow/internal/adapter/memory"
	"milestone-escrow/internal/adapter/postgres"
	"milestone-escrow/internal/config"
	"milestone-escrow/internal/config/configs"
	"milestone-escrow/internal/core/port"
	"milestone-escrow/internal/db"
)

// storage is the wired persistence layer. close releases its resources.
type storage struct {
	repo  port.CampaignRepository
	tx    port.Transactor
	close func()
}

// loadConfig reads the configuration and builds the logger.
func loadConfig() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := cfg.Log.Build()
	if err != nil {
		return cfg, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, logger.With(zap.String("env", cfg.Env)), nil
}

// openStorage connects the configured campaign store. The read cache is
// placed in front of it when enabled.
func openStorage(ctx context.Context, cfg config.Config, logger *zap.Logger) (*storage, error) {
	var s storage
	switch cfg.Storage.Driver {
	case configs.StorageMemory:
		store := memory.NewStore()
		s = storage{repo: store, tx: store, close: func() {}}
	default:
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection: %w", err)
		}
		repo := postgres.NewCampaignRepository(pool)
		s = storage{repo: repo, tx: repo, close: pool.Close}
	}

	if cfg.Cache.Size > 0 {
		s.repo = cache.New(s.repo, cfg.Cache.Size, cfg.Cache.TTL, logger)
	}
	logger.Info("storage ready",
		zap.String("driver", cfg.Storage.Driver),
		zap.Int("cache_bytes", cfg.Cache.Size),
	)
	return &s, nil
}
