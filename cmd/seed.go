package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"milestone-escrow/internal/adapter/usecase"
	"milestone-escrow/internal/config/configs"
	"milestone-escrow/internal/db"
)

func seedCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "create campaigns from a seed file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			if cfg.Storage.Driver == configs.StorageMemory {
				return errors.New("seeding the memory store has no lasting effect")
			}

			seed, err := db.LoadSeedFile(file)
			if err != nil {
				return err
			}
			store, err := openStorage(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer store.close()

			svc := usecase.NewCampaignUseCase(store.repo, store.tx, cfg.Campaign.Policy(), logger)
			ids, err := db.Seed(cmd.Context(), svc, seed, time.Now(), logger)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			logger.Info("seed complete", zap.Int("campaigns", len(ids)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to a YAML, JSON or TOML seed file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
