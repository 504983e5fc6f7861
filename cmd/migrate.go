package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"milestone-escrow/internal/db"
)

func migrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "manage the database schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "apply all pending migrations",
			RunE: func(*cobra.Command, []string) error {
				return runMigration("up", db.Migrate)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "roll back all migrations",
			RunE: func(*cobra.Command, []string) error {
				return runMigration("down", db.Rollback)
			},
		},
	)
	return cmd
}

func runMigration(direction string, fn func(addr string) error) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err = fn(cfg.Psql.Addr.String()); err != nil {
		logger.Error("migration error", zap.String("direction", direction), zap.Error(err))
		return err
	}
	logger.Info("migrations applied successfully", zap.String("direction", direction))
	return nil
}
