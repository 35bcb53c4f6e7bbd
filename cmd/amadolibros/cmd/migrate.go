package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/trexxeseba/amadolibros-web/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations for the postgres store",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Store.Backend != store.BackendPostgres {
		logger.Info("store backend has no schema, nothing to migrate", "backend", cfg.Store.Backend)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// openStore applies the migrations.
	s, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	defer func() { _ = s.Close() }()

	logger.Info("migrations complete")
	return nil
}
