package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/trexxeseba/amadolibros-web/internal/engine"
	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

var (
	syncForce bool
	syncItems bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one catalog sync and print the report",
	Long: "Run a single MercadoLibre catalog sync in this process, persist the\n" +
		"snapshot to the configured store and print the report as JSON.",
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncForce, "force", false, "ignore the sync cooldown")
	syncCmd.Flags().BoolVar(&syncItems, "items", false, "include every listing in the report")
	rootCmd.AddCommand(syncCmd)
}

func runSync(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if missing := a.cfg.MercadoLibre.MissingCredentials(); len(missing) > 0 {
		return fmt.Errorf("missing credentials: %s", strings.Join(missing, ", "))
	}

	report, err := a.engine.RunSync(ctx, engine.RunOptions{Force: syncForce, IncludeItems: syncItems})
	if err != nil {
		var cooldown *engine.CooldownError
		if errors.As(err, &cooldown) {
			return fmt.Errorf("%w (use --force to override)", err)
		}
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}

	if report.Status == domain.SyncError {
		return fmt.Errorf("sync failed: %s", report.Error)
	}
	return nil
}
