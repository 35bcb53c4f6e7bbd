package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/trexxeseba/amadolibros-web/internal/api/client"
	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

func syncCmd() *cobra.Command {
	var (
		force bool
		items bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Trigger a MercadoLibre catalog sync",
		Long: "Trigger a full catalog sync on the server and wait for the report.\n" +
			"The server rejects runs inside the cooldown window unless --force is set.",
		Example: `  alctl sync
  alctl sync --force --admin-token $ADMIN_TOKEN
  alctl sync --items --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			report, err := c.Sync(context.Background(), apiclient.SyncOptions{Force: force, Items: items})
			if err != nil {
				return err
			}
			if jsonOutput() {
				if err := outputJSON(report); err != nil {
					return err
				}
			} else if err := printReport(os.Stdout, report); err != nil {
				return err
			}
			if report.Status == domain.SyncError {
				return fmt.Errorf("sync failed: %s", report.Error)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "ignore the sync cooldown")
	cmd.Flags().BoolVar(&items, "items", false, "include every listing in the report")

	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last sync report",
		Example: `  alctl status
  alctl status --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			status, err := c.GetSyncStatus(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(status)
			}
			if status.Running {
				fmt.Println("A sync is running now.")
			}
			if status.Report == nil {
				fmt.Println("No sync has run yet.")
				return nil
			}
			return printReport(os.Stdout, status.Report)
		},
	}
}
