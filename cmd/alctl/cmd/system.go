package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the MercadoLibre API usage of the server",
		Example: `  alctl quota
  alctl quota --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			q, err := c.GetQuota(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(q)
			}
			return printQuota(os.Stdout, q)
		},
	}
}

func healthCmd() *cobra.Command {
	var kv bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Show service health and credential status",
		Example: `  alctl health
  alctl health --kv`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			h, err := c.GetHealth(context.Background(), kv)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(h)
			}
			return printHealth(os.Stdout, h)
		},
	}

	cmd.Flags().BoolVar(&kv, "kv", false, "round-trip a key through the store")

	return cmd
}
