package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List every listing of the last synced snapshot",
		Example: `  alctl catalog
  alctl catalog --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			snap, err := c.GetCatalog(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(snap)
			}
			if err := printListingsTable(os.Stdout, snap.Items); err != nil {
				return err
			}
			fmt.Printf("\n%d listings, last sync %s\n", snap.Total, snap.LastSync.Local().Format(timeLayout))
			return nil
		},
	}
}

func homeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "List the active listings shown on the storefront",
		Example: `  alctl home
  alctl home --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			items, err := c.GetHome(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(items)
			}
			if len(items) == 0 {
				fmt.Println("No active listings.")
				return nil
			}
			return printListingsTable(os.Stdout, items)
		},
	}
}

func searchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the cached catalog by title, author, ISBN or publisher",
		Args:  cobra.ExactArgs(1),
		Example: `  alctl search "cortazar"
  alctl search 9788420471839
  alctl search borges --limit 5 --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.Search(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Results) == 0 {
				fmt.Printf("No listings match %q.\n", args[0])
				return nil
			}
			return printSearchTable(os.Stdout, resp.Results)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum results (server default when 0)")

	return cmd
}

func bookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "book <id>",
		Short: "Show the details of one listing",
		Args:  cobra.ExactArgs(1),
		Example: `  alctl book MLU123456789
  alctl book MLU123456789 --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			book, err := c.GetBook(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(book)
			}
			return printListingDetail(os.Stdout, &book.Item, book.Source)
		},
	}
}
