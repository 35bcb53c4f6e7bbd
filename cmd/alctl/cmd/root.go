// Package cmd implements the alctl CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/trexxeseba/amadolibros-web/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "alctl",
		Short: "CLI client for the amadolibros catalog service",
		Long: "alctl is a command-line client for the amadolibros catalog API.\n" +
			"It triggers MercadoLibre syncs, inspects the cached catalog,\n" +
			"and reports quota and health from the terminal.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.alctl.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("admin-token", "", "admin token for sync triggers")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("admin_token", rootCmd.PersistentFlags().Lookup("admin-token")))

	rootCmd.AddCommand(syncCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(homeCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(bookCmd())
	rootCmd.AddCommand(quotaCmd())
	rootCmd.AddCommand(healthCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".alctl")
	}

	viper.SetEnvPrefix("ALCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	var opts []apiclient.Option
	if token := viper.GetString("admin_token"); token != "" {
		opts = append(opts, apiclient.WithAdminToken(token))
	}
	return apiclient.New(viper.GetString("server"), opts...)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
