// Package main is the entry point for the dexboard command
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dexboard/cmd/server/client"
	"github.com/KirkDiggler/dexboard/internal/config"
)

var (
	configPath string
	dataPath   string
	dataFormat string

	// cfg is loaded before any subcommand runs
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dexboard",
	Short: "Creature dataset fetcher and dashboard",
	Long: `dexboard crawls the public creature API into a local snapshot and serves a
dashboard for browsing, comparing and charting the creatures in it.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "dexboard.yaml", "Config file (skipped when missing)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Snapshot path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&dataFormat, "format", "", "Snapshot format: csv or sqlite (overrides config)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("data") {
		loaded.Data.Path = dataPath
	}
	if cmd.Flags().Changed("format") {
		loaded.Data.Format = dataFormat
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	slog.SetDefault(cfg.Log.Logger(os.Stderr))
	return nil
}
