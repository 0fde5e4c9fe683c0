package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quakewatch/quake-explorer/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "quake-explorer",
	Short: "Interactive explorer for Nepal earthquake data",
	Long:  "Loads a decade of Nepal earthquake records, assigns each to its nearest district, and serves an interactive map and district-count dashboard.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
