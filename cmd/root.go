package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andrisbotar/factory-analysis/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "factory-analysis",
	Short: "Plant modification register analysis",
	Long:  "Reads the site modification register, normalizes its inconsistent categorical fields, and produces counts per year, area, plant, and project.",
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
