package main

import (
	"fmt"

	"github.com/jonathan/portfolio-site/internal/config"
	"github.com/spf13/cobra"
)

// resolveDataDir prefers an explicit --data-dir and falls back to PORTFOLIO_DATA_DIR
// or its default.
func resolveDataDir(cmd *cobra.Command, flagValue string) (string, error) {
	if cmd.Flags().Changed("data-dir") {
		return flagValue, nil
	}
	envCfg, err := config.FromEnv()
	if err != nil {
		return "", err
	}
	if err := (&config.Config{DataDir: envCfg.DataDir}).Validate(); err != nil {
		return "", fmt.Errorf("invalid data directory: %w", err)
	}
	return envCfg.DataDir, nil
}
