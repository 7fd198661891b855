package main

import (
	"log/slog"

	"github.com/katalvlaran/hmmgen/internal/config"
	"github.com/katalvlaran/hmmgen/internal/logging"
	"github.com/spf13/cobra"
)

// loadFile reads --config, falling back to the embedded preset.
func loadFile(cmd *cobra.Command) (*config.File, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// createLogger builds the stderr logger for --log-level.
func createLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.NewWriter(cmd.ErrOrStderr(), level), nil
}
