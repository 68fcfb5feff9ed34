package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"realign/internal/config"
)

// loadConfig reads --config, or the nearest .realign.toml, or the defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("config: %w", err)
		}
		return cfg, nil
	}
	manifest, ok, err := config.Discover(".")
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	if !ok {
		return config.Default(), nil
	}
	return manifest.Config, nil
}
