package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/navmark/internal/config"
	"github.com/ziadkadry99/navmark/internal/logging"
	"github.com/ziadkadry99/navmark/internal/navmark"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `navmark init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the command logger. --verbose forces debug level.
func newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logging.New(os.Stderr, string(cfg.Log.Format), level).With("version", Version)
}

// originFlag returns the --origin flag when set, otherwise the configured
// origin. ok is false when neither is set.
func originFlag(cmd *cobra.Command, cfg *config.Config) (navmark.Origin, bool, error) {
	if cmd.Flags().Changed("origin") {
		raw, _ := cmd.Flags().GetString("origin")
		o, err := navmark.ParseOrigin(raw)
		if err != nil {
			return navmark.Origin{}, false, err
		}
		return o, true, nil
	}
	return cfg.ParsedOrigin()
}

// siteDir returns the directory argument, falling back to the configured one.
func siteDir(args []string, cfg *config.Config) (string, error) {
	dir := cfg.SiteDir
	if len(args) > 0 {
		dir = args[0]
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("site directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("site directory %s is not a directory", dir)
	}
	return dir, nil
}
