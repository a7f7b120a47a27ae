// Package cli implements the atlas command line.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/opencode-ai/atlas/internal/config"
	"github.com/opencode-ai/atlas/internal/db"
	"github.com/opencode-ai/atlas/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile        string
	logLevel       string
	jsonOutput     bool
	nonInteractive bool

	appConfig *config.Config
	closeLogs func() error
)

var rootCmd = &cobra.Command{
	Use:   "atlas",
	Short: "Tabletop world and map companion",
	Long: `Atlas keeps track of the worlds and maps of your tabletop campaigns.

Run "atlas ui" to open the terminal interface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLogs != nil {
			return closeLogs()
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/atlas/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&jsonOutput, "json", false, "write machine-readable JSON output")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or open the TUI")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx available to subcommands.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// GetConfig returns the loaded configuration, or nil before initialization.
func GetConfig() *config.Config {
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

func initConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return &PreflightError{
			Message:  err.Error(),
			Hint:     "Check the config file syntax and ATLAS_* environment variables",
			NextStep: "atlas --config <path> --help",
		}
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	closeFn, err := logging.Init(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	if err != nil {
		return err
	}

	appConfig = cfg
	closeLogs = closeFn
	return nil
}

func openDatabase(ctx context.Context) (*db.DB, error) {
	cfg := GetConfig()
	if cfg == nil {
		return nil, errors.New("configuration not loaded")
	}
	database, err := db.Open(ctx, db.Config{
		Path:        cfg.Database.Path,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return nil, &PreflightError{
			Message:  fmt.Sprintf("cannot open database: %v", err),
			Hint:     "Set database.path in the config file or ATLAS_DATABASE_PATH",
			NextStep: "atlas theme get",
		}
	}
	return database, nil
}

// WriteOutput writes value as indented JSON.
func WriteOutput(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
