// Package config loads Atlas configuration from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path        string        `mapstructure:"path"`
	BusyTimeout time.Duration `mapstructure:"busy_timeout"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// UIConfig controls theme and layout behavior.
type UIConfig struct {
	// ColorScheme is the system hint used on first run: light, dark or auto.
	ColorScheme string `mapstructure:"color_scheme"`

	// Breakpoint is the logical width at which the desktop layout is used.
	Breakpoint int `mapstructure:"breakpoint"`

	// CellWidth converts terminal columns into logical width units.
	CellWidth int `mapstructure:"cell_width"`

	// StorageTimeout bounds each theme load/save against the database.
	StorageTimeout time.Duration `mapstructure:"storage_timeout"`
}

// EnvPrefix is prepended to environment overrides, e.g. ATLAS_UI_COLOR_SCHEME.
const EnvPrefix = "ATLAS"

// configDirFunc is swapped in tests.
var configDirFunc = defaultConfigDir

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:        filepath.Join(defaultDataDir(), "atlas.db"),
			BusyTimeout: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		UI: UIConfig{
			ColorScheme:    "auto",
			Breakpoint:     900,
			CellWidth:      8,
			StorageTimeout: 2 * time.Second,
		},
	}
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	return configDirFunc()
}

// Load reads configuration. An explicit path must exist; otherwise a missing
// config.yaml in ConfigDir is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(ConfigDir())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Database.Path = expandHome(cfg.Database.Path)
	cfg.Logging.File = expandHome(cfg.Logging.File)
	cfg.UI.ColorScheme = strings.ToLower(strings.TrimSpace(cfg.UI.ColorScheme))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("database.path is required")
	}
	switch c.UI.ColorScheme {
	case "", "auto", "light", "dark":
	default:
		return fmt.Errorf("ui.color_scheme must be light, dark or auto, got %q", c.UI.ColorScheme)
	}
	if c.UI.Breakpoint <= 0 {
		return fmt.Errorf("ui.breakpoint must be positive, got %d", c.UI.Breakpoint)
	}
	if c.UI.CellWidth <= 0 {
		return fmt.Errorf("ui.cell_width must be positive, got %d", c.UI.CellWidth)
	}
	if c.UI.StorageTimeout <= 0 {
		return fmt.Errorf("ui.storage_timeout must be positive, got %s", c.UI.StorageTimeout)
	}
	return nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("database.path", cfg.Database.Path)
	v.SetDefault("database.busy_timeout", cfg.Database.BusyTimeout)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("ui.color_scheme", cfg.UI.ColorScheme)
	v.SetDefault("ui.breakpoint", cfg.UI.Breakpoint)
	v.SetDefault("ui.cell_width", cfg.UI.CellWidth)
	v.SetDefault("ui.storage_timeout", cfg.UI.StorageTimeout)
}

func defaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "atlas")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "atlas")
}

func defaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "atlas")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "atlas")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
