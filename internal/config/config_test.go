package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withConfigDir(t *testing.T, dir string) {
	t.Helper()
	original := configDirFunc
	configDirFunc = func() string { return dir }
	t.Cleanup(func() { configDirFunc = original })
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	withConfigDir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	defaults := DefaultConfig()
	require.Equal(t, defaults.UI.Breakpoint, cfg.UI.Breakpoint)
	require.Equal(t, 900, cfg.UI.Breakpoint)
	require.Equal(t, 8, cfg.UI.CellWidth)
	require.Equal(t, "auto", cfg.UI.ColorScheme)
	require.Equal(t, 2*time.Second, cfg.UI.StorageTimeout)
	require.Equal(t, defaults.Database.Path, cfg.Database.Path)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
database:
  path: ` + filepath.Join(dir, "world.db") + `
logging:
  level: debug
ui:
  color_scheme: Dark
  cell_width: 10
  storage_timeout: 500ms
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "world.db"), cfg.Database.Path)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "dark", cfg.UI.ColorScheme)
	require.Equal(t, 10, cfg.UI.CellWidth)
	require.Equal(t, 900, cfg.UI.Breakpoint)
	require.Equal(t, 500*time.Millisecond, cfg.UI.StorageTimeout)
}

func TestLoadSearchesConfigDir(t *testing.T) {
	dir := t.TempDir()
	withConfigDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("ui:\n  breakpoint: 1200\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 1200, cfg.UI.Breakpoint)
}

func TestLoadEnvOverride(t *testing.T) {
	withConfigDir(t, t.TempDir())
	t.Setenv("ATLAS_UI_COLOR_SCHEME", "light")
	t.Setenv("ATLAS_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "light", cfg.UI.ColorScheme)
	require.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.UI.ColorScheme = "sepia"
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.UI.Breakpoint = 0
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.UI.CellWidth = -1
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Database.Path = ""
	require.Error(t, cfg.Validate())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "atlas.db"), expandHome("~/atlas.db"))
	require.Equal(t, "/tmp/atlas.db", expandHome("/tmp/atlas.db"))
}
