package cli

import (
	"github.com/opencode-ai/atlas/internal/config"
	"github.com/opencode-ai/atlas/internal/db"
	"github.com/opencode-ai/atlas/internal/events"
	"github.com/opencode-ai/atlas/internal/layout"
	"github.com/opencode-ai/atlas/internal/logging"
	"github.com/opencode-ai/atlas/internal/theme"
	"github.com/opencode-ai/atlas/internal/tui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the Atlas TUI",
	Long:  "Launch the Atlas terminal user interface (TUI).",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func runTUI(cmd *cobra.Command) error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "TUI requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use CLI subcommands",
			NextStep: "atlas --help",
		}
	}

	cfg := GetConfig()

	// Console output would draw over the alt screen.
	if cfg.Logging.File == "" {
		logging.Disable()
	}

	database, err := openDatabase(cmd.Context())
	if err != nil {
		return err
	}
	defer database.Close()

	eventRepo := db.NewEventRepository(database)
	provider := newThemeProvider(cfg, db.NewSettingsRepository(database), eventRepo,
		theme.HintFor(cfg.UI.ColorScheme, true))

	return tui.Run(tui.Config{
		Provider: provider,
		Selector: layout.NewSelector(cfg.UI.Breakpoint, cfg.UI.CellWidth),
		Events:   eventRepo,
	})
}

// newThemeProvider reads the system scheme right away. The terminal background
// query has to finish before bubbletea starts reading the tty, or the reply
// lands in the key stream.
func newThemeProvider(cfg *config.Config, store theme.Store, recorder events.Repository, detect theme.HintFunc) *theme.Provider {
	scheme := ""
	if detect != nil {
		scheme = detect()
	}

	return theme.NewProvider(
		theme.NewGateway(store, logging.Component("theme")),
		theme.WithSchemeHint(theme.StaticHint(scheme)),
		theme.WithRecorder(recorder),
		theme.WithTimeout(cfg.UI.StorageTimeout),
	)
}
