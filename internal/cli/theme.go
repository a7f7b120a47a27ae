package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/opencode-ai/atlas/internal/db"
	"github.com/opencode-ai/atlas/internal/events"
	"github.com/opencode-ai/atlas/internal/logging"
	"github.com/opencode-ai/atlas/internal/models"
	"github.com/opencode-ai/atlas/internal/theme"
	"github.com/opencode-ai/atlas/internal/tui/styles"
	"github.com/spf13/cobra"
)

var historyLimit int

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeGetCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeHistoryCmd)
	themeCmd.AddCommand(themeResetCmd)

	themeHistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of changes to show")
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect and change the color theme",
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeThemeList(cmd.OutOrStdout())
	},
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the theme the UI will start with",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close()

		gateway := theme.NewGateway(db.NewSettingsRepository(database), logging.Component("theme"))
		hint := theme.HintFor(GetConfig().UI.ColorScheme, IsInteractive())
		return writeThemeGet(cmd.Context(), cmd.OutOrStdout(), gateway, hint)
	},
}

var themeSetCmd = &cobra.Command{
	Use:   "set <theme>",
	Short: "Persist a theme choice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close()

		gateway := theme.NewGateway(db.NewSettingsRepository(database), logging.Component("theme"))
		return setTheme(cmd.Context(), cmd.OutOrStdout(), gateway, db.NewEventRepository(database), args[0])
	},
}

var themeHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent theme changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close()

		return writeThemeHistory(cmd.Context(), cmd.OutOrStdout(), db.NewEventRepository(database), historyLimit)
	},
}

var themeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved theme so the next start uses the first-run default",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close()

		return resetTheme(cmd.Context(), cmd.OutOrStdout(), db.NewSettingsRepository(database))
	},
}

type themeInfo struct {
	ID     models.ThemeID `json:"id"`
	Name   string         `json:"name"`
	Dark   bool           `json:"dark"`
}

type themeStatus struct {
	ID        models.ThemeID `json:"id"`
	Name      string         `json:"name"`
	Persisted bool           `json:"persisted"`
}

type themeChange struct {
	Timestamp time.Time      `json:"timestamp"`
	From      models.ThemeID `json:"from,omitempty"`
	To        models.ThemeID `json:"to"`
	Source    string         `json:"source,omitempty"`
}

func writeThemeList(out io.Writer) error {
	ordered := styles.Ordered()
	infos := make([]themeInfo, 0, len(ordered))
	for _, t := range ordered {
		infos = append(infos, themeInfo{ID: t.ID, Name: t.Name, Dark: t.IsDark})
	}

	if IsJSONOutput() {
		return WriteOutput(out, infos)
	}

	// Each name is shown in its own theme's primary color on a terminal.
	header, accent := tableStyles(out, styles.DefaultTheme())
	tbl := newTable("ID", "NAME", "DARK").headerStyle(header)
	for _, t := range ordered {
		id := t.ID.String()
		if t.ID == models.DefaultThemeID {
			id += " (default)"
		}
		tbl.addRow(id, accent(t).Render(t.Name), formatYesNo(t.IsDark))
	}
	return tbl.render(out)
}

func writeThemeGet(ctx context.Context, out io.Writer, persister theme.Persister, hint theme.HintFunc) error {
	persisted, found := persister.Load(ctx)
	hintValue := ""
	if !found && hint != nil {
		hintValue = hint()
	}
	id := theme.StartupTheme(persisted, found, hintValue)
	status := themeStatus{ID: id, Name: styles.ResolveID(id).Name, Persisted: found}

	if IsJSONOutput() {
		return WriteOutput(out, status)
	}

	source := "saved choice"
	if !found {
		source = "not saved, first-run default"
	}
	fmt.Fprintf(out, "%s (%s)\n", status.ID, source)
	return nil
}

// setTheme validates strictly. Unlike the UI setter, a typo here is an error.
func setTheme(ctx context.Context, out io.Writer, persister theme.Persister, recorder events.Repository, value string) error {
	id, ok := models.ParseThemeID(value)
	if !ok {
		return &PreflightError{
			Message:  fmt.Sprintf("unknown theme %q", value),
			Hint:     "Valid themes: " + joinThemeIDs(models.AllThemeIDs()),
			NextStep: "atlas theme list",
		}
	}

	previous, _ := persister.Load(ctx)
	if err := persister.Save(ctx, id); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	if recorder != nil && previous != id {
		if err := events.LogThemeChanged(ctx, recorder, previous, id, "cli"); err != nil {
			logger := logging.Component("cli")
			logger.Warn().Err(err).Msg("failed to record theme change")
		}
	}

	if IsJSONOutput() {
		return WriteOutput(out, themeStatus{ID: id, Name: styles.ResolveID(id).Name, Persisted: true})
	}
	fmt.Fprintf(out, "Theme set to %s\n", id)
	return nil
}

func resetTheme(ctx context.Context, out io.Writer, settings *db.SettingsRepository) error {
	removed := true
	if err := settings.Delete(ctx, theme.StorageKey); err != nil {
		if !errors.Is(err, db.ErrSettingNotFound) {
			return fmt.Errorf("failed to reset theme: %w", err)
		}
		removed = false
	}

	if IsJSONOutput() {
		return WriteOutput(out, map[string]bool{"removed": removed})
	}
	if removed {
		fmt.Fprintln(out, "Saved theme cleared")
	} else {
		fmt.Fprintln(out, "No saved theme")
	}
	return nil
}

func writeThemeHistory(ctx context.Context, out io.Writer, repo *db.EventRepository, limit int) error {
	eventType := models.EventTypeThemeChanged
	entityID := events.ThemeEntityID
	list, err := repo.Query(ctx, db.EventQuery{Type: &eventType, EntityID: &entityID, Limit: limit})
	if err != nil {
		return fmt.Errorf("failed to query theme history: %w", err)
	}

	changes := make([]themeChange, 0, len(list))
	for _, event := range list {
		payload, err := events.DecodeThemeChanged(event)
		if err != nil {
			logger := logging.Component("cli")
			logger.Debug().Err(err).Str("event", event.ID).Msg("skipping malformed theme event")
			continue
		}
		changes = append(changes, themeChange{
			Timestamp: event.Timestamp,
			From:      payload.From,
			To:        payload.To,
			Source:    payload.Source,
		})
	}

	if IsJSONOutput() {
		return WriteOutput(out, changes)
	}
	if len(changes) == 0 {
		fmt.Fprintln(out, "No theme changes recorded")
		return nil
	}

	// Newest first, so the header takes the colors of the latest choice.
	header, _ := tableStyles(out, styles.ResolveID(changes[0].To))
	tbl := newTable("WHEN", "FROM", "TO", "SOURCE").headerStyle(header)
	for _, change := range changes {
		from := change.From.String()
		if from == "" {
			from = "-"
		}
		tbl.addRow(
			change.Timestamp.Local().Format("2006-01-02 15:04:05"),
			from,
			change.To.String(),
			change.Source,
		)
	}
	return tbl.render(out)
}

func joinThemeIDs(ids []models.ThemeID) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = strconv.Quote(id.String())
	}
	return strings.Join(names, ", ")
}
