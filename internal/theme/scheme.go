package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/opencode-ai/atlas/internal/models"
)

// Color scheme hints.
const (
	SchemeLight = "light"
	SchemeDark  = "dark"
	SchemeAuto  = "auto"
)

// HintFunc reports the system color scheme: "light", "dark" or "" if unknown.
type HintFunc func() string

// StaticHint always reports value.
func StaticHint(value string) HintFunc {
	return func() string { return value }
}

// TerminalHint asks the terminal for its background color.
func TerminalHint() HintFunc {
	return func() string {
		if lipgloss.HasDarkBackground() {
			return SchemeDark
		}
		return SchemeLight
	}
}

// HintFor builds the hint for a configured scheme. Terminal detection is only
// attempted for "auto" in an interactive session; it writes an OSC query and
// waits for the reply, which would hang on a pipe.
func HintFor(scheme string, interactive bool) HintFunc {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case SchemeLight:
		return StaticHint(SchemeLight)
	case SchemeDark:
		return StaticHint(SchemeDark)
	case SchemeAuto:
		if interactive {
			return TerminalHint()
		}
	}
	return StaticHint("")
}

// StartupTheme picks the theme to show at startup: the persisted choice if
// present, else the system hint when it names light or dark, else the default.
func StartupTheme(persisted models.ThemeID, found bool, hint string) models.ThemeID {
	if found && persisted.Valid() {
		return persisted
	}
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case SchemeLight:
		return models.ThemeLight
	case SchemeDark:
		return models.ThemeDark
	}
	return models.DefaultThemeID
}
