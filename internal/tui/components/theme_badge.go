package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/atlas/internal/tui/styles"
)

// RenderThemeBadge renders a theme name with a mode marker.
func RenderThemeBadge(styleSet styles.Styles, theme styles.Theme) string {
	mode := "light"
	if theme.IsDark {
		mode = "dark"
	}
	return styleSet.Accent.Render(fmt.Sprintf("◐ %s", theme.Name)) + styleSet.Muted.Render(fmt.Sprintf(" (%s)", mode))
}

// RenderSwatch renders a strip of the theme's main colors.
func RenderSwatch(theme styles.Theme) string {
	colors := []string{
		theme.Tokens.Primary,
		theme.Tokens.Secondary,
		theme.Tokens.Background,
		theme.Tokens.Surface,
		theme.Tokens.Success,
		theme.Tokens.Warning,
		theme.Tokens.Error,
	}
	var out string
	for _, c := range colors {
		out += lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("  ")
	}
	return out
}
