package tui

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/atlas/internal/tui/components"
	"github.com/opencode-ai/atlas/internal/tui/styles"
)

func (m model) screenBody(styleSet styles.Styles) string {
	switch m.nav.active {
	case routeWorlds:
		return m.emptyState(components.EmptyWorlds(), styleSet)
	case routeMaps:
		return m.mapsBody(styleSet)
	case routeSettings:
		return m.settingsBody(styleSet)
	default:
		return m.homeBody(styleSet)
	}
}

// compactHeight is the terminal height below which empty states use one line.
const compactHeight = 20

func (m model) emptyState(es components.EmptyState, styleSet styles.Styles) string {
	if m.height < compactHeight {
		return es.RenderCompact(styleSet)
	}
	return es.Render(styleSet)
}

func (m model) homeBody(styleSet styles.Styles) string {
	lines := []string{
		m.emptyState(components.Welcome(), styleSet),
		"",
		styleSet.Text.Render("Theme: ") + components.RenderThemeBadge(styleSet, styleSet.Theme),
		styleSet.Text.Render("Layout: ") + styleSet.Accent.Render(m.nav.composition.String()) +
			styleSet.Muted.Render(fmt.Sprintf(" (%d cols)", m.width)),
	}
	return strings.Join(lines, "\n")
}

func (m model) mapsBody(styleSet styles.Styles) string {
	lines := []string{m.emptyState(components.EmptyMaps(), styleSet), ""}

	cols := 24
	if m.nav != nil && m.width > 0 {
		cols = min(max(m.width/4, 8), 48)
	}
	row := styleSet.Border.Render(strings.Repeat("· ", cols))
	for i := 0; i < 6; i++ {
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (m model) settingsBody(styleSet styles.Styles) string {
	lines := []string{styleSet.Title.Render("Appearance"), ""}

	current := m.provider.CurrentID()
	for i, theme := range styles.Ordered() {
		cursor := "  "
		if i == m.settingsCursor {
			cursor = styleSet.Focus.Render("› ")
		}
		marker := "○"
		if theme.ID == current {
			marker = "●"
		}
		label := fmt.Sprintf("%s %-8s", marker, theme.Name)
		if theme.ID == current {
			label = styleSet.Accent.Render(label)
		} else {
			label = styleSet.Text.Render(label)
		}
		lines = append(lines, cursor+label+"  "+components.RenderSwatch(theme))
	}

	cursor := "  "
	if m.settingsCursor == len(styles.Ordered()) {
		cursor = styleSet.Focus.Render("› ")
	}
	lines = append(lines, "", styleSet.Title.Render("Account"), "", cursor+styleSet.Error.Render("Sign out"))
	return strings.Join(lines, "\n")
}
