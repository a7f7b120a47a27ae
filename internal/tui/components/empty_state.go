// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/atlas/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "🗺", "🏰").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are actionable commands or keys.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	// Command is the key or CLI command to run.
	Command string
	// Description explains what the command does.
	Description string
}

// Render draws the heading, the subtitle and one line per suggestion, with
// the keys aligned in a column.
func (e EmptyState) Render(styleSet styles.Styles) string {
	lines := []string{styleSet.Title.Render(e.heading("  "))}
	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}
	if len(e.Suggestions) == 0 {
		return strings.Join(lines, "\n")
	}

	keyWidth := 0
	for _, s := range e.Suggestions {
		keyWidth = max(keyWidth, lipgloss.Width(s.Command))
	}

	lines = append(lines, "")
	for _, s := range e.Suggestions {
		line := "  " + styleSet.Focus.Render(s.Command)
		if s.Description != "" {
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(s.Command)+2)
			line += pad + styleSet.Text.Render(s.Description)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RenderCompact fits the empty state on one line for short terminals: the
// heading and the first suggestion.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := styleSet.Title.Render(e.heading(" "))
	if len(e.Suggestions) > 0 {
		first := e.Suggestions[0]
		line += styleSet.Muted.Render(" · ") + styleSet.Focus.Render(first.Command)
		if first.Description != "" {
			line += styleSet.Muted.Render(" " + first.Description)
		}
	}
	return line
}

func (e EmptyState) heading(sep string) string {
	if e.Icon == "" {
		return e.Title
	}
	return e.Icon + sep + e.Title
}

// EmptyWorlds is shown when no worlds have been created.
func EmptyWorlds() EmptyState {
	return EmptyState{
		Icon:     "🏰",
		Title:    "No worlds yet",
		Subtitle: "Worlds hold the regions, maps and notes of a campaign.",
		Suggestions: []Suggestion{
			{Command: "n", Description: "create a world (coming soon)"},
		},
	}
}

// EmptyMaps is shown in place of the map canvas.
func EmptyMaps() EmptyState {
	return EmptyState{
		Icon:     "🗺",
		Title:    "Map canvas",
		Subtitle: "Drawing tools are not available in this build.",
	}
}

// Welcome is shown on the home screen.
func Welcome() EmptyState {
	return EmptyState{
		Icon:     "🎲",
		Title:    "Welcome to Atlas",
		Subtitle: "Manage the worlds and maps of your tabletop campaigns.",
		Suggestions: []Suggestion{
			{Command: "tab", Description: "move between sections"},
			{Command: "t", Description: "cycle the color theme"},
			{Command: "atlas theme list", Description: "list themes from the shell"},
		},
	}
}
