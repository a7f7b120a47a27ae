package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/atlas/internal/tui/styles"
)

// QuickAction represents a keyboard-triggered action.
type QuickAction struct {
	Key     string // Keyboard key (e.g., "t", "tab")
	Label   string // Display label (e.g., "Theme")
	Enabled bool   // Whether the action is available
}

// RenderQuickActionBar renders a horizontal bar of available quick actions.
// Format: "tab:Next  t:Theme  q:Quit"
func RenderQuickActionBar(styleSet styles.Styles, actions []QuickAction) string {
	var parts []string
	for _, action := range actions {
		if !action.Enabled {
			continue
		}
		keyStyle := styleSet.Accent.Copy().Bold(true)
		part := fmt.Sprintf("%s:%s", keyStyle.Render(action.Key), styleSet.Muted.Render(action.Label))
		parts = append(parts, part)
	}
	return strings.Join(parts, "  ")
}

// NavigationActions returns the global key hints. The settings screen adds
// its own selection keys.
func NavigationActions(onSettings bool) []QuickAction {
	return []QuickAction{
		{Key: "tab", Label: "Next", Enabled: true},
		{Key: "1-4", Label: "Jump", Enabled: true},
		{Key: "j/k", Label: "Select", Enabled: onSettings},
		{Key: "enter", Label: "Apply", Enabled: onSettings},
		{Key: "t", Label: "Theme", Enabled: true},
		{Key: "q", Label: "Quit", Enabled: true},
	}
}
