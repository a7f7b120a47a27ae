package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme Theme

	Title     lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Secondary lipgloss.Style
	Panel     lipgloss.Style
	Border    lipgloss.Style
	Focus     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style

	Sidebar       lipgloss.Style
	SidebarItem   lipgloss.Style
	SidebarActive lipgloss.Style
	TabBar        lipgloss.Style
	Tab           lipgloss.Style
	TabActive     lipgloss.Style
	Content       lipgloss.Style
}

// DefaultStyles builds styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(DefaultTheme())
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens
	color := func(value string) lipgloss.Color { return lipgloss.Color(value) }

	return Styles{
		Theme:     theme,
		Title:     lipgloss.NewStyle().Foreground(color(tokens.Primary)).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(color(tokens.Text)),
		Muted:     lipgloss.NewStyle().Foreground(color(tokens.TextMuted)),
		Accent:    lipgloss.NewStyle().Foreground(color(tokens.PrimaryLight)),
		Secondary: lipgloss.NewStyle().Foreground(color(tokens.Secondary)),
		Panel: lipgloss.NewStyle().
			Foreground(color(tokens.Text)).
			Background(color(tokens.Surface)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(color(tokens.Border)),
		Border:  lipgloss.NewStyle().Foreground(color(tokens.Border)),
		Focus:   lipgloss.NewStyle().Foreground(color(tokens.SecondaryLight)).Bold(true),
		Success: lipgloss.NewStyle().Foreground(color(tokens.Success)),
		Warning: lipgloss.NewStyle().Foreground(color(tokens.Warning)),
		Error:   lipgloss.NewStyle().Foreground(color(tokens.Error)),
		Info:    lipgloss.NewStyle().Foreground(color(tokens.Info)),

		Sidebar: lipgloss.NewStyle().
			Background(color(tokens.BackgroundAlt)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(color(tokens.Border)).
			Padding(1, 1),
		SidebarItem:   lipgloss.NewStyle().Foreground(color(tokens.TextSecondary)).Padding(0, 1),
		SidebarActive: lipgloss.NewStyle().Foreground(color(tokens.TextInverse)).Background(color(tokens.Primary)).Bold(true).Padding(0, 1),
		TabBar: lipgloss.NewStyle().
			Background(color(tokens.BackgroundAlt)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(color(tokens.Border)),
		Tab:       lipgloss.NewStyle().Foreground(color(tokens.TextMuted)).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Foreground(color(tokens.Primary)).Bold(true).Underline(true).Padding(0, 1),
		Content:   lipgloss.NewStyle().Foreground(color(tokens.Text)).Padding(1, 2),
	}
}
