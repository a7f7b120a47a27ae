package styles

import "github.com/opencode-ai/atlas/internal/models"

// DarkTheme is a low-light palette for night sessions.
var DarkTheme = Theme{
	ID:     models.ThemeDark,
	Name:   "Dark",
	IsDark: true,
	Tokens: ThemeTokens{
		Primary:        "#BB86FC",
		PrimaryLight:   "#D7B7FD",
		PrimaryDark:    "#8858C8",
		Secondary:      "#03DAC6",
		SecondaryLight: "#66FFF0",
		SecondaryDark:  "#00A896",
		Background:     "#121212",
		BackgroundAlt:  "#1B1B1B",
		Surface:        "#1E1E1E",
		Text:           "#E6E1E5",
		TextSecondary:  "#B3ADB8",
		TextMuted:      "#7D7882",
		TextInverse:    "#121212",
		Border:         "#2F2F2F",
		Success:        "#4CAF50",
		Warning:        "#FFB300",
		Error:          "#CF6679",
		Info:           "#64B5F6",
		Overlay:        "#000000B3",
		Shadow:         "#00000080",
		Highlight:      "#BB86FC33",
	},
}
