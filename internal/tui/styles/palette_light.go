package styles

import "github.com/opencode-ai/atlas/internal/models"

// LightTheme is a neutral palette for bright terminals.
var LightTheme = Theme{
	ID:     models.ThemeLight,
	Name:   "Light",
	IsDark: false,
	Tokens: ThemeTokens{
		Primary:        "#3F51B5",
		PrimaryLight:   "#757DE8",
		PrimaryDark:    "#002984",
		Secondary:      "#FF4081",
		SecondaryLight: "#FF79B0",
		SecondaryDark:  "#C60055",
		Background:     "#FAFAFA",
		BackgroundAlt:  "#F0F0F0",
		Surface:        "#FFFFFF",
		Text:           "#1C1B1F",
		TextSecondary:  "#49454F",
		TextMuted:      "#79747E",
		TextInverse:    "#FFFFFF",
		Border:         "#D0D0D0",
		Success:        "#388E3C",
		Warning:        "#F57C00",
		Error:          "#D32F2F",
		Info:           "#1976D2",
		Overlay:        "#1C1B1F66",
		Shadow:         "#0000001F",
		Highlight:      "#3F51B51F",
	},
}
