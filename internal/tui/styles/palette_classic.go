package styles

import "github.com/opencode-ai/atlas/internal/models"

// ClassicTheme is the baseline parchment-and-ink palette.
var ClassicTheme = Theme{
	ID:     models.ThemeClassic,
	Name:   "Classic",
	IsDark: false,
	Tokens: ThemeTokens{
		Primary:        "#8B4513",
		PrimaryLight:   "#A0522D",
		PrimaryDark:    "#5C2E0B",
		Secondary:      "#DAA520",
		SecondaryLight: "#F0C75E",
		SecondaryDark:  "#B8860B",
		Background:     "#F5E6C8",
		BackgroundAlt:  "#EAD7B0",
		Surface:        "#FFF8E7",
		Text:           "#2B1B0E",
		TextSecondary:  "#5A4632",
		TextMuted:      "#8C7A66",
		TextInverse:    "#FFF8E7",
		Border:         "#C2A878",
		Success:        "#2E7D32",
		Warning:        "#C77700",
		Error:          "#B3261E",
		Info:           "#1F5F8B",
		Overlay:        "#2B1B0E80",
		Shadow:         "#00000033",
		Highlight:      "#DAA52040",
	},
}
