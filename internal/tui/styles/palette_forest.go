package styles

import "github.com/opencode-ai/atlas/internal/models"

// ForestTheme favors deep greens and bark browns.
var ForestTheme = Theme{
	ID:     models.ThemeForest,
	Name:   "Forest",
	IsDark: true,
	Tokens: ThemeTokens{
		Primary:        "#6A994E",
		PrimaryLight:   "#A7C957",
		PrimaryDark:    "#386641",
		Secondary:      "#BC6C25",
		SecondaryLight: "#DDA15E",
		SecondaryDark:  "#7F4F24",
		Background:     "#132A13",
		BackgroundAlt:  "#1A351A",
		Surface:        "#203F20",
		Text:           "#ECF39E",
		TextSecondary:  "#C5D08A",
		TextMuted:      "#90A955",
		TextInverse:    "#132A13",
		Border:         "#31572C",
		Success:        "#A7C957",
		Warning:        "#DDA15E",
		Error:          "#BC4749",
		Info:           "#7FB7BE",
		Overlay:        "#0B170BB3",
		Shadow:         "#00000066",
		Highlight:      "#A7C95733",
	},
}
