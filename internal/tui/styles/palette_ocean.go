package styles

import "github.com/opencode-ai/atlas/internal/models"

// OceanTheme is a deep-sea blue palette.
var OceanTheme = Theme{
	ID:     models.ThemeOcean,
	Name:   "Ocean",
	IsDark: true,
	Tokens: ThemeTokens{
		Primary:        "#0096C7",
		PrimaryLight:   "#48CAE4",
		PrimaryDark:    "#0077B6",
		Secondary:      "#90E0EF",
		SecondaryLight: "#CAF0F8",
		SecondaryDark:  "#00B4D8",
		Background:     "#03045E",
		BackgroundAlt:  "#051077",
		Surface:        "#0A1A8C",
		Text:           "#CAF0F8",
		TextSecondary:  "#ADE8F4",
		TextMuted:      "#7FB3D5",
		TextInverse:    "#03045E",
		Border:         "#023E8A",
		Success:        "#52B788",
		Warning:        "#F4A261",
		Error:          "#E76F51",
		Info:           "#48CAE4",
		Overlay:        "#010230B3",
		Shadow:         "#00000080",
		Highlight:      "#48CAE433",
	},
}
