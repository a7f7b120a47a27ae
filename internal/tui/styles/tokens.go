package styles

import "github.com/opencode-ai/atlas/internal/models"

// ThemeTokens defines the semantic color roles for the TUI.
// Overlay, Shadow and Highlight carry an alpha channel (#RRGGBBAA).
type ThemeTokens struct {
	Primary      string
	PrimaryLight string
	PrimaryDark  string

	Secondary      string
	SecondaryLight string
	SecondaryDark  string

	Background    string
	BackgroundAlt string
	Surface       string

	Text          string
	TextSecondary string
	TextMuted     string
	TextInverse   string
	Border        string

	Success string
	Warning string
	Error   string
	Info    string

	Overlay   string
	Shadow    string
	Highlight string
}

// Theme bundles a palette with its identifier and display name.
type Theme struct {
	ID     models.ThemeID
	Name   string
	IsDark bool
	Tokens ThemeTokens
}

var catalog = map[models.ThemeID]Theme{
	models.ThemeClassic: ClassicTheme,
	models.ThemeDark:    DarkTheme,
	models.ThemeLight:   LightTheme,
	models.ThemeForest:  ForestTheme,
	models.ThemeOcean:   OceanTheme,
}

// Catalog returns a copy of the built-in themes keyed by identifier.
func Catalog() map[models.ThemeID]Theme {
	out := make(map[models.ThemeID]Theme, len(catalog))
	for id, theme := range catalog {
		out[id] = theme
	}
	return out
}

// Lookup returns the catalog entry for id.
func Lookup(id models.ThemeID) (Theme, bool) {
	theme, ok := catalog[id]
	return theme, ok
}

// Ordered returns the catalog in display order.
func Ordered() []Theme {
	ids := models.AllThemeIDs()
	out := make([]Theme, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalog[id])
	}
	return out
}
