package styles

import "github.com/opencode-ai/atlas/internal/models"

// DefaultTheme returns the fallback theme.
func DefaultTheme() Theme {
	return catalog[models.DefaultThemeID]
}

// Resolve maps a theme name to its definition. Unknown names resolve to the
// default theme.
func Resolve(name string) Theme {
	id, ok := models.ParseThemeID(name)
	if !ok {
		return DefaultTheme()
	}
	return catalog[id]
}

// ResolveID is the typed form of Resolve.
func ResolveID(id models.ThemeID) Theme {
	if theme, ok := catalog[id]; ok {
		return theme
	}
	return DefaultTheme()
}
