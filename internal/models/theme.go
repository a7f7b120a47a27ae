package models

import "strings"

// ThemeID names one of the built-in color themes.
type ThemeID string

const (
	ThemeClassic ThemeID = "classic"
	ThemeDark    ThemeID = "dark"
	ThemeLight   ThemeID = "light"
	ThemeForest  ThemeID = "forest"
	ThemeOcean   ThemeID = "ocean"
)

// DefaultThemeID is used whenever no valid choice is available.
const DefaultThemeID = ThemeClassic

var themeIDs = []ThemeID{
	ThemeClassic,
	ThemeDark,
	ThemeLight,
	ThemeForest,
	ThemeOcean,
}

// AllThemeIDs returns every known theme identifier in display order.
func AllThemeIDs() []ThemeID {
	out := make([]ThemeID, len(themeIDs))
	copy(out, themeIDs)
	return out
}

// Valid reports whether id is a member of the known set.
func (id ThemeID) Valid() bool {
	switch id {
	case ThemeClassic, ThemeDark, ThemeLight, ThemeForest, ThemeOcean:
		return true
	default:
		return false
	}
}

func (id ThemeID) String() string {
	return string(id)
}

// ParseThemeID converts raw input into a ThemeID.
// Surrounding whitespace and letter case are ignored; anything outside the
// known set is rejected.
func ParseThemeID(value string) (ThemeID, bool) {
	id := ThemeID(strings.ToLower(strings.TrimSpace(value)))
	if !id.Valid() {
		return "", false
	}
	return id, true
}

// NormalizeThemeID parses value and falls back to DefaultThemeID.
func NormalizeThemeID(value string) ThemeID {
	if id, ok := ParseThemeID(value); ok {
		return id
	}
	return DefaultThemeID
}

// NextThemeID returns the identifier following id in display order, wrapping
// around at the end. Unknown ids restart from the first entry.
func NextThemeID(id ThemeID) ThemeID {
	for i, candidate := range themeIDs {
		if candidate == id {
			return themeIDs[(i+1)%len(themeIDs)]
		}
	}
	return themeIDs[0]
}
