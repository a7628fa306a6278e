package models

import "strings"

// Theme is the application-wide colour preference
type Theme string

const (
	ThemeSystem Theme = "SYSTEM"
	ThemeLight  Theme = "LIGHT"
	ThemeDark   Theme = "DARK"
)

// Themes lists every theme in cycling order
var Themes = []Theme{ThemeSystem, ThemeLight, ThemeDark}

// ParseTheme maps a case-insensitive name to a theme
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToUpper(strings.TrimSpace(s))) {
	case ThemeSystem:
		return ThemeSystem, true
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	}
	return ThemeSystem, false
}

// ThemeOrDefault decodes a stored value, treating anything unparsable as SYSTEM
func ThemeOrDefault(s string) Theme {
	t, _ := ParseTheme(s)
	return t
}

// Next cycles SYSTEM -> LIGHT -> DARK -> SYSTEM
func (t Theme) Next() Theme {
	for i, th := range Themes {
		if th == t {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeSystem
}

// Label returns a display label
func (t Theme) Label() string {
	switch t {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	default:
		return "System default"
	}
}
