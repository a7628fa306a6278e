package config

import (
	"github.com/thenoetrevino/tick/internal/config/colors"
	"github.com/thenoetrevino/tick/internal/models"
)

// Colors holds one scheme per terminal background
type Colors struct {
	Light colors.ColorScheme `yaml:"light"`
	Dark  colors.ColorScheme `yaml:"dark"`
}

// DefaultColors returns the lotus scheme for light and the purple scheme for dark
func DefaultColors() Colors {
	return Colors{
		Light: *colors.Lotus(),
		Dark:  *colors.Default(),
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}

// For returns the scheme matching the background
func (c Colors) For(dark bool) colors.ColorScheme {
	if dark {
		return c.Dark
	}
	return c.Light
}

// IsDark resolves a theme to a background. SYSTEM asks systemDark, which
// may be nil when no terminal can be queried.
func IsDark(theme models.Theme, systemDark func() bool) bool {
	switch theme {
	case models.ThemeDark:
		return true
	case models.ThemeLight:
		return false
	}
	if systemDark == nil {
		return true
	}
	return systemDark()
}

// ForTheme returns the scheme for a theme preference
func (c Colors) ForTheme(theme models.Theme, systemDark func() bool) colors.ColorScheme {
	return c.For(IsDark(theme, systemDark))
}

// applyDefaults fills missing values from each side's preset
func (c *Colors) applyDefaults() {
	if c.Light.Preset == "" {
		c.Light.Preset = "lotus"
	}
	c.Light.ApplyDefaults()
	c.Dark.ApplyDefaults()
}

// MergeFrom fills empty colors from other
func (c *Colors) MergeFrom(other Colors) {
	c.Light.MergeFrom(other.Light)
	c.Dark.MergeFrom(other.Dark)
}
