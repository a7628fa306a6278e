package repository

import (
	"time"

	"github.com/thenoetrevino/tick/internal/events"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/preferences"
)

// ThemeKey is the preference key holding the theme
const ThemeKey = "app_theme"

// SettingsRepository reads and writes application settings
type SettingsRepository interface {
	Theme() models.Theme
	SubscribeTheme() *events.Subscription[models.Theme]
	SetTheme(theme models.Theme) error
}

// Compile-time verification that *SettingsRepo implements SettingsRepository
var _ SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo maps the preference store to typed settings
type SettingsRepo struct {
	store *preferences.Store
	theme *events.Feed[models.Theme]
}

// NewSettingsRepo wraps a preference store
func NewSettingsRepo(store *preferences.Store, linger time.Duration) *SettingsRepo {
	return &SettingsRepo{
		store: store,
		theme: events.Relay[preferences.Values](store, themeFromValues, events.WithLinger(linger)),
	}
}

// Theme returns the stored theme, SYSTEM when absent or unparsable
func (r *SettingsRepo) Theme() models.Theme {
	v, _ := r.store.Get(ThemeKey)
	return models.ThemeOrDefault(v)
}

// SubscribeTheme returns the live theme preference
func (r *SettingsRepo) SubscribeTheme() *events.Subscription[models.Theme] {
	return r.theme.Subscribe()
}

// SetTheme persists the theme
func (r *SettingsRepo) SetTheme(theme models.Theme) error {
	return r.store.Set(ThemeKey, string(theme))
}

func themeFromValues(values preferences.Values) models.Theme {
	return models.ThemeOrDefault(values[ThemeKey])
}
