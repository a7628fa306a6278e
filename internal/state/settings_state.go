package state

import (
	"github.com/thenoetrevino/tick/internal/events"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/services/settings"
)

// SettingsState manages the settings screen.
type SettingsState struct {
	settings settings.Service
}

// NewSettingsState creates a settings state over the settings service.
func NewSettingsState(svc settings.Service) *SettingsState {
	return &SettingsState{settings: svc}
}

// Subscribe returns the live theme.
func (s *SettingsState) Subscribe() *events.Subscription[models.Theme] {
	return s.settings.SubscribeTheme()
}

func (s *SettingsState) Theme() models.Theme {
	return s.settings.Theme()
}

func (s *SettingsState) SetTheme(theme models.Theme) error {
	return s.settings.SetTheme(theme)
}

// CycleTheme moves to the next theme and returns it.
// Order: System -> Light -> Dark -> System
func (s *SettingsState) CycleTheme() (models.Theme, error) {
	next := s.settings.Theme().Next()
	if err := s.settings.SetTheme(next); err != nil {
		return s.settings.Theme(), err
	}
	return next, nil
}
