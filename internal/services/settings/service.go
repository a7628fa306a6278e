package settings

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tick/internal/events"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/repository"
)

// ErrInvalidTheme is returned for a theme outside SYSTEM, LIGHT and DARK
var ErrInvalidTheme = errors.New("invalid theme")

// Service defines the settings use cases
type Service interface {
	Theme() models.Theme
	SubscribeTheme() *events.Subscription[models.Theme]
	SetTheme(theme models.Theme) error
}

type service struct {
	repo   repository.SettingsRepository
	logger *slog.Logger
}

// NewService creates a new settings service
func NewService(repo repository.SettingsRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, logger: logger}
}

func (s *service) Theme() models.Theme {
	return s.repo.Theme()
}

func (s *service) SubscribeTheme() *events.Subscription[models.Theme] {
	return s.repo.SubscribeTheme()
}

// SetTheme validates and persists the theme
func (s *service) SetTheme(theme models.Theme) error {
	parsed, ok := models.ParseTheme(string(theme))
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
	if err := s.repo.SetTheme(parsed); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	s.logger.Debug("theme changed", "theme", string(parsed))
	return nil
}
