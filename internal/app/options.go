package app

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger         *slog.Logger
	linger         time.Duration
	searchDebounce time.Duration
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithLinger sets how long live subscriptions outlive their last observer
func WithLinger(d time.Duration) Option {
	return func(cfg *appConfig) {
		cfg.linger = d
	}
}

// WithSearchDebounce delays list filtering while the user types
func WithSearchDebounce(d time.Duration) Option {
	return func(cfg *appConfig) {
		cfg.searchDebounce = d
	}
}
