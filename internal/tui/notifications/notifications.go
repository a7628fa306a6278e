// Package notifications renders the short notices shown in the status bar.
package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tick/internal/tui/theme"
)

// Severity of a notice
type Severity int

const (
	Info Severity = iota
	Error
)

func (s Severity) icon() string {
	if s == Error {
		return "✕"
	}
	return "✓"
}

func (s Severity) color() string {
	if s == Error {
		return theme.ErrorFg
	}
	return theme.Accent
}

// RenderInline renders a one-line notice: icon, then message
func RenderInline(severity Severity, message string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(severity.color())).
		Bold(severity == Error).
		Padding(0, 1).
		Render(severity.icon() + " " + message)
}
