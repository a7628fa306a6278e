package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/tui/theme"
)

// Styles are built on demand so a theme change takes effect on the next frame

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
}

func subtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}

func normalStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
}

func selectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Background(lipgloss.Color(theme.SelectedBg)).
		Bold(true)
}

func completedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Completed)).Strikethrough(true)
}

func overdueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Overdue))
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorFg))
}

func labelStyle(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}

func panelStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(0, 1).
		Width(width)
}

func priorityStyle(p models.Priority) lipgloss.Style {
	color := theme.PriorityMedium
	switch p {
	case models.PriorityHigh:
		color = theme.PriorityHigh
	case models.PriorityLow:
		color = theme.PriorityLow
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
