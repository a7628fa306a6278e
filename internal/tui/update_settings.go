package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tick/internal/models"
)

func themeIndex(t models.Theme) int {
	for i, th := range models.Themes {
		if th == t {
			return i
		}
	}
	return 0
}

func (m *Model) updateSettings(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.router.Back()

	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(models.Themes)-1 {
			m.themeCursor++
		}

	case key.Matches(msg, m.keys.Select):
		return setThemeCmd(m.settings, models.Themes[m.themeCursor])

	case key.Matches(msg, m.keys.CycleTheme):
		m.themeCursor = themeIndex(m.theme.Next())
		return cycleThemeCmd(m.settings)
	}
	return nil
}
