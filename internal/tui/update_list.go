package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

func (m *Model) updateList(msg tea.KeyPressMsg) tea.Cmd {
	if m.confirmDelete != nil {
		return m.updateConfirmDelete(msg)
	}
	if m.searching {
		return m.updateSearch(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visibleTasks())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Open):
		if task := m.selectedTask(); task != nil {
			return m.openTask(task)
		}

	case key.Matches(msg, m.keys.Add):
		return m.openAdd()

	case key.Matches(msg, m.keys.Toggle):
		if task := m.selectedTask(); task != nil {
			return toggleTaskCmd(m.ctx, m.list, task)
		}

	case key.Matches(msg, m.keys.Delete):
		m.confirmDelete = m.selectedTask()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.list.SearchQuery())
		m.search.CursorEnd()
		return m.search.Focus()

	case key.Matches(msg, m.keys.Back):
		if m.list.SearchQuery() != "" {
			m.search.SetValue("")
			m.list.SetSearchQuery("")
		}

	case key.Matches(msg, m.keys.CycleSort):
		m.list.CycleSortOrder()

	case key.Matches(msg, m.keys.Settings):
		m.router.Push(Screen{Name: ScreenSettings})
		m.themeCursor = themeIndex(m.theme)

	case key.Matches(msg, m.keys.Help):
		m.showFullHelp = !m.showFullHelp
	}
	return nil
}

// updateSearch edits the query; enter keeps it, esc clears it
func (m *Model) updateSearch(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.list.SetSearchQuery("")
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.list.SearchQuery() {
		m.list.SetSearchQuery(m.search.Value())
		m.cursor = 0
	}
	return cmd
}

func (m *Model) updateConfirmDelete(msg tea.KeyPressMsg) tea.Cmd {
	task := m.confirmDelete
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.confirmDelete = nil
		return deleteFromListCmd(m.ctx, m.list, task)
	case key.Matches(msg, m.keys.Cancel):
		m.confirmDelete = nil
	}
	return nil
}
