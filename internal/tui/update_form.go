package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tick/internal/state"
	"github.com/thenoetrevino/tick/internal/tui/notifications"
)

func (m *Model) updateForm(msg tea.KeyPressMsg) tea.Cmd {
	status := m.detail.Status()

	if key.Matches(msg, m.keys.Back) {
		m.leaveForm()
		return nil
	}
	if status == state.DetailLoaded && !m.showsLoadedTask() {
		status = state.DetailEmpty
	}
	if status != state.DetailNew && status != state.DetailLoaded {
		// not found, deleted or still loading: only leaving is possible
		if key.Matches(msg, m.keys.Quit) {
			m.leaveForm()
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Save):
		if err := m.syncDraft(); err != nil {
			m.form.focusField(fieldDue)
			return m.notify(notifications.Error, err.Error())
		}
		return saveTaskCmd(m.ctx, m.detail)

	case key.Matches(msg, m.keys.NextField):
		return m.form.next()

	case key.Matches(msg, m.keys.PrevField):
		return m.form.prev()

	case key.Matches(msg, m.keys.Priority):
		m.detail.CyclePriority()
		return nil

	case key.Matches(msg, m.keys.FormDelete):
		if status == state.DetailLoaded {
			return deleteFromDetailCmd(m.ctx, m.detail)
		}
		return nil
	}

	cmd := m.form.update(msg)
	if m.form.focus == fieldTitle {
		m.detail.SetTitle(m.form.title.Value())
	}
	return cmd
}

// showsLoadedTask reports whether the loaded task is the one the detail
// screen was opened for
func (m *Model) showsLoadedTask() bool {
	cur := m.CurrentScreen()
	if cur.Name != ScreenDetail {
		return true
	}
	task := m.detail.Task()
	return task != nil && task.ID == cur.ID
}

// syncDraft copies the inputs into the detail state
func (m *Model) syncDraft() error {
	m.detail.SetTitle(m.form.title.Value())
	m.detail.SetDescription(m.form.description.Value())
	return m.detail.SetDueDateInput(m.form.due.Value())
}
