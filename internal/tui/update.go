package tui

import (
	"errors"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/state"
	"github.com/thenoetrevino/tick/internal/tui/notifications"
)

// Update handles all messages and updates the model accordingly
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.setWidth(msg.Width)
		m.search.SetWidth(max(msg.Width-4, 10))
		m.help.SetWidth(msg.Width)
		return m, nil

	case tea.BackgroundColorMsg:
		m.terminalDark = msg.IsDark()
		m.applyTheme()
		return m, nil

	case listSnapshotMsg:
		if !msg.ok {
			return m, nil
		}
		m.snapshot = msg.snap
		m.loaded = true
		m.clampCursor()
		return m, waitForList(m.listSub)

	case themeMsg:
		if !msg.ok {
			return m, nil
		}
		m.theme = msg.theme
		m.applyTheme()
		return m, waitForTheme(m.themeSub)

	case detailLoadedMsg:
		return m, m.handleDetailLoaded(msg)

	case detailSavedMsg:
		return m, m.handleDetailSaved(msg)

	case taskDeletedMsg:
		if msg.err != nil {
			return m, m.notifyError("Failed to delete task", msg.err)
		}
		if msg.fromDetail {
			m.leaveForm()
		}
		return m, m.notify(notifications.Info, "Deleted \""+msg.title+"\"")

	case taskToggledMsg:
		if msg.err != nil {
			return m, m.notifyError("Failed to update task", msg.err)
		}
		return m, nil

	case themeChangedMsg:
		if msg.err != nil {
			return m, m.notifyError("Failed to change theme", msg.err)
		}
		return m, m.notify(notifications.Info, "Theme: "+msg.theme.Label())

	case clearNoticeMsg:
		if msg.id == m.notice.id {
			m.notice = notice{id: m.notice.id}
		}
		return m, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.router.Current().Name {
		case ScreenDetail, ScreenAdd:
			return m, m.updateForm(msg)
		case ScreenSettings:
			return m, m.updateSettings(msg)
		default:
			return m, m.updateList(msg)
		}
	}

	// Anything else (cursor blink and friends) goes to the focused input
	return m, m.forwardToInputs(msg)
}

func (m *Model) forwardToInputs(msg tea.Msg) tea.Cmd {
	switch m.router.Current().Name {
	case ScreenDetail, ScreenAdd:
		return m.form.update(msg)
	case ScreenList:
		if m.searching {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return cmd
		}
	}
	return nil
}

// openTask navigates to the edit screen of task
func (m *Model) openTask(task *models.Task) tea.Cmd {
	m.detail.BeginLoad()
	m.router.Push(Screen{Name: ScreenDetail, ID: task.ID})
	m.form.blur()
	return loadTaskCmd(m.ctx, m.detail, task.ID)
}

// openAdd navigates to the add screen with a blank draft
func (m *Model) openAdd() tea.Cmd {
	m.router.Push(Screen{Name: ScreenAdd})
	m.detail.NewDraft()
	return m.form.load(m.detail.Draft())
}

func (m *Model) leaveForm() {
	m.form.blur()
	m.router.Back()
}

func (m *Model) handleDetailLoaded(msg detailLoadedMsg) tea.Cmd {
	current := m.router.Current()
	if current.Name != ScreenDetail || current.ID != msg.id {
		// the user navigated away while loading
		return nil
	}
	if msg.err != nil {
		m.leaveForm()
		return m.notifyError("Failed to load task", msg.err)
	}
	if msg.status == state.DetailNotFound {
		return nil
	}
	return m.form.load(m.detail.Draft())
}

func (m *Model) handleDetailSaved(msg detailSavedMsg) tea.Cmd {
	switch {
	case errors.Is(msg.err, state.ErrTitleRequired):
		// the form shows the title error
		return m.form.focusField(fieldTitle)
	case msg.err != nil:
		return m.notifyError("Failed to save task", msg.err)
	}

	m.leaveForm()
	if msg.isNew {
		return m.notify(notifications.Info, "Added \""+msg.task.Title+"\"")
	}
	return m.notify(notifications.Info, "Saved \""+msg.task.Title+"\"")
}
