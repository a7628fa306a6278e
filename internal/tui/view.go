package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/state"
	"github.com/thenoetrevino/tick/internal/tui/components"
	"github.com/thenoetrevino/tick/internal/tui/notifications"
)

// View renders the current screen
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	var body string
	switch m.router.Current().Name {
	case ScreenDetail, ScreenAdd:
		body = m.viewForm()
	case ScreenSettings:
		body = m.viewSettings()
	default:
		body = m.viewList()
	}

	view.Content = lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.viewFooter(),
	)
	return view
}

func (m *Model) contentWidth() int {
	return max(m.width-2, 20)
}

func (m *Model) viewList() string {
	var b strings.Builder

	b.WriteString(titleStyle().Render("Tick"))
	b.WriteString(subtleStyle().Render("  sorted by " + m.snapshot.Sort.Label()))
	b.WriteString("\n")
	b.WriteString(m.viewProgress())
	b.WriteString("\n")

	if m.searching || m.list.SearchQuery() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	tasks := m.visibleTasks()
	switch {
	case !m.loaded:
		b.WriteString(subtleStyle().Render("Loading tasks..."))
	case m.snapshot.Err != nil:
		b.WriteString(errorStyle().Render("Failed to load tasks: " + m.snapshot.Err.Error()))
	case len(tasks) == 0 && strings.TrimSpace(m.list.SearchQuery()) != "":
		b.WriteString(subtleStyle().Render(fmt.Sprintf("No tasks match %q", m.list.SearchQuery())))
	case len(tasks) == 0:
		b.WriteString(subtleStyle().Render("No tasks yet. Press " + m.cfg.KeyMappings.AddTask + " to add one."))
	default:
		now := time.Now()
		start, end := m.visibleWindow(len(tasks))
		for i := start; i < end; i++ {
			b.WriteString(m.viewTaskRow(tasks[i], i == m.cursor, now))
			b.WriteString("\n")
		}
	}

	if m.confirmDelete != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle().Render(fmt.Sprintf("Delete %q? (y/n)", m.confirmDelete.Title)))
	}

	return b.String()
}

// visibleWindow keeps the cursor on screen when the list is taller than
// the terminal
func (m *Model) visibleWindow(n int) (int, int) {
	rows := m.height - 8
	if rows < 1 || n <= rows {
		return 0, n
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	return start, min(start+rows, n)
}

func (m *Model) viewProgress() string {
	a := m.snapshot.Analytics
	const barWidth = 20
	filled := int(a.Progress * barWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return subtleStyle().Render(fmt.Sprintf("%s %d of %d completed (%d%%)",
		bar, a.Completed, a.Total, a.Percent()))
}

func (m *Model) viewTaskRow(task *models.Task, selected bool, now time.Time) string {
	check := "[ ]"
	title := normalStyle().Render(task.Title)
	if task.Completed {
		check = "[x]"
		title = completedStyle().Render(task.Title)
	}

	due := ""
	if task.DueDate != nil {
		due = models.FormatDueDate(task.DueDate)
		if task.IsOverdue(now) {
			due = overdueStyle().Render(due + " overdue")
		} else {
			due = subtleStyle().Render(due)
		}
	}

	row := fmt.Sprintf("%s %s  %s  %s",
		check, title, priorityStyle(task.Priority).Render(task.Priority.Label()), due)
	if selected {
		return selectedStyle().Render("›") + " " + row
	}
	return "  " + row
}

func (m *Model) viewForm() string {
	status := m.detail.Status()
	width := m.contentWidth()

	header := "Edit task"
	if m.router.Current().Name == ScreenAdd {
		header = "New task"
	}

	switch status {
	case state.DetailNotFound:
		return panelStyle(width).Render(titleStyle().Render(header) + "\n\n" +
			errorStyle().Render("Task not found"))
	case state.DetailEmpty:
		return panelStyle(width).Render(titleStyle().Render(header) + "\n\n" +
			subtleStyle().Render("Loading..."))
	}

	draft := m.detail.Draft()
	f := m.form

	var b strings.Builder
	b.WriteString(titleStyle().Render(header))
	b.WriteString("\n\n")

	b.WriteString(labelStyle(f.focus == fieldTitle).Render("Title"))
	b.WriteString("\n")
	b.WriteString(f.title.View())
	b.WriteString("\n")
	if m.detail.TitleError() {
		b.WriteString(errorStyle().Render("Title is required"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(labelStyle(f.focus == fieldDescription).Render("Description"))
	b.WriteString("\n")
	if f.focus == fieldDescription || strings.TrimSpace(f.description.Value()) == "" {
		b.WriteString(f.description.View())
	} else {
		b.WriteString(m.markdownCache.render(f.description.Value(), m.dark, width-4))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle(f.focus == fieldDue).Render("Due date"))
	b.WriteString("\n")
	b.WriteString(f.due.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle(false).Render("Priority "))
	b.WriteString(priorityStyle(draft.Priority).Render(draft.Priority.Label()))

	if task := m.detail.Task(); task != nil && status == state.DetailLoaded {
		done := "active"
		if task.Completed {
			done = "completed"
		}
		b.WriteString(subtleStyle().Render("   Status " + done))
	}

	return panelStyle(width).Render(b.String())
}

func (m *Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(titleStyle().Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle(true).Render("Theme"))
	b.WriteString("\n")

	for i, t := range models.Themes {
		marker := "( )"
		if t == m.theme {
			marker = "(•)"
		}
		line := marker + " " + t.Label()
		if i == m.themeCursor {
			b.WriteString(selectedStyle().Render("› " + line))
		} else {
			b.WriteString(normalStyle().Render("  " + line))
		}
		b.WriteString("\n")
	}

	mode := "light"
	if m.dark {
		mode = "dark"
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle().Render("Rendering in " + mode + " mode"))

	return panelStyle(m.contentWidth()).Render(b.String())
}

func (m *Model) viewFooter() string {
	var helpView string
	switch m.router.Current().Name {
	case ScreenDetail, ScreenAdd:
		helpView = m.help.ShortHelpView(m.keys.formHelp(m.detail.Status() == state.DetailLoaded))
	case ScreenSettings:
		helpView = m.help.ShortHelpView(m.keys.settingsHelp())
	default:
		if m.showFullHelp {
			helpView = m.help.FullHelpView(m.keys.listFullHelp())
		} else {
			helpView = m.help.ShortHelpView(m.keys.listHelp())
		}
	}

	left := m.router.Current().String()
	if m.notice.text != "" {
		left = notifications.RenderInline(m.notice.severity, m.notice.text)
	}
	bar := components.RenderStatusBar(components.StatusBarProps{
		Width: m.width,
		Left:  left,
		Right: "theme " + m.theme.Label(),
	})

	return lipgloss.JoinVertical(lipgloss.Left, "", helpView, bar)
}
