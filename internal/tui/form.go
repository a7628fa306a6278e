package tui

import (
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tick/internal/models"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
	"github.com/thenoetrevino/tick/internal/state"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
	fieldDue
	fieldCount
)

// taskForm holds the inputs of the add and edit screens
type taskForm struct {
	title       textinput.Model
	description textarea.Model
	due         textinput.Model
	focus       formField
}

func newTaskForm() taskForm {
	title := textinput.New()
	title.Placeholder = "What needs doing?"
	title.CharLimit = taskservice.MaxTitleLength
	title.Prompt = "> "

	description := textarea.New()
	description.Placeholder = "Notes (markdown)"
	description.ShowLineNumbers = false
	description.SetHeight(4)

	due := textinput.New()
	due.Placeholder = models.DueDateInputLayout
	due.CharLimit = len(models.DueDateInputLayout)
	due.Prompt = "> "

	return taskForm{title: title, description: description, due: due}
}

// load fills the inputs from a draft and focuses the title
func (f *taskForm) load(d state.Draft) tea.Cmd {
	f.title.SetValue(d.Title)
	f.description.SetValue(d.Description)
	f.due.SetValue("")
	if d.DueDate != nil {
		f.due.SetValue(d.DueDate.Format(models.DueDateInputLayout))
	}
	return f.focusField(fieldTitle)
}

func (f *taskForm) setWidth(w int) {
	w = max(w-4, 20)
	f.title.SetWidth(w)
	f.description.SetWidth(w)
	f.due.SetWidth(w)
}

func (f *taskForm) focusField(field formField) tea.Cmd {
	f.focus = field
	f.title.Blur()
	f.description.Blur()
	f.due.Blur()

	switch field {
	case fieldDescription:
		return f.description.Focus()
	case fieldDue:
		return f.due.Focus()
	default:
		return f.title.Focus()
	}
}

func (f *taskForm) next() tea.Cmd {
	return f.focusField((f.focus + 1) % fieldCount)
}

func (f *taskForm) prev() tea.Cmd {
	return f.focusField((f.focus + fieldCount - 1) % fieldCount)
}

func (f *taskForm) blur() {
	f.title.Blur()
	f.description.Blur()
	f.due.Blur()
}

// update forwards msg to the focused input
func (f *taskForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	case fieldDue:
		f.due, cmd = f.due.Update(msg)
	default:
		f.title, cmd = f.title.Update(msg)
	}
	return cmd
}
