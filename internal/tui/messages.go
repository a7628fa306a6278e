package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tick/internal/events"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/state"
)

// noticeTTL is how long a notification stays in the status line
const noticeTTL = 3 * time.Second

// listSnapshotMsg carries a new list snapshot. ok is false once the
// subscription is closed.
type listSnapshotMsg struct {
	snap state.ListSnapshot
	ok   bool
}

// themeMsg carries the live theme preference
type themeMsg struct {
	theme models.Theme
	ok    bool
}

type detailLoadedMsg struct {
	id     int
	status state.DetailStatus
	err    error
}

type detailSavedMsg struct {
	task  *models.Task
	isNew bool
	err   error
}

type taskDeletedMsg struct {
	title      string
	fromDetail bool
	err        error
}

type taskToggledMsg struct {
	err error
}

type themeChangedMsg struct {
	theme models.Theme
	err   error
}

type clearNoticeMsg struct {
	id int
}

// waitForList blocks on the next list snapshot
func waitForList(sub *events.Subscription[state.ListSnapshot]) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-sub.C()
		return listSnapshotMsg{snap: snap, ok: ok}
	}
}

// waitForTheme blocks on the next theme value
func waitForTheme(sub *events.Subscription[models.Theme]) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-sub.C()
		return themeMsg{theme: t, ok: ok}
	}
}

func loadTaskCmd(ctx context.Context, detail *state.DetailState, id int) tea.Cmd {
	return func() tea.Msg {
		status, err := detail.Load(ctx, id)
		return detailLoadedMsg{id: id, status: status, err: err}
	}
}

func saveTaskCmd(ctx context.Context, detail *state.DetailState) tea.Cmd {
	isNew := detail.Status() == state.DetailNew
	return func() tea.Msg {
		task, err := detail.Save(ctx)
		return detailSavedMsg{task: task, isNew: isNew, err: err}
	}
}

func deleteFromDetailCmd(ctx context.Context, detail *state.DetailState) tea.Cmd {
	title := detail.Draft().Title
	if task := detail.Task(); task != nil {
		title = task.Title
	}
	return func() tea.Msg {
		return taskDeletedMsg{title: title, fromDetail: true, err: detail.Delete(ctx)}
	}
}

func deleteFromListCmd(ctx context.Context, list *state.ListViewState, task *models.Task) tea.Cmd {
	return func() tea.Msg {
		return taskDeletedMsg{title: task.Title, err: list.DeleteTask(ctx, task)}
	}
}

func toggleTaskCmd(ctx context.Context, list *state.ListViewState, task *models.Task) tea.Cmd {
	return func() tea.Msg {
		return taskToggledMsg{err: list.ToggleTaskStatus(ctx, task)}
	}
}

func setThemeCmd(settings *state.SettingsState, t models.Theme) tea.Cmd {
	return func() tea.Msg {
		return themeChangedMsg{theme: t, err: settings.SetTheme(t)}
	}
}

func cycleThemeCmd(settings *state.SettingsState) tea.Cmd {
	return func() tea.Msg {
		t, err := settings.CycleTheme()
		return themeChangedMsg{theme: t, err: err}
	}
}

func clearNoticeAfter(id int) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}
