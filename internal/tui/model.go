// Package tui implements the interactive terminal interface.
//
// The model owns one view-state per screen and receives their live
// snapshots as messages; every write goes through a command so Update never
// blocks on storage.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tick/internal/app"
	"github.com/thenoetrevino/tick/internal/config"
	"github.com/thenoetrevino/tick/internal/events"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/state"
	"github.com/thenoetrevino/tick/internal/tui/notifications"
	"github.com/thenoetrevino/tick/internal/tui/theme"
)

type notice struct {
	id       int
	severity notifications.Severity
	text     string
}

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	cfg    *config.Config
	logger *slog.Logger
	keys   keyMap
	help   help.Model
	router *Router

	// list screen
	list          *state.ListViewState
	listSub       *events.Subscription[state.ListSnapshot]
	snapshot      state.ListSnapshot
	loaded        bool
	cursor        int
	searching     bool
	search        textinput.Model
	confirmDelete *models.Task

	// add and edit screens
	detail *state.DetailState
	form   taskForm

	// settings screen
	settings      *state.SettingsState
	themeSub      *events.Subscription[models.Theme]
	theme         models.Theme
	themeCursor   int
	terminalDark  bool
	dark          bool
	markdownCache markdownCache

	notice       notice
	showFullHelp bool
	width        int
	height       int
}

// New creates the TUI model over a wired application
func New(ctx context.Context, a *app.App, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	search := textinput.New()
	search.Placeholder = "Search title or description"
	search.Prompt = "/ "

	m := &Model{
		ctx:          ctx,
		cfg:          cfg,
		logger:       a.Logger(),
		keys:         newKeyMap(cfg.KeyMappings),
		help:         help.New(),
		router:       NewRouter(),
		list:         a.NewListState(),
		search:       search,
		detail:       a.NewDetailState(),
		form:         newTaskForm(),
		settings:     a.NewSettingsState(),
		terminalDark: true,
	}
	m.theme = m.settings.Theme()
	m.applyTheme()
	return m
}

// Init subscribes to the live list and theme and asks the terminal for its
// background color
func (m *Model) Init() tea.Cmd {
	m.listSub = m.list.Subscribe()
	m.themeSub = m.settings.Subscribe()
	return tea.Batch(
		waitForList(m.listSub),
		waitForTheme(m.themeSub),
		tea.RequestBackgroundColor,
	)
}

// Close releases the live subscriptions
func (m *Model) Close() {
	if m.listSub != nil {
		m.listSub.Close()
	}
	if m.themeSub != nil {
		m.themeSub.Close()
	}
}

// CurrentScreen returns the active route
func (m *Model) CurrentScreen() Screen {
	return m.router.Current()
}

// applyTheme resolves the theme against the terminal background and
// reloads the palette
func (m *Model) applyTheme() {
	m.dark = config.IsDark(m.theme, func() bool { return m.terminalDark })
	theme.Init(m.cfg.Colors.For(m.dark))
	m.help.Styles = help.DefaultStyles(m.dark)
}

// visibleTasks returns the tasks of the current snapshot
func (m *Model) visibleTasks() []*models.Task {
	return m.snapshot.Tasks
}

// selectedTask returns the task under the cursor, or nil
func (m *Model) selectedTask() *models.Task {
	tasks := m.visibleTasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return nil
	}
	return tasks[m.cursor]
}

func (m *Model) clampCursor() {
	n := len(m.visibleTasks())
	switch {
	case n == 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	case m.cursor < 0:
		m.cursor = 0
	}
}

// notify shows a message in the status line and schedules its removal
func (m *Model) notify(severity notifications.Severity, text string) tea.Cmd {
	m.notice = notice{id: m.notice.id + 1, severity: severity, text: text}
	return clearNoticeAfter(m.notice.id)
}

func (m *Model) notifyError(action string, err error) tea.Cmd {
	m.logger.Error(action, "error", err)
	return m.notify(notifications.Error, action+": "+err.Error())
}
