package tui

import (
	"context"
	"database/sql"
	"testing"
	"time"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/tick/internal/app"
	"github.com/thenoetrevino/tick/internal/config"
	"github.com/thenoetrevino/tick/internal/logging"
	"github.com/thenoetrevino/tick/internal/preferences"
	"github.com/thenoetrevino/tick/internal/state"
	"github.com/thenoetrevino/tick/internal/testutil"
)

// setupTestModel creates an initialized model over an in-memory database
// and sizes it like a small terminal
func setupTestModel(t *testing.T) (*Model, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	a := app.New(db, preferences.NewMemory(),
		app.WithLinger(0),
		app.WithLogger(logging.Discard()),
	)

	m := New(context.Background(), a, config.Default())
	m.Init()
	t.Cleanup(m.Close)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, db
}

// keyPress builds a key press from its string form ("a", "enter", "ctrl+s")
func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	case "ctrl+s":
		return tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
	case "ctrl+d":
		return tea.KeyPressMsg(tea.Key{Code: 'd', Mod: tea.ModCtrl})
	case "ctrl+p":
		return tea.KeyPressMsg(tea.Key{Code: 'p', Mod: tea.ModCtrl})
	}
	r, _ := utf8.DecodeRuneInString(s)
	return tea.KeyPressMsg(tea.Key{Code: r, Text: s})
}

// press sends a key and returns the command it produced
func press(m *Model, s string) tea.Cmd {
	_, cmd := m.Update(keyPress(s))
	return cmd
}

// typeText sends one key press per rune
func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(keyPress(string(r)))
	}
}

// run executes a command that performs storage work and feeds its result
// back into the model
func run(t *testing.T, m *Model, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	m.Update(msg)
	return msg
}

// awaitList feeds list snapshots to the model until one satisfies ok
func awaitList(t *testing.T, m *Model, ok func(state.ListSnapshot) bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap, open := <-m.listSub.C():
			m.Update(listSnapshotMsg{snap: snap, ok: open})
			if open && ok(snap) {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for list snapshot")
			return
		}
	}
}

// awaitTheme feeds theme values to the model until one satisfies ok
func awaitTheme(t *testing.T, m *Model, ok func(themeMsg) bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case th, open := <-m.themeSub.C():
			msg := themeMsg{theme: th, ok: open}
			m.Update(msg)
			if ok(msg) {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for theme")
			return
		}
	}
}

// screen renders the model without styling
func screen(m *Model) string {
	return ansi.Strip(m.View().Content)
}
