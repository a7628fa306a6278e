package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tick/internal/config"
)

// keyMap holds the bindings for every screen, built from the user's key mappings
type keyMap struct {
	Add        key.Binding
	Open       key.Binding
	Delete     key.Binding
	Toggle     key.Binding
	Search     key.Binding
	CycleSort  key.Binding
	Up         key.Binding
	Down       key.Binding
	Settings   key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Back       key.Binding
	Save       key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Priority   key.Binding
	FormDelete key.Binding
	CycleTheme key.Binding
	Select     key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Add:        key.NewBinding(key.WithKeys(km.AddTask), key.WithHelp(km.AddTask, "add")),
		Open:       key.NewBinding(key.WithKeys(km.OpenTask), key.WithHelp(km.OpenTask, "open")),
		Delete:     key.NewBinding(key.WithKeys(km.DeleteTask), key.WithHelp(km.DeleteTask, "delete")),
		Toggle:     key.NewBinding(key.WithKeys(km.ToggleTask), key.WithHelp(km.ToggleTask, "toggle done")),
		Search:     key.NewBinding(key.WithKeys(km.Search), key.WithHelp(km.Search, "search")),
		CycleSort:  key.NewBinding(key.WithKeys(km.CycleSort), key.WithHelp(km.CycleSort, "sort")),
		Up:         key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp("↑/"+km.PrevTask, "up")),
		Down:       key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp("↓/"+km.NextTask, "down")),
		Settings:   key.NewBinding(key.WithKeys(km.Settings), key.WithHelp(km.Settings, "settings")),
		Help:       key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:       key.NewBinding(key.WithKeys(km.Quit), key.WithHelp(km.Quit, "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
		Back:       key.NewBinding(key.WithKeys(km.Back), key.WithHelp(km.Back, "back")),
		Save:       key.NewBinding(key.WithKeys(km.SaveForm), key.WithHelp(km.SaveForm, "save")),
		NextField:  key.NewBinding(key.WithKeys(km.NextField), key.WithHelp(km.NextField, "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab")),
		Priority:   key.NewBinding(key.WithKeys(km.CyclePriority), key.WithHelp(km.CyclePriority, "priority")),
		FormDelete: key.NewBinding(key.WithKeys(km.DeleteFromForm), key.WithHelp(km.DeleteFromForm, "delete")),
		CycleTheme: key.NewBinding(key.WithKeys(km.CycleTheme), key.WithHelp(km.CycleTheme, "cycle theme")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Confirm:    key.NewBinding(key.WithKeys("y", "Y")),
		Cancel:     key.NewBinding(key.WithKeys("n", "N", "esc")),
	}
}

// listHelp returns the short help for the list screen
func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Add, k.Open, k.Toggle, k.Delete, k.Search, k.CycleSort, k.Settings, k.Help, k.Quit}
}

// listFullHelp groups every list binding by column
func (k keyMap) listFullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Add, k.Toggle, k.Delete},
		{k.Search, k.CycleSort, k.Settings},
		{k.Help, k.Quit},
	}
}

func (k keyMap) formHelp(canDelete bool) []key.Binding {
	bindings := []key.Binding{k.Save, k.NextField, k.Priority}
	if canDelete {
		bindings = append(bindings, k.FormDelete)
	}
	return append(bindings, k.Back)
}

func (k keyMap) settingsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.CycleTheme, k.Back}
}
