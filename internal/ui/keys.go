package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the normal-mode key bindings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	SelectAll key.Binding
	ClearAll  key.Binding
	Submit    key.Binding
	Query     key.Binding
	Filter    key.Binding
	Copy      key.Binding
	Theme     key.Binding
	Collapse  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("A", "esc"),
			key.WithHelp("A", "clear"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open tabs"),
		),
		Query: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "edit query"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy urls"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "fold category"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.SelectAll, k.Submit, k.Query, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Collapse},
		{k.Toggle, k.SelectAll, k.ClearAll},
		{k.Submit, k.Query, k.Filter},
		{k.Copy, k.Theme, k.Help, k.Quit},
	}
}
