package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Advance  key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	AllWork  key.Binding
	Project  key.Binding
	Contact  key.Binding
	Lang     key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap(advance key.Binding) keyMap {
	return keyMap{
		Advance:  advance,
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f", " "), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		AllWork:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all projects")),
		Project:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "project")),
		Contact:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contact")),
		Lang:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "language")),
		Theme:    key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "theme")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.AllWork, k.Contact, k.Lang, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Advance, k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.AllWork, k.Project, k.Contact},
		{k.Lang, k.Theme, k.Help, k.Quit},
	}
}
