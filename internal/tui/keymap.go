package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the bindings that are not calculator keys
type keyMap struct {
	Solve     key.Binding
	Clear     key.Binding
	Backspace key.Binding
	Negate    key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Solve: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter/=", "solve"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "c"),
			key.WithHelp("esc/c", "clear"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "delete"),
		),
		Negate: key.NewBinding(
			key.WithKeys("o", "n"),
			key.WithHelp("o", "±"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Solve, k.Clear, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Solve, k.Clear, k.Backspace, k.Negate},
		{k.Copy, k.Help, k.Quit},
	}
}
