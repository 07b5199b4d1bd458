package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Enter         key.Binding
	Quit          key.Binding
	PreviewUp     key.Binding
	PreviewDn     key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	TransposeUp   key.Binding
	TransposeDown key.Binding
	TransposeZero key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+k"),
		key.WithHelp("up/C-k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+j"),
		key.WithHelp("dn/C-j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "copy chart"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
	PreviewUp: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("C-u", "preview up"),
	),
	PreviewDn: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("C-d", "preview down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "preview pgup"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "preview pgdn"),
	),
	TransposeUp: key.NewBinding(
		key.WithKeys("shift+up", "ctrl+t"),
		key.WithHelp("S-up", "transpose up"),
	),
	TransposeDown: key.NewBinding(
		key.WithKeys("shift+down", "ctrl+b"),
		key.WithHelp("S-dn", "transpose down"),
	),
	TransposeZero: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("C-o", "original key"),
	),
}
