package ui

import "github.com/charmbracelet/bubbles/key"

// View represents different UI views
type View int

const (
	ViewLoading View = iota
	ViewDashboard
)

// keyMap holds the dashboard key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	LowDown  key.Binding
	LowUp    key.Binding
	HighDown key.Binding
	HighUp   key.Binding
	Reset    key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.LowDown, k.LowUp, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.LowDown, k.LowUp, k.HighDown, k.HighUp},
		{k.Reset, k.Reload, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous site"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next site"),
	),
	LowDown: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "lower min payload"),
	),
	LowUp: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "raise min payload"),
	),
	HighDown: key.NewBinding(
		key.WithKeys("shift+left", "H"),
		key.WithHelp("shift+←/H", "lower max payload"),
	),
	HighUp: key.NewBinding(
		key.WithKeys("shift+right", "L"),
		key.WithHelp("shift+→/L", "raise max payload"),
	),
	Reset: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "reset selection"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload data"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}
