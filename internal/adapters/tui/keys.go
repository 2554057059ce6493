package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keybindings for the screen.
type keyMap struct {
	Toggle  key.Binding
	Reset   key.Binding
	Breathe key.Binding
	Next    key.Binding
	Prev    key.Binding
	Up      key.Binding
	Down    key.Binding
	Louder  key.Binding
	Softer  key.Binding
	Mute    key.Binding
	Full    key.Binding
	AddTask key.Binding
	Submit  key.Binding
	Cancel  key.Binding
	Remove  key.Binding
	Filter  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle:  key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space", "start/pause")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Breathe: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "breathe")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev panel")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Louder:  key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/+", "louder")),
		Softer:  key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/-", "softer")),
		Mute:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "mute")),
		Full:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "full")),
		AddTask: key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add task")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		Remove:  key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Breathe, k.Next, k.Help, k.Quit}
}

// FullHelp returns the bindings grouped by panel.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Breathe},
		{k.Up, k.Down, k.Louder, k.Softer, k.Mute, k.Full},
		{k.AddTask, k.Remove, k.Filter},
		{k.Next, k.Prev, k.Help, k.Quit},
	}
}

// panelHelp returns the short help for the focused panel.
func (k keyMap) panelHelp(f focusArea) []key.Binding {
	switch f {
	case focusMixer:
		return []key.Binding{k.Up, k.Down, k.Softer, k.Louder, k.Mute, k.Full, k.Next, k.Quit}
	case focusTasks:
		return []key.Binding{k.AddTask, k.Up, k.Down, k.Remove, k.Filter, k.Next, k.Quit}
	default:
		return k.ShortHelp()
	}
}

// inputHelp returns the help shown while typing.
func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}
