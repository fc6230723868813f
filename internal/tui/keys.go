package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextAxis key.Binding
	More     key.Binding
	Fewer    key.Binding
	Even     key.Binding
	Up       key.Binding
	Down     key.Binding
	Inc      key.Binding
	Dec      key.Binding
	IncBig   key.Binding
	DecBig   key.Binding
	Copy     key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
}

var keys = keyMap{
	NextAxis: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "columns/rows")),
	More:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "splits")),
	Fewer:    key.NewBinding(key.WithKeys("-", "_")),
	Even:     key.NewBinding(key.WithKeys("e", " "), key.WithHelp("e", "equal")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "select")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	Inc:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←/→", "±1%")),
	Dec:      key.NewBinding(key.WithKeys("left", "h")),
	IncBig:   key.NewBinding(key.WithKeys("]"), key.WithHelp("[/]", "±10%")),
	DecBig:   key.NewBinding(key.WithKeys("[")),
	Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy cuts")),
	Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ok")),
	Cancel:   key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextAxis, k.More, k.Even, k.Up, k.Inc, k.IncBig, k.Copy, k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
