package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Help key.Binding

	// Timer controls
	StartStop key.Binding
	Reset     key.Binding

	// Length adjustments, disabled while running
	SessionUp   key.Binding
	SessionDown key.Binding
	BreakUp     key.Binding
	BreakDown   key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	StartStop:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start/stop")),
	Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	SessionUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "session +1m")),
	SessionDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "session -1m")),
	BreakUp:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "break +1m")),
	BreakDown:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "break -1m")),
}

// SetAdjustEnabled toggles the length bindings. Disabled bindings neither
// match keys nor show in help.
func (k *KeyMap) SetAdjustEnabled(enabled bool) {
	k.SessionUp.SetEnabled(enabled)
	k.SessionDown.SetEnabled(enabled)
	k.BreakUp.SetEnabled(enabled)
	k.BreakDown.SetEnabled(enabled)
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartStop, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartStop, k.Reset},
		{k.SessionUp, k.SessionDown, k.BreakUp, k.BreakDown},
		{k.Help, k.Quit},
	}
}
