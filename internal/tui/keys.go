package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dialog's keybindings
type KeyMap struct {
	Confirm     key.Binding
	Cancel      key.Binding
	NextOp      key.Binding
	PrevOp      key.Binding
	Template    key.Binding
	Root        key.Binding
	SwitchField key.Binding

	// Prompt answers
	Yes key.Binding
	No  key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		NextOp: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "operation"),
		),
		PrevOp: key.NewBinding(
			key.WithKeys("shift+tab"),
		),
		Template: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("^T", "template"),
		),
		Root: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("^R", "as root"),
		),
		SwitchField: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "switch field"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "no"),
		),
	}
}
