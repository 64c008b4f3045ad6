package sitenav

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings handled by the sidebar.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Select key.Binding
}

// DefaultKeyMap returns the default sidebar keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous entry"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next entry"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("b", "ctrl+b"),
			key.WithHelp("b", "toggle sidebar"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open post"),
		),
	}
}
