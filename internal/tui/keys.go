package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the key bindings handled by the console itself. Everything
// else goes to the text input.
type keyMap struct {
	Quit  key.Binding
	Clear key.Binding
}

// keys is the global key map.
var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+d"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear screen"),
	),
}
