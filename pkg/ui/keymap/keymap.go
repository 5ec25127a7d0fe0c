// Package keymap defines the key bindings shared across the UI.
package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap is a map of key bindings for the UI.
type KeyMap struct {
	Quit    key.Binding
	Back    key.Binding
	Select  key.Binding
	Help    key.Binding
	Create  key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Invite  key.Binding
	Frame   key.Binding
	Message key.Binding
	Logout  key.Binding
}

// DefaultKeyMap returns the default key map.
func DefaultKeyMap() *KeyMap {
	km := new(KeyMap)

	km.Quit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	)

	km.Back = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	)

	km.Select = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	)

	km.Help = key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	)

	km.Create = key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new project"),
	)

	km.Edit = key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	)

	km.Delete = key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete"),
	)

	km.Invite = key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "add people"),
	)

	km.Frame = key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "add frame"),
	)

	km.Message = key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "message"),
	)

	km.Logout = key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "logout"),
	)

	return km
}
