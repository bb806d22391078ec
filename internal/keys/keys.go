package keys

import (
	"github.com/charmbracelet/bubbles/key"

	"todo/internal/config"
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	// Shell, only consulted in normal mode
	NewTask key.Binding
	List    key.Binding
	Quit    key.Binding

	// List view
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Delete key.Binding

	// New task view
	Focus  key.Binding
	Submit key.Binding
	Normal key.Binding
}

// FromConfig builds bindings from the configured keys and help labels.
func FromConfig(k config.Keymap) *KeyMap {
	return &KeyMap{
		NewTask: binding(k.NewTask),
		List:    binding(k.List),
		Quit:    binding(k.Quit),
		Up:      binding(k.Up),
		Down:    binding(k.Down),
		Toggle:  binding(k.Toggle),
		Delete:  binding(k.Delete),
		Focus:   binding(k.Focus),
		Submit:  binding(k.Submit),
		Normal:  binding(k.Normal),
	}
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return FromConfig(config.Default().Keys)
}

func binding(b config.Binding) key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(b.Help, b.Desc),
	)
}
