package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the board client.
type KeyMap struct {
	// Selection.
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Drops. MovePrev and MoveNext change the stage; ReorderUp and
	// ReorderDown move the card within its column.
	MovePrev    key.Binding
	MoveNext    key.Binding
	ReorderUp   key.Binding
	ReorderDown key.Binding

	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "select up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "select down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "previous column"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next column"),
	),
	MovePrev: key.NewBinding(
		key.WithKeys("H", "shift+left"),
		key.WithHelp("H", "move to previous stage"),
	),
	MoveNext: key.NewBinding(
		key.WithKeys("L", "shift+right"),
		key.WithHelp("L", "move to next stage"),
	),
	ReorderUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("K", "move card up"),
	),
	ReorderDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
		key.WithHelp("J", "move card down"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MovePrev, k.MoveNext, k.Reload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.MovePrev, k.MoveNext, k.ReorderUp, k.ReorderDown},
		{k.Reload, k.Help, k.Quit},
	}
}
