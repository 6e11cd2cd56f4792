package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Open       key.Binding
	Add        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Favorite   key.Binding
	Pin        key.Binding
	Favorites  key.Binding
	Filter     key.Binding
	Search     key.Binding
	Grab       key.Binding
	Categories key.Binding
	YankURL    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o/enter", "open in browser"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add app"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "toggle favorite"),
		),
		Pin: key.NewBinding(
			key.WithKeys("*"),
			key.WithHelp("*", "pin/unpin"),
		),
		Favorites: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorites view"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Search: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "fuzzy search"),
		),
		Grab: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "grab/reorder"),
		),
		Categories: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "categories"),
		),
		YankURL: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "yank URL"),
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
}
