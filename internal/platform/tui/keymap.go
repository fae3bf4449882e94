package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Pause key.Binding
	Speed key.Binding
	Easy  key.Binding
	Grow  key.Binding
	Quit  key.Binding
	Close key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/down", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/left", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/right", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "pause"),
		),
		Speed: key.NewBinding(
			key.WithKeys("9"),
			key.WithHelp("9", "speed"),
		),
		Easy: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "easy"),
		),
		Grow: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "grow"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Grow, k.Speed, k.Easy, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Speed, k.Easy, k.Grow, k.Quit},
	}
}

// MapKey translates a key message to a display event.
// Returns false for keys the game does not use.
// Ctrl+C is reported as a backend quit rather than the quit command.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Event, bool) {
	switch {
	case key.Matches(msg, k.Close):
		return core.QuitEvent(), true
	case key.Matches(msg, k.Quit):
		return core.KeyEvent(core.ActionQuit), true
	case key.Matches(msg, k.Up):
		return core.KeyEvent(core.ActionUp), true
	case key.Matches(msg, k.Down):
		return core.KeyEvent(core.ActionDown), true
	case key.Matches(msg, k.Left):
		return core.KeyEvent(core.ActionLeft), true
	case key.Matches(msg, k.Right):
		return core.KeyEvent(core.ActionRight), true
	case key.Matches(msg, k.Pause):
		return core.KeyEvent(core.ActionPause), true
	case key.Matches(msg, k.Speed):
		return core.KeyEvent(core.ActionSpeed), true
	case key.Matches(msg, k.Easy):
		return core.KeyEvent(core.ActionEasy), true
	case key.Matches(msg, k.Grow):
		return core.KeyEvent(core.ActionGrow), true
	}
	return core.Event{}, false
}
