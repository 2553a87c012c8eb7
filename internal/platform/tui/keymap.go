package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/asteroids/internal/core"
)

// KeyMap holds the terminal key bindings.
type KeyMap struct {
	RotateLeft  key.Binding
	RotateRight key.Binding
	Thrust      key.Binding
	Fire        key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Copy        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RotateLeft, k.RotateRight, k.Thrust, k.Fire, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RotateLeft, k.RotateRight, k.Thrust, k.Fire},
		{k.Pause, k.Restart, k.Copy},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		RotateLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "rotate left"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "rotate right"),
		),
		Thrust: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "thrust"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "copy frame"),
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

// Command translates a key to a ship command.
// ok is false for keys that do not steer the ship.
func (k KeyMap) Command(msg tea.KeyMsg) (cmd core.Command, ok bool) {
	switch {
	case key.Matches(msg, k.RotateLeft):
		return core.CommandRotateLeft, true
	case key.Matches(msg, k.RotateRight):
		return core.CommandRotateRight, true
	case key.Matches(msg, k.Thrust):
		return core.CommandThrust, true
	case key.Matches(msg, k.Fire):
		return core.CommandFire, true
	}
	return 0, false
}

// Action translates a key to a platform action (pause, restart, quit).
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
