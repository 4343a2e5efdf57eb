package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-colormix/internal/core"
)

// KeyMap defines the keyboard bindings of the game surface.
// Mouse gestures are handled separately; every mouse gesture has a key here.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Paint      key.Binding
	Grab       key.Binding
	Cancel     key.Binding
	Fill       key.Binding
	Start      key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Paint, k.Grab, k.Fill, k.Start, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Paint, k.Grab, k.Cancel, k.Fill},
		{k.Start, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Paint: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "cross paint"),
		),
		Grab: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "drag/drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Fill: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "fill"),
		),
		Start: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an input intent.
// Fill keys carry the 0-based palette index.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Input{Action: core.ActionQuit}
	case key.Matches(msg, k.Up):
		return core.Input{Action: core.ActionUp}
	case key.Matches(msg, k.Down):
		return core.Input{Action: core.ActionDown}
	case key.Matches(msg, k.Left):
		return core.Input{Action: core.ActionLeft}
	case key.Matches(msg, k.Right):
		return core.Input{Action: core.ActionRight}
	case key.Matches(msg, k.Paint):
		return core.Input{Action: core.ActionPaint}
	case key.Matches(msg, k.Grab):
		return core.Input{Action: core.ActionGrab}
	case key.Matches(msg, k.Cancel):
		return core.Input{Action: core.ActionCancel}
	case key.Matches(msg, k.Fill):
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return core.Input{}
		}
		return core.Input{Action: core.ActionFill, Index: n - 1}
	case key.Matches(msg, k.Start):
		return core.Input{Action: core.ActionStart}
	case key.Matches(msg, k.Help):
		return core.Input{Action: core.ActionHelp}
	case key.Matches(msg, k.Screenshot):
		return core.Input{Action: core.ActionScreenshot}
	}

	return core.Input{Action: core.ActionNone}
}
