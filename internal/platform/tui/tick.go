// Package tui provides the Bubble Tea surface for colormix.
// It draws the game, maps mouse and keyboard input to game actions and
// serves the same surface over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a transient status line stays visible.
const statusTimeout = 3 * time.Second

// clearStatusMsg expires the status line set with the matching generation.
type clearStatusMsg struct {
	gen int
}

// clearStatusCmd returns a command that expires status generation gen.
func clearStatusCmd(gen int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{gen: gen}
	})
}
