package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-colormix/internal/core"
)

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Input
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.Input{Action: core.ActionUp}},
		{"vim down", keyRunes("j"), core.Input{Action: core.ActionDown}},
		{"vim left", keyRunes("h"), core.Input{Action: core.ActionLeft}},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.Input{Action: core.ActionRight}},
		{"space paints", tea.KeyMsg{Type: tea.KeySpace}, core.Input{Action: core.ActionPaint}},
		{"enter paints", tea.KeyMsg{Type: tea.KeyEnter}, core.Input{Action: core.ActionPaint}},
		{"grab", keyRunes("g"), core.Input{Action: core.ActionGrab}},
		{"cancel", tea.KeyMsg{Type: tea.KeyEsc}, core.Input{Action: core.ActionCancel}},
		{"fill first", keyRunes("1"), core.Input{Action: core.ActionFill, Index: 0}},
		{"fill last", keyRunes("5"), core.Input{Action: core.ActionFill, Index: 4}},
		{"start", keyRunes("n"), core.Input{Action: core.ActionStart}},
		{"help", keyRunes("?"), core.Input{Action: core.ActionHelp}},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.Input{Action: core.ActionScreenshot}},
		{"quit", keyRunes("q"), core.Input{Action: core.ActionQuit}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Input{Action: core.ActionQuit}},
		{"unbound digit", keyRunes("6"), core.Input{Action: core.ActionNone}},
		{"unbound letter", keyRunes("x"), core.Input{Action: core.ActionNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %+v, want %+v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHelpBindingsHaveText(t *testing.T) {
	keys := DefaultKeyMap()
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			if b.Help().Key == "" || b.Help().Desc == "" {
				t.Errorf("binding %v has no help text", b.Keys())
			}
		}
	}
}
