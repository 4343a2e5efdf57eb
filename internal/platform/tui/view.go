package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-colormix/internal/core"
	"github.com/vovakirdan/tui-colormix/internal/game"
)

// Cell markers
const (
	markCursorLeft  = '▶'
	markCursorRight = '◀'
	markSource      = '●'
	markTarget      = '◆'
)

// draw renders the whole surface into the screen buffer.
func (m *Model) draw() {
	s := m.screen
	s.Clear()

	if m.layout.TooSmall {
		m.drawCompact()
		return
	}

	l := m.layout

	title := []rune(m.theme.Labels.Title)
	tx := (s.Width() - len(title)) / 2
	for i, r := range title {
		s.SetCell(tx+i, l.TitleY, core.Cell{Rune: r, Fg: core.ColorAccent, Bold: true})
	}

	startColor := core.ColorAccent
	if m.state.CanMove() {
		startColor = core.ColorMuted
	}
	s.DrawText(l.Start.X, l.Start.Y, m.theme.Labels.Start, startColor)

	s.DrawBox(l.Frame, core.ColorMuted)
	m.drawCells()
	m.drawPalette()

	s.DrawTextCentered(l.MovesY, fmt.Sprintf("Moves Left: %d", m.movesLeft()), core.ColorDefault)
	s.DrawTextCentered(l.StatusY, m.statusLine(), core.ColorMuted)
}

// drawCells paints every grid cell with its color and the interaction marks.
func (m *Model) drawCells() {
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Cols; c++ {
			at := game.At(r, c)
			rect := m.layout.CellRect(at)
			cx, cy := rect.Center()

			// No board exists until the first game starts.
			if !m.state.Active {
				m.screen.Set(cx, cy, '·', core.ColorMuted)
			} else {
				color, _ := m.state.Grid.At(at)
				m.screen.FillRect(rect, screenColor(color))
			}

			switch {
			case m.dragging && at == m.dragFrom:
				m.screen.Set(cx, cy, markSource, core.ColorDefault)
			case m.hovering && at == m.hover:
				m.screen.Set(cx, cy, markTarget, core.ColorDefault)
			}

			if at == m.cursor {
				m.screen.Set(rect.X, cy, markCursorLeft, core.ColorDefault)
				m.screen.Set(rect.Right()-1, cy, markCursorRight, core.ColorDefault)
			}
		}
	}
}

// drawPalette draws the uniform-fill swatches with their key numbers.
func (m *Model) drawPalette() {
	for i, sw := range m.layout.Swatches {
		m.screen.FillRect(sw.Rect, screenColor(sw.Color))
		label := fmt.Sprintf("%d", i+1)
		m.screen.DrawText(sw.Rect.X+(sw.Rect.W-1)/2, sw.Rect.Y, label, core.ColorDefault)
	}
}

// drawCompact is used when the terminal cannot fit the full surface.
// Keyboard play keeps working against the text board.
func (m *Model) drawCompact() {
	y := 0
	for _, line := range strings.Split(strings.TrimRight(game.RenderASCII(m.state), "\n"), "\n") {
		m.screen.DrawText(0, y, line, core.ColorDefault)
		y++
	}
	m.screen.DrawText(0, y, "Terminal too small for mouse play", core.ColorMuted)
}

// movesLeft is the readout value. Before the first game it shows the
// budget a new game would start with.
func (m Model) movesLeft() int {
	if !m.state.Active {
		return game.MoveBudget
	}
	return m.state.MovesLeft
}

// statusLine returns the transient status, or a hint for the current phase.
func (m Model) statusLine() string {
	if m.status != "" {
		return m.status
	}
	switch m.state.Phase() {
	case game.PhaseNoSession:
		return "Click " + strings.TrimSpace(strings.Trim(m.theme.Labels.Start, "[]")) + " or press n to begin"
	case game.PhaseExhausted:
		return "No moves left. Start a new game to play again"
	}
	if m.dragging {
		return "Dragging " + m.dragFrom.String() + ": release on another cell to mix"
	}
	return ""
}
