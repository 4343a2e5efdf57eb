package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-colormix/internal/config"
	"github.com/vovakirdan/tui-colormix/internal/core"
	"github.com/vovakirdan/tui-colormix/internal/game"
)

// Styles maps screen colors to terminal colors for one renderer.
// SSH sessions get their own renderer so color detection is per client.
type Styles struct {
	renderer *lipgloss.Renderer
	colors   map[core.Color]lipgloss.Color
}

// NewStyles builds styles from a theme. A nil renderer uses the default one.
func NewStyles(theme config.Theme, r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		renderer: r,
		colors: map[core.Color]lipgloss.Color{
			core.ColorRed:    lipgloss.Color(theme.Colors.Red),
			core.ColorGreen:  lipgloss.Color(theme.Colors.Green),
			core.ColorBlue:   lipgloss.Color(theme.Colors.Blue),
			core.ColorYellow: lipgloss.Color(theme.Colors.Yellow),
			core.ColorWhite:  lipgloss.Color(theme.Colors.White),
			core.ColorAccent: lipgloss.Color(theme.Colors.Accent),
			core.ColorMuted:  lipgloss.Color(theme.Colors.Muted),
		},
	}
}

// style returns the lipgloss style for a cell's attributes.
func (st Styles) style(c core.Cell) lipgloss.Style {
	s := st.renderer.NewStyle()
	if color, ok := st.colors[c.Fg]; ok {
		s = s.Foreground(color)
	}
	if color, ok := st.colors[c.Bg]; ok {
		s = s.Background(color)
	}
	if c.Bold {
		s = s.Bold(true)
	}
	return s
}

// screenColor maps a paint color to the screen color that draws it.
func screenColor(c game.Color) core.Color {
	switch c {
	case game.ColorRed:
		return core.ColorRed
	case game.ColorGreen:
		return core.ColorGreen
	case game.ColorBlue:
		return core.ColorBlue
	case game.ColorYellow:
		return core.ColorYellow
	case game.ColorWhite:
		return core.ColorWhite
	default:
		return core.ColorDefault
	}
}

// sameStyle reports whether two cells render with identical attributes.
func sameStyle(a, b core.Cell) bool {
	return a.Fg == b.Fg && a.Bg == b.Bg && a.Bold == b.Bold
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, st Styles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if !sameStyle(cell, start) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if sameStyle(start, core.Cell{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(st.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
