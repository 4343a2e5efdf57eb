package tui

import (
	"github.com/vovakirdan/tui-colormix/internal/config"
	"github.com/vovakirdan/tui-colormix/internal/core"
	"github.com/vovakirdan/tui-colormix/internal/game"
)

// Swatch layout constants
const (
	swatchWidth = 6
	swatchGap   = 1
)

// Swatch is one clickable palette entry.
type Swatch struct {
	Rect  core.Rect
	Color game.Color
}

// Layout positions every element of the surface on screen and answers
// hit-test queries for mouse events. It is recomputed on resize.
type Layout struct {
	Width    int
	Height   int
	TitleY   int
	Start    core.Rect
	Frame    core.Rect
	Cells    [game.Rows][game.Cols]core.Rect
	Swatches []Swatch
	MovesY   int
	StatusY  int
	TooSmall bool
}

// NewLayout computes positions for a width x height area.
// Everything is centered horizontally and stacked from the top.
func NewLayout(width, height int, theme config.Theme) Layout {
	cw, ch, gap := theme.Cell.Width, theme.Cell.Height, theme.Cell.Gap

	gridW := game.Cols*cw + (game.Cols-1)*gap
	gridH := game.Rows*ch + (game.Rows-1)*gap
	frameW := gridW + 4 // 1 border + 1 padding each side
	frameH := gridH + 2 // 1 border each side

	l := Layout{
		Width:  width,
		Height: height,
		TitleY: 0,
	}

	startW := len([]rune(theme.Labels.Start))
	l.Start = core.NewRect((width-startW)/2, 2, startW, 1)

	l.Frame = core.NewRect((width-frameW)/2, 4, frameW, frameH)
	gridX := l.Frame.X + 2
	gridY := l.Frame.Y + 1
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Cols; c++ {
			l.Cells[r][c] = core.NewRect(gridX+c*(cw+gap), gridY+r*(ch+gap), cw, ch)
		}
	}

	palette := game.Palette()
	paletteW := len(palette)*swatchWidth + (len(palette)-1)*swatchGap
	paletteX := (width - paletteW) / 2
	paletteY := l.Frame.Bottom() + 1
	l.Swatches = make([]Swatch, len(palette))
	for i, color := range palette {
		l.Swatches[i] = Swatch{
			Rect:  core.NewRect(paletteX+i*(swatchWidth+swatchGap), paletteY, swatchWidth, 1),
			Color: color,
		}
	}

	l.MovesY = paletteY + 2
	l.StatusY = l.MovesY + 1

	minW := core.Max(frameW, core.Max(paletteW, startW))
	l.TooSmall = width < minW || height < l.StatusY+1

	return l
}

// CellAt returns the grid cell under the screen point (x, y).
// Gaps between cells and the frame are not cells.
func (l Layout) CellAt(x, y int) (game.Coord, bool) {
	if l.TooSmall {
		return game.Coord{}, false
	}
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Cols; c++ {
			if l.Cells[r][c].Contains(x, y) {
				return game.At(r, c), true
			}
		}
	}
	return game.Coord{}, false
}

// SwatchAt returns the palette color under the screen point (x, y).
func (l Layout) SwatchAt(x, y int) (game.Color, bool) {
	if l.TooSmall {
		return game.ColorWhite, false
	}
	for _, s := range l.Swatches {
		if s.Rect.Contains(x, y) {
			return s.Color, true
		}
	}
	return game.ColorWhite, false
}

// StartAt reports whether (x, y) is on the start control.
func (l Layout) StartAt(x, y int) bool {
	return !l.TooSmall && l.Start.Contains(x, y)
}

// CellRect returns the screen rectangle of a grid cell.
func (l Layout) CellRect(at game.Coord) core.Rect {
	if !at.InBounds() {
		return core.Rect{}
	}
	return l.Cells[at.Row][at.Col]
}
