package game

import (
	"fmt"
	"strings"
)

// Grid dimensions. They never change during a session.
const (
	Rows = 3
	Cols = 3
)

// Coord addresses a cell by 0-based row and column.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// InBounds reports whether the coordinate addresses a cell of the grid.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

// Grid is the board. It is an array, so assignment copies it and a Grid
// held by one State can never be changed through another.
type Grid [Rows][Cols]Color

// StartingGrid returns the board every new game begins with:
// a red row, a green row and a blue row.
func StartingGrid() Grid {
	return Grid{
		{ColorRed, ColorRed, ColorRed},
		{ColorGreen, ColorGreen, ColorGreen},
		{ColorBlue, ColorBlue, ColorBlue},
	}
}

// At returns the color at c. The second result is false when c is
// outside the grid.
func (g Grid) At(c Coord) (Color, bool) {
	if !c.InBounds() {
		return ColorWhite, false
	}
	return g[c.Row][c.Col], true
}

// Filled returns a grid with every cell set to color.
func Filled(color Color) Grid {
	var g Grid
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			g[r][c] = color
		}
	}
	return g
}

// Crossed returns a copy of g with row and column of c painted white.
func (g Grid) Crossed(at Coord) Grid {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if r == at.Row || c == at.Col {
				g[r][c] = ColorWhite
			}
		}
	}
	return g
}

// String renders the grid as rows of color letters, e.g. "RRR\nGGG\nBBB".
func (g Grid) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c := 0; c < Cols; c++ {
			sb.WriteRune(g[r][c].Char())
		}
	}
	return sb.String()
}
