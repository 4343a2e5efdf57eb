package game

import (
	"strconv"
	"strings"
)

// EncodePayload returns the drag payload for a cell: "row,col".
func EncodePayload(c Coord) string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// DecodePayload parses a "row,col" drag payload. It reports false when
// either part is missing or not an integer. Bounds are not checked here.
func DecodePayload(s string) (Coord, bool) {
	rowStr, colStr, found := strings.Cut(s, ",")
	if !found {
		return Coord{}, false
	}
	rowStr = strings.TrimSpace(rowStr)
	colStr = strings.TrimSpace(colStr)
	if rowStr == "" || colStr == "" {
		return Coord{}, false
	}

	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return Coord{}, false
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return Coord{}, false
	}
	return At(row, col), true
}
