package game

import "strings"

// Color is one of the five paint colors a cell can hold.
// The set is closed: no other value is a valid Color.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorWhite
	colorCount // Sentinel, not a color
)

// String returns the lowercase name of the color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}

// Char returns a single letter for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorWhite:
		return 'W'
	default:
		return '?'
	}
}

// Valid reports whether c belongs to the palette.
func (c Color) Valid() bool {
	return c < colorCount
}

// ParseColor converts a name or single-letter abbreviation to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	case "white", "w":
		return ColorWhite, true
	default:
		return ColorRed, false
	}
}

// Palette returns every color in display order.
func Palette() []Color {
	return []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow, ColorWhite}
}

// MixColors combines two colors. Red and green (in either order) give
// yellow; every other pair gives white.
func MixColors(a, b Color) Color {
	if (a == ColorRed && b == ColorGreen) || (a == ColorGreen && b == ColorRed) {
		return ColorYellow
	}
	return ColorWhite
}
