package core

// Color identifies how a screen cell is painted. The platform maps each
// value to a terminal color through the active theme.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorWhite
	ColorAccent // Highlights: cursor, drop target, start control
	ColorMuted  // Frames and secondary text
)
