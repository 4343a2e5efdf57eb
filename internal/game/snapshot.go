package game

import (
	"fmt"
	"strings"
)

// RenderASCII draws a state as plain text, used for screenshots and tests.
//
//	Moves left: 9
//	+---+
//	|RWR|
//	|WWW|
//	|BWB|
//	+---+
func RenderASCII(s State) string {
	var sb strings.Builder

	if !s.Active {
		sb.WriteString("No game started\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "Moves left: %d\n", s.MovesLeft)
	border := "+" + strings.Repeat("-", Cols) + "+\n"
	sb.WriteString(border)
	for _, line := range strings.Split(s.Grid.String(), "\n") {
		sb.WriteString("|" + line + "|\n")
	}
	sb.WriteString(border)

	if s.Phase() == PhaseExhausted {
		sb.WriteString("No moves left\n")
	}
	return sb.String()
}
