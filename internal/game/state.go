// Package game holds the color-mixing puzzle rules: the board, the move
// budget and the transitions between snapshots. It knows nothing about
// terminals or input devices.
package game

// MoveBudget is the number of moves a new game starts with.
const MoveBudget = 10

// Phase describes where a State sits in the game lifecycle.
type Phase int

const (
	PhaseNoSession Phase = iota
	PhaseActive
	PhaseExhausted
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNoSession:
		return "no session"
	case PhaseActive:
		return "active"
	case PhaseExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of a game. The zero value means no game
// has been started. Transitions return a new State and never modify the
// receiver.
type State struct {
	Active    bool
	Grid      Grid
	MovesLeft int
}

// Initialize returns a fresh game: the starting grid and a full move budget.
func Initialize() State {
	return State{
		Active:    true,
		Grid:      StartingGrid(),
		MovesLeft: MoveBudget,
	}
}

// Phase reports the lifecycle phase of s.
func (s State) Phase() Phase {
	switch {
	case !s.Active:
		return PhaseNoSession
	case s.MovesLeft <= 0:
		return PhaseExhausted
	default:
		return PhaseActive
	}
}

// CanMove reports whether a move would currently be accepted.
func (s State) CanMove() bool {
	return s.Phase() == PhaseActive
}

// MovesUsed returns how many moves have been spent this game.
func (s State) MovesUsed() int {
	if !s.Active {
		return 0
	}
	return MoveBudget - s.MovesLeft
}

// Reduce applies a to s. It returns the next state and whether the action
// was accepted. Rejected actions return s unchanged: moves on an inactive or
// exhausted game, coordinates outside the grid and colors outside the palette
// are all ignored.
func Reduce(s State, a Action) (State, bool) {
	if _, ok := a.(Start); ok {
		return Initialize(), true
	}

	if !s.CanMove() {
		return s, false
	}

	var next Grid
	switch a := a.(type) {
	case CrossPaint:
		if !a.At.InBounds() {
			return s, false
		}
		next = s.Grid.Crossed(a.At)

	case UniformFill:
		if !a.Color.Valid() {
			return s, false
		}
		next = Filled(a.Color)

	case DragMerge:
		// Both colors come from the grid as it is before this move.
		src, ok := s.Grid.At(a.Source)
		if !ok {
			return s, false
		}
		dst, ok := s.Grid.At(a.Target)
		if !ok {
			return s, false
		}
		next = Filled(MixColors(src, dst))

	default:
		return s, false
	}

	return State{
		Active:    true,
		Grid:      next,
		MovesLeft: s.MovesLeft - 1,
	}, true
}

// ApplyCrossPaint whitens row and column of (row, col).
func (s State) ApplyCrossPaint(row, col int) State {
	next, _ := Reduce(s, CrossPaint{At: At(row, col)})
	return next
}

// ApplyUniformFill paints the whole grid with color.
func (s State) ApplyUniformFill(color Color) State {
	next, _ := Reduce(s, UniformFill{Color: color})
	return next
}

// ApplyDragMerge fills the grid with the mix of the source and target colors.
func (s State) ApplyDragMerge(srcRow, srcCol, dstRow, dstCol int) State {
	next, _ := Reduce(s, DragMerge{Source: At(srcRow, srcCol), Target: At(dstRow, dstCol)})
	return next
}
