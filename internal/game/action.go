package game

import "fmt"

// Action is a state transition request. The set of variants is closed;
// Reduce is the only consumer.
type Action interface {
	fmt.Stringer
	action()
}

// Start begins a new game, discarding any current one.
type Start struct{}

// CrossPaint whitens the row and column through At.
type CrossPaint struct {
	At Coord
}

// UniformFill paints every cell with Color.
type UniformFill struct {
	Color Color
}

// DragMerge mixes the colors at Source and Target and fills the grid with
// the result.
type DragMerge struct {
	Source Coord
	Target Coord
}

func (Start) action()       {}
func (CrossPaint) action()  {}
func (UniformFill) action() {}
func (DragMerge) action()   {}

func (Start) String() string { return "start" }

func (a CrossPaint) String() string {
	return fmt.Sprintf("cross %d,%d", a.At.Row, a.At.Col)
}

func (a UniformFill) String() string {
	return "fill " + a.Color.String()
}

func (a DragMerge) String() string {
	return fmt.Sprintf("merge %d,%d -> %d,%d", a.Source.Row, a.Source.Col, a.Target.Row, a.Target.Col)
}
