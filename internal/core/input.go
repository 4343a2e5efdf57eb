package core

// Action is a semantic input intent, abstracted from physical keys.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Move the cell cursor up
	ActionDown              // Move the cell cursor down
	ActionLeft              // Move the cell cursor left
	ActionRight             // Move the cell cursor right
	ActionPaint             // Cross-paint at the cursor
	ActionGrab              // Start or finish a keyboard drag at the cursor
	ActionCancel            // Drop a pending keyboard drag
	ActionFill              // Uniform fill with a palette color (see Index)
	ActionStart             // Start a new game
	ActionHelp              // Toggle the full help view
	ActionScreenshot        // Save an ASCII screenshot
	ActionQuit              // Exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPaint:
		return "Paint"
	case ActionGrab:
		return "Grab"
	case ActionCancel:
		return "Cancel"
	case ActionFill:
		return "Fill"
	case ActionStart:
		return "Start"
	case ActionHelp:
		return "Help"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is one decoded keyboard intent. Index carries the palette slot for
// ActionFill and is zero otherwise.
type Input struct {
	Action Action
	Index  int
}
