package core

// Action represents a semantic player intent, abstracted from physical key
// presses and mouse buttons. Front ends translate input into actions and the
// actions into engine calls.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // K, Up arrow - move cursor up
	ActionDown          // J, Down arrow - move cursor down
	ActionLeft          // H, Left arrow - move cursor left
	ActionRight         // L, Right arrow - move cursor right
	ActionReveal        // Space, Enter, left click - reveal cell
	ActionFlag          // F, right click - toggle flag
	ActionReset         // R - start a fresh board
	ActionHelp          // ? - toggle full help
	ActionBack          // B, Escape - back to menu
	ActionQuit          // Q, Ctrl+C - exit
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
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionReset:
		return "Reset"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the cursor movement for directional actions, (0, 0) otherwise.
func (a Action) Delta() (dr, dc int) {
	switch a {
	case ActionUp:
		return -1, 0
	case ActionDown:
		return 1, 0
	case ActionLeft:
		return 0, -1
	case ActionRight:
		return 0, 1
	}
	return 0, 0
}

// IsMove reports whether the action moves the cursor.
func (a Action) IsMove() bool {
	dr, dc := a.Delta()
	return dr != 0 || dc != 0
}
