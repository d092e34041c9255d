package core

// Action represents a semantic player action, abstracted from physical key
// presses and mouse gestures.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, K, Up arrow, swipe up
	ActionRight           // D, L, Right arrow, swipe right
	ActionDown            // S, J, Down arrow, swipe down
	ActionLeft            // A, H, Left arrow, swipe left
	ActionContinue        // C, Enter - keep playing after the win overlay
	ActionRestart         // R - start a new board
	ActionScores          // Tab - toggle the scoreboard
	ActionQuit            // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionContinue:
		return "Continue"
	case ActionRestart:
		return "Restart"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four directions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionLeft
}

// DefaultSwipeThreshold is the minimum drag distance, in cells, that counts as a swipe.
const DefaultSwipeThreshold = 2

// SwipeAction converts a drag vector into a move action.
// Drags shorter than threshold on both axes are ignored; otherwise the
// dominant axis decides. Ties go to the vertical axis.
// Screen y grows downward, so a positive dy is a downward swipe.
func SwipeAction(dx, dy, threshold int) Action {
	if Abs(dx) < threshold && Abs(dy) < threshold {
		return ActionNone
	}
	if Abs(dx) > Abs(dy) {
		if dx > 0 {
			return ActionRight
		}
		return ActionLeft
	}
	if dy > 0 {
		return ActionDown
	}
	return ActionUp
}
