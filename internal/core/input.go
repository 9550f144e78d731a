package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionConfirm        // Enter, Space
	ActionBack           // B, Escape
	ActionQuit           // Q, Ctrl+C
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction maps a movement action to its grid direction.
// The second result is false for non-movement actions.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return Up, true
	case ActionDown:
		return Down, true
	case ActionLeft:
		return Left, true
	case ActionRight:
		return Right, true
	default:
		return Direction{}, false
	}
}

// InputFrame holds the actions triggered between two simulation ticks,
// in the order they arrived.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Directions returns the movement directions of this frame in arrival order.
func (f InputFrame) Directions() []Direction {
	var dirs []Direction
	for _, a := range f.Actions {
		if d, ok := a.Direction(); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Empty reports whether no actions were recorded.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
