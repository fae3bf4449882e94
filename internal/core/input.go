package core

// Action represents a semantic game command, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionPause        // Space, Enter - pause/resume
	ActionSpeed        // 9 - toggle length-based speed
	ActionEasy         // E - toggle wrap-around walls
	ActionGrow         // 0 - grow by one segment
	ActionQuit         // Q, Ctrl+C
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
	case ActionPause:
		return "Pause"
	case ActionSpeed:
		return "Speed"
	case ActionEasy:
		return "Easy"
	case ActionGrow:
		return "Grow"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action steers the snake.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// EventType distinguishes backend events.
type EventType int

const (
	// EventKey is a key press already translated to an Action.
	EventKey EventType = iota
	// EventQuit is a request from the backend itself to close (window closed, signal).
	EventQuit
)

// Event is a single input event drained from the display.
type Event struct {
	Type   EventType
	Action Action
}

// KeyEvent builds a key event carrying the given action.
func KeyEvent(a Action) Event {
	return Event{Type: EventKey, Action: a}
}

// QuitEvent builds a backend quit event.
func QuitEvent() Event {
	return Event{Type: EventQuit}
}
