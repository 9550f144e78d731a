package core

// Event is a discrete side effect reported by a simulation tick.
// The platform turns events into sounds and log lines; the model never plays
// anything itself.
type Event int

const (
	EventPickup   Event = iota + 1 // Snake ate the food
	EventGameOver                  // Snake ran into itself
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventPickup:
		return "pickup"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
