package tui

import "github.com/vovakirdan/tui-snake/internal/core"

// Sound maps a session event to the bytes that play its cue.
// The cue is emitted as part of the next rendered frame, so it reaches the
// terminal in the same write as the frame and never splits an escape sequence.
type Sound interface {
	Cue(e core.Event) string
}

// Bell rings the terminal bell on every cue.
type Bell struct{}

// Cue returns the BEL control character.
func (Bell) Cue(core.Event) string {
	return "\a"
}

// Silent discards all cues.
type Silent struct{}

// Cue returns nothing.
func (Silent) Cue(core.Event) string { return "" }
