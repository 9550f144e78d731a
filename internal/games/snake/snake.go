// Package snake implements the gameplay model: the snake, its food and the
// per-tick session update. It holds no rendering, audio or terminal state.
package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the player's body on the grid.
type Snake struct {
	grid          core.Grid
	initialGrowth int
	tickRate      int

	positions []core.Cell // Head at index 0
	direction core.Direction
	nextDir   core.Direction // Buffered direction for next move
	score     int
	growTo    int // Length the body grows towards
	speed     int // Moves per second
}

// NewSnake creates a snake on the given grid and resets it.
func NewSnake(grid core.Grid, initialGrowth, tickRate int) *Snake {
	s := &Snake{
		grid:          grid,
		initialGrowth: initialGrowth,
		tickRate:      tickRate,
	}
	s.Reset()
	return s
}

// Reset puts a single segment at the grid center facing right.
// The growth target starts above the length, so the snake grows on its
// first moves until it reaches the target.
func (s *Snake) Reset() {
	s.positions = []core.Cell{s.grid.Center()}
	s.direction = core.Right
	s.nextDir = core.Right
	s.score = 0
	s.growTo = s.initialGrowth
	s.speed = s.tickRate
}

// SetDirection buffers d for the next move unless it reverses the current
// direction. Reversals are ignored.
func (s *Snake) SetDirection(d core.Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.nextDir = d
}

// Advance moves the snake one cell. It returns false if the new head would
// land on the body, in which case the body is left untouched.
//
// The tail cell still counts as occupied even though it would move away
// this tick.
func (s *Snake) Advance() bool {
	s.direction = s.nextDir

	newHead := s.grid.Wrap(s.Head(), s.direction)
	for _, seg := range s.positions[1:] {
		if seg == newHead {
			return false
		}
	}

	s.positions = append(s.positions, core.Cell{})
	copy(s.positions[1:], s.positions)
	s.positions[0] = newHead

	if len(s.positions) > s.growTo {
		s.positions = s.positions[:len(s.positions)-1]
	}
	return true
}

// Eat credits a pickup: adds reward to the score and raises the growth
// target by one.
func (s *Snake) Eat(reward int) {
	s.score += reward
	s.growTo++
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.positions[0]
}

// Positions returns a copy of the body, head first.
func (s *Snake) Positions() []core.Cell {
	out := make([]core.Cell, len(s.positions))
	copy(out, s.positions)
	return out
}

// Occupies reports whether any segment is on c. Linear in the length.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, seg := range s.positions {
		if seg == c {
			return true
		}
	}
	return false
}

// Len returns the number of segments.
func (s *Snake) Len() int { return len(s.positions) }

// Direction returns the committed direction.
func (s *Snake) Direction() core.Direction { return s.direction }

// NextDirection returns the buffered direction.
func (s *Snake) NextDirection() core.Direction { return s.nextDir }

// Score returns the accumulated score.
func (s *Snake) Score() int { return s.score }

// GrowTo returns the growth target.
func (s *Snake) GrowTo() int { return s.growTo }

// Speed returns the move rate in ticks per second.
func (s *Snake) Speed() int { return s.speed }
