package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the session state for determinism testing and logging.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	GrowTo   int
	Head     core.Cell
	Dir      core.Direction
	Food     core.Cell
	State    State
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:     s.tick,
		Score:    s.Score(),
		SnakeLen: s.snake.Len(),
		GrowTo:   s.snake.GrowTo(),
		Head:     s.snake.Head(),
		Dir:      s.snake.Direction(),
		Food:     s.food.Position(),
		State:    s.state,
	}
}
