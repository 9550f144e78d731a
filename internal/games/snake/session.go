package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the lifecycle state of a session.
type State string

const (
	StateRunning State = "running"
	StateEnded   State = "ended"
)

// Frame is what the renderer needs to draw one tick.
type Frame struct {
	Snake []core.Cell // Head first
	Food  core.Cell
	Score int
}

// TickResult is returned by Session.Tick.
type TickResult struct {
	State  State
	Score  int          // Current score, or the final score once ended
	Events []core.Event // Cues for the platform (sounds, logs)
	Settle time.Duration
	Frame  Frame
}

// Ended reports whether the tick finished the session.
func (r TickResult) Ended() bool {
	return r.State == StateEnded
}

// Session is one playthrough: a snake, its food and a terminal flag.
// Build a new Session to play again.
type Session struct {
	cfg        Config
	rng        *rand.Rand
	snake      *Snake
	food       *Food
	state      State
	finalScore int
	tick       uint64
}

// NewSession resets the snake and places the first food.
func NewSession(cfg Config, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	sn := NewSnake(cfg.Grid, cfg.InitialGrowth, cfg.TickRate)
	return &Session{
		cfg:   cfg,
		rng:   rng,
		snake: sn,
		food:  NewFood(cfg.Grid, rng, sn.Positions()),
		state: StateRunning,
	}
}

// Tick applies the frame's direction inputs in order, advances the snake
// and handles pickups. Ticking an ended session changes nothing.
func (s *Session) Tick(in core.InputFrame) TickResult {
	if s.state == StateEnded {
		return s.result(nil)
	}
	s.tick++

	for _, d := range in.Directions() {
		s.snake.SetDirection(d)
	}

	if !s.snake.Advance() {
		s.state = StateEnded
		s.finalScore = s.snake.Score()
		res := s.result([]core.Event{core.EventGameOver})
		res.Settle = s.cfg.GameOverDelay
		return res
	}

	var events []core.Event
	if s.snake.Head() == s.food.Position() {
		s.snake.Eat(s.cfg.PickupReward)
		events = append(events, core.EventPickup)
		s.food.RandomizePosition(s.snake.Positions())
	}

	return s.result(events)
}

func (s *Session) result(events []core.Event) TickResult {
	score := s.snake.Score()
	if s.state == StateEnded {
		score = s.finalScore
	}
	return TickResult{
		State:  s.state,
		Score:  score,
		Events: events,
		Frame:  s.Frame(),
	}
}

// Frame returns the current drawable state.
func (s *Session) Frame() Frame {
	return Frame{
		Snake: s.snake.Positions(),
		Food:  s.food.Position(),
		Score: s.snake.Score(),
	}
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the current score, or the final score once ended.
func (s *Session) Score() int {
	if s.state == StateEnded {
		return s.finalScore
	}
	return s.snake.Score()
}

// Grid returns the play field.
func (s *Session) Grid() core.Grid { return s.cfg.Grid }

// TickInterval returns the time between moves.
func (s *Session) TickInterval() time.Duration {
	rate := s.snake.Speed()
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// Len returns the snake length.
func (s *Session) Len() int { return s.snake.Len() }
