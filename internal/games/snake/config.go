package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Default gameplay constants.
const (
	DefaultInitialGrowth = 3
	DefaultPickupReward  = 10
	DefaultTickRate      = 10
	DefaultGameOverDelay = time.Second
)

// Config holds the gameplay parameters of a session.
type Config struct {
	Grid          core.Grid
	InitialGrowth int           // Growth target after reset
	PickupReward  int           // Points per food
	TickRate      int           // Moves per second
	GameOverDelay time.Duration // Pause between collision and the game-over screen
}

// DefaultConfig returns the classic 40x26 setup.
func DefaultConfig() Config {
	return Config{
		Grid:          core.GridFromWindow(800, 530, 20),
		InitialGrowth: DefaultInitialGrowth,
		PickupReward:  DefaultPickupReward,
		TickRate:      DefaultTickRate,
		GameOverDelay: DefaultGameOverDelay,
	}
}
