// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Timing   TimingConfig   `yaml:"timing"`
}

// WindowConfig describes the virtual window the grid is derived from.
type WindowConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// GameplayConfig defines the rules of a session.
type GameplayConfig struct {
	InitialGrowth int `yaml:"initial_growth"`
	PickupReward  int `yaml:"pickup_reward"`
	TickRate      int `yaml:"tick_rate"`
}

// TimingConfig defines the deliberate UI pauses.
type TimingConfig struct {
	ButtonDebounceMS int `yaml:"button_debounce_ms"`
	GameOverDelayMS  int `yaml:"game_over_delay_ms"`
}

// GridWidth returns the grid width in cells.
func (c SnakeConfig) GridWidth() int {
	return c.Grid().Width
}

// GridHeight returns the grid height in cells.
func (c SnakeConfig) GridHeight() int {
	return c.Grid().Height
}

// Grid returns the play field derived from the window and cell size.
func (c SnakeConfig) Grid() core.Grid {
	return core.GridFromWindow(c.Window.Width, c.Window.Height, c.Window.CellSize)
}

// ButtonDebounce returns the post-click input pause.
func (c SnakeConfig) ButtonDebounce() time.Duration {
	return time.Duration(c.Timing.ButtonDebounceMS) * time.Millisecond
}

// GameOverDelay returns the pause between collision and the game-over screen.
func (c SnakeConfig) GameOverDelay() time.Duration {
	return time.Duration(c.Timing.GameOverDelayMS) * time.Millisecond
}

// Session converts the config into gameplay parameters.
func (c SnakeConfig) Session() snake.Config {
	return snake.Config{
		Grid:          c.Grid(),
		InitialGrowth: c.Gameplay.InitialGrowth,
		PickupReward:  c.Gameplay.PickupReward,
		TickRate:      c.Gameplay.TickRate,
		GameOverDelay: c.GameOverDelay(),
	}
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Window.CellSize <= 0:
		return fmt.Errorf("config: cell_size must be positive, got %d", c.Window.CellSize)
	case c.GridWidth() < 1 || c.GridHeight() < 1:
		return fmt.Errorf("config: window %dx%d is smaller than one %dpx cell",
			c.Window.Width, c.Window.Height, c.Window.CellSize)
	case c.Gameplay.InitialGrowth < 1:
		return fmt.Errorf("config: initial_growth must be at least 1, got %d", c.Gameplay.InitialGrowth)
	case c.Gameplay.TickRate <= 0:
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Gameplay.TickRate)
	case c.Gameplay.PickupReward < 0:
		return fmt.Errorf("config: pickup_reward must not be negative, got %d", c.Gameplay.PickupReward)
	case c.Timing.ButtonDebounceMS < 0 || c.Timing.GameOverDelayMS < 0:
		return fmt.Errorf("config: timing values must not be negative")
	}
	return nil
}

// DifficultyPreset represents a named speed level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// TickRateForPreset returns the snake speed for a preset.
// Unknown presets return 0.
func TickRateForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 6
	case DifficultyNormal:
		return 10
	case DifficultyHard:
		return 15
	default:
		return 0
	}
}

// ApplyPreset overrides the tick rate. An empty preset leaves the config
// unchanged.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	rate := TickRateForPreset(preset)
	if rate == 0 {
		return fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
	cfg.Gameplay.TickRate = rate
	return nil
}
