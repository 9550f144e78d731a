package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hard-coded default configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Window: WindowConfig{
			Width:    800,
			Height:   530,
			CellSize: 20,
		},
		Gameplay: GameplayConfig{
			InitialGrowth: 3,
			PickupReward:  10,
			TickRate:      10,
		},
		Timing: TimingConfig{
			ButtonDebounceMS: 150,
			GameOverDelayMS:  1000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
