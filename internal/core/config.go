package core

// RuntimeConfig contains configuration passed from the platform to a session.
// Sessions use the seed for deterministic food placement; the platform uses
// the screen size for layout.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed (0 means use current time in platform layer)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}
