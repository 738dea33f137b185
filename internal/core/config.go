package core

// RuntimeConfig contains configuration passed from the CLI to a frontend.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for the window)
	ScreenH  int   // Screen height in characters (or pixels for the window)
	TickRate int   // Ticks per second (default 60)
	Seed     int64 // RNG seed for the cue side
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
