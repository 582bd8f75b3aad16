package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Frontends fill it from the terminal or window size and CLI flags.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second the frontend aims for (default 60)
	Seed     int64 // RNG seed for obstacle placement
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

// GameState is the externally visible status of a game.
type GameState struct {
	Score    int  // Obstacles dodged so far
	GameOver bool // Whether the game has ended
}

// StepResult is returned after each simulation frame.
type StepResult struct {
	State  GameState
	Dodged int // Obstacles that left the screen this frame
}
