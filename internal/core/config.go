package core

// RuntimeConfig contains configuration passed to games on Reset.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	Seed      int64 // RNG seed for deterministic gameplay
	BoardSize int   // Board side; 0 means the variant's default
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State   GameState
	Changed bool // Whether the input changed anything visible
}
