package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameOptions carries the command line choices a game factory needs.
// Zero values select the built-in defaults.
type GameOptions struct {
	ConfigPath string // Custom game config YAML
	LevelsPath string // Level pack file or directory
	Difficulty string // easy, normal, hard or fixed
	StartLevel int    // 0-indexed level to start from
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current run score
	Level    int  // Current level, 0-indexed
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// Event is a notable gameplay occurrence reported to the platform.
type Event struct {
	Kind   string
	Level  int
	Score  int
	Detail string
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Bell   bool    // Ring the terminal bell after this tick
	Events []Event // Occurrences during this tick, oldest first
}
