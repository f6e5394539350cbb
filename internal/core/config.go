package core

// RuntimeConfig contains configuration passed to games at initialization.
// ScreenW/ScreenH describe the terminal surface; the simulation itself always
// runs in its own fixed logical space.
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int  // Current score
	Multiplier int  // Current score multiplier
	HighScore  int  // Best score across runs
	Started    bool // Whether the run has left the idle screen
	GameOver   bool // Whether the game has ended
	Paused     bool // Whether the game is paused
	Autoplay   bool // Whether the autopilot drives the agent

	// Run statistics, recorded when a run ends.
	Frames          uint64
	TokensCollected int
	MaxMultiplier   int
}

// Running reports whether the platform should keep scheduling ticks.
func (s GameState) Running() bool {
	return s.Started && !s.Paused && !s.GameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Ticked bool // False when the tick was refused (idle, paused or over)
}
