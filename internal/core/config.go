package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 20)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Player eliminated
	Won      bool // Every enemy destroyed
}

// Terminal reports whether the game has reached GameOver or Win.
func (s GameState) Terminal() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
