package core

// RuntimeConfig contains configuration passed to simulations on Reset.
// Simulations use this for world size, tick timing and deterministic RNG.
type RuntimeConfig struct {
	WorldW   float64 // World width in world units (0 keeps the simulation's own default)
	WorldH   float64 // World height in world units (0 keeps the simulation's own default)
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     1,
	}
}

// TickMillis returns the duration of one tick in milliseconds.
func (c RuntimeConfig) TickMillis() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60.0
	}
	return 1000.0 / float64(c.TickRate)
}

// GameState represents the current state of a simulation.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the run is paused
	Won      bool // Whether the run ended in a win
}

// Event is something notable that happened during a tick.
type Event string

const (
	EventStarted   Event = "started"
	EventScored    Event = "scored"
	EventBounced   Event = "bounced"
	EventBrickHit  Event = "brick_hit"
	EventLifeLost  Event = "life_lost"
	EventGameOver  Event = "game_over"
	EventWon       Event = "won"
	EventRestarted Event = "restarted"
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether e occurred during the tick.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
