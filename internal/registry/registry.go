// Package registry provides a global registry for simulation factories.
// Simulations register themselves in init() functions, allowing the CLI
// and the runner to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/collide/internal/config"
	"github.com/vovakirdan/collide/internal/core"
)

// Game is the interface every headless simulation implements.
// Simulations contain pure logic; timing and input sources live in the runner.
type Game interface {
	// ID returns a unique identifier for this simulation (e.g., "flappy").
	ID() string

	// Title returns a human-readable name for display (e.g., "Flappy Bird").
	Title() string

	// Reset initializes or resets the simulation state.
	// The RuntimeConfig provides world size, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// State returns the current state (score, game over, paused, won).
	State() core.GameState

	// Bodies returns the collidable shapes currently in the world.
	Bodies() []core.Body

	// Fingerprint returns a hash of the full simulation state.
	// Two runs with equal fingerprints are in identical states.
	Fingerprint() uint64
}

// Autopilot is implemented by simulations that can drive themselves.
type Autopilot interface {
	// Autopilot returns the input a simple bot would give this tick.
	Autopilot() core.InputFrame
}

// Configurable is implemented by simulations backed by a YAML config file.
type Configurable interface {
	// LoadConfig loads, adjusts and validates the simulation config.
	// An empty path uses the default search order; an empty preset keeps
	// the loaded difficulty settings.
	LoadConfig(path string, preset config.DifficultyPreset) error
}

// ErrUnknown is returned by Create for an unregistered ID.
var ErrUnknown = errors.New("unknown simulation")

// GameInfo contains metadata about a registered simulation.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a simulation.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a simulation factory to the registry.
// Typically called from a simulation's init() function.
// Panics if a simulation with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: simulation %q already registered", id))
	}

	factories[id] = f

	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered simulations, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new simulation by its ID.
// Returns an error wrapping ErrUnknown if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknown, id)
	}

	return f(), nil
}

// Exists checks if a simulation with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
