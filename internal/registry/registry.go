// Package registry provides a global registry for game factories.
// Game packages register themselves in init() functions, so the platform can
// discover and instantiate modes without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dolphin-dash/internal/config"
	"github.com/vovakirdan/dolphin-dash/internal/core"
)

// Game is the interface every playable mode implements.
// Games contain pure logic with no dependency on Bubble Tea; the platform
// handles input mapping, timing, and terminal output.
type Game interface {
	// ID returns a unique identifier (e.g. "dolphin").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset returns the game to its idle state with a fresh seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies the input frame and advances the simulation by one tick
	// when the game is running.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current status as seen by the platform.
	State() core.GameState
}

// Env carries the collaborators a game is built with.
// Zero fields fall back to silent, in-memory, or discarding implementations.
type Env struct {
	Config config.DolphinConfig
	Audio  core.Audio
	Scores core.ScoreKeeper
	Logger *log.Logger
}

// DefaultEnv returns an Env with the embedded defaults and no side effects.
func DefaultEnv() Env {
	return Env{
		Config: config.DefaultDolphinConfig(),
		Audio:  core.SilentAudio{},
		Scores: &core.MemoryScores{},
		Logger: log.New(io.Discard),
	}
}

// complete fills zero fields from DefaultEnv.
func (e Env) complete() Env {
	def := DefaultEnv()
	if e.Config == (config.DolphinConfig{}) {
		e.Config = def.Config
	}
	if e.Audio == nil {
		e.Audio = def.Audio
	}
	if e.Scores == nil {
		e.Scores = def.Scores
	}
	if e.Logger == nil {
		e.Logger = def.Logger
	}
	return e
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func(env Env) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(DefaultEnv()).Title()
}

// List returns all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})

	return result
}

// Create instantiates a game by its ID.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(env.complete()), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
