// Package dolphin implements Dolphin Dash: a dolphin dodging boats and
// collecting tokens on an endlessly scrolling sea.
//
// World holds the simulation and is usable on its own; Game adapts it to the
// registry so the terminal platform can drive it.
package dolphin

import (
	"github.com/vovakirdan/dolphin-dash/internal/core"
	"github.com/vovakirdan/dolphin-dash/internal/registry"
)

// Game IDs
const (
	GameID          = "dolphin"
	AutopilotGameID = "dolphin_autopilot"
)

// Game adapts a World to registry.Game.
type Game struct {
	id        string
	title     string
	autopilot bool
	env       registry.Env
	world     *World
	seed      int64
}

// New creates a manually controlled game.
func New(env registry.Env) *Game {
	return &Game{id: GameID, title: "Dolphin Dash", env: env}
}

// NewAutopilot creates a game that starts each run on its own with the
// autopilot engaged. Manual input still works.
func NewAutopilot(env registry.Env) *Game {
	return &Game{id: AutopilotGameID, title: "Dolphin Dash (Autopilot)", autopilot: true, env: env}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.title }

// World exposes the underlying simulation.
func (g *Game) World() *World { return g.world }

// Reset reseeds the world and returns it to idle. The world and its loaded
// high score are created once and reused across resets.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	if g.world == nil {
		g.world = NewWorld(g.env.Config, g.seed,
			WithAudio(g.env.Audio),
			WithScoreKeeper(g.env.Scores),
			WithLogger(g.env.Logger),
			WithAutoplay(g.autopilot),
		)
	} else {
		g.world.Reset(g.seed)
	}

	if g.autopilot {
		g.world.Start()
	}
}

// Step applies every action in the frame, then advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}
	g.apply(in)
	ticked := g.world.Tick()
	return core.StepResult{State: g.State(), Ticked: ticked}
}

// apply maps platform actions onto world operations. Flag toggles come first
// so that a pause in the same frame as a jump wins.
func (g *Game) apply(in core.InputFrame) {
	w := g.world

	if in.Has(core.ActionToggleAutoplay) {
		w.ToggleAutoplay()
	}
	if in.Has(core.ActionToggleDebug) {
		w.ToggleDebug()
	}
	if in.Has(core.ActionTogglePause) {
		w.TogglePause()
	}

	if in.Has(core.ActionRestart) && w.Status() == StatusGameOver {
		g.seed++
		w.Restart(g.seed)
		return
	}

	if in.Has(core.ActionJump) && w.Status() == StatusIdle {
		w.Start()
		return
	}

	boosted := in.Has(core.ActionToggleBoost) && w.StartBoost()
	if in.Has(core.ActionJump) && !boosted {
		w.Jump()
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		dst.Clear()
		return
	}
	g.world.Render(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Multiplier: 1, MaxMultiplier: 1}
	}
	w := g.world
	stats := w.Stats()
	return core.GameState{
		Score:           w.Score(),
		Multiplier:      w.Multiplier(),
		HighScore:       w.HighScore(),
		Started:         w.Status() != StatusIdle,
		GameOver:        w.Status() == StatusGameOver,
		Paused:          w.Status() == StatusPaused,
		Autoplay:        w.Autoplay(),
		Frames:          w.Frame(),
		TokensCollected: stats.TokensCollected,
		MaxMultiplier:   stats.MaxMultiplier,
	}
}

// Register the modes with the registry
func init() {
	registry.Register(GameID, func(env registry.Env) registry.Game {
		return New(env)
	})
	registry.Register(AutopilotGameID, func(env registry.Env) registry.Game {
		return NewAutopilot(env)
	})
}
