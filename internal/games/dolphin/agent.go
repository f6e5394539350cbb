package dolphin

import (
	"math"

	"github.com/vovakirdan/dolphin-dash/internal/config"
	"github.com/vovakirdan/dolphin-dash/internal/core"
)

// minReturnSpeed bounds how slowly the dolphin may drift back after a boost.
const minReturnSpeed = 0.5

// boostRestTolerance is how close to its rest position the dolphin must be
// before another boost may start.
const boostRestTolerance = 0.5

// BoostPhase is the horizontal state of the dolphin.
type BoostPhase int

const (
	BoostReady     BoostPhase = iota // At rest on BaseX
	BoostForward                     // Dashing right
	BoostReturning                   // Drifting back to BaseX
)

// String returns a human-readable name for the phase.
func (p BoostPhase) String() string {
	switch p {
	case BoostReady:
		return "ready"
	case BoostForward:
		return "forward"
	case BoostReturning:
		return "returning"
	default:
		return "unknown"
	}
}

// Boost is the boost state machine value. Travelled is only meaningful while
// the phase is BoostForward and is zero otherwise.
type Boost struct {
	Phase     BoostPhase
	Travelled float64
}

// Agent is the player-controlled dolphin.
type Agent struct {
	X, Y     float64
	Velocity float64 // Vertical velocity, negative = up
	BaseX    float64 // Rest x-coordinate
	Width    float64
	Height   float64
	Boost    Boost

	gravity     float64
	jumpForce   float64
	maxBoost    float64
	hitboxInset float64
	worldW      float64
	worldH      float64
}

// NewAgent creates a dolphin at rest, vertically centered.
func NewAgent(cfg config.DolphinConfig) Agent {
	return Agent{
		X:           cfg.Agent.X,
		Y:           cfg.World.Height / 2,
		BaseX:       cfg.Agent.X,
		Width:       cfg.Agent.Width,
		Height:      cfg.Agent.Height,
		gravity:     cfg.Physics.Gravity,
		jumpForce:   cfg.Physics.JumpForce,
		maxBoost:    cfg.Agent.MaxBoostDistance,
		hitboxInset: cfg.Agent.HitboxInset,
		worldW:      cfg.World.Width,
		worldH:      cfg.World.Height,
	}
}

// Update applies gravity, clamps to the water column, then advances the boost.
func (a *Agent) Update() {
	a.Velocity += a.gravity
	a.Y += a.Velocity

	// Floor
	if maxY := a.worldH - a.Height; a.Y > maxY {
		a.Y = maxY
		a.Velocity = 0
	}
	// Ceiling
	if a.Y < 0 {
		a.Y = 0
		a.Velocity = 0
	}

	a.stepBoost()
}

// stepBoost is the single transition function of the boost state machine.
func (a *Agent) stepBoost() {
	switch a.Boost.Phase {
	case BoostReady:
		a.X = a.BaseX

	case BoostForward:
		speed := math.Abs(a.jumpForce)
		a.X += speed
		a.Boost.Travelled += speed

		limit := a.boostLimit()
		if a.Boost.Travelled >= a.maxBoost || a.X >= limit {
			a.X = limit
			a.Boost = Boost{Phase: BoostReturning}
		}

	case BoostReturning:
		speed := a.ReturnSpeed()
		remaining := a.X - a.BaseX
		switch {
		case math.Abs(remaining) <= speed:
			a.X = a.BaseX
			a.Boost = Boost{Phase: BoostReady}
		case remaining > 0:
			a.X -= speed
		default:
			a.X += speed
		}
	}
}

// boostLimit is the furthest x the dash may reach.
func (a *Agent) boostLimit() float64 {
	return math.Min(a.BaseX+a.maxBoost, a.worldW-a.Width)
}

// ReturnSpeed is recomputed every tick from the current vertical velocity, so a
// falling dolphin drifts back faster than a resting one.
func (a *Agent) ReturnSpeed() float64 {
	return math.Max(minReturnSpeed, math.Max(math.Abs(a.Velocity), math.Abs(a.jumpForce))/3)
}

// Jump applies the upward impulse.
func (a *Agent) Jump() {
	a.Velocity = a.jumpForce
}

// CanBoost reports whether a boost may start: ready and at rest horizontally.
func (a *Agent) CanBoost() bool {
	return a.Boost.Phase == BoostReady && math.Abs(a.X-a.BaseX) < boostRestTolerance
}

// BeginBoost enters the forward phase. Callers check CanBoost first.
func (a *Agent) BeginBoost() {
	a.Boost = Boost{Phase: BoostForward}
}

// Bounds returns the sprite rectangle.
func (a Agent) Bounds() core.Rect {
	return core.NewRect(a.X, a.Y, a.Width, a.Height)
}

// Hitbox returns the collision rectangle, inset from the sprite on every side.
func (a Agent) Hitbox() core.Rect {
	return a.Bounds().Inset(a.hitboxInset)
}
