package dolphin

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dolphin-dash/internal/core"
)

// Token bobbing: the phase advances by tokenBobStep each tick and the token
// moves by sin(phase)*tokenBobAmplitude vertically.
const (
	tokenBobStep      = 0.1
	tokenBobAmplitude = 0.5
)

// Obstacle hitbox shaping: a bottom-aligned, horizontally centered rectangle
// covering this fraction of the sprite.
const (
	obstacleHitboxWidth  = 0.7
	obstacleHitboxHeight = 0.5
)

// Obstacle is a boat moving leftwards at world speed.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	Variant       int  // Sprite variant, visual only
	Deleted       bool // Set once the boat has fully left the screen
}

// Update moves the obstacle and marks it once it is past the left edge.
func (o *Obstacle) Update(speed float64) {
	o.X -= speed
	if o.X+o.Width < 0 {
		o.Deleted = true
	}
}

// Bounds returns the sprite rectangle.
func (o Obstacle) Bounds() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Hitbox returns the collision rectangle: the hull at the waterline, not the
// mast or sails above it.
func (o Obstacle) Hitbox() core.Rect {
	w := o.Width * obstacleHitboxWidth
	h := o.Height * obstacleHitboxHeight
	return core.NewRect(o.X+(o.Width-w)/2, o.Y+o.Height-h, w, h)
}

// Token is a collectible that bobs while drifting leftwards.
type Token struct {
	X, Y    float64
	Size    float64
	Phase   float64 // Bobbing phase accumulator
	Inset   float64 // Hitbox inset per side
	Deleted bool    // Set once the token has fully left the screen unclaimed
}

// Update moves the token, applies the bob, and marks it once it is off-screen.
func (t *Token) Update(speed float64) {
	t.X -= speed
	t.Phase += tokenBobStep
	t.Y += math.Sin(t.Phase) * tokenBobAmplitude

	if t.X+t.Size < 0 {
		t.Deleted = true
	}
}

// Bounds returns the sprite rectangle.
func (t Token) Bounds() core.Rect {
	return core.NewRect(t.X, t.Y, t.Size, t.Size)
}

// Hitbox returns the sprite rectangle shrunk by Inset on every side.
func (t Token) Hitbox() core.Rect {
	return t.Bounds().Inset(t.Inset)
}

// Center returns the token's center point.
func (t Token) Center() (float64, float64) {
	return t.Bounds().Center()
}

// ParticleKind tags what emitted a particle; renderers map it to a color.
type ParticleKind int

const (
	ParticleBubble  ParticleKind = iota // Translucent white, from a jump
	ParticleSmoke                       // Gray, from a boost
	ParticleSparkle                     // Gold, from a collected token
)

// Color returns the screen color for the particle kind.
func (k ParticleKind) Color() core.Color {
	switch k {
	case ParticleSmoke:
		return core.ColorGray
	case ParticleSparkle:
		return core.ColorGold
	default:
		return core.ColorBrightWhite
	}
}

// Particle is a purely visual, short-lived entity.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   float64 // 1.0 when emitted, removed at <= 0
	Kind   ParticleKind
}

// newParticle creates a particle with a random size and velocity.
func newParticle(rng *rand.Rand, x, y float64, kind ParticleKind) Particle {
	return Particle{
		X:    x,
		Y:    y,
		Size: rng.Float64()*5 + 2,
		VX:   rng.Float64()*2 - 1,
		VY:   rng.Float64()*2 - 1,
		Life: 1.0,
		Kind: kind,
	}
}

// newSmokeParticle creates a particle drifting left, away from the dolphin's tail.
func newSmokeParticle(rng *rand.Rand, x, y float64) Particle {
	p := newParticle(rng, x, y, ParticleSmoke)
	p.VX = -(rng.Float64()*3 + 1)
	return p
}

// Update moves the particle with the world and decays it.
func (p *Particle) Update(speed, decay float64) {
	p.X += p.VX - speed
	p.Y += p.VY
	p.Life -= decay
}

// Dead reports whether the particle has faded out.
func (p Particle) Dead() bool {
	return p.Life <= 0
}

// Background is the parallax water layer. It scrolls slower than the world and
// wraps after one full width.
type Background struct {
	X     float64
	Width float64
}

// Update scrolls the background.
func (b *Background) Update(speed, parallax float64) {
	b.X -= speed * parallax
	if b.X <= -b.Width {
		b.X = 0
	}
}
