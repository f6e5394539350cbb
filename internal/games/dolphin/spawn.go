package dolphin

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dolphin-dash/internal/config"
	"github.com/vovakirdan/dolphin-dash/internal/core"
)

// Spawner decides when boats and tokens appear and where they are placed.
// All randomness comes from the world's seeded RNG.
type Spawner struct {
	rng *rand.Rand
	cfg *config.DolphinConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg *config.DolphinConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// ObstacleInterval returns the number of frames between boats at the given
// world speed. Faster worlds spawn more often, down to a floor.
func (s *Spawner) ObstacleInterval(speed float64) int {
	oc := s.cfg.Obstacles
	interval := int(math.Floor(oc.BaseInterval - speed*oc.SpeedFactor))
	return max(oc.MinInterval, interval)
}

// ObstacleDue reports whether a boat spawns on this frame.
func (s *Spawner) ObstacleDue(frame uint64, speed float64) bool {
	return frame%uint64(s.ObstacleInterval(speed)) == 0
}

// TokenDue reports whether a token spawn is attempted on this frame.
func (s *Spawner) TokenDue(frame uint64) bool {
	return frame%uint64(s.cfg.Tokens.Interval) == 0
}

// NewObstacle creates a boat at the right edge at a random height.
func (s *Spawner) NewObstacle() Obstacle {
	oc := s.cfg.Obstacles
	return Obstacle{
		X:       s.cfg.World.Width,
		Y:       s.rng.Float64() * (s.cfg.World.Height - oc.Height),
		Width:   oc.Width,
		Height:  oc.Height,
		Variant: s.rng.Intn(oc.Variants),
	}
}

// PlaceToken tries to put a token at the right edge clear of every boat.
// The candidate height is re-rolled until its buffered hitbox touches no boat
// hitbox; after SpawnAttempts failed checks the spawn is dropped and ok is false.
func (s *Spawner) PlaceToken(obstacles []Obstacle) (tok Token, ok bool) {
	tc := s.cfg.Tokens
	tok = Token{
		X:     s.cfg.World.Width,
		Y:     s.tokenY(),
		Size:  tc.Size,
		Phase: s.rng.Float64() * math.Pi * 2,
		Inset: tc.HitboxInset,
	}

	for attempt := 0; attempt < tc.SpawnAttempts; attempt++ {
		if attempt > 0 {
			tok.Y = s.tokenY()
		}
		if !overlapsAny(tok.Hitbox().Expand(tc.SpawnBuffer), obstacles) {
			return tok, true
		}
	}
	return Token{}, false
}

// tokenY draws a height that keeps one token size of margin top and bottom.
func (s *Spawner) tokenY() float64 {
	size := s.cfg.Tokens.Size
	return s.rng.Float64()*(s.cfg.World.Height-size*2) + size
}

// overlapsAny reports whether r intersects any live obstacle hitbox.
func overlapsAny(r core.Rect, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if !o.Deleted && r.Intersects(o.Hitbox()) {
			return true
		}
	}
	return false
}
