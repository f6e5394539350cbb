package dolphin

import (
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dolphin-dash/internal/config"
	"github.com/vovakirdan/dolphin-dash/internal/core"
)

// Status is the lifecycle state of a run.
type Status int

const (
	StatusIdle     Status = iota // Before the first start
	StatusPlaying                // Ticks advance the simulation
	StatusPaused                 // Frozen until resumed
	StatusGameOver               // Terminal until Reset
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Stats are per-run counters, cleared on Reset.
type Stats struct {
	ObstaclesSpawned   int
	TokensCollected    int
	TokensExpired      int
	TokenSpawnsDropped int
	BoostsStarted      int
	MaxMultiplier      int
}

// World owns every entity and all run state. It is advanced one frame at a
// time by Tick and is not safe for concurrent use; separate worlds share
// nothing.
type World struct {
	cfg     config.DolphinConfig
	rng     *rand.Rand
	spawner *Spawner
	audio   core.Audio
	scores  core.ScoreKeeper
	logger  *log.Logger

	agent      Agent
	obstacles  []Obstacle
	tokens     []Token
	particles  []Particle
	background Background

	speed      float64
	frame      uint64
	score      int
	multiplier int
	best       int
	status     Status
	autoplay   bool
	debug      bool
	decision   Decision
	stats      Stats
}

// Option configures a World.
type Option func(*World)

// WithAudio sets the sound collaborator.
func WithAudio(a core.Audio) Option {
	return func(w *World) {
		if a != nil {
			w.audio = a
		}
	}
}

// WithScoreKeeper sets the high score collaborator.
func WithScoreKeeper(s core.ScoreKeeper) Option {
	return func(w *World) {
		if s != nil {
			w.scores = s
		}
	}
}

// WithLogger sets the logger used for collaborator failures.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithAutoplay starts the world with the autopilot engaged.
func WithAutoplay(on bool) Option {
	return func(w *World) {
		w.autoplay = on
	}
}

// NewWorld creates an idle world and loads the best score once.
func NewWorld(cfg config.DolphinConfig, seed int64, opts ...Option) *World {
	w := &World{
		cfg:    cfg,
		audio:  core.SilentAudio{},
		scores: &core.MemoryScores{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}

	best, err := w.scores.LoadHighScore()
	if err != nil {
		w.logger.Warn("could not load high score", "error", err)
	}
	w.best = best

	w.Reset(seed)
	return w
}

// Reset reinitializes every entity and counter and returns to idle.
// The best score, autopilot and debug flags survive.
func (w *World) Reset(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
	w.spawner = NewSpawner(w.rng, &w.cfg)

	w.agent = NewAgent(w.cfg)
	w.obstacles = w.obstacles[:0]
	w.tokens = w.tokens[:0]
	w.particles = w.particles[:0]
	w.background = Background{Width: w.cfg.World.Width}

	w.speed = w.cfg.World.InitialSpeed
	w.frame = 0
	w.score = 0
	w.multiplier = 1
	w.status = StatusIdle
	w.decision = Decision{Target: w.cfg.World.Height / 2}
	w.stats = Stats{MaxMultiplier: 1}
}

// Start begins the run from idle.
func (w *World) Start() bool {
	if w.status != StatusIdle {
		return false
	}
	w.status = StatusPlaying
	return true
}

// Restart performs a full reset and starts immediately.
func (w *World) Restart(seed int64) {
	w.Reset(seed)
	w.Start()
}

// TogglePause switches between playing and paused. It is refused while idle
// or after game over.
func (w *World) TogglePause() bool {
	switch w.status {
	case StatusPlaying:
		w.status = StatusPaused
	case StatusPaused:
		w.status = StatusPlaying
	default:
		return false
	}
	return true
}

// ToggleAutoplay flips the autopilot flag.
func (w *World) ToggleAutoplay() {
	w.autoplay = !w.autoplay
}

// ToggleDebug flips the hitbox overlay flag.
func (w *World) ToggleDebug() {
	w.debug = !w.debug
}

// Jump gives the dolphin an upward impulse. Refused unless playing.
func (w *World) Jump() bool {
	if w.status != StatusPlaying {
		return false
	}
	w.jump()
	return true
}

func (w *World) jump() {
	w.agent.Jump()
	w.audio.JumpSound()
	for range w.cfg.Agent.BubbleParticles {
		w.particles = append(w.particles, newParticle(w.rng, w.agent.X+20, w.agent.Y+30, ParticleBubble))
	}
}

// StartBoost triggers the dash. It succeeds only while playing with the
// dolphin at rest; on success it also performs a jump, so callers must not
// jump again for the same input.
func (w *World) StartBoost() bool {
	if w.status != StatusPlaying || !w.agent.CanBoost() {
		return false
	}

	w.jump()
	w.agent.BeginBoost()
	w.stats.BoostsStarted++

	midY := w.agent.Y + w.agent.Height/2
	for range w.cfg.Agent.SmokeParticles {
		w.particles = append(w.particles, newSmokeParticle(w.rng, w.agent.X, midY))
	}
	return true
}

// Tick advances one frame. It returns false without touching any state
// unless the world is playing.
func (w *World) Tick() bool {
	if w.status != StatusPlaying {
		return false
	}

	if w.autoplay {
		w.decision = Decide(w.agent, w.obstacles, w.tokens, w.cfg.World.Height, w.cfg.Autopilot)
		if w.decision.Jump {
			w.jump()
		}
	}

	w.background.Update(w.speed, w.cfg.World.Parallax)
	w.agent.Update()
	w.updateObstacles()
	w.updateTokens()
	w.updateParticles()

	if w.resolveCollisions() {
		return true
	}

	w.frame++
	w.speed += w.cfg.World.SpeedIncrement
	return true
}

func (w *World) updateObstacles() {
	if w.spawner.ObstacleDue(w.frame, w.speed) {
		w.obstacles = append(w.obstacles, w.spawner.NewObstacle())
		w.stats.ObstaclesSpawned++
	}

	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		o.Update(w.speed)
		if !o.Deleted {
			kept = append(kept, o)
		}
	}
	w.obstacles = kept
}

func (w *World) updateTokens() {
	if w.spawner.TokenDue(w.frame) {
		if tok, ok := w.spawner.PlaceToken(w.obstacles); ok {
			w.tokens = append(w.tokens, tok)
		} else {
			w.stats.TokenSpawnsDropped++
		}
	}

	kept := w.tokens[:0]
	for _, t := range w.tokens {
		t.Update(w.speed)
		if t.Deleted {
			// A missed token breaks the streak
			w.multiplier = 1
			w.stats.TokensExpired++
			continue
		}
		kept = append(kept, t)
	}
	w.tokens = kept
}

func (w *World) updateParticles() {
	kept := w.particles[:0]
	for _, p := range w.particles {
		p.Update(w.speed, w.cfg.Particles.Decay)
		if !p.Dead() {
			kept = append(kept, p)
		}
	}
	w.particles = kept
}

// gameOver ends the run and persists a new best.
func (w *World) gameOver() {
	w.status = StatusGameOver
	w.audio.GameOverSound()

	if w.score > w.best {
		w.best = w.score
		if err := w.scores.SaveHighScore(w.score); err != nil {
			w.logger.Warn("could not save high score", "score", w.score, "error", err)
		}
	}
}

// Config returns the configuration the world runs with.
func (w *World) Config() config.DolphinConfig { return w.cfg }

// Agent returns a copy of the dolphin.
func (w *World) Agent() Agent { return w.agent }

// Obstacles returns a copy of the live boats in spawn order.
func (w *World) Obstacles() []Obstacle { return slices.Clone(w.obstacles) }

// Tokens returns a copy of the live tokens in spawn order.
func (w *World) Tokens() []Token { return slices.Clone(w.tokens) }

// Particles returns a copy of the live particles.
func (w *World) Particles() []Particle { return slices.Clone(w.particles) }

// Background returns the parallax layer.
func (w *World) Background() Background { return w.background }

func (w *World) Speed() float64 { return w.speed }
func (w *World) Frame() uint64 { return w.frame }
func (w *World) Score() int { return w.score }
func (w *World) Multiplier() int { return w.multiplier }
func (w *World) HighScore() int { return w.best }
func (w *World) Status() Status { return w.status }
func (w *World) Autoplay() bool { return w.autoplay }
func (w *World) Debug() bool { return w.debug }
func (w *World) Stats() Stats { return w.stats }
func (w *World) LastDecision() Decision { return w.decision }
