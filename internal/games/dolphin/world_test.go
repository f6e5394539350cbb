package dolphin

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/dolphin-dash/internal/config"
)

type countingAudio struct {
	jumps, collects, gameOvers int
}

func (a *countingAudio) JumpSound()     { a.jumps++ }
func (a *countingAudio) CollectSound()  { a.collects++ }
func (a *countingAudio) GameOverSound() { a.gameOvers++ }

type fakeKeeper struct {
	best    int
	loads   int
	saves   []int
	loadErr error
	saveErr error
}

func (k *fakeKeeper) LoadHighScore() (int, error) {
	k.loads++
	return k.best, k.loadErr
}

func (k *fakeKeeper) SaveHighScore(score int) error {
	k.saves = append(k.saves, score)
	return k.saveErr
}

func newTestWorld(seed int64, opts ...Option) *World {
	return NewWorld(config.DefaultDolphinConfig(), seed, opts...)
}

// tokenOnAgent returns a token whose hitbox overlaps the resting agent's.
func tokenOnAgent() Token {
	return Token{X: 120, Y: 225, Size: 40, Inset: 5}
}

// boatOnAgent returns an obstacle whose hull overlaps the resting agent's hitbox.
func boatOnAgent() Obstacle {
	return Obstacle{X: 100, Y: 200, Width: 100, Height: 60}
}

func TestWorldStartsIdle(t *testing.T) {
	w := newTestWorld(1)

	if w.Status() != StatusIdle {
		t.Fatalf("expected idle, got %s", w.Status())
	}
	if w.Tick() {
		t.Error("tick should be refused while idle")
	}
	if w.Jump() {
		t.Error("jump should be refused while idle")
	}
	if w.StartBoost() {
		t.Error("boost should be refused while idle")
	}
	if w.TogglePause() {
		t.Error("pause should be refused while idle")
	}
	if w.Frame() != 0 || w.Score() != 0 || w.Multiplier() != 1 || w.Speed() != 4 {
		t.Errorf("unexpected initial counters: frame=%d score=%d mult=%d speed=%v",
			w.Frame(), w.Score(), w.Multiplier(), w.Speed())
	}
}

func TestWorldSpeedAndFrame(t *testing.T) {
	w := newTestWorld(1)
	w.Start()

	for i := 0; i < 10; i++ {
		if !w.Tick() {
			t.Fatalf("tick %d refused", i)
		}
	}

	if w.Frame() != 10 {
		t.Errorf("expected frame 10, got %d", w.Frame())
	}
	if math.Abs(w.Speed()-4.01) > 1e-9 {
		t.Errorf("expected speed 4.01, got %v", w.Speed())
	}
	if w.Stats().ObstaclesSpawned != 1 {
		t.Errorf("expected one obstacle spawned on frame 0, got %d", w.Stats().ObstaclesSpawned)
	}
}

func TestScoreMultiplierSequence(t *testing.T) {
	audio := &countingAudio{}
	w := newTestWorld(1, WithAudio(audio))
	w.Start()

	expected := []int{10, 30, 60}
	for i, want := range expected {
		w.tokens = append(w.tokens, tokenOnAgent())
		if w.resolveCollisions() {
			t.Fatal("unexpected game over")
		}
		if w.Score() != want {
			t.Errorf("after token %d: score=%d, want %d", i+1, w.Score(), want)
		}
		if w.Multiplier() != i+2 {
			t.Errorf("after token %d: multiplier=%d, want %d", i+1, w.Multiplier(), i+2)
		}
	}

	if len(w.Tokens()) != 0 {
		t.Errorf("collected tokens should be removed, %d left", len(w.Tokens()))
	}
	if len(w.Particles()) != 24 {
		t.Errorf("expected 8 sparkles per token, got %d particles", len(w.Particles()))
	}
	for _, p := range w.Particles() {
		if p.Kind != ParticleSparkle {
			t.Fatalf("expected sparkle particles, got kind %d", p.Kind)
		}
	}
	if audio.collects != 3 {
		t.Errorf("expected 3 collect sounds, got %d", audio.collects)
	}
	if w.Stats().TokensCollected != 3 || w.Stats().MaxMultiplier != 4 {
		t.Errorf("unexpected stats %+v", w.Stats())
	}
}

func TestSimultaneousTokensAllCollected(t *testing.T) {
	w := newTestWorld(1)
	w.Start()
	w.tokens = append(w.tokens, tokenOnAgent(), tokenOnAgent())

	w.resolveCollisions()

	if w.Score() != 30 || w.Multiplier() != 3 {
		t.Errorf("expected score 30 and multiplier 3, got %d and %d", w.Score(), w.Multiplier())
	}
}

func TestCollectDuringTick(t *testing.T) {
	w := newTestWorld(1)
	w.Start()
	w.tokens = append(w.tokens, tokenOnAgent())

	w.Tick()

	if w.Score() != 10 || w.Multiplier() != 2 {
		t.Errorf("expected score 10 and multiplier 2, got %d and %d", w.Score(), w.Multiplier())
	}
}

func TestMultiplierResetsOnExpiry(t *testing.T) {
	w := newTestWorld(1)
	w.Start()
	w.multiplier = 3
	w.tokens = append(w.tokens, Token{X: -38, Y: 100, Size: 40, Inset: 5})

	w.Tick()

	if w.Multiplier() != 1 {
		t.Errorf("expected multiplier reset to 1, got %d", w.Multiplier())
	}
	if w.Stats().TokensExpired != 1 {
		t.Errorf("expected one expired token, got %d", w.Stats().TokensExpired)
	}
}

func TestMultiplierKeptWithoutExpiry(t *testing.T) {
	w := newTestWorld(1)
	w.Start()
	w.multiplier = 3

	for i := 0; i < 50; i++ {
		w.Tick()
	}

	if w.Multiplier() != 3 {
		t.Errorf("multiplier changed without collection or expiry: %d", w.Multiplier())
	}
}

func TestPauseIsIdempotent(t *testing.T) {
	w := newTestWorld(3)
	w.Start()
	for i := 0; i < 30; i++ {
		w.Tick()
	}

	snap := w.Snapshot()
	before := snap.Hash()

	if !w.TogglePause() || w.Status() != StatusPaused {
		t.Fatal("expected pause to be accepted")
	}
	if w.Tick() || w.Tick() {
		t.Error("ticks should be refused while paused")
	}
	if w.Jump() {
		t.Error("jump should be refused while paused")
	}

	if snap = w.Snapshot(); snap.Status != StatusPaused {
		t.Fatalf("expected paused snapshot, got %s", snap.Status)
	}

	w.TogglePause()
	snap = w.Snapshot()
	if after := snap.Hash(); after != before {
		t.Errorf("paused ticks changed the world: %d != %d", after, before)
	}

	if !w.Tick() {
		t.Error("tick should run after resuming")
	}
}

func TestGameOverOnce(t *testing.T) {
	audio := &countingAudio{}
	w := newTestWorld(1, WithAudio(audio))
	w.Start()
	w.obstacles = append(w.obstacles, boatOnAgent())

	if !w.Tick() {
		t.Fatal("tick should run")
	}
	if w.Status() != StatusGameOver {
		t.Fatalf("expected game over, got %s", w.Status())
	}
	if w.Frame() != 0 || w.Speed() != 4 {
		t.Errorf("the fatal tick should not advance frame or speed: frame=%d speed=%v", w.Frame(), w.Speed())
	}

	snap := w.Snapshot()
	before := snap.Hash()

	for i := 0; i < 5; i++ {
		if w.Tick() {
			t.Fatal("tick should be refused after game over")
		}
	}
	if w.TogglePause() || w.Jump() || w.StartBoost() {
		t.Error("actions should be refused after game over")
	}

	snap = w.Snapshot()
	if snap.Hash() != before {
		t.Error("world changed after game over")
	}
	if audio.gameOvers != 1 {
		t.Errorf("expected one game over sound, got %d", audio.gameOvers)
	}
}

func TestHighScorePersistence(t *testing.T) {
	keeper := &fakeKeeper{best: 40}
	w := newTestWorld(1, WithScoreKeeper(keeper))

	if w.HighScore() != 40 || keeper.loads != 1 {
		t.Fatalf("expected best 40 loaded once, got %d after %d loads", w.HighScore(), keeper.loads)
	}

	// Lower score: nothing saved
	w.Start()
	w.score = 30
	w.obstacles = append(w.obstacles, boatOnAgent())
	w.Tick()
	if len(keeper.saves) != 0 {
		t.Errorf("score below best should not be saved, got %v", keeper.saves)
	}

	// Higher score: saved once, best survives reset
	w.Restart(2)
	w.score = 50
	w.obstacles = append(w.obstacles, boatOnAgent())
	w.Tick()
	if len(keeper.saves) != 1 || keeper.saves[0] != 50 {
		t.Errorf("expected a single save of 50, got %v", keeper.saves)
	}

	w.Reset(3)
	if w.HighScore() != 50 {
		t.Errorf("best should persist across reset, got %d", w.HighScore())
	}
	if keeper.loads != 1 {
		t.Errorf("high score should be loaded once, got %d loads", keeper.loads)
	}
}

func TestScoreKeeperFailuresAreNonFatal(t *testing.T) {
	keeper := &fakeKeeper{loadErr: errors.New("disk gone"), saveErr: errors.New("disk gone")}
	w := newTestWorld(1, WithScoreKeeper(keeper))

	if w.HighScore() != 0 {
		t.Errorf("expected best 0 after load failure, got %d", w.HighScore())
	}

	w.Start()
	w.score = 10
	w.obstacles = append(w.obstacles, boatOnAgent())
	w.Tick()

	if w.Status() != StatusGameOver {
		t.Errorf("expected game over despite save failure, got %s", w.Status())
	}
	if w.HighScore() != 10 {
		t.Errorf("expected in-memory best 10, got %d", w.HighScore())
	}
}

func TestStartBoost(t *testing.T) {
	audio := &countingAudio{}
	w := newTestWorld(1, WithAudio(audio))
	w.Start()

	if !w.StartBoost() {
		t.Fatal("boost should start from rest")
	}

	a := w.Agent()
	if a.Boost.Phase != BoostForward {
		t.Errorf("expected forward phase, got %s", a.Boost.Phase)
	}
	if a.Velocity != -7 {
		t.Errorf("boost should include a jump impulse, velocity=%v", a.Velocity)
	}
	if len(w.Particles()) != 17 {
		t.Errorf("expected 5 bubbles and 12 smoke particles, got %d", len(w.Particles()))
	}
	if audio.jumps != 1 {
		t.Errorf("expected one jump sound, got %d", audio.jumps)
	}

	if w.StartBoost() {
		t.Error("boost should be refused while boosting")
	}
	if w.Stats().BoostsStarted != 1 {
		t.Errorf("expected one boost counted, got %d", w.Stats().BoostsStarted)
	}
}

func TestJumpEmitsBubbles(t *testing.T) {
	w := newTestWorld(1)
	w.Start()

	if !w.Jump() {
		t.Fatal("jump should be accepted while playing")
	}
	if w.Agent().Velocity != -7 {
		t.Errorf("expected velocity -7, got %v", w.Agent().Velocity)
	}

	particles := w.Particles()
	if len(particles) != 5 {
		t.Fatalf("expected 5 bubbles, got %d", len(particles))
	}
	for _, p := range particles {
		if p.X != 120 || p.Y != 255 || p.Kind != ParticleBubble {
			t.Errorf("unexpected bubble %+v", p)
		}
	}
}

func TestResetKeepsFlags(t *testing.T) {
	w := newTestWorld(1)
	w.ToggleAutoplay()
	w.ToggleDebug()
	w.Start()
	for i := 0; i < 20; i++ {
		w.Tick()
	}

	w.Reset(9)

	if w.Status() != StatusIdle {
		t.Errorf("expected idle after reset, got %s", w.Status())
	}
	if w.Frame() != 0 || w.Score() != 0 || w.Multiplier() != 1 || w.Speed() != 4 {
		t.Error("counters should be reinitialized")
	}
	if len(w.Obstacles()) != 0 || len(w.Tokens()) != 0 || len(w.Particles()) != 0 {
		t.Error("entities should be cleared")
	}
	if !w.Autoplay() || !w.Debug() {
		t.Error("autoplay and debug flags should survive reset")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	w := newTestWorld(1)
	w.Start()
	w.Tick()

	obstacles := w.Obstacles()
	if len(obstacles) == 0 {
		t.Fatal("expected an obstacle after the first tick")
	}
	obstacles[0].X = -1000

	if w.Obstacles()[0].X == -1000 {
		t.Error("mutating the returned slice changed the world")
	}
}

func TestWorldDeterminism(t *testing.T) {
	w1 := newTestWorld(77, WithAutoplay(true))
	w2 := newTestWorld(77, WithAutoplay(true))
	w1.Start()
	w2.Start()

	for i := 0; i < 3000; i++ {
		r1, r2 := w1.Tick(), w2.Tick()
		if r1 != r2 {
			t.Fatalf("tick %d: results differ", i)
		}

		s1, s2 := w1.Snapshot(), w2.Snapshot()
		if s1.Hash() != s2.Hash() {
			t.Fatalf("tick %d: hashes differ", i)
		}
		if !r1 {
			break
		}
	}
}

func TestAgentBoundsProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for run := int64(0); run < 5; run++ {
		w := newTestWorld(run, WithAutoplay(true))
		w.Start()

		for i := 0; i < 2000 && w.Status() == StatusPlaying; i++ {
			switch rng.Intn(20) {
			case 0:
				w.Jump()
			case 1:
				w.StartBoost()
			}
			w.Tick()

			a := w.Agent()
			if a.Y < 0 || a.Y > 410 {
				t.Fatalf("run %d tick %d: agent y=%v out of range", run, i, a.Y)
			}
			if a.Boost.Phase == BoostReady && a.X != a.BaseX {
				t.Fatalf("run %d tick %d: ready agent off base x=%v", run, i, a.X)
			}
		}
	}
}

func TestAutoplayTogglesDuringPlay(t *testing.T) {
	w := newTestWorld(4)
	w.Start()
	w.ToggleAutoplay()

	w.Tick()
	if w.LastDecision().Target == 0 {
		t.Error("expected the autopilot to set a target")
	}

	w.ToggleAutoplay()
	if w.Autoplay() {
		t.Error("autoplay should toggle off")
	}
}
