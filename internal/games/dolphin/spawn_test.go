package dolphin

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/dolphin-dash/internal/config"
)

func newTestSpawner(seed int64) *Spawner {
	cfg := config.DefaultDolphinConfig()
	return NewSpawner(rand.New(rand.NewSource(seed)), &cfg)
}

func TestObstacleInterval(t *testing.T) {
	s := newTestSpawner(1)

	tests := []struct {
		speed    float64
		expected int
	}{
		{4.0, 110},
		{4.05, 109},
		{9.0, 60},
		{10.0, 60},
		{25.0, 60},
	}

	for _, tt := range tests {
		if got := s.ObstacleInterval(tt.speed); got != tt.expected {
			t.Errorf("ObstacleInterval(%v) = %d, want %d", tt.speed, got, tt.expected)
		}
	}
}

func TestSpawnSchedule(t *testing.T) {
	s := newTestSpawner(1)

	if !s.ObstacleDue(0, 4) || !s.ObstacleDue(220, 4) {
		t.Error("expected obstacle spawns on multiples of the interval")
	}
	if s.ObstacleDue(100, 4) {
		t.Error("unexpected obstacle spawn off the interval")
	}
	if !s.TokenDue(0) || !s.TokenDue(300) || s.TokenDue(150) {
		t.Error("expected token spawns every 100 frames")
	}
}

func TestNewObstacle(t *testing.T) {
	s := newTestSpawner(5)

	for i := 0; i < 200; i++ {
		o := s.NewObstacle()
		if o.X != 800 {
			t.Fatalf("obstacle should spawn at the right edge, got x=%v", o.X)
		}
		if o.Y < 0 || o.Y >= 390 {
			t.Fatalf("obstacle y=%v outside [0,390)", o.Y)
		}
		if o.Variant < 0 || o.Variant >= 5 {
			t.Fatalf("variant %d out of range", o.Variant)
		}
	}
}

func TestPlaceTokenClear(t *testing.T) {
	s := newTestSpawner(7)

	for i := 0; i < 200; i++ {
		tok, ok := s.PlaceToken(nil)
		if !ok {
			t.Fatal("placement with no obstacles should always succeed")
		}
		if tok.X != 800 || tok.Size != 40 || tok.Inset != 5 {
			t.Fatalf("unexpected token %+v", tok)
		}
		if tok.Y < 40 || tok.Y >= 410 {
			t.Fatalf("token y=%v outside [40,410)", tok.Y)
		}
	}
}

func TestPlaceTokenAvoidsObstacles(t *testing.T) {
	s := newTestSpawner(11)
	// Hull covers the lower half of the water column at the spawn edge
	obstacles := []Obstacle{{X: 780, Y: 0, Width: 100, Height: 450}}

	for i := 0; i < 200; i++ {
		tok, ok := s.PlaceToken(obstacles)
		if !ok {
			continue
		}
		if overlapsAny(tok.Hitbox().Expand(20), obstacles) {
			t.Fatalf("token placed within buffer of an obstacle: %+v", tok)
		}
	}
}

func TestPlaceTokenFullyBlocked(t *testing.T) {
	s := newTestSpawner(13)
	// Hull covers the whole water column at the spawn edge
	obstacles := []Obstacle{{X: 780, Y: -500, Width: 100, Height: 1000}}

	if _, ok := s.PlaceToken(obstacles); ok {
		t.Error("expected placement to fail when every row is blocked")
	}
}

func TestBlockedSpawnDropsToken(t *testing.T) {
	w := newTestWorld(13)
	w.Start()
	w.obstacles = append(w.obstacles, Obstacle{X: 780, Y: -500, Width: 100, Height: 1000})
	w.frame = 100

	w.updateTokens()

	if len(w.tokens) != 0 {
		t.Errorf("expected no token to spawn, got %d", len(w.tokens))
	}
	if w.Stats().TokenSpawnsDropped != 1 {
		t.Errorf("expected one dropped spawn, got %d", w.Stats().TokenSpawnsDropped)
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	s1 := newTestSpawner(42)
	s2 := newTestSpawner(42)

	for i := 0; i < 50; i++ {
		o1, o2 := s1.NewObstacle(), s2.NewObstacle()
		if o1 != o2 {
			t.Fatalf("obstacle %d differs: %+v vs %+v", i, o1, o2)
		}
		t1, ok1 := s1.PlaceToken([]Obstacle{o1})
		t2, ok2 := s2.PlaceToken([]Obstacle{o2})
		if ok1 != ok2 || t1 != t2 {
			t.Fatalf("token %d differs: %+v vs %+v", i, t1, t2)
		}
	}
}
