package dolphin

import "math"

// Snapshot captures the complete simulation state for determinism testing.
// Entity data is flattened in spawn order.
type Snapshot struct {
	Frame       uint64
	Speed       float64
	Score       int
	Multiplier  int
	HighScore   int
	Status      Status
	Autoplay    bool
	AgentX      float64
	AgentY      float64
	AgentVel    float64
	BoostPhase  BoostPhase
	Travelled   float64
	BackgroundX float64

	ObstacleData []float64 // x, y, variant per boat
	TokenData    []float64 // x, y, phase per token
	ParticleData []float64 // x, y, life per particle
}

// Snapshot returns the current world snapshot.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:        w.frame,
		Speed:        w.speed,
		Score:        w.score,
		Multiplier:   w.multiplier,
		HighScore:    w.best,
		Status:       w.status,
		Autoplay:     w.autoplay,
		AgentX:       w.agent.X,
		AgentY:       w.agent.Y,
		AgentVel:     w.agent.Velocity,
		BoostPhase:   w.agent.Boost.Phase,
		Travelled:    w.agent.Boost.Travelled,
		BackgroundX:  w.background.X,
		ObstacleData: make([]float64, 0, len(w.obstacles)*3),
		TokenData:    make([]float64, 0, len(w.tokens)*3),
		ParticleData: make([]float64, 0, len(w.particles)*3),
	}

	for _, o := range w.obstacles {
		snap.ObstacleData = append(snap.ObstacleData, o.X, o.Y, float64(o.Variant))
	}
	for _, t := range w.tokens {
		snap.TokenData = append(snap.TokenData, t.X, t.Y, t.Phase)
	}
	for _, p := range w.particles {
		snap.ParticleData = append(snap.ParticleData, p.X, p.Y, p.Life)
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + math.Float64bits(snap.Speed)
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Multiplier) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Status)     //#nosec G115 -- hash computation
	if snap.Autoplay {
		h = h*31 + 1
	}
	h = h*31 + math.Float64bits(snap.AgentX)
	h = h*31 + math.Float64bits(snap.AgentY)
	h = h*31 + math.Float64bits(snap.AgentVel)
	h = h*31 + uint64(snap.BoostPhase) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Travelled)
	h = h*31 + math.Float64bits(snap.BackgroundX)

	for _, v := range snap.ObstacleData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.TokenData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.ParticleData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
