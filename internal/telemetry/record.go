// Package telemetry runs headless autopilot games and records their outcomes
// as CSV with summary statistics.
package telemetry

import "github.com/vovakirdan/dolphin-dash/internal/games/dolphin"

// RunRecord is one finished headless run.
type RunRecord struct {
	Seed               int64   `csv:"seed"`
	Ticks              uint64  `csv:"ticks"`
	Score              int     `csv:"score"`
	GameOver           bool    `csv:"game_over"` // False when the tick budget ran out first
	MaxMultiplier      int     `csv:"max_multiplier"`
	TokensCollected    int     `csv:"tokens_collected"`
	TokensExpired      int     `csv:"tokens_expired"`
	ObstaclesSpawned   int     `csv:"obstacles_spawned"`
	TokenSpawnsDropped int     `csv:"token_spawns_dropped"`
	BoostsStarted      int     `csv:"boosts"`
	FinalSpeed         float64 `csv:"final_speed"`
}

// NewRunRecord captures the outcome of w.
func NewRunRecord(seed int64, w *dolphin.World) RunRecord {
	stats := w.Stats()
	return RunRecord{
		Seed:               seed,
		Ticks:              w.Frame(),
		Score:              w.Score(),
		GameOver:           w.Status() == dolphin.StatusGameOver,
		MaxMultiplier:      stats.MaxMultiplier,
		TokensCollected:    stats.TokensCollected,
		TokensExpired:      stats.TokensExpired,
		ObstaclesSpawned:   stats.ObstaclesSpawned,
		TokenSpawnsDropped: stats.TokenSpawnsDropped,
		BoostsStarted:      stats.BoostsStarted,
		FinalSpeed:         w.Speed(),
	}
}
