package telemetry

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a batch of runs.
type Summary struct {
	Runs          int
	GameOvers     int
	MeanScore     float64
	StdDevScore   float64
	MedianScore   float64
	P90Score      float64
	MaxScore      float64
	MeanTicks     float64
	MeanTokens    float64
	DroppedTokens int
}

// Summarize computes score and survival statistics over records.
func Summarize(records []RunRecord) Summary {
	s := Summary{Runs: len(records)}
	if len(records) == 0 {
		return s
	}

	scores := make([]float64, len(records))
	ticks := make([]float64, len(records))
	tokens := make([]float64, len(records))
	for i, r := range records {
		scores[i] = float64(r.Score)
		ticks[i] = float64(r.Ticks)
		tokens[i] = float64(r.TokensCollected)
		s.DroppedTokens += r.TokenSpawnsDropped
		if r.GameOver {
			s.GameOvers++
		}
	}

	s.MeanScore = stat.Mean(scores, nil)
	s.MeanTicks = stat.Mean(ticks, nil)
	s.MeanTokens = stat.Mean(tokens, nil)
	if len(scores) > 1 {
		s.StdDevScore = stat.StdDev(scores, nil)
	}

	// Quantile requires ascending input
	slices.Sort(scores)
	s.MedianScore = stat.Quantile(0.5, stat.Empirical, scores, nil)
	s.P90Score = stat.Quantile(0.9, stat.Empirical, scores, nil)
	s.MaxScore = scores[len(scores)-1]

	return s
}
