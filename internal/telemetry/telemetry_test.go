package telemetry

import (
	"bytes"
	"context"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/dolphin-dash/internal/config"
)

func TestWriterHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	for i := 0; i < 3; i++ {
		if err := w.Write(RunRecord{Seed: int64(i), Score: i * 10}); err != nil {
			t.Fatalf("Write() failed: %v", err)
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "seed,ticks,score,game_over") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Contains(lines[2], "seed") {
		t.Error("header repeated after the first row")
	}

	records, err := ReadRecords(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadRecords() failed: %v", err)
	}
	if len(records) != 3 || records[2].Score != 20 {
		t.Errorf("unexpected records %+v", records)
	}
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "runs.csv")

	w, err := CreateFile(path)
	if err != nil {
		t.Fatalf("CreateFile() failed: %v", err)
	}
	if err := w.Write(RunRecord{Seed: 1}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
}

func TestSummarize(t *testing.T) {
	records := []RunRecord{
		{Score: 30, Ticks: 300, TokensCollected: 2, GameOver: true},
		{Score: 10, Ticks: 100, TokensCollected: 1, GameOver: true, TokenSpawnsDropped: 2},
		{Score: 20, Ticks: 200, TokensCollected: 3},
	}

	s := Summarize(records)

	if s.Runs != 3 || s.GameOvers != 2 || s.DroppedTokens != 2 {
		t.Errorf("unexpected counts %+v", s)
	}
	if s.MeanScore != 20 || s.MeanTicks != 200 || s.MeanTokens != 2 {
		t.Errorf("unexpected means %+v", s)
	}
	if math.Abs(s.StdDevScore-10) > 1e-9 {
		t.Errorf("expected sample stddev 10, got %v", s.StdDevScore)
	}
	if s.MedianScore != 20 || s.MaxScore != 30 {
		t.Errorf("unexpected median/max %+v", s)
	}
}

func TestSummarizeEdgeCases(t *testing.T) {
	if s := Summarize(nil); s.Runs != 0 || s.MeanScore != 0 {
		t.Errorf("expected empty summary, got %+v", s)
	}

	s := Summarize([]RunRecord{{Score: 40}})
	if s.StdDevScore != 0 || s.MedianScore != 40 || s.MaxScore != 40 {
		t.Errorf("unexpected single-run summary %+v", s)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.DefaultDolphinConfig()
	opts := SimOptions{Runs: 4, Seed: 100, MaxTicks: 3000, BoostEvery: 200}

	first, err := Simulate(context.Background(), cfg, opts, nil)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}

	opts.Workers = 1
	second, err := Simulate(context.Background(), cfg, opts, nil)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}

	if len(first) != 4 {
		t.Fatalf("expected 4 records, got %d", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("run %d differs between worker counts: %+v vs %+v", i, first[i], second[i])
		}
		if first[i].Seed != 100+int64(i) {
			t.Errorf("run %d has seed %d", i, first[i].Seed)
		}
		if first[i].Ticks > 3000 {
			t.Errorf("run %d exceeded the tick budget: %d", i, first[i].Ticks)
		}
		if !first[i].GameOver && first[i].Ticks != 3000 {
			t.Errorf("run %d stopped early without a game over at tick %d", i, first[i].Ticks)
		}
	}
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Simulate(ctx, config.DefaultDolphinConfig(), SimOptions{Runs: 2, MaxTicks: 100}, nil)
	if err == nil {
		t.Error("expected an error from a cancelled context")
	}
}
