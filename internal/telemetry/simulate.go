package telemetry

import (
	"context"
	"io"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dolphin-dash/internal/config"
	"github.com/vovakirdan/dolphin-dash/internal/games/dolphin"
)

// SimOptions configure a batch of headless runs.
type SimOptions struct {
	Runs       int   // Number of runs
	Seed       int64 // Seed of the first run; run i uses Seed+i
	MaxTicks   int   // Tick budget per run
	BoostEvery int   // Attempt a boost every N ticks; 0 disables
	Workers    int   // Parallel worlds; 0 means GOMAXPROCS
}

// Simulate plays opts.Runs autopilot games without rendering or audio.
// Worlds share nothing, so runs execute in parallel; records are returned in
// seed order. A cancelled context stops unfinished runs early.
func Simulate(ctx context.Context, cfg config.DolphinConfig, opts SimOptions, logger *log.Logger) ([]RunRecord, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	records := make([]RunRecord, opts.Runs)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range min(workers, max(opts.Runs, 1)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				seed := opts.Seed + int64(i)
				records[i] = runOne(ctx, cfg, seed, opts, logger)
				logger.Debug("run finished", "seed", seed, "score", records[i].Score, "ticks", records[i].Ticks)
			}
		}()
	}

	for i := 0; i < opts.Runs; i++ {
		if ctx.Err() != nil {
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func runOne(ctx context.Context, cfg config.DolphinConfig, seed int64, opts SimOptions, logger *log.Logger) RunRecord {
	w := dolphin.NewWorld(cfg, seed, dolphin.WithAutoplay(true), dolphin.WithLogger(logger))
	w.Start()

	for tick := 0; tick < opts.MaxTicks; tick++ {
		if tick%1024 == 0 && ctx.Err() != nil {
			break
		}
		if opts.BoostEvery > 0 && tick%opts.BoostEvery == 0 {
			w.StartBoost()
		}
		if !w.Tick() {
			break
		}
	}

	return NewRunRecord(seed, w)
}
