package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dolphin-dash/internal/telemetry"
)

var (
	flagRuns       int
	flagMaxTicks   int
	flagBoostEvery int
	flagWorkers    int
	flagOut        string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot games",
	Long: `Play a batch of seeded games with the autopilot, without rendering or
sound, and print score statistics. Run i uses seed --seed + i, so a batch
is reproducible.

Examples:
  dolphin sim --runs 100
  dolphin sim --runs 500 --max-ticks 20000 --out runs.csv
  dolphin sim --boost-every 300 --difficulty hard`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 50, "Number of games")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 10000, "Tick budget per game")
	simCmd.Flags().IntVar(&flagBoostEvery, "boost-every", 0, "Attempt a boost every N ticks (0 disables)")
	simCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel games (0 = GOMAXPROCS)")
	simCmd.Flags().StringVar(&flagOut, "out", "", "Write one CSV row per game to this file")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger("dolphin-sim")

	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	records, err := telemetry.Simulate(ctx, cfg, telemetry.SimOptions{
		Runs:       flagRuns,
		Seed:       seed,
		MaxTicks:   flagMaxTicks,
		BoostEvery: flagBoostEvery,
		Workers:    flagWorkers,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Simulation interrupted: %v\n", err)
		os.Exit(1)
	}

	if flagOut != "" {
		if err := writeRecords(flagOut, records); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", flagOut, err)
			os.Exit(1)
		}
		logger.Info("records written", "path", flagOut, "rows", len(records))
	}

	s := telemetry.Summarize(records)
	fmt.Printf("Simulated %d games from seed %d in %s\n", s.Runs, seed, time.Since(start).Round(time.Millisecond))
	fmt.Println()
	fmt.Printf("  Game overs     %d\n", s.GameOvers)
	fmt.Printf("  Score mean     %.1f (sd %.1f)\n", s.MeanScore, s.StdDevScore)
	fmt.Printf("  Score median   %.0f\n", s.MedianScore)
	fmt.Printf("  Score p90      %.0f\n", s.P90Score)
	fmt.Printf("  Score max      %.0f\n", s.MaxScore)
	fmt.Printf("  Ticks mean     %.0f\n", s.MeanTicks)
	fmt.Printf("  Tokens mean    %.1f\n", s.MeanTokens)
	fmt.Printf("  Spawns dropped %d\n", s.DroppedTokens)
}

// writeRecords stores the batch as CSV.
func writeRecords(path string, records []telemetry.RunRecord) error {
	w, err := telemetry.CreateFile(path)
	if err != nil {
		return err
	}
	for _, r := range records {
		if err := w.Write(r); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}
