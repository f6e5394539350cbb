package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dolphin-dash/internal/games/dolphin"
	"github.com/vovakirdan/dolphin-dash/internal/registry"
	"github.com/vovakirdan/dolphin-dash/internal/storage"
)

var (
	flagClear  bool
	flagLimit  int
	flagRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show run history for a mode",
	Long: `Display the best runs for the specified mode (default "dolphin").

Runs driven by the autopilot are marked with '*'.

Examples:
  dolphin scores
  dolphin scores dolphin_autopilot
  dolphin scores --recent --limit 20
  dolphin scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs and the best score for the mode")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show latest runs instead of best runs")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := dolphin.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dolphin modes' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared all runs for %s.\n", gameID)
		return
	}

	var runs []storage.RunEntry
	if flagRecent {
		runs, err = store.RecentRuns(gameID, flagLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Runs - %s\n", gameID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dolphin play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-6s  %-8s  %s\n", "Rank", "Score", "Mult", "Tokens", "Frames", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-6s  %-8s  %s\n", "----", "-----", "----", "------", "------", "----")

	for i, r := range runs {
		score := fmt.Sprintf("%d", r.Score)
		if r.Autoplay {
			score += "*"
		}
		fmt.Printf("  %-4d  %-10s  x%-4d  %-6d  %-8d  %s\n",
			i+1, score, r.MaxMultiplier, r.TokensCollected, r.Frames, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.RunsCount, stats.AvgScore)
	}
}
