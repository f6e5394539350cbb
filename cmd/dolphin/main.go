// dolphin is an endless side-scroller played in the terminal: jump and dash
// between boats, collect tokens, and build a score multiplier.
//
// Usage:
//
//	dolphin modes            - List available modes
//	dolphin play [mode]      - Play a mode (default "dolphin")
//	dolphin menu             - Pick modes interactively
//	dolphin serve            - Start SSH server for remote play
//	dolphin scores [mode]    - Show run history for a mode
//	dolphin sim              - Run headless autopilot games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.dolphin/scores.db)
//	--config <path>       - Custom tuning YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dolphin-dash/internal/config"
	// Import modes to register them
	_ "github.com/vovakirdan/dolphin-dash/internal/games/dolphin"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dolphin",
	Short: "Dolphin Dash - an endless runner in your terminal",
	Long: `Dolphin Dash is a terminal side-scroller. Steer a dolphin between
boats, dash forward with a boost, and collect tokens to grow your
score multiplier. Let a token slip past and the multiplier resets.

Available commands:
  modes    - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View run history
  sim      - Run headless autopilot games and summarize them

Examples:
  dolphin play
  dolphin play dolphin_autopilot
  dolphin play --difficulty hard
  dolphin serve --ssh :2222
  dolphin sim --runs 200 --out runs.csv`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dolphin/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the CLI logger at the level given by --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadGameConfig resolves the tuning from --config and --difficulty.
func loadGameConfig() (config.DolphinConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.DolphinConfig{}, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.DolphinConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}
