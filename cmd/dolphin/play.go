package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dolphin-dash/internal/audio"
	"github.com/vovakirdan/dolphin-dash/internal/core"
	"github.com/vovakirdan/dolphin-dash/internal/games/dolphin"
	"github.com/vovakirdan/dolphin-dash/internal/platform/tui"
	"github.com/vovakirdan/dolphin-dash/internal/registry"
	"github.com/vovakirdan/dolphin-dash/internal/storage"
)

var (
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default "dolphin").

Controls:
  Space/Up/W   - Jump (starts the run)
  F/Right/D    - Boost: dash forward, then glide back
  P/Esc        - Pause
  H            - Show hitboxes and the autopilot target
  A            - Toggle autopilot
  R            - Restart (after game over)
  Tab          - Scoreboard (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, gentler acceleration
  normal - Default tuning
  hard   - Faster start, steeper acceleration

Examples:
  dolphin play
  dolphin play dolphin_autopilot
  dolphin play --difficulty hard --mute
  dolphin play --config ./my-dolphin.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 1.0, "Sound volume from 0 to 1")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	menuCmd.Flags().Float64Var(&flagVolume, "volume", 1.0, "Sound volume from 0 to 1")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := dolphin.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dolphin modes' to see available modes.")
		os.Exit(1)
	}

	logger := newLogger("dolphin")
	env, err := newEnv(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage - the game still works
	store := openStore(logger)
	if store != nil {
		env.Scores = store.Keeper(gameID)
	}

	game, err := registry.Create(gameID, env)
	if err != nil {
		closeAll(store, env.Audio)
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, store, runtimeConfig(), logger)
	closeAll(store, env.Audio)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newEnv loads the tuning and opens the audio device.
func newEnv(logger *log.Logger) (registry.Env, error) {
	cfg, err := loadGameConfig()
	if err != nil {
		return registry.Env{}, err
	}
	return registry.Env{
		Config: cfg,
		Audio:  audio.Open(flagMute, flagVolume, logger),
		Logger: logger,
	}, nil
}

// runtimeConfig reads the terminal size and the global runtime flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database, or returns nil when it is unavailable.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// closeAll releases the store and the audio device.
func closeAll(store *storage.Store, a core.Audio) {
	if store != nil {
		store.Close()
	}
	if p, ok := a.(*audio.Player); ok {
		p.Close()
	}
}
