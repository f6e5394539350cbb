package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dolphin-dash/internal/core"
	"github.com/vovakirdan/dolphin-dash/internal/registry"
	"github.com/vovakirdan/dolphin-dash/internal/storage"
)

// BackMsg is emitted by an embedded Model when the player quits, so the
// host (the SSH session) can return to its menu instead of exiting.
type BackMsg struct{}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a Dolphin Dash mode.
//
// The model owns the frame clock. A tick is scheduled only while the run is
// live; paused, idle, and finished runs receive no ticks at all, and the
// next key press steps the game immediately to pick up the new state.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	mapper     *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	scoreboard *ScoreboardModel
	ticking    bool
	recorded   bool // Whether the current game over has been saved
	embedded   bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	state := game.State()

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:      store,
		config:     cfg,
		mapper:     NewKeyMapper(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  state,
		ticking:    state.Running(),
	}
}

// NewEmbeddedModel creates a model that emits BackMsg instead of quitting.
func NewEmbeddedModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	m := NewModel(game, store, cfg, logger)
	m.embedded = true
	return m
}

// Init starts the clock when the mode begins already running.
func (m Model) Init() tea.Cmd {
	if m.ticking {
		return tickCmd(m.config.TickRate)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionScoreboard:
		if m.gameState.GameOver && m.store != nil {
			sb := NewEmbeddedScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH, m.game.ID())
			m.scoreboard = &sb
		}
		return m, nil
	}

	m.inputFrame.Set(action)
	if m.ticking {
		// Applied by the pending tick.
		return m, nil
	}

	m.step()
	if m.gameState.Running() {
		m.ticking = true
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// quit leaves the program, or hands control back to an embedding session.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.embedded {
		return m, func() tea.Msg { return BackMsg{} }
	}
	return m, tea.Quit
}

// updateScoreboard forwards keys to the scoreboard overlay.
func (m Model) updateScoreboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scoreboard.Update(msg)
	sb, ok := updated.(ScoreboardModel)
	if !ok || sb.IsGoingBack() {
		m.scoreboard = nil
		return m, nil
	}
	if sb.IsQuitting() {
		m.scoreboard = nil
		return m.quit()
	}
	m.scoreboard = &sb
	return m, cmd
}

// handleResize processes window resize events. The simulation runs in its
// own logical space, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if m.scoreboard != nil {
		updated, _ := m.scoreboard.Update(msg)
		if sb, ok := updated.(ScoreboardModel); ok {
			m.scoreboard = &sb
		}
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}

	m.step()
	if !m.gameState.Running() {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// step feeds the pending input to the game and records a finished run.
func (m *Model) step() {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.recorded = false
		return
	}
	if m.recorded {
		return
	}
	m.recorded = true
	m.recordRun()
}

// recordRun stores the finished run in the history table.
func (m *Model) recordRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	st := m.gameState
	_, err := m.store.SaveRun(storage.RunEntry{
		GameID:          m.game.ID(),
		Score:           st.Score,
		MaxMultiplier:   st.MaxMultiplier,
		TokensCollected: st.TokensCollected,
		Frames:          st.Frames,
		Autoplay:        st.Autoplay,
	})
	if err != nil {
		m.logger.Warn("could not record run", "game", m.game.ID(), "err", err)
		return
	}
	m.logger.Debug("run recorded", "game", m.game.ID(), "score", st.Score, "frames", st.Frames)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".dolphin", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// Ticking reports whether a tick is currently scheduled.
func (m Model) Ticking() bool {
	return m.ticking
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.mapper.Keys()))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
