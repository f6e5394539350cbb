package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dolphin-dash/internal/core"
	"github.com/vovakirdan/dolphin-dash/internal/games/dolphin"
	"github.com/vovakirdan/dolphin-dash/internal/registry"
)

func newTestModel(t *testing.T, gameID string) (Model, *dolphin.Game) {
	t.Helper()

	game, err := registry.Create(gameID, registry.Env{})
	if err != nil {
		t.Fatalf("Create(%q): %v", gameID, err)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewModel(game, nil, cfg, nil)

	dg, ok := game.(*dolphin.Game)
	if !ok {
		t.Fatalf("game is %T, want *dolphin.Game", game)
	}
	return m, dg
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick() TickMsg { return TickMsg(time.Now()) }

func TestModelIdleDoesNotTick(t *testing.T) {
	m, g := newTestModel(t, dolphin.GameID)

	if m.Ticking() {
		t.Error("idle model should not be ticking")
	}
	if m.Init() != nil {
		t.Error("Init should not schedule ticks while idle")
	}

	m, _ = update(t, m, tick())
	if g.World().Frame() != 0 {
		t.Errorf("frame = %d after stray tick, want 0", g.World().Frame())
	}
}

func TestModelJumpStartsClock(t *testing.T) {
	m, g := newTestModel(t, dolphin.GameID)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil {
		t.Fatal("starting a run should schedule a tick")
	}
	if !m.Ticking() || !m.State().Started {
		t.Fatalf("ticking=%v state=%+v", m.Ticking(), m.State())
	}

	before := g.World().Frame()
	m, cmd = update(t, m, tick())
	if cmd == nil {
		t.Error("a live run should reschedule its tick")
	}
	if g.World().Frame() != before+1 {
		t.Errorf("frame = %d, want %d", g.World().Frame(), before+1)
	}
}

func TestModelPauseStopsClock(t *testing.T) {
	m, g := newTestModel(t, dolphin.GameID)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	// Pause is queued and applied by the pending tick
	m, cmd := update(t, m, runeKey("p"))
	if cmd != nil {
		t.Error("queued key should not schedule another tick")
	}
	m, cmd = update(t, m, tick())
	if cmd != nil {
		t.Error("paused run should not reschedule ticks")
	}
	if m.Ticking() || !m.State().Paused {
		t.Fatalf("ticking=%v state=%+v", m.Ticking(), m.State())
	}

	before := g.World().Snapshot()
	for range 5 {
		m, _ = update(t, m, tick())
	}
	after := g.World().Snapshot()
	if after.Hash() != before.Hash() {
		t.Error("stray ticks changed a paused world")
	}

	// Resuming steps immediately and restarts the clock
	m, cmd = update(t, m, runeKey("p"))
	if cmd == nil || !m.Ticking() {
		t.Error("resume should restart the clock")
	}
	if m.State().Paused {
		t.Error("state still paused after resume")
	}
}

func TestModelAutopilotStartsTicking(t *testing.T) {
	m, _ := newTestModel(t, dolphin.AutopilotGameID)

	if !m.Ticking() {
		t.Error("autopilot mode should start ticking")
	}
	if m.Init() == nil {
		t.Error("Init should schedule the first tick")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, dolphin.GameID)

	_, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("standalone model should quit the program")
	}
}

func TestEmbeddedModelQuitGoesBack(t *testing.T) {
	game, err := registry.Create(dolphin.GameID, registry.Env{})
	if err != nil {
		t.Fatal(err)
	}
	m := NewEmbeddedModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil)

	_, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(BackMsg); !ok {
		t.Error("embedded model should emit BackMsg")
	}
}

func TestModelViewIncludesHUDAndHelp(t *testing.T) {
	m, _ := newTestModel(t, dolphin.GameID)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	view := m.View()
	if !strings.Contains(view, "Score") {
		t.Error("view should include the HUD")
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should include the help bar")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, g := newTestModel(t, dolphin.GameID)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, tick())
	frame := g.World().Frame()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.World().Frame() != frame {
		t.Error("resize should not reset the world")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 120x39", m.screen.Width(), m.screen.Height())
	}
}
