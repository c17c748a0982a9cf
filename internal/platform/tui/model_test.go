package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-dash/internal/core"
	"github.com/vovakirdan/grid-dash/internal/storage"
)

// goalGame wins as soon as it sees a right move and loses on a left move.
type goalGame struct {
	state   core.GameState
	resets  int
	lastCfg core.RuntimeConfig
	frames  []core.InputFrame
	resized [2]int
}

func (g *goalGame) ID() string    { return "goal_test" }
func (g *goalGame) Title() string { return "Goal Test" }

func (g *goalGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.lastCfg = cfg
	g.state = core.GameState{}
}

func (g *goalGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	if g.state.GameOver {
		return core.StepResult{State: g.state}
	}
	switch in.Direction() {
	case core.ActionRight:
		g.state = core.GameState{Score: g.state.Score + 1, GameOver: true, Won: true}
		return core.StepResult{State: g.state, Moved: true}
	case core.ActionLeft:
		g.state = core.GameState{Score: g.state.Score, GameOver: true}
	case core.ActionUp:
		g.state.Score++
		return core.StepResult{State: g.state, Moved: true}
	}
	return core.StepResult{State: g.state}
}

func (g *goalGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "goal") }
func (g *goalGame) State() core.GameState   { return g.state }
func (g *goalGame) Resize(w, h int)         { g.resized = [2]int{w, h} }

func newTestModel(t *testing.T, store *storage.Store) (Model, *goalGame) {
	t.Helper()
	g := &goalGame{}
	m := NewModel(g, store, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 99},
		Preset:  "hard",
	})
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	m.Init()
	return m, g
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelForwardsInputOnTick(t *testing.T) {
	m, g := newTestModel(t, nil)

	m = send(t, m, runeKey('w'), runeKey('a'))
	if len(g.frames) != 0 {
		t.Fatal("keys must not step the game before a tick")
	}

	m = send(t, m, TickMsg{})
	if len(g.frames) != 1 {
		t.Fatalf("expected 1 step, got %d", len(g.frames))
	}
	if f := g.frames[0]; !f.Has(core.ActionUp) || !f.Has(core.ActionLeft) {
		t.Error("both keys should arrive in the same frame")
	}

	send(t, m, TickMsg{})
	if len(g.frames) != 2 || g.frames[1].Has(core.ActionUp) {
		t.Error("the frame should be cleared after each tick")
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	store := openStore(t)
	m, _ := newTestModel(t, store)

	m = send(t, m, runeKey('d'), TickMsg{})
	if !m.State().Won {
		t.Fatal("game should be won")
	}
	m = send(t, m, TickMsg{}, TickMsg{})

	runs, err := store.RecentRuns("goal_test", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly 1 recorded run, got %d", len(runs))
	}
	r := runs[0]
	if r.Outcome != storage.OutcomeWon || r.Moves != 1 || r.Seed != 99 || r.Preset != "hard" {
		t.Errorf("recorded run = %+v", r)
	}
	if r.Duration <= 0 {
		t.Errorf("duration should be positive, got %v", r.Duration)
	}
}

func TestModelRestartStartsNewRun(t *testing.T) {
	store := openStore(t)
	m, g := newTestModel(t, store)

	m = send(t, m, runeKey('a'), TickMsg{})
	if !m.State().GameOver || m.State().Won {
		t.Fatal("game should be lost")
	}

	resets := g.resets
	m = send(t, m, runeKey('r'), TickMsg{})
	if g.resets != resets+1 {
		t.Fatal("restart should reset the game")
	}
	if g.lastCfg.Seed == 99 {
		t.Error("restart should use a fresh seed")
	}
	if m.State().GameOver {
		t.Error("state should be playing after restart")
	}

	send(t, m, runeKey('d'), TickMsg{})

	runs, err := store.RecentRuns("goal_test", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Outcome != storage.OutcomeWon || runs[1].Outcome != storage.OutcomeLost {
		t.Errorf("outcomes = %s, %s", runs[0].Outcome, runs[1].Outcome)
	}
	if runs[0].Seed != g.lastCfg.Seed {
		t.Errorf("second run seed = %d, expected %d", runs[0].Seed, g.lastCfg.Seed)
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m, g := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("q should return a quit command")
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("quitting view should be empty, got %q", view)
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !next.(Model).WantsBack() {
		t.Error("esc should leave for the menu")
	}

	send(t, m, runeKey('q'), TickMsg{})
	for _, f := range g.frames {
		if f.Has(core.ActionQuit) {
			t.Error("quit must never reach the game")
		}
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, g := newTestModel(t, nil)
	resets := g.resets

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resized != [2]int{100, 30} {
		t.Errorf("game should be resized, got %v", g.resized)
	}
	if g.resets != resets {
		t.Error("resizable games must not be reset on resize")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen is %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelTickInterval(t *testing.T) {
	g := &goalGame{}

	m := NewModel(g, nil, Options{Runtime: core.RuntimeConfig{ScreenW: 10, ScreenH: 5}})
	if m.interval != DefaultTickInterval {
		t.Errorf("interval = %v, expected default", m.interval)
	}

	m = NewModel(g, nil, Options{Runtime: core.RuntimeConfig{ScreenW: 10, ScreenH: 5}, TickInterval: 120 * time.Millisecond})
	if m.interval != 120*time.Millisecond {
		t.Errorf("interval = %v, expected 120ms", m.interval)
	}

	m = NewModel(g, nil, Options{Runtime: core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 10}})
	if m.interval != 100*time.Millisecond {
		t.Errorf("interval = %v, expected 100ms from --fps", m.interval)
	}
	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}
