package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-dash/internal/core"
	"github.com/vovakirdan/grid-dash/internal/registry"
	"github.com/vovakirdan/grid-dash/internal/storage"
)

// DefaultTickInterval paces input polling when neither the runtime
// config nor the options set a rate.
const DefaultTickInterval = 80 * time.Millisecond

// Options configures a game session in the terminal.
type Options struct {
	Runtime      core.RuntimeConfig
	TickInterval time.Duration // Used when Runtime.TickRate is 0
	Preset       string        // Difficulty preset recorded with each run
	Logger       *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	interval   time.Duration
	preset     string
	inputFrame core.InputFrame
	gameState  core.GameState
	startedAt  time.Time
	now        func() time.Time
	quitting   bool
	back       bool
	runSaved   bool // Whether the current finished run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	interval := opts.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger.With("game", game.ID()),
		keys:       NewKeyMapper(),
		config:     cfg,
		interval:   cfg.TickInterval(interval),
		preset:     opts.Preset,
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
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
	if key.Matches(msg, m.keys.Game.Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		return m, tea.Quit
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one game tick with the input collected since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.startedAt.IsZero() {
		m.startedAt = m.now()
	}

	// Restart with a fresh seed so the recorded seed matches the run
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = m.now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.startedAt = m.now()
		m.inputFrame.Clear()
		return m, tickCmd(m.interval)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.recordRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.interval)
}

// recordRun stores the finished run. Failures are logged and otherwise ignored.
func (m Model) recordRun() {
	outcome := storage.OutcomeLost
	if m.gameState.Won {
		outcome = storage.OutcomeWon
	}

	run := storage.Run{
		GameID:   m.game.ID(),
		Outcome:  outcome,
		Moves:    m.gameState.Score,
		Seed:     m.config.Seed,
		Preset:   m.preset,
		Duration: m.now().Sub(m.startedAt),
	}

	if m.store == nil {
		m.logger.Debug("run finished", "outcome", outcome, "moves", run.Moves)
		return
	}
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Warn("cannot record run", "err", err)
		return
	}
	m.logger.Debug("run recorded", "id", id, "outcome", outcome, "moves", run.Moves)
}

// saveScreenshot writes the current screen as plain text under ~/.dash/screenshots.
func (m Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".dash", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// WantsBack returns true if the player left the game for the menu.
func (m Model) WantsBack() bool {
	return m.back
}

// Run starts the Bubble Tea program for the game.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, opts Options) (goBack bool, err error) {
	model := NewModel(game, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.WantsBack(), nil
}
