// Package dash adapts the turn-based chase simulation to the platform's
// Game interface: config loading, input selection, pause/restart and rendering.
package dash

import (
	"math/rand"

	"github.com/vovakirdan/grid-dash/internal/config"
	"github.com/vovakirdan/grid-dash/internal/core"
	"github.com/vovakirdan/grid-dash/internal/games/dash/sim"
	"github.com/vovakirdan/grid-dash/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI or menu
var difficultyPreset = config.DifficultyNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names fall back to normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// CurrentPreset returns the preset new games will use.
func CurrentPreset() string {
	return string(difficultyPreset)
}

func init() {
	for _, v := range variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Game implements registry.Game around a simulation session.
type Game struct {
	variant Variant
	cfg     config.DashConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	session *sim.Session

	ticks     uint64
	paused    bool
	tooSmall  bool
	layoutErr error // Set when a configured layout failed to parse
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Config returns the configuration the current session was built from.
func (g *Game) Config() config.DashConfig {
	return g.cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDash(configPath)
	if err != nil {
		cfg = config.DefaultDashConfig()
	}
	config.ApplyDashPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.ticks = 0
	g.paused = false

	layout := g.buildLayout()
	rules := sim.Rules{
		SpawnInterval:  cfg.Pursuers.SpawnInterval,
		MoveInterval:   cfg.Pursuers.MoveInterval,
		DetectionRange: cfg.Pursuers.DetectionRange,
	}
	g.session = sim.NewSession(layout, rules, g.rng)
	g.checkScreen()
}

// buildLayout picks the variant map, the configured map, or the classic board.
func (g *Game) buildLayout() sim.Layout {
	g.layoutErr = nil

	rows := g.variant.Rows
	if rows == nil {
		rows = g.cfg.Layout.Rows
	}
	if len(rows) == 0 {
		return sim.ClassicLayout(g.cfg.Grid.Width, g.cfg.Grid.Height)
	}

	layout, err := ParseLayout(rows)
	if err != nil {
		g.layoutErr = err
		def := config.DefaultDashConfig()
		return sim.ClassicLayout(def.Grid.Width, def.Grid.Height)
	}
	return layout
}

// Resize updates the screen size without restarting the session.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	if g.session != nil {
		g.checkScreen()
	}
}

func (g *Game) checkScreen() {
	w := g.session.World()
	g.tooSmall = g.runtime.ScreenW < w.Width()*cellWidth ||
		g.runtime.ScreenH < w.Height()+hudHeight+footerHeight
}

// Step advances the game by one platform tick.
// At most one direction is forwarded to the simulation per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ticks++
	terminal := g.session.Outcome().Terminal()

	if in.Has(core.ActionRestart) && terminal {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !terminal {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || terminal {
		return core.StepResult{State: g.State()}
	}

	dir := toDirection(in.Direction())
	if dir == sim.DirNone {
		return core.StepResult{State: g.State()}
	}

	before := g.session.PlayerMoves()
	g.session.Step(dir)

	return core.StepResult{
		State: g.State(),
		Moved: g.session.PlayerMoves() != before,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	status := g.session.Outcome()
	return core.GameState{
		Score:    g.session.PlayerMoves(),
		GameOver: status.Terminal(),
		Won:      status == sim.StatusWon,
		Paused:   g.paused,
	}
}

// Session exposes the running simulation.
func (g *Game) Session() *sim.Session {
	return g.session
}

func toDirection(a core.Action) sim.Direction {
	switch a {
	case core.ActionUp:
		return sim.DirUp
	case core.ActionDown:
		return sim.DirDown
	case core.ActionLeft:
		return sim.DirLeft
	case core.ActionRight:
		return sim.DirRight
	default:
		return sim.DirNone
	}
}
