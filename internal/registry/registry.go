// Package registry maps board IDs to game factories.
// Boards register in init(), so the CLI and the menus find them by ID alone.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/grid-dash/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// Game is a playable board as seen by the terminal shell.
// Implementations hold pure logic; key mapping, pacing and drawing to the
// terminal live in the platform.
type Game interface {
	// ID is the stable key used by the CLI and in run history.
	ID() string

	// Title is shown in menus and on the scoreboard.
	Title() string

	// Reset starts a fresh run. The seed in cfg drives all randomness.
	Reset(cfg core.RuntimeConfig)

	// Step consumes the input collected during one platform tick.
	// A tick carrying no direction leaves the simulation untouched.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports progress and whether the run has ended.
	State() core.GameState
}

// Resizable is implemented by games that keep their run across a
// terminal resize instead of being reset.
type Resizable interface {
	Resize(width, height int)
}

// GameInfo describes a registered game without creating it.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet reset, game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. It panics on an empty or duplicate id,
// or when the factory builds a game reporting a different ID.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}
	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds game %q", id, g.ID()))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: g.Title()},
		factory: f,
	}
}

// List returns every registered game, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Info returns the metadata for id.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}

// Create builds a new game. Unknown IDs wrap ErrUnknownGame and name the
// registered alternatives.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		known := make([]string, 0)
		for _, info := range List() {
			known = append(known, info.ID)
		}
		return nil, fmt.Errorf("registry: %w %q (known: %s)", ErrUnknownGame, id, strings.Join(known, ", "))
	}
	return e.factory(), nil
}
