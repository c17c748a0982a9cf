package dash

import "github.com/vovakirdan/grid-dash/internal/games/dash/sim"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Variant string
	Paused  bool
	Sim     sim.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.ticks,
		Variant: g.variant.ID,
		Paused:  g.paused,
	}
	if g.session != nil {
		snap.Sim = g.session.Snapshot()
	}
	return snap
}
