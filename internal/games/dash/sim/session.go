package sim

// Layout is the initial entity placement for a session.
type Layout struct {
	Width    int
	Height   int
	Player   Point
	Goal     Point
	Walls    []Point
	Roamers  []Point
	Pursuers []Point
}

// ClassicLayout reproduces the original board: the player in the bottom-left,
// three roamers along the way, the goal near the right edge and a floor of walls.
// A roamer that would sit on the goal cell is left out.
func ClassicLayout(width, height int) Layout {
	floor := make([]Point, 0, width)
	for x := range width {
		floor = append(floor, Point{X: x, Y: height - 1})
	}
	goal := Point{X: width - 3, Y: height - 2}

	roamers := make([]Point, 0, 3)
	for _, p := range []Point{
		{X: 10, Y: height - 2},
		{X: 18, Y: height - 3},
		{X: 24, Y: height - 2},
	} {
		if p != goal {
			roamers = append(roamers, p)
		}
	}

	return Layout{
		Width:   width,
		Height:  height,
		Player:  Point{X: 1, Y: height - 2},
		Goal:    goal,
		Walls:   floor,
		Roamers: roamers,
	}
}

// Frame is what the shell renders after each turn.
type Frame struct {
	Cells       [][]rune // Height rows of Width glyphs
	Status      Status
	PlayerMoves int
}

// Session owns a world and its turn engine.
type Session struct {
	world  *World
	engine *Engine
}

// NewSession builds a world from layout and starts a game on it.
// Entities are added player first, then roamers, pursuers, goal and walls;
// placements outside the grid are dropped.
func NewSession(layout Layout, rules Rules, rng RNG) *Session {
	w := NewWorld(layout.Width, layout.Height)

	w.AddEntity(NewEntity(KindPlayer, layout.Player.X, layout.Player.Y))
	for _, p := range layout.Roamers {
		w.AddEntity(NewEntity(KindRoamer, p.X, p.Y))
	}
	for _, p := range layout.Pursuers {
		w.AddEntity(NewEntity(KindPursuer, p.X, p.Y))
	}
	w.AddEntity(NewEntity(KindGoal, layout.Goal.X, layout.Goal.Y))
	for _, p := range layout.Walls {
		w.AddEntity(NewEntity(KindWall, p.X, p.Y))
	}

	return NewSessionWithWorld(w, rules, rng)
}

// NewSessionWithWorld starts a game on an already populated world.
func NewSessionWithWorld(w *World, rules Rules, rng RNG) *Session {
	return &Session{
		world:  w,
		engine: NewEngine(w, rules, rng),
	}
}

// Step feeds one direction to the engine and returns the resulting frame.
func (s *Session) Step(d Direction) Frame {
	s.engine.Resolve(d)
	return s.Frame()
}

// Frame returns the current renderable state.
func (s *Session) Frame() Frame {
	return Frame{
		Cells:       s.world.Grid(),
		Status:      s.engine.Status(),
		PlayerMoves: s.engine.playerMoves,
	}
}

// Outcome returns the current status.
func (s *Session) Outcome() Status {
	return s.engine.Status()
}

// PlayerMoves returns the number of successful player displacements.
func (s *Session) PlayerMoves() int {
	return s.engine.playerMoves
}

// Rules returns the cadence constants the session runs with.
func (s *Session) Rules() Rules {
	return s.engine.rules
}

// World exposes the underlying world for read-only queries.
func (s *Session) World() *World {
	return s.world
}

// MovesUntilSpawn returns how many more player moves until the next spawn attempt.
func (s *Session) MovesUntilSpawn() int {
	interval := s.engine.rules.SpawnInterval
	if interval <= 0 {
		return 0
	}
	return interval - s.engine.playerMoves%interval
}

// Snapshot captures the session state for determinism checks.
type Snapshot struct {
	PlayerMoves int
	Status      Status
	Player      Point
	Roamers     []Point
	Pursuers    []Point
	Entities    int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		PlayerMoves: s.engine.playerMoves,
		Status:      s.engine.Status(),
	}
	for _, e := range s.world.Entities() {
		snap.Entities++
		switch e.Kind {
		case KindPlayer:
			snap.Player = e.Pos
		case KindRoamer:
			snap.Roamers = append(snap.Roamers, e.Pos)
		case KindPursuer:
			snap.Pursuers = append(snap.Pursuers, e.Pos)
		case KindWall, KindGoal:
		}
	}
	return snap
}
