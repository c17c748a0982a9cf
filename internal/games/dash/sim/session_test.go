package sim

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestClassicLayout(t *testing.T) {
	s := NewSession(ClassicLayout(32, 12), DefaultRules(), rand.New(rand.NewSource(1)))
	w := s.World()

	if w.Width() != 32 || w.Height() != 12 {
		t.Fatalf("world is %dx%d, expected 32x12", w.Width(), w.Height())
	}
	if p := w.Player().Pos; p != (Point{X: 1, Y: 10}) {
		t.Errorf("player at %v, expected (1,10)", p)
	}
	if n := w.CountKind(KindRoamer); n != 3 {
		t.Errorf("expected 3 roamers, got %d", n)
	}
	if n := w.CountKind(KindWall); n != 32 {
		t.Errorf("expected a 32-cell floor, got %d walls", n)
	}
	if e := w.EntityAt(29, 10); e == nil || e.Kind != KindGoal {
		t.Error("goal should be at (29,10)")
	}
	for x := range 32 {
		if !w.IsSolidAt(x, 11) {
			t.Errorf("floor cell (%d,11) should be solid", x)
		}
	}
}

func TestClassicLayoutSmallestBoards(t *testing.T) {
	tests := []struct {
		width, height int
		roamers       int
	}{
		{26, 3, 3},
		{27, 3, 2}, // third roamer would sit on the goal
		{28, 5, 3},
	}

	for _, tt := range tests {
		s := NewSession(ClassicLayout(tt.width, tt.height), DefaultRules(), fixedRNG(moveStay))
		w := s.World()

		if w.Player() == nil {
			t.Errorf("%dx%d: player was dropped", tt.width, tt.height)
			continue
		}
		if n := w.CountKind(KindRoamer); n != tt.roamers {
			t.Errorf("%dx%d: %d roamers, expected %d", tt.width, tt.height, n, tt.roamers)
		}
		goal := Point{X: tt.width - 3, Y: tt.height - 2}
		if e := w.EntityAt(goal.X, goal.Y); e == nil || e.Kind != KindGoal {
			t.Errorf("%dx%d: goal cell holds %v", tt.width, tt.height, e)
		}
	}
}

func TestSessionFrame(t *testing.T) {
	layout := Layout{
		Width:  6,
		Height: 3,
		Player: Point{X: 0, Y: 1},
		Goal:   Point{X: 5, Y: 1},
		Walls:  []Point{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2}, {X: 5, Y: 2}},
	}
	s := NewSession(layout, DefaultRules(), fixedRNG(moveStay))

	frame := s.Step(DirRight)

	expected := []string{
		"______",
		"_@___G",
		"######",
	}
	if len(frame.Cells) != len(expected) {
		t.Fatalf("frame has %d rows, expected %d", len(frame.Cells), len(expected))
	}
	for y, row := range expected {
		if string(frame.Cells[y]) != row {
			t.Errorf("row %d = %q, expected %q", y, string(frame.Cells[y]), row)
		}
	}
	if frame.Status != StatusPlaying {
		t.Errorf("status = %v, expected playing", frame.Status)
	}
	if frame.PlayerMoves != 1 {
		t.Errorf("playerMoves = %d, expected 1", frame.PlayerMoves)
	}

	for range 4 {
		frame = s.Step(DirRight)
	}
	if frame.Status != StatusWon || s.Outcome() != StatusWon {
		t.Errorf("status = %v, expected won", frame.Status)
	}
	if frame.Cells[1][5] != '@' {
		t.Errorf("player should be drawn on the goal cell, got %q", frame.Cells[1][5])
	}
}

func TestSessionDropsOutOfBoundsPlacements(t *testing.T) {
	s := NewSession(ClassicLayout(20, 6), DefaultRules(), fixedRNG(moveStay))

	// Roamers at x=24 fall outside a 20-wide grid
	if n := s.World().CountKind(KindRoamer); n != 2 {
		t.Errorf("expected 2 roamers inside the grid, got %d", n)
	}
}

func TestSessionDeterminism(t *testing.T) {
	dirs := []Direction{DirRight, DirRight, DirUp, DirRight, DirDown, DirLeft, DirRight, DirUp}

	run := func() Snapshot {
		s := NewSession(ClassicLayout(32, 12), DefaultRules(), rand.New(rand.NewSource(12345)))
		for i := range 60 {
			s.Step(dirs[i%len(dirs)])
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different snapshots:\n %+v\n %+v", a, b)
	}
}

func TestMovesUntilSpawn(t *testing.T) {
	layout := Layout{Width: 20, Height: 8, Player: Point{X: 1, Y: 1}, Goal: Point{X: 19, Y: 7}}
	s := NewSession(layout, DefaultRules(), fixedRNG(moveStay))

	if got := s.MovesUntilSpawn(); got != 10 {
		t.Errorf("MovesUntilSpawn() = %d, expected 10", got)
	}
	s.Step(DirRight)
	s.Step(DirRight)
	s.Step(DirRight)
	if got := s.MovesUntilSpawn(); got != 7 {
		t.Errorf("MovesUntilSpawn() = %d, expected 7", got)
	}
}

func TestSnapshot(t *testing.T) {
	layout := Layout{
		Width:    10,
		Height:   10,
		Player:   Point{X: 1, Y: 1},
		Goal:     Point{X: 9, Y: 9},
		Roamers:  []Point{{X: 5, Y: 5}},
		Pursuers: []Point{{X: 8, Y: 2}},
	}
	s := NewSession(layout, DefaultRules(), fixedRNG(moveStay))

	snap := s.Snapshot()
	if snap.Player != (Point{X: 1, Y: 1}) {
		t.Errorf("player = %v", snap.Player)
	}
	if !reflect.DeepEqual(snap.Roamers, []Point{{X: 5, Y: 5}}) {
		t.Errorf("roamers = %v", snap.Roamers)
	}
	if !reflect.DeepEqual(snap.Pursuers, []Point{{X: 8, Y: 2}}) {
		t.Errorf("pursuers = %v", snap.Pursuers)
	}
	if snap.Entities != 4 {
		t.Errorf("entities = %d, expected 4", snap.Entities)
	}
	if snap.Status != StatusPlaying {
		t.Errorf("status = %v", snap.Status)
	}
}
