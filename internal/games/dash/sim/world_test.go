package sim

import "testing"

func TestIsSolidOutOfBounds(t *testing.T) {
	w := NewWorld(12, 3)

	tests := []struct {
		name string
		x, y int
	}{
		{"left of grid", -1, 1},
		{"right of grid", 12, 1},
		{"above grid", 5, -1},
		{"below grid", 5, 3},
		{"far corner", 100, -100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !w.IsSolidAt(tc.x, tc.y) {
				t.Errorf("IsSolidAt(%d, %d) = false, expected true", tc.x, tc.y)
			}
		})
	}

	// Every cell just outside the border
	for x := -1; x <= w.Width(); x++ {
		if !w.IsSolidAt(x, -1) || !w.IsSolidAt(x, w.Height()) {
			t.Errorf("border cell at x=%d should be solid", x)
		}
	}
	for y := -1; y <= w.Height(); y++ {
		if !w.IsSolidAt(-1, y) || !w.IsSolidAt(w.Width(), y) {
			t.Errorf("border cell at y=%d should be solid", y)
		}
	}
}

func TestIsSolidEntities(t *testing.T) {
	w := NewWorld(10, 10)
	w.AddEntity(NewEntity(KindWall, 2, 2))
	w.AddEntity(NewEntity(KindGoal, 3, 3))

	if !w.IsSolidAt(2, 2) {
		t.Error("wall cell should be solid")
	}
	if w.IsSolidAt(3, 3) {
		t.Error("goal cell should not be solid")
	}
	if w.IsSolidAt(4, 4) {
		t.Error("empty cell should not be solid")
	}
}

func TestEntityAtFirstMatchWins(t *testing.T) {
	w := NewWorld(5, 5)
	goal := NewEntity(KindGoal, 1, 1)
	roamer := NewEntity(KindRoamer, 1, 1)
	w.AddEntity(goal)
	w.AddEntity(roamer)

	if got := w.EntityAt(1, 1); got != goal {
		t.Errorf("EntityAt should return the first inserted entity, got %+v", got)
	}
	if got := w.EntityAt(0, 0); got != nil {
		t.Errorf("EntityAt on empty cell should be nil, got %+v", got)
	}
}

func TestAddEntityRules(t *testing.T) {
	w := NewWorld(5, 5)

	if !w.AddEntity(NewEntity(KindPlayer, 0, 0)) {
		t.Fatal("first player should be added")
	}
	if w.AddEntity(NewEntity(KindPlayer, 1, 1)) {
		t.Error("second player should be rejected")
	}
	if w.AddEntity(NewEntity(KindWall, 5, 0)) {
		t.Error("out-of-bounds entity should be rejected")
	}
	if w.AddEntity(nil) {
		t.Error("nil entity should be rejected")
	}
	if got := len(w.Entities()); got != 1 {
		t.Errorf("expected 1 entity, got %d", got)
	}
}

func TestEnemiesOfKindIsSnapshot(t *testing.T) {
	w := NewWorld(10, 10)
	w.AddEntity(NewEntity(KindPursuer, 1, 1))
	w.AddEntity(NewEntity(KindRoamer, 2, 2))
	w.AddEntity(NewEntity(KindPursuer, 3, 3))

	pursuers := w.EnemiesOfKind(KindPursuer)
	if len(pursuers) != 2 {
		t.Fatalf("expected 2 pursuers, got %d", len(pursuers))
	}
	if pursuers[0].Pos != (Point{X: 1, Y: 1}) || pursuers[1].Pos != (Point{X: 3, Y: 3}) {
		t.Error("pursuers should be returned in insertion order")
	}

	w.AddEntity(NewEntity(KindPursuer, 4, 4))
	if len(pursuers) != 2 {
		t.Error("earlier snapshot should not see later additions")
	}
	if w.CountKind(KindPursuer) != 3 {
		t.Errorf("expected 3 pursuers after add, got %d", w.CountKind(KindPursuer))
	}
}

func TestEntitiesReturnsCopies(t *testing.T) {
	w := NewWorld(5, 5)
	w.AddEntity(NewEntity(KindPlayer, 1, 1))

	copies := w.Entities()
	copies[0].Pos = Point{X: 4, Y: 4}

	if w.Player().Pos != (Point{X: 1, Y: 1}) {
		t.Error("mutating a copy must not move the player")
	}
}

func TestGrid(t *testing.T) {
	w := NewWorld(4, 2)
	w.AddEntity(NewEntity(KindPlayer, 0, 0))
	w.AddEntity(NewEntity(KindGoal, 3, 0))
	w.AddEntity(NewEntity(KindRoamer, 1, 1))
	w.AddEntity(NewEntity(KindPursuer, 2, 1))

	grid := w.Grid()
	expected := []string{"@__G", "_EQ_"}

	if len(grid) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(grid))
	}
	for y, row := range expected {
		if string(grid[y]) != row {
			t.Errorf("row %d = %q, expected %q", y, string(grid[y]), row)
		}
	}
}

func TestGridShowsFirstEntity(t *testing.T) {
	w := NewWorld(3, 1)
	w.AddEntity(NewEntity(KindPlayer, 1, 0))
	w.AddEntity(NewEntity(KindGoal, 1, 0))

	if got := w.Grid()[0][1]; got != '@' {
		t.Errorf("stacked cell should show the player, got %q", got)
	}
}
