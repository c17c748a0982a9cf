package sim

// World is the fixed-size grid and the entities placed on it.
// Entities are kept in insertion order; spatial lookups return the first match.
type World struct {
	width    int
	height   int
	entities []*Entity
	lost     bool
	won      bool
}

// NewWorld creates an empty world with the given dimensions.
func NewWorld(width, height int) *World {
	return &World{
		width:  width,
		height: height,
	}
}

// Width returns the grid width in cells.
func (w *World) Width() int {
	return w.width
}

// Height returns the grid height in cells.
func (w *World) Height() int {
	return w.height
}

// InBounds returns true if (x, y) lies inside the grid.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

// IsSolidAt reports whether (x, y) blocks movement.
// Coordinates outside the grid are always solid.
func (w *World) IsSolidAt(x, y int) bool {
	if !w.InBounds(x, y) {
		return true
	}
	for _, e := range w.entities {
		if e.Solid && e.Pos.X == x && e.Pos.Y == y {
			return true
		}
	}
	return false
}

// EntityAt returns the first entity at (x, y), or nil.
func (w *World) EntityAt(x, y int) *Entity {
	for _, e := range w.entities {
		if e.Pos.X == x && e.Pos.Y == y {
			return e
		}
	}
	return nil
}

// Player returns the player entity, or nil if none was placed.
func (w *World) Player() *Entity {
	for _, e := range w.entities {
		if e.Kind == KindPlayer {
			return e
		}
	}
	return nil
}

// EnemiesOfKind returns the entities of the given kind in insertion order.
// The returned slice is a snapshot: entities added later are not included.
func (w *World) EnemiesOfKind(kind Kind) []*Entity {
	var result []*Entity
	for _, e := range w.entities {
		if e.Kind == kind {
			result = append(result, e)
		}
	}
	return result
}

// CountKind returns how many entities of the given kind exist.
func (w *World) CountKind(kind Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// AddEntity places e in the world and returns true.
// It refuses a second player and any position outside the grid.
func (w *World) AddEntity(e *Entity) bool {
	if e == nil || !w.InBounds(e.Pos.X, e.Pos.Y) {
		return false
	}
	if e.Kind == KindPlayer && w.Player() != nil {
		return false
	}
	w.entities = append(w.entities, e)
	return true
}

// Entities returns value copies of all entities in insertion order.
func (w *World) Entities() []Entity {
	result := make([]Entity, len(w.entities))
	for i, e := range w.entities {
		result[i] = *e
	}
	return result
}

// Lost reports whether the player has been caught.
func (w *World) Lost() bool {
	return w.lost
}

// Won reports whether the player reached the goal.
func (w *World) Won() bool {
	return w.won
}

func (w *World) markLost() {
	w.lost = true
}

func (w *World) markWon() {
	w.won = true
}

// Grid renders the world into a height×width matrix of glyphs.
// Each cell shows the first entity found there, or EmptyGlyph.
func (w *World) Grid() [][]rune {
	cells := make([][]rune, w.height)
	for y := range cells {
		cells[y] = make([]rune, w.width)
		for x := range cells[y] {
			cells[y][x] = EmptyGlyph
		}
	}
	// Walk backwards so earlier entities overwrite later ones.
	for i := len(w.entities) - 1; i >= 0; i-- {
		e := w.entities[i]
		if w.InBounds(e.Pos.X, e.Pos.Y) {
			cells[e.Pos.Y][e.Pos.X] = e.Kind.Glyph()
		}
	}
	return cells
}
