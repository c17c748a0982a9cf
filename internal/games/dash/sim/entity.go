// Package sim implements the Dash simulation core: the grid world, enemy AI,
// the per-turn engine and the session that ties them together.
// It has no dependency on the terminal layer and performs no I/O.
package sim

// Point is a cell coordinate on the grid.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns the taxicab distance between two points.
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Kind tags what an entity is. The set is closed; behavior is selected by
// switching on it.
type Kind int

const (
	KindPlayer Kind = iota
	KindWall
	KindRoamer
	KindPursuer
	KindGoal
)

// EmptyGlyph marks a grid cell with no entity.
const EmptyGlyph = '_'

// Glyph returns the single-character display form of the kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindPlayer:
		return '@'
	case KindWall:
		return '#'
	case KindRoamer:
		return 'E'
	case KindPursuer:
		return 'Q'
	case KindGoal:
		return 'G'
	default:
		return '?'
	}
}

// IsEnemy reports whether touching an entity of this kind loses the game.
func (k Kind) IsEnemy() bool {
	return k == KindRoamer || k == KindPursuer
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindWall:
		return "wall"
	case KindRoamer:
		return "roamer"
	case KindPursuer:
		return "pursuer"
	case KindGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Entity is anything that occupies a grid cell.
type Entity struct {
	Pos   Point
	Kind  Kind
	Solid bool
}

// NewEntity creates an entity with the default solidity for its kind.
// Only the goal can be walked onto.
func NewEntity(kind Kind, x, y int) *Entity {
	return &Entity{
		Pos:   Point{X: x, Y: y},
		Kind:  kind,
		Solid: kind != KindGoal,
	}
}
