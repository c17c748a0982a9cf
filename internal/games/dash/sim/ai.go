package sim

// RNG is the source of randomness for enemy moves and spawns.
// *rand.Rand satisfies it; tests pass scripted implementations.
type RNG interface {
	Intn(n int) int
}

// Index into enemyMoves that leaves an enemy in place.
const moveStay = 4

// enemyMoves are the five choices an enemy picks from uniformly.
var enemyMoves = [...]Point{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: 0, Y: 0},
}

func randomMove(rng RNG) Point {
	return enemyMoves[rng.Intn(len(enemyMoves))]
}

// activate runs one enemy turn for e.
// playerMoves is the counter after this turn's increment.
func activate(w *World, e *Entity, rules Rules, rng RNG, playerMoves int) {
	switch e.Kind {
	case KindRoamer:
		activateRoamer(w, e, rng)
	case KindPursuer:
		activatePursuer(w, e, rules, rng, playerMoves)
	case KindPlayer, KindWall, KindGoal:
	}
}

// activateRoamer moves the roamer one random step unless the destination is solid.
// The player is solid, so a roamer next to it is blocked rather than catching it;
// the player check after the solid check only fires for a non-solid player.
// Other enemies are not checked, so two enemies may share a cell.
func activateRoamer(w *World, e *Entity, rng RNG) {
	dest := e.Pos.Add(randomMove(rng))

	if w.IsSolidAt(dest.X, dest.Y) {
		return
	}
	if p := w.Player(); p != nil && p.Pos == dest {
		w.markLost()
		return
	}
	e.Pos = dest
}

// activatePursuer acts only on turns where playerMoves is a multiple of the
// move interval. After moving (or not) it catches the player within detection range.
func activatePursuer(w *World, e *Entity, rules Rules, rng RNG, playerMoves int) {
	if rules.MoveInterval <= 0 || playerMoves%rules.MoveInterval != 0 {
		return
	}

	dest := e.Pos.Add(randomMove(rng))
	if !w.IsSolidAt(dest.X, dest.Y) {
		e.Pos = dest
	}

	if p := w.Player(); p != nil && e.Pos.Manhattan(p.Pos) <= rules.DetectionRange {
		w.markLost()
	}
}
