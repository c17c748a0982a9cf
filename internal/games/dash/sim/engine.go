package sim

// Direction is the single input the engine understands.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit vector for the direction. DirNone is the zero vector.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	case DirRight:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Status is the progression state of a game.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// Terminal reports whether no further turns can change the game.
func (s Status) Terminal() bool {
	return s != StatusPlaying
}

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Rules holds the pursuer cadence constants.
type Rules struct {
	SpawnInterval  int // Player moves between pursuer spawns
	MoveInterval   int // Pursuers act when playerMoves is a multiple of this
	DetectionRange int // Manhattan radius at which a pursuer catches the player
}

// DefaultRules returns the classic cadence: spawn every 10 moves, act every 2, range 2.
func DefaultRules() Rules {
	return Rules{
		SpawnInterval:  10,
		MoveInterval:   2,
		DetectionRange: 2,
	}
}

// Engine resolves one player action into a full turn.
type Engine struct {
	world       *World
	rules       Rules
	rng         RNG
	playerMoves int
}

// NewEngine creates an engine over w.
func NewEngine(w *World, rules Rules, rng RNG) *Engine {
	return &Engine{
		world: w,
		rules: rules,
		rng:   rng,
	}
}

// PlayerMoves returns the number of successful player displacements so far.
func (e *Engine) PlayerMoves() int {
	return e.playerMoves
}

// Status derives the game status from the world's terminal flags.
func (e *Engine) Status() Status {
	switch {
	case e.world.Lost():
		return StatusLost
	case e.world.Won():
		return StatusWon
	default:
		return StatusPlaying
	}
}

// Resolve runs one turn for the given direction and returns the resulting status.
// DirNone and any input after the game has ended leave everything unchanged.
func (e *Engine) Resolve(d Direction) Status {
	if d == DirNone || e.Status().Terminal() {
		return e.Status()
	}
	player := e.world.Player()
	if player == nil {
		return e.Status()
	}

	target := player.Pos.Add(d.Delta())
	moved := false

	if occupant := e.world.EntityAt(target.X, target.Y); occupant != nil {
		switch {
		case occupant.Kind.IsEnemy():
			e.world.markLost()
			return e.Status()
		case occupant.Kind == KindGoal:
			player.Pos = target
			e.playerMoves++
			e.world.markWon()
			return e.Status()
		case !occupant.Solid:
			player.Pos = target
			moved = true
		}
	} else if !e.world.IsSolidAt(target.X, target.Y) {
		player.Pos = target
		moved = true
	}

	if !moved {
		return e.Status()
	}

	e.playerMoves++
	e.runEnemies()
	return e.Status()
}

// runEnemies activates roamers, then pursuers, then tries a spawn.
// Each pass iterates a snapshot taken before the pass, so a pursuer spawned
// this turn never acts this turn. A catch does not cut the passes short,
// but no pursuer spawns once the player is caught.
func (e *Engine) runEnemies() {
	for _, r := range e.world.EnemiesOfKind(KindRoamer) {
		activate(e.world, r, e.rules, e.rng, e.playerMoves)
	}

	for _, q := range e.world.EnemiesOfKind(KindPursuer) {
		activate(e.world, q, e.rules, e.rng, e.playerMoves)
	}

	if e.world.Lost() {
		return
	}
	if e.rules.SpawnInterval > 0 && e.playerMoves%e.rules.SpawnInterval == 0 {
		e.trySpawn()
	}
}

// trySpawn places one pursuer on a random interior cell if it is free.
// The region is x in [2, width-4] and y in [1, height-3].
func (e *Engine) trySpawn() bool {
	spanX := e.world.Width() - 5
	spanY := e.world.Height() - 3
	if spanX <= 0 || spanY <= 0 {
		return false
	}

	x := 2 + e.rng.Intn(spanX)
	y := 1 + e.rng.Intn(spanY)
	if e.world.IsSolidAt(x, y) {
		return false
	}
	return e.world.AddEntity(NewEntity(KindPursuer, x, y))
}
