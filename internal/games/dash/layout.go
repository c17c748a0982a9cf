package dash

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/grid-dash/internal/games/dash/sim"
)

// Layout tiles.
const (
	tileWall    = '#'
	tilePlayer  = '@'
	tileRoamer  = 'E'
	tilePursuer = 'Q'
	tileGoal    = 'G'
)

var (
	errEmptyLayout = errors.New("layout: no rows")
	errNoPlayer    = errors.New("layout: missing player '@'")
	errNoGoal      = errors.New("layout: missing goal 'G'")
)

// ParseLayout converts an ASCII map into a session layout.
// The grid is as wide as the longest row; short rows are padded with empty cells.
// '.', '_' and ' ' are empty; exactly one '@' and one 'G' are required.
func ParseLayout(rows []string) (sim.Layout, error) {
	var layout sim.Layout
	if len(rows) == 0 {
		return layout, errEmptyLayout
	}

	layout.Height = len(rows)
	havePlayer, haveGoal := false, false

	for y, row := range rows {
		x := 0
		for _, ch := range row {
			p := sim.Point{X: x, Y: y}
			switch ch {
			case '.', '_', ' ':
			case tileWall:
				layout.Walls = append(layout.Walls, p)
			case tileRoamer:
				layout.Roamers = append(layout.Roamers, p)
			case tilePursuer:
				layout.Pursuers = append(layout.Pursuers, p)
			case tilePlayer:
				if havePlayer {
					return layout, fmt.Errorf("layout: second player at row %d col %d", y, x)
				}
				havePlayer = true
				layout.Player = p
			case tileGoal:
				if haveGoal {
					return layout, fmt.Errorf("layout: second goal at row %d col %d", y, x)
				}
				haveGoal = true
				layout.Goal = p
			default:
				return layout, fmt.Errorf("layout: unknown tile %q at row %d col %d", ch, y, x)
			}
			x++
		}
		layout.Width = max(layout.Width, x)
	}

	if !havePlayer {
		return layout, errNoPlayer
	}
	if !haveGoal {
		return layout, errNoGoal
	}
	return layout, nil
}
