package dash

import (
	"fmt"

	"github.com/vovakirdan/grid-dash/internal/core"
	"github.com/vovakirdan/grid-dash/internal/games/dash/sim"
)

const (
	cellWidth    = 2 // Each grid cell takes two screen columns
	hudHeight    = 2
	footerHeight = 1
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		w := g.session.World()
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", w.Width()*cellWidth, w.Height()+hudHeight+footerHeight))
		return
	}

	g.renderGrid(dst)
	g.renderFooter(dst)

	frame := g.session.Frame()
	switch {
	case frame.Status == sim.StatusWon:
		g.renderOverlay(dst, "You reached the goal!",
			fmt.Sprintf("%d moves. Press R to play again", frame.PlayerMoves))
	case frame.Status == sim.StatusLost:
		g.renderOverlay(dst, "Caught!", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.session.World()
	hud := fmt.Sprintf(" %s  Moves: %d  Pursuers: %d  Next spawn: %d  [%s]",
		g.Title(),
		g.session.PlayerMoves(),
		w.CountKind(sim.KindPursuer),
		g.session.MovesUntilSpawn(),
		difficultyPreset,
	)
	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// gridOrigin returns the top-left screen position of the grid.
func (g *Game) gridOrigin(dst *core.Screen) (int, int) {
	w := g.session.World()
	boardW := w.Width() * cellWidth
	avail := dst.Height() - hudHeight - footerHeight

	x := core.Max(0, (dst.Width()-boardW)/2)
	y := hudHeight + core.Max(0, (avail-w.Height())/2)
	return x, y
}

// renderGrid draws every cell of the current frame.
func (g *Game) renderGrid(dst *core.Screen) {
	ox, oy := g.gridOrigin(dst)
	for y, row := range g.session.Frame().Cells {
		for x, r := range row {
			dst.SetColored(ox+x*cellWidth, oy+y, r, glyphColor(r))
		}
	}
}

// renderFooter draws key hints or the layout error on the last line.
func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	if g.layoutErr != nil {
		dst.DrawTextColored(1, y, "Bad layout, using classic board: "+g.layoutErr.Error(), core.ColorRed)
		return
	}
	dst.DrawTextColored(1, y, "arrows/wasd move  p pause  r restart  q quit", core.ColorGray)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

func glyphColor(r rune) core.Color {
	switch r {
	case sim.KindPlayer.Glyph():
		return core.ColorBrightGreen
	case sim.KindWall.Glyph():
		return core.ColorGray
	case sim.KindRoamer.Glyph():
		return core.ColorYellow
	case sim.KindPursuer.Glyph():
		return core.ColorBrightRed
	case sim.KindGoal.Glyph():
		return core.ColorCyan
	default:
		return core.ColorGray
	}
}
