package slots

import (
	"fmt"

	"github.com/solidoberon/slots-game/internal/core"
	"github.com/solidoberon/slots-game/internal/engine"
)

const (
	minScreenW = 40
	minScreenH = 16

	cellW = 4
	cellH = 2
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderGrid(dst)
	g.renderStatus(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Session over", fmt.Sprintf("Final Score: %d - Press R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	spinsUsed := g.cfg.Session.Spins - g.spinsLeft
	hud := fmt.Sprintf(" Slots - Score: %d  Spin: %d/%d", g.score, spinsUsed, g.cfg.Session.Spins)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// gridOrigin returns the top-left corner of the reel box.
func (g *Game) gridOrigin(dst *core.Screen) (int, int) {
	boxW := engine.Cols*cellW + 1
	boxH := engine.Rows*cellH + 1
	x := (dst.Width() - boxW) / 2
	y := 3 + (dst.Height()-3-boxH-3)/2
	return x, core.Max(y, 3)
}

// renderGrid draws the reel box and symbols, flashing winning cells.
func (g *Game) renderGrid(dst *core.Screen) {
	x0, y0 := g.gridOrigin(dst)
	boxW := engine.Cols*cellW + 1
	boxH := engine.Rows*cellH + 1
	dst.DrawBox(core.NewRect(x0, y0, boxW, boxH))

	winning := g.winningCells()
	flashOn := g.cfg.Spin.FlashTicks > 0 && (g.flashTicks/g.cfg.Spin.FlashTicks)%2 == 0

	for r := 0; r < engine.Rows; r++ {
		for c := 0; c < engine.Cols; c++ {
			cx := x0 + c*cellW + cellW/2
			cy := y0 + r*cellH + 1

			sym := g.shown[r][c]
			if sym == engine.Empty {
				dst.SetColored(cx, cy, '·', core.ColorGray)
				continue
			}

			glyph, color := g.lookupSymbol(sym)
			if winning[engine.Coord{Row: r, Col: c}] && flashOn {
				color = core.ColorBrightWhite
			}
			dst.SetColored(cx, cy, glyph, color)
		}
	}
}

// winningCells collects every coordinate on a winning path.
func (g *Game) winningCells() map[engine.Coord]bool {
	cells := make(map[engine.Coord]bool)
	if g.phase != PhaseSettled && !g.gameOver {
		return cells
	}
	for _, p := range g.result.Paths {
		for _, c := range p {
			cells[c] = true
		}
	}
	return cells
}

// lookupSymbol finds display attributes for a symbol label.
func (g *Game) lookupSymbol(sym engine.Symbol) (rune, core.Color) {
	for _, rs := range g.reel {
		if rs.sym == sym {
			return rs.glyph, rs.color
		}
	}
	return '?', core.ColorDefault
}

// renderStatus draws the line below the reel box.
func (g *Game) renderStatus(dst *core.Screen) {
	_, y0 := g.gridOrigin(dst)
	y := y0 + engine.Rows*cellH + 2

	var status string
	switch g.phase {
	case PhaseIdle:
		status = "Press SPACE to spin"
	case PhaseSpinning:
		status = "Spinning..."
	case PhaseSettled:
		w := g.result.Wins
		if len(g.result.Paths) == 0 {
			status = "No wins"
		} else {
			status = fmt.Sprintf("Wins: %d straight  %d diagonal  %d adjacency  (+%d)",
				len(w.Straight), len(w.Diagonal), len(w.Adjacency), g.spinPoints())
		}
		if g.forcedMiss {
			status += "  [forced grid unavailable]"
		}
	}
	dst.DrawTextCentered(y, status)

	if g.forced != CategoryNone {
		dst.DrawTextCentered(y+1, fmt.Sprintf("Next spin rigged: %s", g.forced))
	}

	help := "SPACE spin  1/2/3 rig  P pause  Q quit"
	dst.DrawTextCentered(dst.Height()-1, help)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawText(boxX+(boxW-len(line1))/2, boxY+1, line1)
	dst.DrawText(boxX+(boxW-len(line2))/2, boxY+3, line2)
}
