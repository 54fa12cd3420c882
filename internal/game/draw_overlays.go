package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudLineHeight = 15 // basicfont 7x13 plus leading, unscaled
	hudPad        = 8
)

var (
	hudPanelCol  = color.RGBA{R: 8, G: 10, B: 16, A: 200}
	hudBorderCol = color.RGBA{R: 70, G: 90, B: 130, A: 180}
	hudTextCol   = color.RGBA{R: 230, G: 232, B: 240, A: 255}
	hudDimCol    = color.RGBA{R: 150, G: 156, B: 170, A: 255}
	scoreCol     = color.RGBA{R: 250, G: 180, B: 50, A: 255}
)

// drawText draws s with its top-left at (x, y), scaled by scale.
func (g *Game) drawText(dst *ebiten.Image, s string, x, y, scale float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.LineSpacing = hudLineHeight
	text.Draw(dst, s, g.hudFace, op)
}

func (g *Game) measure(s string, scale float64) (w, h float64) {
	w, h = text.Measure(s, g.hudFace, hudLineHeight)
	return w * scale, h * scale
}

// panel draws a HUD backing box.
func panel(dst *ebiten.Image, x, y, w, h float32) {
	vector.FillRect(dst, x, y, w, h, hudPanelCol, false)
	vector.StrokeRect(dst, x, y, w, h, 1.0, hudBorderCol, false)
}

// drawHUD renders score, countdown, queue, charge bar and leaderboard.
func (g *Game) drawHUD(screen *ebiten.Image) {
	rs := g.sim.State.Round

	// Score block, top left.
	panel(screen, 10, 10, 220, 118)
	g.drawText(screen, fmt.Sprintf("SCORE %d", rs.Score), 20, 16, 3, scoreCol)
	g.drawText(screen, fmt.Sprintf("TIME  %2ds", rs.Remaining), 20, 62, 2, hudTextCol)
	status := fmt.Sprintf("round %d  %s  queue %d", rs.Round, rs.Phase, g.sim.State.Queue.Len())
	g.drawText(screen, status, 20, 96, 1, hudDimCol)

	g.drawChargeBar(screen, 10, 136, 220, 14)

	// Leaderboard, top right of the viewport.
	lines := []string{"LEADERBOARD"}
	for i, e := range rs.Leaderboard.Top(g.cfg.LeaderboardTop) {
		lines = append(lines, fmt.Sprintf("%2d. %3d", i+1, e.Score))
	}
	if rs.Leaderboard.Len() == 0 {
		lines = append(lines, "  --")
	}
	body := strings.Join(lines, "\n")
	w, h := g.measure(body, 1)
	x := float64(g.viewW) - w - 2*hudPad - 10
	panel(screen, float32(x), 10, float32(w+2*hudPad), float32(h+2*hudPad))
	g.drawText(screen, body, x+hudPad, 10+hudPad, 1, hudTextCol)
}

// drawChargeBar shows the current charge level.
func (g *Game) drawChargeBar(screen *ebiten.Image, x, y, w, h float32) {
	panel(screen, x, y, w, h)
	level := float32(g.sim.Charger.Level())
	if level <= 0 {
		return
	}
	fill := color.RGBA{R: 80, G: 200, B: 90, A: 255}
	if level > 0.8 {
		fill = color.RGBA{R: 230, G: 80, B: 60, A: 255}
	} else if level > 0.5 {
		fill = color.RGBA{R: 230, G: 190, B: 60, A: 255}
	}
	vector.FillRect(screen, x+2, y+2, (w-4)*level, h-4, fill, false)
}

// drawFinalOverlay shows the last round's score in the middle of the view.
func (g *Game) drawFinalOverlay(screen *ebiten.Image) {
	title := fmt.Sprintf("FINAL SCORE %d", g.sim.State.Round.Score)
	sub := fmt.Sprintf("rank #%d   press Enter to play again", g.sim.Round.LastRank())
	tw, th := g.measure(title, 4)
	sw, sh := g.measure(sub, 1.5)

	boxW := max(tw, sw) + 4*hudPad
	boxH := th + sh + 5*hudPad
	bx := (float64(g.viewW) - boxW) / 2
	by := (float64(g.height) - boxH) / 2
	vector.FillRect(screen, float32(bx), float32(by), float32(boxW), float32(boxH), color.RGBA{R: 0, G: 0, B: 0, A: 190}, false)
	vector.StrokeRect(screen, float32(bx), float32(by), float32(boxW), float32(boxH), 2.0, scoreCol, false)

	g.drawText(screen, title, bx+(boxW-tw)/2, by+2*hudPad, 4, scoreCol)
	g.drawText(screen, sub, bx+(boxW-sw)/2, by+3*hudPad+th, 1.5, hudTextCol)
}

// drawHelp renders the key legend, bottom left.
func (g *Game) drawHelp(screen *ebiten.Image) {
	lines := []string{
		"[Enter] start round   [E] spawn ball",
		"[Space] hold to charge, release to shoot",
		fmt.Sprintf("[1/2/3] camera (%s)", cameraPresets[g.camera].Name),
		"[V] sensor debug   [C] copy leaderboard",
		"[H] toggle help",
	}
	body := strings.Join(lines, "\n")
	w, h := g.measure(body, 1)
	y := float64(g.height) - h - 2*hudPad - 10
	panel(screen, 10, float32(y), float32(w+2*hudPad), float32(h+2*hudPad))
	g.drawText(screen, body, 10+hudPad, y+hudPad, 1, hudDimCol)
}
