package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var hudFace font.Face = basicfont.Face7x13

const (
	barW = 160
	barH = 10

	minimapW = 120
	minimapH = 90
)

var (
	colBarBack   = color.RGBA{R: 20, G: 30, B: 50, A: 200}
	colHealth    = color.RGBA{R: 70, G: 255, B: 140, A: 255}
	colHealthLow = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	colBoost     = color.RGBA{R: 0, G: 200, B: 255, A: 255}
	colHUDText   = color.RGBA{R: 170, G: 220, B: 255, A: 255}
	colRadarRim  = color.RGBA{R: 60, G: 160, B: 220, A: 200}
)

func (g *Game) drawHUD(screen *ebiten.Image) {
	w := g.world
	p := w.Player

	// Health bar.
	vector.FillRect(screen, 12, 12, barW, barH, colBarBack, false)
	hc := colHealth
	if p.Health < p.MaxHealth/4 {
		hc = colHealthLow
	}
	vector.FillRect(screen, 12, 12, barW*float32(p.Health)/float32(p.MaxHealth), barH, hc, false)
	text.Draw(screen, fmt.Sprintf("HP %d/%d", p.Health, p.MaxHealth), hudFace, 12+barW+8, 12+barH-1, colHUDText)

	// Boost bar.
	vector.FillRect(screen, 12, 28, barW, barH, colBarBack, false)
	vector.FillRect(screen, 12, 28, barW*float32(p.BoostEnergy)/boostMax, barH, colBoost, false)
	label := "BOOST"
	if p.boostLocked {
		label = "BOOST (locked)"
	}
	text.Draw(screen, label, hudFace, 12+barW+8, 28+barH-1, colHUDText)

	// Score, mode, remaining pursuers.
	text.Draw(screen, fmt.Sprintf("SCORE %d", w.Score), hudFace, 12, 58, colHUDText)
	text.Draw(screen, fmt.Sprintf("MODE %s  [1-4]", w.Mode), hudFace, 12, 72, colHUDText)
	text.Draw(screen, fmt.Sprintf("PURSUERS %d/%d", w.AliveEnemies(), len(w.Enemies)), hudFace, 12, 86, colHUDText)
	if g.reportCopiedAt >= 0 && w.Tick-g.reportCopiedAt < 120 {
		text.Draw(screen, "report copied to clipboard", hudFace, 12, 100, colHUDText)
	}

	g.drawMinimap(screen)
}

// drawMinimap renders the radar panel in the bottom-right corner.
func (g *Game) drawMinimap(screen *ebiten.Image) {
	w := g.world
	ox := float32(w.Width - minimapW - 12)
	oy := float32(w.Height - minimapH - 12)
	sx := float32(minimapW) / float32(w.Width)
	sy := float32(minimapH) / float32(w.Height)

	vector.FillRect(screen, ox, oy, minimapW, minimapH, colBarBack, false)
	vector.StrokeRect(screen, ox, oy, minimapW, minimapH, 1, colRadarRim, false)
	text.Draw(screen, "RADAR", hudFace, int(ox)+4, int(oy)+12, colRadarRim)

	for _, o := range w.Obstacles {
		vector.FillRect(screen,
			ox+float32(o.X)*sx, oy+float32(o.Y)*sy,
			float32(o.W)*sx, float32(o.H)*sy,
			colTechEdge, false)
	}
	for _, e := range w.Enemies {
		if e.Alive {
			vector.FillCircle(screen, ox+float32(e.X)*sx, oy+float32(e.Y)*sy, 2, colEnemy, false)
		}
	}
	if w.Player.Alive {
		vector.FillCircle(screen, ox+float32(w.Player.X)*sx, oy+float32(w.Player.Y)*sy, 2, colPlayer, false)
	}
}
