package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colOverlay  = color.RGBA{R: 4, G: 8, B: 18, A: 210}
	colTitle    = color.RGBA{R: 0, G: 220, B: 255, A: 255}
	colVictory  = color.RGBA{R: 70, G: 255, B: 140, A: 255}
	colDefeat   = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	colSubtitle = color.RGBA{R: 170, G: 220, B: 255, A: 255}
)

func (g *Game) drawWelcome(screen *ebiten.Image) {
	w := g.world
	vector.FillRect(screen, 0, 0, float32(w.Width), float32(w.Height), colOverlay, false)

	cx := w.Width / 2
	drawCentered(screen, "CYBER PURSUIT", cx, w.Height/2-60, colTitle)
	drawCentered(screen, "outrun the pursuit swarm, shoot back, survive", cx, w.Height/2-30, colSubtitle)
	drawCentered(screen, "WASD/arrows move - shift boost - mouse/space fire", cx, w.Height/2, colSubtitle)
	drawCentered(screen, "1 hybrid  2 predictive  3 potential-field  4 genetic", cx, w.Height/2+18, colSubtitle)
	drawCentered(screen, "press ENTER or click to start", cx, w.Height/2+54, colTitle)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	w := g.world
	vector.FillRect(screen, 0, 0, float32(w.Width), float32(w.Height), colOverlay, false)

	cx := w.Width / 2
	if w.Victory {
		drawCentered(screen, "SECTOR CLEARED", cx, w.Height/2-40, colVictory)
	} else {
		drawCentered(screen, "SIGNAL LOST", cx, w.Height/2-40, colDefeat)
	}
	drawCentered(screen, fmt.Sprintf("final score %d after %d ticks", w.Score, w.Tick), cx, w.Height/2-10, colSubtitle)
	drawCentered(screen, "press ENTER or click for a new run", cx, w.Height/2+26, colSubtitle)
}

// drawCentered draws s horizontally centered on cx at baseline y.
func drawCentered(screen *ebiten.Image, s string, cx, y int, clr color.Color) {
	b := text.BoundString(hudFace, s)
	text.Draw(screen, s, hudFace, cx-b.Dx()/2, y, clr)
}
