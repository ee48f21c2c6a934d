package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Cyber-Pursuit/internal/pursuit"
)

const scanGridStep = 50

var (
	colBackTop    = color.RGBA{R: 6, G: 10, B: 26, A: 255}
	colBackBottom = color.RGBA{R: 14, G: 22, B: 46, A: 255}
	colScanLine   = color.RGBA{R: 40, G: 70, B: 110, A: 60}

	colPlayer      = color.RGBA{R: 0, G: 220, B: 255, A: 255}
	colPlayerGlow  = color.RGBA{R: 0, G: 160, B: 220, A: 60}
	colEnemy       = color.RGBA{R: 255, G: 60, B: 90, A: 255}
	colEnemyGlow   = color.RGBA{R: 255, G: 40, B: 70, A: 50}
	colEnemyRing   = color.RGBA{R: 255, G: 120, B: 60, A: 90}
	colLink        = color.RGBA{R: 255, G: 90, B: 90, A: 70}
	colProjectile  = color.RGBA{R: 255, G: 230, B: 90, A: 255}
	colPickup      = color.RGBA{R: 70, G: 255, B: 140, A: 255}
	colPickupField = color.RGBA{R: 70, G: 255, B: 140, A: 40}

	colTechFill    = color.RGBA{R: 24, G: 40, B: 70, A: 255}
	colTechEdge    = color.RGBA{R: 60, G: 160, B: 220, A: 255}
	colCrystalFill = color.RGBA{R: 45, G: 26, B: 70, A: 255}
	colCrystalEdge = color.RGBA{R: 170, G: 90, B: 255, A: 255}
	colBarrierFill = color.RGBA{R: 60, G: 44, B: 18, A: 255}
	colBarrierEdge = color.RGBA{R: 230, G: 170, B: 40, A: 255}
)

func (g *Game) drawWorld(screen *ebiten.Image) {
	w := g.world
	g.drawBackground(screen)

	for _, o := range w.Obstacles {
		drawObstacle(screen, o, w.Tick)
	}
	for _, pk := range w.Pickups {
		drawPickup(screen, pk, w.Tick)
	}
	for _, pr := range w.Projectiles {
		drawProjectile(screen, pr)
	}
	for _, e := range w.Enemies {
		if e.Alive {
			g.drawEnemy(screen, e)
		}
	}
	if w.Player.Alive {
		drawPlayer(screen, w.Player, w.Tick)
	}
}

// drawBackground renders the vertical gradient plus the scan grid.
func (g *Game) drawBackground(screen *ebiten.Image) {
	w := float32(g.world.Width)
	h := float32(g.world.Height)

	// Cheap two-tone gradient: blend in horizontal bands.
	const bands = 12
	bandH := h / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / (bands - 1)
		c := lerpColor(colBackTop, colBackBottom, t)
		vector.FillRect(screen, 0, float32(i)*bandH, w, bandH+1, c, false)
	}

	for x := float32(0); x <= w; x += scanGridStep {
		vector.StrokeLine(screen, x, 0, x, h, 1, colScanLine, false)
	}
	for y := float32(0); y <= h; y += scanGridStep {
		vector.StrokeLine(screen, 0, y, w, y, 1, colScanLine, false)
	}
}

func drawObstacle(screen *ebiten.Image, o *Obstacle, tick int) {
	x, y := float32(o.X), float32(o.Y)
	ww, hh := float32(o.W), float32(o.H)

	switch o.Style {
	case StyleCrystal:
		vector.FillRect(screen, x, y, ww, hh, colCrystalFill, false)
		vector.StrokeRect(screen, x, y, ww, hh, 2, colCrystalEdge, false)
		vector.StrokeLine(screen, x, y+hh, x+ww, y, 1, colCrystalEdge, false)
	case StyleBarrier:
		vector.FillRect(screen, x, y, ww, hh, colBarrierFill, false)
		vector.StrokeRect(screen, x, y, ww, hh, 2, colBarrierEdge, false)
		// Hazard stripes.
		for sx := x; sx < x+ww; sx += 14 {
			vector.StrokeLine(screen, sx, y, sx+7, y+hh, 2, colBarrierEdge, false)
		}
	default: // StyleTech
		vector.FillRect(screen, x, y, ww, hh, colTechFill, false)
		vector.StrokeRect(screen, x, y, ww, hh, 2, colTechEdge, false)
		// Pulsing inner panel line.
		pulse := float32(4 + 2*math.Sin(float64(tick)*0.05))
		if ww > 2*pulse && hh > 2*pulse {
			vector.StrokeRect(screen, x+pulse, y+pulse, ww-2*pulse, hh-2*pulse, 1, colTechEdge, false)
		}
	}
}

func drawPlayer(screen *ebiten.Image, p *Player, tick int) {
	drawTrail(screen, p.trail, colPlayerGlow, float32(p.Radius)*0.6)
	cx, cy := float32(p.X), float32(p.Y)
	r := float32(p.Radius)
	vector.FillCircle(screen, cx, cy, r+5, colPlayerGlow, false)
	vector.FillCircle(screen, cx, cy, r, colPlayer, false)
	// Heading blip rotates slowly; purely cosmetic.
	a := float64(tick) * 0.1
	vector.FillCircle(screen, cx+float32(math.Cos(a))*r, cy+float32(math.Sin(a))*r, 2, color.White, false)
}

func (g *Game) drawEnemy(screen *ebiten.Image, e *Enemy) {
	drawTrail(screen, e.trail, colEnemyGlow, float32(e.Radius)*0.5)
	cx, cy := float32(e.X), float32(e.Y)
	r := float32(e.Radius)
	vector.FillCircle(screen, cx, cy, r+5, colEnemyGlow, false)
	vector.FillCircle(screen, cx, cy, r, colEnemy, false)

	p := g.world.Player
	d := e.DistanceTo(&p.Agent)
	// Close-quarters alert ring and a tether to the player.
	if d < pursuit.MidThreshold {
		vector.StrokeCircle(screen, cx, cy, float32(pursuit.NearThreshold), 1, colEnemyRing, false)
		vector.StrokeLine(screen, cx, cy, float32(p.X), float32(p.Y), 1, colLink, false)
	}

	// Health pips above the pursuer.
	frac := float32(e.Health) / float32(e.MaxHealth)
	vector.FillRect(screen, cx-r, cy-r-7, 2*r*frac, 3, colPickup, false)
}

func drawProjectile(screen *ebiten.Image, pr *Projectile) {
	for i, p := range pr.trail {
		a := uint8(30 + i*25)
		c := color.RGBA{R: 255, G: 230, B: 90, A: a}
		vector.FillCircle(screen, float32(p[0]), float32(p[1]), float32(pr.Radius)*0.7, c, false)
	}
	vector.FillCircle(screen, float32(pr.X), float32(pr.Y), float32(pr.Radius), colProjectile, false)
}

func drawPickup(screen *ebiten.Image, pk *Pickup, tick int) {
	cx, cy := float32(pk.X), float32(pk.Y)
	pulse := float32(pk.Radius) + float32(2*math.Sin(float64(tick)*0.12))
	vector.FillCircle(screen, cx, cy, pulse+6, colPickupField, false)
	vector.FillCircle(screen, cx, cy, float32(pk.Radius), colPickup, false)
	// Cross marker.
	vector.StrokeLine(screen, cx-4, cy, cx+4, cy, 2, color.White, false)
	vector.StrokeLine(screen, cx, cy-4, cx, cy+4, 2, color.White, false)
}

func drawTrail(screen *ebiten.Image, trail [][2]float64, base color.RGBA, r float32) {
	for i, p := range trail {
		c := base
		c.A = uint8(int(base.A) * (i + 1) / (len(trail) + 1))
		vector.FillCircle(screen, float32(p[0]), float32(p[1]), r, c, false)
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}
