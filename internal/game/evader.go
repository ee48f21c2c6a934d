package game

import "math"

const (
	evaderWallMargin   = 70.0 // start steering off walls inside this band
	evaderPanicRange   = 120.0
	evaderFireRange    = 350.0
	evaderObstacleEdge = 45.0
)

// ScriptedEvader is the player substitute for headless runs: it flees the
// pursuers, hugs away from walls and obstacles, shoots at the nearest enemy
// and boosts when cornered.
func ScriptedEvader(w *World) PlayerInput {
	p := w.Player
	if !p.Alive {
		return PlayerInput{}
	}

	var fx, fy float64

	// Flee every living enemy, weighted by inverse distance.
	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		dx := p.X - e.X
		dy := p.Y - e.Y
		d := math.Max(math.Hypot(dx, dy), 1)
		wgt := 200 / d
		fx += dx / d * wgt
		fy += dy / d * wgt
	}

	// Push off walls.
	if p.X < evaderWallMargin {
		fx += (evaderWallMargin - p.X) / 10
	}
	if float64(w.Width)-p.X < evaderWallMargin {
		fx -= (evaderWallMargin - (float64(w.Width) - p.X)) / 10
	}
	if p.Y < evaderWallMargin {
		fy += (evaderWallMargin - p.Y) / 10
	}
	if float64(w.Height)-p.Y < evaderWallMargin {
		fy -= (evaderWallMargin - (float64(w.Height) - p.Y)) / 10
	}

	// Push off obstacle edges.
	for _, o := range w.Obstacles {
		dx := p.X - o.CenterX()
		dy := p.Y - o.CenterY()
		d := math.Max(math.Hypot(dx, dy), 1)
		if d < evaderObstacleEdge+math.Max(o.W, o.H)/2 {
			fx += dx / d * 4
			fy += dy / d * 4
		}
	}

	input := PlayerInput{DX: quantizeAxis(fx), DY: quantizeAxis(fy)}

	nearest := w.NearestEnemy()
	if nearest != nil {
		d := nearest.DistanceTo(&p.Agent)
		input.Boost = d < evaderPanicRange
		if d < evaderFireRange {
			input.Fire = true
			input.FireX = nearest.X
			input.FireY = nearest.Y
		}
	}
	return input
}

// quantizeAxis collapses a steering component to {-1, 0, 1} with a dead zone.
func quantizeAxis(f float64) int {
	if f > 0.5 {
		return 1
	}
	if f < -0.5 {
		return -1
	}
	return 0
}
