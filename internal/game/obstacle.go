package game

import (
	"math"

	"github.com/Garsondee/Cyber-Pursuit/internal/pursuit"
)

// ObstacleStyle selects the render treatment for an obstacle.
type ObstacleStyle int

const (
	StyleTech ObstacleStyle = iota
	StyleCrystal
	StyleBarrier
)

// Obstacle is an impassable axis-aligned block on the map.
type Obstacle struct {
	X, Y, W, H float64
	Style      ObstacleStyle
}

// Bounds returns the obstacle rectangle in engine form.
func (o *Obstacle) Bounds() pursuit.Obstacle {
	return pursuit.Obstacle{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// CenterX and CenterY give the rectangle's midpoint.
func (o *Obstacle) CenterX() float64 { return o.X + o.W/2 }
func (o *Obstacle) CenterY() float64 { return o.Y + o.H/2 }

// collidesCircle reports whether a circle at (cx, cy) with radius r overlaps
// the obstacle, using the closest point on the rectangle.
func (o *Obstacle) collidesCircle(cx, cy, r float64) bool {
	px := math.Max(o.X, math.Min(cx, o.X+o.W))
	py := math.Max(o.Y, math.Min(cy, o.Y+o.H))
	return math.Hypot(cx-px, cy-py) < r
}

// overlapsRect reports whether the obstacle intersects the given rectangle.
func (o *Obstacle) overlapsRect(x, y, w, h float64) bool {
	return o.X < x+w && x < o.X+o.W && o.Y < y+h && y < o.Y+o.H
}
