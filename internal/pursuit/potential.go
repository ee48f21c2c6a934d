package pursuit

import "math"

// steeringForce computes the artificial potential-field force acting on the
// pursuer: a constant-magnitude attraction toward the target plus inverse
// square repulsion from every nearby obstacle center.
func (e *Engine) steeringForce(pursuer, target AgentSnapshot, obstacles []Obstacle) (float64, float64) {
	ax := target.X - pursuer.X
	ay := target.Y - pursuer.Y
	dist := math.Max(math.Hypot(ax, ay), 1)
	fx := ax / dist * attractionMagnitude
	fy := ay / dist * attractionMagnitude

	for _, o := range obstacles {
		dx := pursuer.X - (o.X + o.W/2)
		dy := pursuer.Y - (o.Y + o.H/2)
		d := math.Hypot(dx, dy)
		if d >= repulsionRadius {
			continue
		}
		f := repulsionFactor / math.Max(d*d, 1)
		fx += dx / math.Max(d, 1) * f
		fy += dy / math.Max(d, 1) * f
	}
	return fx, fy
}

// potentialAction converts the field force into a discrete movement action.
func (e *Engine) potentialAction(pursuer, target AgentSnapshot, obstacles []Obstacle) Action {
	fx, fy := e.steeringForce(pursuer, target, obstacles)
	return quantizeForce(fx, fy)
}
