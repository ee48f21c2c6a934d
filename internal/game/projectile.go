package game

const (
	projectileSpeed   = 8.0
	projectileRadius  = 3.0
	projectileDamage  = 20
	fireCooldownTicks = 12 // 200ms between shots
)

// Projectile is a player shot travelling in a straight line until it hits an
// enemy, an obstacle or the map edge.
type Projectile struct {
	X, Y   float64
	vx, vy float64
	Radius float64
	Active bool

	trail [][2]float64
}

func newProjectile(x, y, dirX, dirY float64) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		vx:     dirX * projectileSpeed,
		vy:     dirY * projectileSpeed,
		Radius: projectileRadius,
		Active: true,
	}
}

// advance moves the projectile one tick and deactivates it on wall or
// obstacle impact.
func (pr *Projectile) advance(w *World) {
	if !pr.Active {
		return
	}
	pr.X += pr.vx
	pr.Y += pr.vy

	pr.trail = append(pr.trail, [2]float64{pr.X, pr.Y})
	if len(pr.trail) > 6 {
		pr.trail = pr.trail[1:]
	}

	if pr.X < 0 || pr.X > float64(w.Width) || pr.Y < 0 || pr.Y > float64(w.Height) {
		pr.Active = false
		return
	}
	for _, o := range w.Obstacles {
		if o.collidesCircle(pr.X, pr.Y, pr.Radius) {
			pr.Active = false
			return
		}
	}
}

// hits reports whether the projectile overlaps the agent.
func (pr *Projectile) hits(a *Agent) bool {
	if !pr.Active || !a.Alive {
		return false
	}
	dx := pr.X - a.X
	dy := pr.Y - a.Y
	r := pr.Radius + a.Radius
	return dx*dx+dy*dy < r*r
}
