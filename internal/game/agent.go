package game

import "math"

// Agent tuning constants. Speeds are pixels per tick at 60 TPS.
const (
	playerRadius    = 10.0
	playerSpeed     = 5.0
	playerMaxHealth = 100

	enemyRadius    = 12.0
	enemySpeed     = 3.0
	enemyMaxHealth = 60

	contactDamage       = 15
	damageCooldownTicks = 30 // 0.5s between contact hits on the same agent

	boostMax        = 100.0
	boostMultiplier = 1.5
	boostDrain      = 2.0
	boostRegen      = 0.5
	boostUnlockAt   = 30.0 // a drained boost stays locked until this level

	// diagonalFactor keeps diagonal steps the same length as orthogonal ones.
	diagonalFactor = 0.707

	trailLen = 12
)

// Agent is the shared body of the player and enemies: a circle with health,
// a damage cooldown and a short movement trail for rendering.
type Agent struct {
	X, Y      float64
	Radius    float64
	Speed     float64
	Health    int
	MaxHealth int
	Alive     bool

	lastDamageTick int
	trail          [][2]float64
}

func newAgent(x, y, radius, speed float64, health int) Agent {
	return Agent{
		X:              x,
		Y:              y,
		Radius:         radius,
		Speed:          speed,
		Health:         health,
		MaxHealth:      health,
		Alive:          true,
		lastDamageTick: -damageCooldownTicks,
	}
}

// Damage applies amount to the agent unless its cooldown is still running.
// It returns whether the hit landed and whether it killed the agent.
func (a *Agent) Damage(amount, tick int) (applied, died bool) {
	if !a.Alive || tick-a.lastDamageTick < damageCooldownTicks {
		return false, false
	}
	a.lastDamageTick = tick
	a.Health -= amount
	if a.Health <= 0 {
		a.Health = 0
		a.Alive = false
		return true, true
	}
	return true, false
}

// Heal restores health up to the agent's maximum.
func (a *Agent) Heal(amount int) {
	a.Health += amount
	if a.Health > a.MaxHealth {
		a.Health = a.MaxHealth
	}
}

// move advances the agent per axis, cancelling each axis independently when
// it would clip an obstacle or another agent. Diagonal input is scaled so the
// step covers the same distance as an orthogonal one. Positions clamp to map
// bounds.
func (a *Agent) move(dx, dy float64, w *World, others []*Agent) {
	if !a.Alive || (dx == 0 && dy == 0) {
		return
	}
	if dx != 0 && dy != 0 {
		dx *= diagonalFactor
		dy *= diagonalFactor
	}

	tryAxis := func(nx, ny float64) bool {
		if nx-a.Radius < 0 || nx+a.Radius > float64(w.Width) ||
			ny-a.Radius < 0 || ny+a.Radius > float64(w.Height) {
			return false
		}
		for _, o := range w.Obstacles {
			if o.collidesCircle(nx, ny, a.Radius) {
				return false
			}
		}
		for _, other := range others {
			if other == a || !other.Alive {
				continue
			}
			if math.Hypot(nx-other.X, ny-other.Y) < a.Radius+other.Radius {
				return false
			}
		}
		return true
	}

	if tryAxis(a.X+dx, a.Y) {
		a.X += dx
	}
	if tryAxis(a.X, a.Y+dy) {
		a.Y += dy
	}

	a.trail = append(a.trail, [2]float64{a.X, a.Y})
	if len(a.trail) > trailLen {
		a.trail = a.trail[1:]
	}
}

// DistanceTo returns the center distance to another agent.
func (a *Agent) DistanceTo(b *Agent) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
