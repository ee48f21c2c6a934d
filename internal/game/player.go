package game

import "math"

// Player is the evading agent under user (or script) control.
type Player struct {
	Agent

	BoostEnergy float64
	boostLocked bool
	lastShot    int
}

func newPlayer(x, y float64) *Player {
	return &Player{
		Agent:       newAgent(x, y, playerRadius, playerSpeed, playerMaxHealth),
		BoostEnergy: boostMax,
		lastShot:    -fireCooldownTicks,
	}
}

// Boosting reports whether boost is requested, charged and unlocked.
func (p *Player) boosting(want bool) bool {
	return want && !p.boostLocked && p.BoostEnergy > 0
}

// updateBoost drains or regenerates boost energy for one tick and returns the
// speed multiplier to apply.
func (p *Player) updateBoost(want bool) float64 {
	if p.boosting(want) {
		p.BoostEnergy -= boostDrain
		if p.BoostEnergy <= 0 {
			p.BoostEnergy = 0
			p.boostLocked = true
		}
		return boostMultiplier
	}
	p.BoostEnergy = math.Min(boostMax, p.BoostEnergy+boostRegen)
	if p.boostLocked && p.BoostEnergy >= boostUnlockAt {
		p.boostLocked = false
	}
	return 1.0
}

// fire spawns a projectile toward (tx, ty) if the shot cooldown has elapsed.
func (p *Player) fire(tx, ty float64, tick int) *Projectile {
	if !p.Alive || tick-p.lastShot < fireCooldownTicks {
		return nil
	}
	dx := tx - p.X
	dy := ty - p.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return nil
	}
	p.lastShot = tick
	return newProjectile(p.X, p.Y, dx/d, dy/d)
}
