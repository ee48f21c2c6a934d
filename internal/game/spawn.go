package game

import (
	"math"
	"math/rand"
)

const (
	centralObstacleW = 80.0
	centralObstacleH = 120.0

	minEnemyPlayerDist = 150.0 // enemies never spawn on top of the player
	minEnemySpacing    = 80.0
	spawnAttempts      = 200
)

// buildObstacles lays out the central block plus 2-4 random extras that must
// not overlap each other or the central block.
func buildObstacles(rng *rand.Rand, width, height int) []*Obstacle {
	central := &Obstacle{
		X:     float64(width)/2 - centralObstacleW/2,
		Y:     float64(height)/2 - centralObstacleH/2,
		W:     centralObstacleW,
		H:     centralObstacleH,
		Style: StyleTech,
	}
	obstacles := []*Obstacle{central}

	extra := 2 + rng.Intn(3)
	for _, s := range RandomLayout(rng, width, height, extra) {
		cand := &Obstacle{X: s.X, Y: s.Y, W: s.W, H: s.H, Style: randomStyle(rng)}
		clear := true
		for _, o := range obstacles {
			if o.overlapsRect(cand.X-20, cand.Y-20, cand.W+40, cand.H+40) {
				clear = false
				break
			}
		}
		if clear {
			obstacles = append(obstacles, cand)
		}
	}
	return obstacles
}

func randomStyle(rng *rand.Rand) ObstacleStyle {
	return ObstacleStyle(rng.Intn(3))
}

// spawnPlayer picks a player start clear of every obstacle.
func spawnPlayer(rng *rand.Rand, width, height int, obstacles []*Obstacle) (float64, float64) {
	for i := 0; i < spawnAttempts; i++ {
		x := 50 + rng.Float64()*(float64(width)-100)
		y := 50 + rng.Float64()*(float64(height)-100)
		if positionClear(x, y, playerRadius+10, obstacles) {
			return x, y
		}
	}
	return 60, float64(height) - 60
}

// spawnEnemies places count enemies away from the player and from each other.
func spawnEnemies(rng *rand.Rand, width, height int, obstacles []*Obstacle, px, py float64, count int, seedBase int64) []*Enemy {
	enemies := make([]*Enemy, 0, count)
	for i := 0; i < count; i++ {
		var x, y float64
		placed := false
		for try := 0; try < spawnAttempts; try++ {
			x = 40 + rng.Float64()*(float64(width)-80)
			y = 40 + rng.Float64()*(float64(height)-80)
			if math.Hypot(x-px, y-py) < minEnemyPlayerDist {
				continue
			}
			if !positionClear(x, y, enemyRadius+5, obstacles) {
				continue
			}
			tooClose := false
			for _, other := range enemies {
				if math.Hypot(x-other.X, y-other.Y) < minEnemySpacing {
					tooClose = true
					break
				}
			}
			if !tooClose {
				placed = true
				break
			}
		}
		if !placed {
			// Fall back to a corner sweep; constraints best-effort.
			corners := [4][2]float64{
				{40, 40}, {float64(width) - 40, 40},
				{40, float64(height) - 40}, {float64(width) - 40, float64(height) - 40},
			}
			x, y = corners[i%4][0], corners[i%4][1]
		}
		enemies = append(enemies, newEnemy(i, x, y, width, height, seedBase+int64(i)))
	}
	return enemies
}

// positionClear reports whether a circle fits without touching any obstacle.
func positionClear(x, y, r float64, obstacles []*Obstacle) bool {
	for _, o := range obstacles {
		if o.collidesCircle(x, y, r) {
			return false
		}
	}
	return true
}

// freePosition finds a spot clear of obstacles and agents for pickups, or
// false after too many tries on a crowded map.
func freePosition(rng *rand.Rand, width, height int, r float64, obstacles []*Obstacle, avoid []*Agent, avoidDist float64) (float64, float64, bool) {
	for i := 0; i < spawnAttempts; i++ {
		x := 30 + rng.Float64()*(float64(width)-60)
		y := 30 + rng.Float64()*(float64(height)-60)
		if !positionClear(x, y, r, obstacles) {
			continue
		}
		ok := true
		for _, a := range avoid {
			if a.Alive && math.Hypot(x-a.X, y-a.Y) < avoidDist {
				ok = false
				break
			}
		}
		if ok {
			return x, y, true
		}
	}
	return 0, 0, false
}
