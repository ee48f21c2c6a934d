package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestBuildObstaclesLayout(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- test
		obstacles := buildObstacles(rng, defaultWidth, defaultHeight)

		if len(obstacles) < 1 {
			t.Fatalf("seed %d: no obstacles", seed)
		}
		c := obstacles[0]
		if c.W != centralObstacleW || c.H != centralObstacleH {
			t.Fatalf("seed %d: central block is %vx%v", seed, c.W, c.H)
		}
		if c.CenterX() != defaultWidth/2 || c.CenterY() != defaultHeight/2 {
			t.Fatalf("seed %d: central block off-center at (%v,%v)", seed, c.CenterX(), c.CenterY())
		}
		for i, o := range obstacles {
			if o.X < 0 || o.Y < 0 || o.X+o.W > defaultWidth || o.Y+o.H > defaultHeight {
				t.Fatalf("seed %d: obstacle %d out of bounds: %+v", seed, i, o)
			}
			for j := i + 1; j < len(obstacles); j++ {
				if o.overlapsRect(obstacles[j].X, obstacles[j].Y, obstacles[j].W, obstacles[j].H) {
					t.Fatalf("seed %d: obstacles %d and %d overlap", seed, i, j)
				}
			}
		}
	}
}

func TestSpawnConstraints(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- test
		obstacles := buildObstacles(rng, defaultWidth, defaultHeight)
		px, py := spawnPlayer(rng, defaultWidth, defaultHeight, obstacles)

		if !positionClear(px, py, playerRadius, obstacles) {
			t.Fatalf("seed %d: player spawned inside an obstacle", seed)
		}

		enemies := spawnEnemies(rng, defaultWidth, defaultHeight, obstacles, px, py, defaultEnemies, seed)
		if len(enemies) != defaultEnemies {
			t.Fatalf("seed %d: spawned %d enemies", seed, len(enemies))
		}
		for i, e := range enemies {
			if d := math.Hypot(e.X-px, e.Y-py); d < minEnemyPlayerDist {
				t.Fatalf("seed %d: enemy %d only %.0fpx from player", seed, i, d)
			}
			for j := i + 1; j < len(enemies); j++ {
				if d := math.Hypot(e.X-enemies[j].X, e.Y-enemies[j].Y); d < minEnemySpacing {
					t.Fatalf("seed %d: enemies %d and %d only %.0fpx apart", seed, i, j, d)
				}
			}
		}
	}
}

func TestFreePositionAvoidsEverything(t *testing.T) {
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- test
	obstacles := buildObstacles(rng, defaultWidth, defaultHeight)
	guard := newAgent(400, 300, 20, 0, 10)

	for i := 0; i < 50; i++ {
		x, y, ok := freePosition(rng, defaultWidth, defaultHeight, pickupRadius, obstacles, []*Agent{&guard}, 60)
		if !ok {
			t.Fatalf("attempt %d: no free position on a sparse map", i)
		}
		if !positionClear(x, y, pickupRadius, obstacles) {
			t.Fatalf("attempt %d: position (%v,%v) touches an obstacle", i, x, y)
		}
		if math.Hypot(x-guard.X, y-guard.Y) < 60 {
			t.Fatalf("attempt %d: position too close to guarded agent", i)
		}
	}
}
