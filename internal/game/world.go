package game

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/Garsondee/Cyber-Pursuit/internal/pursuit"
)

// Scoring values.
const (
	scoreHit        = 10
	scoreKill       = 100
	scoreVictory    = 500
	scoreHitPenalty = 10 // deducted when the player is hit, if affordable
	penaltyFloor    = 50 // no deduction below this score

	defaultWidth      = 800
	defaultHeight     = 600
	defaultEnemies    = 4
	mapRefreshTicks   = 900 // 15s between layout refreshes
	maxExtraObstacles = 4
)

// PlayerInput is one tick of player intent, from the keyboard or a script.
type PlayerInput struct {
	DX, DY int // movement direction, each in {-1, 0, 1}
	Boost  bool
	Fire   bool
	FireX  float64
	FireY  float64
}

// World is the headless simulation core shared by the windowed game, the
// headless report tool and the tests.
type World struct {
	Width, Height int
	Mode          pursuit.Mode

	Player      *Player
	Enemies     []*Enemy
	Obstacles   []*Obstacle
	Pickups     []*Pickup
	Projectiles []*Projectile

	Tick    int
	Score   int
	Over    bool
	Victory bool

	SimLog *SimLog

	rng        *rand.Rand
	seed       int64
	enemyCount int

	mapGen          *MapGenerator
	refreshInterval int // 0 disables layout refreshes
	lastRefreshTick int
	refreshInFlight bool
	incomingLayout  chan []LayoutSpec

	obstacleSnap   []pursuit.Obstacle
	nextPickupTick int
}

// WorldOption configures a World during construction.
type WorldOption func(*World)

// WithMapSize sets the playfield dimensions.
func WithMapSize(w, h int) WorldOption {
	return func(wd *World) { wd.Width, wd.Height = w, h }
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) WorldOption {
	return func(wd *World) { wd.seed = seed }
}

// WithMode sets the pursuit strategy every enemy uses.
func WithMode(m pursuit.Mode) WorldOption {
	return func(wd *World) { wd.Mode = m }
}

// WithEnemyCount sets how many pursuers spawn.
func WithEnemyCount(n int) WorldOption {
	return func(wd *World) { wd.enemyCount = n }
}

// WithMapGenerator attaches a layout source for periodic map refreshes.
// interval <= 0 disables refreshing.
func WithMapGenerator(mg *MapGenerator, interval int) WorldOption {
	return func(wd *World) {
		wd.mapGen = mg
		wd.refreshInterval = interval
	}
}

// WithVerboseLog enables per-tick verbose logging.
func WithVerboseLog(v bool) WorldOption {
	return func(wd *World) { wd.SimLog = NewSimLog(v) }
}

// NewWorld builds and populates a world.
func NewWorld(opts ...WorldOption) *World {
	w := &World{
		Width:      defaultWidth,
		Height:     defaultHeight,
		Mode:       pursuit.ModeHybrid,
		SimLog:     NewSimLog(false),
		seed:       1,
		enemyCount: defaultEnemies,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.rng = rand.New(rand.NewSource(w.seed)) // #nosec G404 -- deterministic sim, not crypto
	w.incomingLayout = make(chan []LayoutSpec, 1)
	w.populate()
	return w
}

// Reset rebuilds the world from its seed for a fresh episode.
func (w *World) Reset() {
	w.rng = rand.New(rand.NewSource(w.seed)) // #nosec G404 -- deterministic sim, not crypto
	w.Tick = 0
	w.Score = 0
	w.Over = false
	w.Victory = false
	w.Pickups = nil
	w.Projectiles = nil
	w.lastRefreshTick = 0
	w.refreshInFlight = false
	// Discard any layout a previous episode's fetch already delivered.
	select {
	case <-w.incomingLayout:
	default:
	}
	w.SimLog = NewSimLog(w.SimLog != nil && w.SimLog.verbose)
	w.populate()
}

func (w *World) populate() {
	w.Obstacles = buildObstacles(w.rng, w.Width, w.Height)
	px, py := spawnPlayer(w.rng, w.Width, w.Height, w.Obstacles)
	w.Player = newPlayer(px, py)
	w.Enemies = spawnEnemies(w.rng, w.Width, w.Height, w.Obstacles, px, py, w.enemyCount, w.seed*31+7)
	w.snapObstacles()
	w.nextPickupTick = w.Tick + pickupIntervalMin + w.rng.Intn(pickupIntervalMax-pickupIntervalMin)
}

// snapObstacles rebuilds the engine-facing obstacle snapshot. Call after any
// change to w.Obstacles.
func (w *World) snapObstacles() {
	w.obstacleSnap = w.obstacleSnap[:0]
	for _, o := range w.Obstacles {
		w.obstacleSnap = append(w.obstacleSnap, o.Bounds())
	}
}

// AliveEnemies counts enemies still standing.
func (w *World) AliveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// NearestEnemy returns the closest living enemy to the player, or nil.
func (w *World) NearestEnemy() *Enemy {
	var best *Enemy
	bestD := math.Inf(1)
	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		if d := e.DistanceTo(&w.Player.Agent); d < bestD {
			best = e
			bestD = d
		}
	}
	return best
}

// Step advances the simulation one tick.
func (w *World) Step(input PlayerInput) {
	if w.Over {
		return
	}
	w.Tick++

	w.stepPlayer(input)
	w.stepProjectiles()
	w.stepEnemies()
	w.stepPickups()
	w.stepMapRefresh()

	if w.AliveEnemies() == 0 {
		w.Score += scoreVictory
		w.Victory = true
		w.Over = true
		w.SimLog.Add(w.Tick, "--", "outcome", "victory", "all pursuers down", float64(w.Score))
		return
	}
	if !w.Player.Alive {
		w.Over = true
		w.SimLog.Add(w.Tick, "--", "outcome", "defeat", "player down", float64(w.Score))
	}
}

func (w *World) stepPlayer(input PlayerInput) {
	p := w.Player
	if !p.Alive {
		return
	}

	mult := p.updateBoost(input.Boost && (input.DX != 0 || input.DY != 0))
	dx := float64(clampDir(input.DX)) * p.Speed * mult
	dy := float64(clampDir(input.DY)) * p.Speed * mult
	p.move(dx, dy, w, w.enemyAgents())
	w.SimLog.AddVerbose(w.Tick, "player", "move", "position", "", math.Hypot(p.X, p.Y))

	if input.Fire {
		if pr := p.fire(input.FireX, input.FireY, w.Tick); pr != nil {
			w.Projectiles = append(w.Projectiles, pr)
			w.SimLog.AddVerbose(w.Tick, "player", "combat", "shot", "", 0)
		}
	}
}

func (w *World) stepProjectiles() {
	active := w.Projectiles[:0]
	for _, pr := range w.Projectiles {
		pr.advance(w)
		if pr.Active {
			for _, e := range w.Enemies {
				if !pr.hits(&e.Agent) {
					continue
				}
				pr.Active = false
				applied, died := e.Damage(projectileDamage, w.Tick)
				if applied {
					w.Score += scoreHit
					w.SimLog.Add(w.Tick, e.Label, "combat", "projectile_hit", "", float64(e.Health))
				}
				if died {
					w.Score += scoreKill
					w.SimLog.Add(w.Tick, e.Label, "combat", "kill", "pursuer destroyed", float64(w.Score))
				}
				break
			}
		}
		if pr.Active {
			active = append(active, pr)
		}
	}
	w.Projectiles = active
}

func (w *World) stepEnemies() {
	target := pursuit.AgentSnapshot{X: w.Player.X, Y: w.Player.Y, Radius: w.Player.Radius}
	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		act := e.decide(target, w.obstacleSnap, w.Mode)
		dx, dy := act.Delta()
		e.move(float64(dx)*e.Speed, float64(dy)*e.Speed, w, w.allAgents(e))

		if w.Player.Alive && e.DistanceTo(&w.Player.Agent) < e.Radius+w.Player.Radius+2 {
			applied, died := w.Player.Damage(contactDamage, w.Tick)
			if applied {
				if w.Score >= penaltyFloor {
					w.Score -= scoreHitPenalty
				}
				w.SimLog.Add(w.Tick, e.Label, "combat", "contact_damage", "player hit", float64(w.Player.Health))
			}
			if died {
				w.SimLog.Add(w.Tick, e.Label, "combat", "capture", "player destroyed", 0)
			}
		}
	}
}

func (w *World) stepPickups() {
	kept := w.Pickups[:0]
	for _, pk := range w.Pickups {
		if !pk.Active || pk.expired(w.Tick) {
			continue
		}
		if w.Player.Alive && pk.touches(&w.Player.Agent) {
			w.Player.Heal(pickupHeal)
			w.SimLog.Add(w.Tick, "player", "pickup", "health", "", float64(w.Player.Health))
			continue
		}
		kept = append(kept, pk)
	}
	w.Pickups = kept

	if w.Tick >= w.nextPickupTick {
		if x, y, ok := freePosition(w.rng, w.Width, w.Height, pickupRadius, w.Obstacles, w.enemyAgents(), 40); ok {
			w.Pickups = append(w.Pickups, &Pickup{X: x, Y: y, Radius: pickupRadius, SpawnTick: w.Tick, Active: true})
			w.SimLog.AddVerbose(w.Tick, "--", "pickup", "spawn", "", 0)
		}
		w.nextPickupTick = w.Tick + pickupIntervalMin + w.rng.Intn(pickupIntervalMax-pickupIntervalMin)
	}
}

// stepMapRefresh swaps in a freshly generated layout when one is ready and
// kicks off the next fetch once the interval elapses. Fetches run in the
// background so a slow layout source never stalls the tick loop.
func (w *World) stepMapRefresh() {
	select {
	case specs := <-w.incomingLayout:
		w.applyLayout(specs)
		w.refreshInFlight = false
	default:
	}

	if w.refreshInterval <= 0 || w.mapGen == nil || w.refreshInFlight {
		return
	}
	if w.Tick-w.lastRefreshTick < w.refreshInterval {
		return
	}
	w.lastRefreshTick = w.Tick
	w.refreshInFlight = true

	mg := w.mapGen
	width, height := w.Width, w.Height
	out := w.incomingLayout
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 6*time.Second)
		defer cancel()
		specs, err := mg.Generate(ctx, width, height, maxExtraObstacles)
		if err != nil {
			// Local fallback; seeded from the clock since this path is
			// already non-deterministic.
			rng := rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404
			specs = RandomLayout(rng, width, height, maxExtraObstacles)
		}
		out <- specs
	}()
}

// applyLayout replaces the extra obstacles with the given specs, keeping the
// central block and dropping any rectangle that lands on an agent.
func (w *World) applyLayout(specs []LayoutSpec) {
	central := w.Obstacles[0]
	obstacles := []*Obstacle{central}
	for _, s := range specs {
		cand := &Obstacle{X: s.X, Y: s.Y, W: s.W, H: s.H, Style: randomStyle(w.rng)}
		if cand.collidesCircle(w.Player.X, w.Player.Y, w.Player.Radius+20) {
			continue
		}
		onEnemy := false
		for _, e := range w.Enemies {
			if e.Alive && cand.collidesCircle(e.X, e.Y, e.Radius+10) {
				onEnemy = true
				break
			}
		}
		if onEnemy || cand.overlapsRect(central.X, central.Y, central.W, central.H) {
			continue
		}
		obstacles = append(obstacles, cand)
	}
	w.Obstacles = obstacles
	w.snapObstacles()
	w.SimLog.Add(w.Tick, "--", "map", "refresh", "", float64(len(obstacles)))
}

func (w *World) enemyAgents() []*Agent {
	out := make([]*Agent, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		out = append(out, &e.Agent)
	}
	return out
}

// allAgents returns every other agent the given enemy can collide with.
func (w *World) allAgents(except *Enemy) []*Agent {
	out := make([]*Agent, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		if e != except {
			out = append(out, &e.Agent)
		}
	}
	return out
}

func clampDir(v int) int {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
