package pursuit

import (
	"math"
	"math/rand"
	"strings"
)

// Tuning constants for the decision engine. Distances are in world pixels.
const (
	// DefaultCellSize is the navigation grid resolution.
	DefaultCellSize = 15

	// FarThreshold and MidThreshold bound the hybrid strategy bands:
	// beyond FarThreshold routes are evolved genetically, between the two
	// the predictive search runs, and inside MidThreshold the field
	// steering takes over when the line of sight is clear.
	FarThreshold = 300.0
	MidThreshold = 200.0

	// NearThreshold marks close-quarters range. The engine itself does not
	// branch on it; callers use it for proximity alerts.
	NearThreshold = 80.0

	inflationMargin = 15.0
	turnPenalty     = 0.1

	historyCap     = 10
	lookaheadSteps = 3

	attractionMagnitude = 10.0
	repulsionRadius     = 25.0
	repulsionFactor     = 500.0
	forceDeadZone       = 0.1
	axisThreshold       = 0.5

	populationSize         = 20
	eliteCount             = 5
	tournamentSize         = 3
	mutationRate           = 0.1
	goalBias               = 0.7
	maxRouteSteps          = 15
	proximityReward        = 200.0
	blockedCellPenalty     = 50.0
	directionChangePenalty = 5.0
	emptyRouteFitness      = -1000.0

	hybridFarGenerations = 3
	soloGenerations      = 5
)

// Mode selects the pursuit strategy.
type Mode int

const (
	ModeHybrid Mode = iota
	ModePredictive
	ModePotentialField
	ModeGenetic
)

var modeNames = map[Mode]string{
	ModeHybrid:         "hybrid",
	ModePredictive:     "predictive",
	ModePotentialField: "potential-field",
	ModeGenetic:        "genetic",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "predictive"
}

// ParseMode maps a mode name to its Mode. Unrecognized names fall back to
// the predictive strategy.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hybrid":
		return ModeHybrid
	case "potential-field", "potential":
		return ModePotentialField
	case "genetic":
		return ModeGenetic
	default:
		return ModePredictive
	}
}

// AgentSnapshot is a read-only view of an agent's position for one decision.
type AgentSnapshot struct {
	X, Y   float64
	Radius float64
}

// Engine computes per-tick movement decisions for a single pursuer. It keeps
// the target's motion history and the genetic route population between calls,
// so each pursuer needs its own instance; an Engine is not safe for
// concurrent use.
type Engine struct {
	mapW, mapH int
	cellSize   int
	rows, cols int

	history    *MotionHistory
	population []routeIndividual
	rng        *rand.Rand
}

// EngineOption configures an Engine during construction.
type EngineOption func(*Engine)

// WithCellSize overrides the navigation grid resolution. Values below 1 are
// ignored.
func WithCellSize(px int) EngineOption {
	return func(e *Engine) {
		if px >= 1 {
			e.cellSize = px
		}
	}
}

// NewEngine returns an engine for a map of the given pixel dimensions.
func NewEngine(mapW, mapH int, seed int64, opts ...EngineOption) *Engine {
	e := &Engine{
		mapW:     mapW,
		mapH:     mapH,
		cellSize: DefaultCellSize,
		history:  NewMotionHistory(historyCap),
		rng:      rand.New(rand.NewSource(seed)), // #nosec G404 -- deterministic sim, not crypto
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rows = mapH / e.cellSize
	e.cols = mapW / e.cellSize
	return e
}

// Reset clears the accumulated target history and route population, e.g. at
// the start of a new episode.
func (e *Engine) Reset() {
	e.history.Reset()
	e.population = nil
}

// ComputeAction records the target's current position and returns the next
// movement action under the given mode. The obstacle slice is treated as a
// read-only snapshot valid for this call.
func (e *Engine) ComputeAction(pursuer, target AgentSnapshot, obstacles []Obstacle, mode Mode) Action {
	e.history.Record(Position{X: target.X, Y: target.Y})

	switch mode {
	case ModeHybrid:
		return e.hybridAction(pursuer, target, obstacles)
	case ModePotentialField:
		return e.potentialAction(pursuer, target, obstacles)
	case ModeGenetic:
		return e.runGenetic(pursuer, target, obstacles, soloGenerations)
	default:
		return e.predictiveAction(pursuer, target, obstacles)
	}
}

// hybridAction dispatches by target distance: genetic planning when far,
// predictive search at mid range, and field steering up close unless an
// obstacle blocks the line of sight.
func (e *Engine) hybridAction(pursuer, target AgentSnapshot, obstacles []Obstacle) Action {
	dist := math.Hypot(target.X-pursuer.X, target.Y-pursuer.Y)
	switch {
	case dist > FarThreshold:
		return e.runGenetic(pursuer, target, obstacles, hybridFarGenerations)
	case dist > MidThreshold:
		return e.predictiveAction(pursuer, target, obstacles)
	default:
		if e.lineOfSightBlocked(pursuer, target, obstacles) {
			return e.predictiveAction(pursuer, target, obstacles)
		}
		return e.potentialAction(pursuer, target, obstacles)
	}
}

// predictiveAction searches toward the predicted target position, falling
// back to the actual position when no usable route comes back.
func (e *Engine) predictiveAction(pursuer, target AgentSnapshot, obstacles []Obstacle) Action {
	predicted := e.predictTarget()

	start := e.cellAt(pursuer.X, pursuer.Y)
	goalPredicted := e.cellAt(predicted.X, predicted.Y)
	goalActual := e.cellAt(target.X, target.Y)
	if start == goalPredicted && start == goalActual {
		return ActionHold
	}

	grid := e.buildGrid(obstacles, inflationMargin)
	path := e.findPath(grid, start, goalPredicted)
	if len(path) < 2 {
		path = e.findPath(grid, start, goalActual)
	}
	return e.routeAction(path, start)
}

// predictTarget extrapolates the target's position three steps ahead using a
// recency-weighted average of recent velocities, clamped to the map bounds.
// With fewer than three samples it returns the last known position.
func (e *Engine) predictTarget() Position {
	last, ok := e.history.Last()
	if !ok {
		return Position{}
	}
	if e.history.Len() < 3 {
		return last
	}

	var vx, vy, wsum float64
	for i := 0; i < e.history.Len()-1; i++ {
		w := float64(i + 1) // newer samples weigh more
		a := e.history.At(i)
		b := e.history.At(i + 1)
		vx += (b.X - a.X) * w
		vy += (b.Y - a.Y) * w
		wsum += w
	}
	vx /= wsum
	vy /= wsum

	t := float64(lookaheadSteps)
	return Position{
		X: clamp(last.X+vx*t, 0, float64(e.mapW)),
		Y: clamp(last.Y+vy*t, 0, float64(e.mapH)),
	}
}

// lineOfSightBlocked samples the segment between the two agents once per grid
// cell length and reports whether any sample falls inside an obstacle.
// Segments shorter than one cell are always clear.
func (e *Engine) lineOfSightBlocked(pursuer, target AgentSnapshot, obstacles []Obstacle) bool {
	dx := target.X - pursuer.X
	dy := target.Y - pursuer.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) / e.cellSize
	if steps == 0 {
		return false
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := pursuer.X + dx*t
		py := pursuer.Y + dy*t
		for _, o := range obstacles {
			if o.contains(px, py) {
				return true
			}
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
