package pursuit

import (
	"math"
	"sort"
)

// routeIndividual is one candidate cell route plus its last evaluated fitness.
type routeIndividual struct {
	path    []Cell
	fitness float64
}

// runGenetic evolves the persistent route population for the given number of
// generations and returns the first step of the fittest route. The population
// carries over between calls so long-range plans refine tick after tick.
func (e *Engine) runGenetic(pursuer, target AgentSnapshot, obstacles []Obstacle, generations int) Action {
	start := e.cellAt(pursuer.X, pursuer.Y)
	goal := e.cellAt(target.X, target.Y)

	if len(e.population) == 0 {
		e.seedPopulation(start, goal)
	}

	grid := e.buildGrid(obstacles, inflationMargin)
	for i := 0; i < generations; i++ {
		e.evaluatePopulation(grid, target)
		e.breed()
		e.mutatePopulation()
	}

	best := e.population[0]
	for _, ind := range e.population[1:] {
		if ind.fitness > best.fitness {
			best = ind
		}
	}
	return e.routeAction(best.path, start)
}

// seedPopulation fills the population with biased random walks from start
// toward goal.
func (e *Engine) seedPopulation(start, goal Cell) {
	e.population = make([]routeIndividual, populationSize)
	for i := range e.population {
		e.population[i] = routeIndividual{path: e.randomRoute(start, goal)}
	}
}

// randomRoute walks from start toward goal, stepping toward the goal with
// probability goalBias and randomly otherwise. Off-grid steps are skipped
// rather than clamped, so routes stay in bounds by construction.
func (e *Engine) randomRoute(start, goal Cell) []Cell {
	route := []Cell{start}
	cur := start
	for i := 0; i < maxRouteSteps; i++ {
		if cur == goal {
			break
		}
		var dr, dc int
		if e.rng.Float64() < goalBias {
			dr = sign(goal.Row - cur.Row)
			dc = sign(goal.Col - cur.Col)
		} else {
			dr = e.rng.Intn(3) - 1
			dc = e.rng.Intn(3) - 1
		}
		next := Cell{Row: cur.Row + dr, Col: cur.Col + dc}
		if e.inBounds(next) {
			route = append(route, next)
			cur = next
		}
	}
	return route
}

// evaluatePopulation scores every individual against the current grid and
// target position.
func (e *Engine) evaluatePopulation(grid *Grid, target AgentSnapshot) {
	for i := range e.population {
		e.population[i].fitness = e.routeFitness(grid, e.population[i].path, target)
	}
}

// routeFitness rewards routes that end close to the target and penalizes
// length, blocked cells and zig-zagging.
func (e *Engine) routeFitness(grid *Grid, path []Cell, target AgentSnapshot) float64 {
	if len(path) == 0 {
		return emptyRouteFitness
	}

	fitness := -2.0 * float64(len(path))

	fx, fy := e.cellCenter(path[len(path)-1])
	dist := math.Hypot(fx-target.X, fy-target.Y)
	fitness += math.Max(0, proximityReward-dist)

	for _, c := range path {
		if e.inBounds(c) && grid.Blocked(c) {
			fitness -= blockedCellPenalty
		}
	}

	if len(path) > 2 {
		changes := 0
		for i := 1; i < len(path)-1; i++ {
			d1r, d1c := path[i].Row-path[i-1].Row, path[i].Col-path[i-1].Col
			d2r, d2c := path[i+1].Row-path[i].Row, path[i+1].Col-path[i].Col
			if d1r != d2r || d1c != d2c {
				changes++
			}
		}
		fitness -= directionChangePenalty * float64(changes)
	}
	return fitness
}

// breed replaces the population with the elite survivors plus children bred
// by tournament selection and single-point crossover. Children start with
// fitness zero; the next evaluation pass rescores everyone.
func (e *Engine) breed() {
	sort.SliceStable(e.population, func(i, j int) bool {
		return e.population[i].fitness > e.population[j].fitness
	})

	next := make([]routeIndividual, 0, populationSize)
	for i := 0; i < eliteCount && i < len(e.population); i++ {
		next = append(next, e.population[i])
	}
	for len(next) < populationSize {
		next = append(next, e.crossover(e.tournamentPick(), e.tournamentPick()))
	}
	e.population = next
}

// tournamentPick samples tournamentSize distinct individuals and returns the
// fittest.
func (e *Engine) tournamentPick() routeIndividual {
	best := -1
	for _, idx := range e.rng.Perm(len(e.population))[:tournamentSize] {
		if best == -1 || e.population[idx].fitness > e.population[best].fitness {
			best = idx
		}
	}
	return e.population[best]
}

// crossover splices two parent routes at a random cut point. An empty parent
// produces an empty child, which the fitness function then buries.
func (e *Engine) crossover(a, b routeIndividual) routeIndividual {
	if len(a.path) == 0 || len(b.path) == 0 {
		return routeIndividual{}
	}
	shorter := len(a.path)
	if len(b.path) < shorter {
		shorter = len(b.path)
	}
	cut := 1
	if shorter > 2 {
		cut = 1 + e.rng.Intn(shorter-1)
	}
	child := make([]Cell, 0, cut+len(b.path))
	child = append(child, a.path[:cut]...)
	if cut < len(b.path) {
		child = append(child, b.path[cut:]...)
	}
	return routeIndividual{path: child}
}

// mutatePopulation nudges a random cell of some individuals by one step in a
// random direction, keeping the result in bounds.
func (e *Engine) mutatePopulation() {
	for i := range e.population {
		path := e.population[i].path
		if len(path) == 0 || e.rng.Float64() >= mutationRate {
			continue
		}
		idx := e.rng.Intn(len(path))
		next := Cell{
			Row: path[idx].Row + e.rng.Intn(3) - 1,
			Col: path[idx].Col + e.rng.Intn(3) - 1,
		}
		if e.inBounds(next) {
			path[idx] = next
		}
	}
}

// routeAction converts the first hop of a cell route into a movement action.
// Routes too short to contain a hop yield hold.
func (e *Engine) routeAction(path []Cell, start Cell) Action {
	if len(path) < 2 {
		return ActionHold
	}
	next := path[1]
	return actionFromDelta(sign(next.Col-start.Col), sign(next.Row-start.Row))
}
