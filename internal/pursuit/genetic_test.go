package pursuit

import "testing"

func TestRandomRouteStaysInBounds(t *testing.T) {
	e := NewEngine(600, 400, 42)
	start := Cell{Row: 1, Col: 1}
	goal := Cell{Row: 24, Col: 38}
	for i := 0; i < 200; i++ {
		route := e.randomRoute(start, goal)
		if len(route) == 0 || route[0] != start {
			t.Fatalf("route %d does not begin at start: %v", i, route)
		}
		if len(route) > maxRouteSteps+1 {
			t.Fatalf("route %d has %d cells, cap is %d", i, len(route), maxRouteSteps+1)
		}
		for _, c := range route {
			if !e.inBounds(c) {
				t.Fatalf("route %d leaves the grid at %+v", i, c)
			}
		}
	}
}

func TestRouteFitnessOrdering(t *testing.T) {
	e := NewEngine(600, 400, 1)
	g := e.buildGrid(nil, inflationMargin)
	target := AgentSnapshot{X: 500, Y: 300}

	near := []Cell{{Row: 5, Col: 5}, {Row: 6, Col: 6}, e.cellAt(495, 295)}
	far := []Cell{{Row: 5, Col: 5}, {Row: 6, Col: 6}, {Row: 7, Col: 7}}
	if e.routeFitness(g, near, target) <= e.routeFitness(g, far, target) {
		t.Fatal("route ending near the target did not outscore a distant one")
	}
}

func TestRouteFitnessEmpty(t *testing.T) {
	e := NewEngine(600, 400, 1)
	g := e.buildGrid(nil, inflationMargin)
	if got := e.routeFitness(g, nil, AgentSnapshot{}); got != emptyRouteFitness {
		t.Fatalf("empty route fitness = %v, want %v", got, emptyRouteFitness)
	}
}

func TestRouteFitnessBlockedPenalty(t *testing.T) {
	e := NewEngine(600, 400, 1)
	occupied := e.buildGrid([]Obstacle{{X: 100, Y: 100, W: 40, H: 40}}, inflationMargin)
	open := e.buildGrid(nil, inflationMargin)
	target := AgentSnapshot{X: 120, Y: 120}

	// Route ending inside the inflated obstacle: same route scored on the
	// open grid differs by exactly one blocked-cell penalty.
	route := []Cell{{Row: 2, Col: 2}, {Row: 3, Col: 3}, e.cellAt(120, 120)}
	fOccupied := e.routeFitness(occupied, route, target)
	fOpen := e.routeFitness(open, route, target)
	if fOpen-fOccupied != blockedCellPenalty {
		t.Fatalf("blocked penalty = %v, want %v", fOpen-fOccupied, blockedCellPenalty)
	}
}

func TestRouteFitnessZigZagPenalty(t *testing.T) {
	e := NewEngine(600, 400, 1)
	g := e.buildGrid(nil, inflationMargin)
	target := AgentSnapshot{X: 7, Y: 7}

	straight := []Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}}
	zigzag := []Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 3}}
	fs := e.routeFitness(g, straight, target)
	fz := e.routeFitness(g, zigzag, target)
	if fz >= fs {
		t.Fatalf("zig-zag route not penalized: straight=%v zigzag=%v", fs, fz)
	}
}

func TestCrossoverHandlesShortParents(t *testing.T) {
	e := NewEngine(600, 400, 7)
	one := routeIndividual{path: []Cell{{Row: 1, Col: 1}}}
	long := routeIndividual{path: []Cell{{Row: 2, Col: 2}, {Row: 3, Col: 3}, {Row: 4, Col: 4}}}
	for i := 0; i < 50; i++ {
		child := e.crossover(one, long)
		if len(child.path) == 0 {
			t.Fatal("crossover of non-empty parents produced empty child")
		}
		if child.fitness != 0 {
			t.Fatalf("child fitness = %v, want 0", child.fitness)
		}
	}
	if got := e.crossover(routeIndividual{}, long); len(got.path) != 0 {
		t.Fatalf("empty parent should produce empty child, got %v", got.path)
	}
}

func TestMutationKeepsRoutesInBounds(t *testing.T) {
	e := NewEngine(600, 400, 99)
	e.seedPopulation(Cell{Row: 0, Col: 0}, Cell{Row: 25, Col: 39})
	for i := 0; i < 100; i++ {
		e.mutatePopulation()
	}
	for i, ind := range e.population {
		for _, c := range ind.path {
			if !e.inBounds(c) {
				t.Fatalf("individual %d mutated off-grid to %+v", i, c)
			}
		}
	}
}

func TestBreedPreservesPopulationSize(t *testing.T) {
	e := NewEngine(600, 400, 3)
	e.seedPopulation(Cell{Row: 1, Col: 1}, Cell{Row: 20, Col: 30})
	g := e.buildGrid(nil, inflationMargin)
	for i := 0; i < 5; i++ {
		e.evaluatePopulation(g, AgentSnapshot{X: 450, Y: 300})
		e.breed()
		e.mutatePopulation()
		if len(e.population) != populationSize {
			t.Fatalf("generation %d: population size %d, want %d",
				i, len(e.population), populationSize)
		}
	}
}

func TestRunGeneticFirstStepAdjacent(t *testing.T) {
	e := NewEngine(600, 400, 5)
	pursuer := AgentSnapshot{X: 50, Y: 50}
	target := AgentSnapshot{X: 550, Y: 350}
	got := e.runGenetic(pursuer, target, nil, hybridFarGenerations)
	dx, dy := got.Delta()
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
		t.Fatalf("genetic step delta (%d,%d) outside unit range", dx, dy)
	}
	if len(e.population) != populationSize {
		t.Fatalf("population not persisted: len=%d", len(e.population))
	}
}

func TestRouteActionFirstStep(t *testing.T) {
	e := NewEngine(600, 400, 1)
	start := Cell{Row: 5, Col: 5}
	cases := []struct {
		next Cell
		want Action
	}{
		{Cell{Row: 5, Col: 6}, ActionRight},
		{Cell{Row: 4, Col: 5}, ActionUp},
		{Cell{Row: 6, Col: 4}, ActionDownLeft},
	}
	for _, c := range cases {
		got := e.routeAction([]Cell{start, c.next}, start)
		if got != c.want {
			t.Fatalf("next %+v: got %s, want %s", c.next, got, c.want)
		}
	}
	if got := e.routeAction([]Cell{start}, start); got != ActionHold {
		t.Fatalf("single-cell route: got %s, want hold", got)
	}
	if got := e.routeAction(nil, start); got != ActionHold {
		t.Fatalf("nil route: got %s, want hold", got)
	}
}
