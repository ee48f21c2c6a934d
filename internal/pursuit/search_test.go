package pursuit

import (
	"math"
	"testing"
)

// assertValidRoute checks endpoint, adjacency and walkability of a route.
func assertValidRoute(t *testing.T, g *Grid, route []Cell, start, goal Cell) {
	t.Helper()
	if len(route) == 0 {
		t.Fatal("empty route")
	}
	if route[0] != start || route[len(route)-1] != goal {
		t.Fatalf("route runs %+v..%+v, want %+v..%+v",
			route[0], route[len(route)-1], start, goal)
	}
	for i, c := range route {
		if g.Blocked(c) {
			t.Fatalf("route step %d crosses blocked cell %+v", i, c)
		}
		if i == 0 {
			continue
		}
		dr := c.Row - route[i-1].Row
		dc := c.Col - route[i-1].Col
		if dr < -1 || dr > 1 || dc < -1 || dc > 1 || (dr == 0 && dc == 0) {
			t.Fatalf("route step %d jumps from %+v to %+v", i, route[i-1], c)
		}
	}
}

func TestFindPathAroundWall(t *testing.T) {
	e := NewEngine(600, 400, 1)
	// Vertical wall with the top row left open.
	obs := []Obstacle{{X: 290, Y: 60, W: 20, H: 340}}
	g := e.buildGrid(obs, inflationMargin)

	start := e.cellAt(100, 200)
	goal := e.cellAt(500, 200)
	route := e.findPath(g, start, goal)
	assertValidRoute(t, g, route, start, goal)
}

func TestFindPathUnreachable(t *testing.T) {
	e := NewEngine(600, 400, 1)
	// Box completely enclosing the goal region.
	obs := []Obstacle{
		{X: 300, Y: 100, W: 150, H: 15},
		{X: 300, Y: 250, W: 150, H: 15},
		{X: 300, Y: 100, W: 15, H: 165},
		{X: 435, Y: 100, W: 15, H: 165},
	}
	g := e.buildGrid(obs, inflationMargin)
	route := e.findPath(g, e.cellAt(50, 50), e.cellAt(370, 180))
	if route != nil {
		t.Fatalf("found route into sealed region: %v", route)
	}
}

func TestFindPathTrivial(t *testing.T) {
	e := NewEngine(600, 400, 1)
	g := e.buildGrid(nil, inflationMargin)
	c := e.cellAt(100, 100)
	route := e.findPath(g, c, c)
	if len(route) != 1 || route[0] != c {
		t.Fatalf("start==goal route = %v, want single cell", route)
	}
}

func TestFindPathOpenFieldIsNearStraight(t *testing.T) {
	e := NewEngine(600, 400, 1)
	g := e.buildGrid(nil, inflationMargin)
	start := Cell{Row: 5, Col: 5}
	goal := Cell{Row: 5, Col: 25}
	route := e.findPath(g, start, goal)
	assertValidRoute(t, g, route, start, goal)
	if len(route) != 21 {
		t.Fatalf("straight-line route has %d cells, want 21", len(route))
	}
}

func TestSearchHeuristicBlend(t *testing.T) {
	a := Cell{Row: 0, Col: 0}
	goal := Cell{Row: 3, Col: 4}
	want := 0.7*5 + 0.3*7
	if got := searchHeuristic(a, goal); math.Abs(got-want) > 1e-9 {
		t.Fatalf("heuristic = %v, want %v", got, want)
	}
}
