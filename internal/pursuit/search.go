package pursuit

import (
	"container/heap"
	"math"
)

type searchNode struct {
	cell   Cell
	g, h   float64
	parent *searchNode
	index  int // heap index
}

type frontier []*searchNode

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return (f[i].g + f[i].h) < (f[j].g + f[j].h) }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i]; f[i].index = i; f[j].index = j }
func (f *frontier) Push(x interface{}) {
	n := x.(*searchNode)
	n.index = len(*f)
	*f = append(*f, n)
}
func (f *frontier) Pop() interface{} {
	old := *f
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*f = old[:len(old)-1]
	return n
}

// searchHeuristic blends Euclidean and Manhattan distance. The Euclidean
// component favors straighter routes; the Manhattan share keeps the estimate
// cheap to beat near obstacles.
func searchHeuristic(a, goal Cell) float64 {
	dr := math.Abs(float64(goal.Row - a.Row))
	dc := math.Abs(float64(goal.Col - a.Col))
	return 0.7*math.Hypot(dr, dc) + 0.3*(dr+dc)
}

// findPath runs best-first search over the grid and returns the cell route
// from start to goal inclusive, or nil when the goal is unreachable.
// Diagonal steps cost sqrt(2) and heading changes add a small turn penalty,
// which biases results toward smooth runs.
func (e *Engine) findPath(grid *Grid, start, goal Cell) []Cell {
	if start == goal {
		return []Cell{start}
	}

	startNode := &searchNode{cell: start, h: searchHeuristic(start, goal)}
	fr := &frontier{startNode}
	heap.Init(fr)

	costSoFar := map[Cell]float64{start: 0}

	for fr.Len() > 0 {
		cur := heap.Pop(fr).(*searchNode)
		if cur.cell == goal {
			return buildRoute(cur)
		}
		// Stale entry superseded by a cheaper relaxation.
		if cur.g > costSoFar[cur.cell] {
			continue
		}

		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				next := Cell{Row: cur.cell.Row + dr, Col: cur.cell.Col + dc}
				if grid.Blocked(next) {
					continue
				}
				cost := 1.0
				if dr != 0 && dc != 0 {
					cost = math.Sqrt2
				}
				if cur.parent != nil {
					pdr := cur.cell.Row - cur.parent.cell.Row
					pdc := cur.cell.Col - cur.parent.cell.Col
					if pdr != dr || pdc != dc {
						cost += turnPenalty
					}
				}
				g := cur.g + cost
				if prev, ok := costSoFar[next]; ok && g >= prev {
					continue
				}
				costSoFar[next] = g
				heap.Push(fr, &searchNode{
					cell:   next,
					g:      g,
					h:      searchHeuristic(next, goal),
					parent: cur,
				})
			}
		}
	}
	return nil
}

func buildRoute(end *searchNode) []Cell {
	var route []Cell
	for n := end; n != nil; n = n.parent {
		route = append(route, n.cell)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}
