package pursuit

// Obstacle is an axis-aligned rectangle in world pixel coordinates.
type Obstacle struct {
	X, Y, W, H float64
}

// contains reports whether (px, py) lies inside the rectangle. Edges follow
// half-open semantics: the left/top edges are inside, right/bottom are not.
func (o Obstacle) contains(px, py float64) bool {
	return px >= o.X && px < o.X+o.W && py >= o.Y && py < o.Y+o.H
}

// Cell is a (row, col) pair on the navigation grid.
type Cell struct {
	Row, Col int
}

// Grid is a binary occupancy grid where true = blocked.
type Grid struct {
	rows, cols int
	blocked    []bool
}

func newGrid(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, blocked: make([]bool, rows*cols)}
}

// Blocked reports whether the cell is occupied. Out-of-bounds cells count
// as blocked.
func (g *Grid) Blocked(c Cell) bool {
	if c.Row < 0 || c.Col < 0 || c.Row >= g.rows || c.Col >= g.cols {
		return true
	}
	return g.blocked[c.Row*g.cols+c.Col]
}

func (g *Grid) set(c Cell) {
	g.blocked[c.Row*g.cols+c.Col] = true
}

// buildGrid rasterizes the obstacle set into a fresh occupancy grid. A cell
// is blocked when its world-space center falls inside an obstacle rectangle
// inflated by margin on every side.
func (e *Engine) buildGrid(obstacles []Obstacle, margin float64) *Grid {
	g := newGrid(e.rows, e.cols)
	for _, o := range obstacles {
		inflated := Obstacle{
			X: o.X - margin,
			Y: o.Y - margin,
			W: o.W + 2*margin,
			H: o.H + 2*margin,
		}
		for r := 0; r < e.rows; r++ {
			cy := float64(r*e.cellSize + e.cellSize/2)
			if cy < inflated.Y || cy >= inflated.Y+inflated.H {
				continue
			}
			for c := 0; c < e.cols; c++ {
				cx := float64(c*e.cellSize + e.cellSize/2)
				if inflated.contains(cx, cy) {
					g.set(Cell{Row: r, Col: c})
				}
			}
		}
	}
	return g
}

// cellAt converts world pixel coordinates to the containing grid cell.
func (e *Engine) cellAt(x, y float64) Cell {
	return Cell{Row: int(y) / e.cellSize, Col: int(x) / e.cellSize}
}

// cellCenter converts a grid cell to its world pixel center.
func (e *Engine) cellCenter(c Cell) (float64, float64) {
	return float64(c.Col*e.cellSize + e.cellSize/2), float64(c.Row*e.cellSize + e.cellSize/2)
}

func (e *Engine) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < e.rows && c.Col < e.cols
}
