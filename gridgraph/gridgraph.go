package gridgraph

import "fmt"

// NewCostGrid constructs a CostGrid from a non-empty, rectangular 2D slice
// indexed rows[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeCost if any cell is below zero.
// Algorithmic complexity: O(W×H) time and memory.
func NewCostGrid(rows [][]int) (*CostGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	// Flatten into one row-major slice
	g := &CostGrid{
		width:  w,
		height: h,
		costs:  make([]int64, w*h),
	}
	for y, row := range rows {
		for x, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %d", ErrNegativeCost, x, y, c)
			}
			g.costs[y*w+x] = int64(c)
			if int64(c) > g.maxCost {
				g.maxCost = int64(c)
			}
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *CostGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *CostGrid) Height() int { return g.height }

// Len returns the number of cells, Width×Height.
func (g *CostGrid) Len() int { return len(g.costs) }

// MaxCost returns the largest cell cost in the grid.
func (g *CostGrid) MaxCost() int64 { return g.maxCost }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *CostGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains reports whether p lies within the grid boundaries.
func (g *CostGrid) Contains(p Point) bool {
	return g.InBounds(p.X, p.Y)
}

// CostAt returns the cost of entering cell (x,y).
// The caller must ensure InBounds(x,y); out-of-range coordinates panic.
func (g *CostGrid) CostAt(x, y int) int64 {
	return g.costs[y*g.width+x]
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *CostGrid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *CostGrid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}
