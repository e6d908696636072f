package gridgraph

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a cell coordinate. X is the column, Y is the row; Y grows with
// the row index of the input.
type Point struct {
	X, Y int
}

// String formats p as "x,y", the same form ParsePoint accepts.
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// ParsePoint parses "x,y" (spaces around either number are allowed).
// Returns ErrBadPoint wrapped with the offending input on failure.
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}

	return Point{X: x, Y: y}, nil
}

// CostGrid is an immutable rectangular matrix of non-negative entry costs.
// costs holds the cells in row-major order: costs[y*width+x].
// The cost of a cell is charged when a path enters it.
type CostGrid struct {
	width, height int
	costs         []int64
	maxCost       int64
}
