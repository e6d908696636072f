// Package gridgraph holds the rectangular cost grids searched by the
// runpath engine.
//
// What:
//
//   - CostGrid wraps a rectangular matrix of non-negative entry costs,
//     stored row-major and never mutated after construction.
//   - ParseDigits reads the compact text form: one line per row, one
//     digit per cell.
//   - Point / ParsePoint name coordinates as "x,y".
//
// Why:
//
//   - Search engines need O(1) CostAt and InBounds without per-call checks.
//   - A single validated value can be shared by concurrent searches.
//
// Complexity:
//
//   - NewCostGrid, ParseDigits: O(W×H) time and memory.
//   - CostAt, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell cost is below zero.
//   - ErrBadDigit: digit text contains a non-digit rune.
//   - ErrBadPoint: malformed "x,y" coordinate.
package gridgraph
