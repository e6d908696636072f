package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = errors.New("gridgraph: cell costs must be non-negative")
	// ErrBadDigit indicates a rune outside '0'..'9' in digit-grid text.
	ErrBadDigit = errors.New("gridgraph: cell is not a decimal digit")
	// ErrBadPoint indicates a coordinate string not of the form "x,y".
	ErrBadPoint = errors.New("gridgraph: point must be of the form x,y")
)
