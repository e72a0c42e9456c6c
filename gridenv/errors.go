package gridenv

import "errors"

// Sentinel errors for gridenv construction.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridenv: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridenv: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate or cell id outside the grid.
	ErrOutOfBounds = errors.New("gridenv: coordinate out of bounds")
)
