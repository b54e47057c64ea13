package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: matrix must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrIndexOutOfRange indicates a row or column index outside the grid.
	ErrIndexOutOfRange = errors.New("grid: index out of range")

	// ErrMatrixTooSmall indicates fewer than 3 rows or a row shorter than 3 cells.
	ErrMatrixTooSmall = errors.New("grid: matrix must be at least 3x3")
	// ErrCornerIsPath indicates one of the four corner cells is traversable.
	ErrCornerIsPath = errors.New("grid: corner cell is a path")
	// ErrWrongExitCount indicates the border does not hold exactly two path cells.
	ErrWrongExitCount = errors.New("grid: border must contain exactly two openings")
	// ErrExitsTooClose indicates the two openings touch along the border.
	ErrExitsTooClose = errors.New("grid: openings are adjacent")
)
