package grid

import "fmt"

// minExtent is the smallest allowed number of rows and columns.
const minExtent = 3

// Validate checks the maze preconditions on a raw matrix and returns the
// first violated rule. The order is fixed:
//
//  1. size:    at least 3 rows, every row at least 3 cells (ErrMatrixTooSmall)
//  2. shape:   all rows equally long (ErrNonRectangular)
//  3. corners: the four corner cells are walls (ErrCornerIsPath)
//  4. count:   exactly two border path cells (ErrWrongExitCount)
//  5. spacing: the two openings are not orthogonally adjacent (ErrExitsTooClose)
//
// Complexity: O(W×H).
func Validate(m Matrix) error {
	if err := validateSize(m); err != nil {
		return err
	}
	w := len(m[0])
	for r, row := range m {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	if err := validateCorners(m); err != nil {
		return err
	}
	exits := borderPaths(m)
	if len(exits) != 2 {
		return fmt.Errorf("%w: found %d", ErrWrongExitCount, len(exits))
	}
	if exits[0].Adjacent(exits[1]) {
		return fmt.Errorf("%w: %v and %v", ErrExitsTooClose, exits[0], exits[1])
	}

	return nil
}

func validateSize(m Matrix) error {
	if len(m) < minExtent {
		return fmt.Errorf("%w: %d rows", ErrMatrixTooSmall, len(m))
	}
	for r, row := range m {
		if len(row) < minExtent {
			return fmt.Errorf("%w: row %d has %d cells", ErrMatrixTooSmall, r, len(row))
		}
	}

	return nil
}

func validateCorners(m Matrix) error {
	h, w := len(m), len(m[0])
	corners := [4]Cell{{0, 0}, {0, w - 1}, {h - 1, 0}, {h - 1, w - 1}}
	for _, c := range corners {
		if m[c.Row][c.Col] {
			return fmt.Errorf("%w: %v", ErrCornerIsPath, c)
		}
	}

	return nil
}

// borderPaths lists border path cells of a rectangular matrix in row-major order.
func borderPaths(m Matrix) []Cell {
	h, w := len(m), len(m[0])
	var out []Cell
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if (r == 0 || r == h-1 || c == 0 || c == w-1) && m[r][c] {
				out = append(out, Cell{Row: r, Col: c})
			}
		}
	}

	return out
}
