package grid

import "fmt"

// Matrix is the raw row-major input: Matrix[row][col] is true for a path cell.
type Matrix [][]bool

// Cell addresses a single grid position. It is a plain value.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the cell one unit away in direction d. The result may lie
// outside the grid; use Grid.InBounds to check.
func (c Cell) Step(d Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Adjacent reports whether c and o are orthogonal neighbors.
func (c Cell) Adjacent(o Cell) bool {
	return abs(c.Row-o.Row)+abs(c.Col-o.Col) == 1
}

// Options contains tunable parameters for integer matrix conversion.
type Options struct {
	// PathValue is the integer that marks a traversable cell.
	PathValue int
}

// DefaultOptions returns Options with PathValue=1 (1 = path, anything else = wall).
func DefaultOptions() Options {
	return Options{PathValue: 1}
}

// Grid is an immutable rectangular maze. Cells are stored row-major.
type Grid struct {
	width, height int
	cells         []bool
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
