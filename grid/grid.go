package grid

import (
	"fmt"
	"iter"
)

// New constructs a Grid from a non-empty, rectangular Matrix.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if m has no rows or no columns,
// ErrNonRectangular if any row length differs.
// New does not validate maze preconditions; see Validate.
// Algorithmic complexity: O(W×H) time and memory.
func New(m Matrix) (*Grid, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(m), len(m[0])
	for _, row := range m {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Flatten row-major to prevent external mutation
	cells := make([]bool, 0, w*h)
	for _, row := range m {
		cells = append(cells, row...)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// MatrixFromInts converts an integer matrix, treating values equal to
// opts.PathValue as path cells. Ragged input is preserved as-is so that
// Validate can report it.
func MatrixFromInts(values [][]int, opts Options) Matrix {
	m := make(Matrix, len(values))
	for r, row := range values {
		m[r] = make([]bool, len(row))
		for c, v := range row {
			m[r][c] = v == opts.PathValue
		}
	}

	return m
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// At reports whether c is a path cell. No negative-index normalization is
// applied; cells outside the grid read as walls.
// Complexity: O(1).
func (g *Grid) At(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}

	return g.cells[g.index(c)]
}

// Row returns a copy of row i. Negative i counts from the bottom (-1 = last).
// Returns ErrIndexOutOfRange if i is outside [-H, H).
func (g *Grid) Row(i int) ([]bool, error) {
	r, err := normalize(i, g.height)
	if err != nil {
		return nil, fmt.Errorf("%w: row %d of %d", err, i, g.height)
	}
	out := make([]bool, g.width)
	copy(out, g.cells[r*g.width:(r+1)*g.width])

	return out, nil
}

// Col returns a copy of column i. Negative i counts from the right (-1 = last).
// Returns ErrIndexOutOfRange if i is outside [-W, W).
func (g *Grid) Col(i int) ([]bool, error) {
	c, err := normalize(i, g.width)
	if err != nil {
		return nil, fmt.Errorf("%w: col %d of %d", err, i, g.width)
	}
	out := make([]bool, g.height)
	for r := 0; r < g.height; r++ {
		out[r] = g.cells[r*g.width+c]
	}

	return out, nil
}

// Matrix returns a deep copy of the grid as a Matrix.
func (g *Grid) Matrix() Matrix {
	m := make(Matrix, g.height)
	for r := range m {
		m[r], _ = g.Row(r)
	}

	return m
}

// Neighbors returns the set of directions whose adjacent cell is a path.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) DirectionSet {
	var s DirectionSet
	for _, d := range Directions {
		if g.At(c.Step(d)) {
			s = s.With(d)
		}
	}

	return s
}

// Degree returns the number of traversable orthogonal neighbors of c.
func (g *Grid) Degree(c Cell) int {
	return g.Neighbors(c).Len()
}

// OnBorder reports whether c lies on the outermost row or column.
func (g *Grid) OnBorder(c Cell) bool {
	return c.Row == 0 || c.Row == g.height-1 || c.Col == 0 || c.Col == g.width-1
}

// Openings returns the border path cells in row-major order.
// For a valid maze there are exactly two: the start, then the goal.
// Complexity: O(W×H).
func (g *Grid) Openings() []Cell {
	var out []Cell
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			cell := Cell{Row: r, Col: c}
			if g.OnBorder(cell) && g.cells[g.index(cell)] {
				out = append(out, cell)
			}
		}
	}

	return out
}

// Cells yields every path cell in row-major order. The sequence is lazy and
// may be ranged over any number of times.
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i, open := range g.cells {
			if !open {
				continue
			}
			if !yield(g.coordinate(i)) {
				return
			}
		}
	}
}

// index maps c to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) index(c Cell) int {
	return c.Row*g.width + c.Col
}

// coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) coordinate(idx int) Cell {
	return Cell{Row: idx / g.width, Col: idx % g.width}
}

// normalize resolves a possibly negative index against extent n.
func normalize(i, n int) (int, error) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, ErrIndexOutOfRange
	}

	return i, nil
}
