package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/grid"
)

// Walker moves along the corridors of a grid. It holds no mutable state.
type Walker struct {
	g *grid.Grid
}

// NewWalker returns a Walker over g.
func NewWalker(g *grid.Grid) *Walker {
	return &Walker{g: g}
}

// Step returns the adjacent cell in direction d and true if it is in bounds
// and traversable. Otherwise it returns c and false.
func (w *Walker) Step(c grid.Cell, d grid.Direction) (grid.Cell, bool) {
	next := c.Step(d)
	if !w.g.At(next) {
		return c, false
	}

	return next, true
}

// IsVertex reports whether c is a graph vertex: its number of traversable
// neighbors is anything but 2.
func (w *Walker) IsVertex(c grid.Cell) bool {
	return w.g.Degree(c) != 2
}

// IsJunction reports whether c has 3 or 4 traversable neighbors.
func (w *Walker) IsJunction(c grid.Cell) bool {
	return w.g.Degree(c) >= 3
}

// Kind classifies a vertex cell. Border cells are openings regardless of degree.
func (w *Walker) Kind(c grid.Cell) Kind {
	switch {
	case w.g.OnBorder(c):
		return Opening
	case w.IsJunction(c):
		return Junction
	default:
		return DeadEnd
	}
}

// Walk steps from c in direction d until the next cell is a wall or off the
// grid, or until it lands on a vertex. It returns the last cell reached and
// the number of steps taken. If trail is non-nil every cell stepped onto is
// appended to it.
func (w *Walker) Walk(c grid.Cell, d grid.Direction, trail *[]grid.Cell) (grid.Cell, int) {
	steps := 0
	for {
		next, ok := w.Step(c, d)
		if !ok {
			return c, steps
		}
		c = next
		steps++
		if trail != nil {
			*trail = append(*trail, c)
		}
		if w.IsVertex(c) {
			return c, steps
		}
	}
}

// Creep follows the corridor leaving c in direction d, turning at corners,
// until it lands on a vertex. It returns ErrNoStep if the first step is blocked.
// If trail is non-nil every cell stepped onto is appended to it.
func (w *Walker) Creep(c grid.Cell, d grid.Direction, trail *[]grid.Cell) (Hop, error) {
	if _, ok := w.Step(c, d); !ok {
		return Hop{}, fmt.Errorf("%w: %v heading %v", ErrNoStep, c, d)
	}
	length := 0
	for {
		end, n := w.Walk(c, d, trail)
		length += n
		if w.IsVertex(end) {
			return Hop{To: end, Arrival: d.Opposite(), Length: length}, nil
		}
		// Corner: a corridor cell has exactly one exit besides the way in.
		open := w.g.Neighbors(end)
		back := d.Opposite()
		for _, nd := range grid.Directions {
			if nd != back && open.Has(nd) {
				d = nd
				break
			}
		}
		c = end
	}
}
