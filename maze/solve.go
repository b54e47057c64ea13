package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/grid"
)

// Solve validates m, builds its graph, and returns the path between its
// openings. Validation errors are returned as is so callers can match them
// with errors.Is against the grid sentinels.
func Solve(m grid.Matrix, opts ...Option) (*Solution, error) {
	if err := grid.Validate(m); err != nil {
		return nil, err
	}
	g, err := grid.New(m)
	if err != nil {
		return nil, err
	}

	return solve(g, opts)
}

// SolveGrid is Solve for an already constructed grid.
func SolveGrid(g *grid.Grid, opts ...Option) (*Solution, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := grid.Validate(g.Matrix()); err != nil {
		return nil, err
	}

	return solve(g, opts)
}

func solve(g *grid.Grid, opts []Option) (*Solution, error) {
	gr, err := Build(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("maze: build: %w", err)
	}

	return FindSolution(gr)
}
