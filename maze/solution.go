package maze

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mazegraph/grid"
)

// FindSolution retraces the graph from the goal back to the start.
// Starting at the goal vertex it creeps toward each vertex's Origin, looks the
// landing cell up in the index to get the next origin, and stops on the start
// vertex. Every cell passed, vertices and corridor cells alike, is collected;
// the returned Path runs start → goal.
//
// Returns ErrBrokenTrail if a vertex on the way has no origin, is missing
// from the index, or the trail runs longer than the vertex count.
func FindSolution(gr *Graph) (*Solution, error) {
	if gr == nil || gr.grid == nil {
		return nil, ErrNilGrid
	}
	start, goal := gr.Start(), gr.Goal()

	trail := []grid.Cell{goal.Cell}
	cur := goal
	for hops := 0; cur.Cell != start.Cell; hops++ {
		if hops > gr.Len() {
			return nil, fmt.Errorf("%w: more than %d hops", ErrBrokenTrail, gr.Len())
		}
		if !cur.HasOrigin {
			return nil, fmt.Errorf("%w: %v has no origin", ErrBrokenTrail, cur.Cell)
		}
		hop, err := gr.walker.Creep(cur.Cell, cur.Origin, &trail)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBrokenTrail, err)
		}
		h, err := gr.index.Get(hop.To)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBrokenTrail, err)
		}
		cur = gr.vertices[h]
	}
	slices.Reverse(trail)

	return &Solution{
		Path:     trail,
		Start:    start.Cell,
		Goal:     goal.Cell,
		Vertices: gr.Len(),
		Edges:    len(gr.edges),
	}, nil
}
