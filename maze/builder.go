package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/grid"
	"github.com/katalvlaran/mazegraph/vindex"
)

// builder encapsulates state during graph discovery.
type builder struct {
	gr    *Graph
	opts  Options
	stack []int // arena handles of vertices still being explored
}

// Build discovers every vertex reachable from the start opening of g.
//
// Behavior:
//  1. Find the two openings; the first (row-major) is the start.
//  2. Seed the stack with the start vertex, which has no origin.
//  3. For the vertex on top of the stack, take its next unexplored direction
//     and mark it explored. If the step is possible, creep to the neighbor
//     vertex, reusing it if its cell is already known, else creating it with
//     its arrival side as origin and pushing it.
//  4. A vertex with all four directions explored is inserted into the index
//     and popped.
//  5. Look the goal opening up in the index. Its origin was set by the
//     creep that discovered it.
//
// Build does not run Validate; use Solve for the full pipeline.
func Build(g *grid.Grid, opts ...Option) (*Graph, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrNilGrid
	}
	openings := g.Openings()
	if len(openings) != 2 {
		return nil, fmt.Errorf("maze: %w: found %d", grid.ErrWrongExitCount, len(openings))
	}

	// 2. Apply options
	bopts := DefaultOptions()
	for _, fn := range opts {
		fn(&bopts)
	}

	gr := &Graph{
		grid:   g,
		walker: NewWalker(g),
		index:  vindex.New[int](),
	}
	b := &builder{gr: gr, opts: bopts}

	// 3. Seed with the start vertex
	start := Vertex{Cell: openings[0], Kind: Opening}
	if err := b.discover(start); err != nil {
		return nil, err
	}
	gr.start = 0

	// 4. Depth-first discovery
	if err := b.run(); err != nil {
		return nil, err
	}

	// 5. Resolve the goal
	goal, ok := gr.index.Find(openings[1])
	if !ok {
		return nil, fmt.Errorf("%w: %v from %v", ErrGoalUnreachable, openings[1], openings[0])
	}
	// Only the start lacks an origin, and the openings are distinct.
	gr.goal = goal

	return gr, nil
}

// run drains the discovery stack.
func (b *builder) run() error {
	gr := b.gr
	for len(b.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-b.opts.Ctx.Done():
			return b.opts.Ctx.Err()
		default:
		}

		h := b.stack[len(b.stack)-1]
		v := &gr.vertices[h]

		// 2. Fully explored: index and pop
		d, ok := nextUnexplored(v.Explored)
		if !ok {
			gr.index.Insert(v.Cell, h)
			b.stack = b.stack[:len(b.stack)-1]
			if b.opts.OnExit != nil {
				if err := b.opts.OnExit(*v); err != nil {
					return fmt.Errorf("maze: OnExit hook for %v: %w", v.Cell, err)
				}
			}
			continue
		}

		// 3. Explore one direction
		v.Explored = v.Explored.With(d)
		from := v.Cell
		if _, ok := gr.walker.Step(from, d); !ok {
			continue
		}
		hop, err := gr.walker.Creep(from, d, nil)
		if err != nil {
			return err
		}
		gr.edges = append(gr.edges, Edge{From: from, To: hop.To, Heading: d, Length: hop.Length})

		// 4. Known vertex: consume the corridor from its side too
		if nh, found := b.lookup(hop.To); found {
			gr.vertices[nh].Explored = gr.vertices[nh].Explored.With(hop.Arrival)
			continue
		}

		// 5. New vertex
		nv := Vertex{
			Cell:      hop.To,
			Kind:      gr.walker.Kind(hop.To),
			Origin:    hop.Arrival,
			HasOrigin: true,
			Explored:  grid.DirectionSet(0).With(hop.Arrival),
		}
		if err = b.discover(nv); err != nil {
			return err
		}
	}

	return nil
}

// discover appends v to the arena, pushes it, and runs the OnVisit hook.
func (b *builder) discover(v Vertex) error {
	b.gr.vertices = append(b.gr.vertices, v)
	b.stack = append(b.stack, len(b.gr.vertices)-1)
	if b.opts.OnVisit != nil {
		if err := b.opts.OnVisit(v); err != nil {
			return fmt.Errorf("maze: OnVisit hook for %v: %w", v.Cell, err)
		}
	}

	return nil
}

// lookup finds an already discovered vertex by cell: first among indexed
// vertices, then among those still on the stack.
func (b *builder) lookup(c grid.Cell) (int, bool) {
	if h, ok := b.gr.index.Find(c); ok {
		return h, true
	}
	for _, h := range b.stack {
		if b.gr.vertices[h].Cell == c {
			return h, true
		}
	}

	return 0, false
}

// nextUnexplored returns the first direction, in N, E, S, W order, missing from s.
func nextUnexplored(s grid.DirectionSet) (grid.Direction, bool) {
	for _, d := range grid.Directions {
		if !s.Has(d) {
			return d, true
		}
	}

	return 0, false
}
