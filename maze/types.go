package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/grid"
	"github.com/katalvlaran/mazegraph/vindex"
)

// Kind classifies a vertex.
type Kind uint8

const (
	// DeadEnd is a path cell with exactly one traversable neighbor.
	DeadEnd Kind = iota
	// Junction is a path cell with three or four traversable neighbors.
	Junction
	// Opening is one of the two border path cells.
	Opening
)

func (k Kind) String() string {
	switch k {
	case DeadEnd:
		return "dead-end"
	case Junction:
		return "junction"
	case Opening:
		return "opening"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Vertex is a graph node at a specific cell.
type Vertex struct {
	Cell grid.Cell
	Kind Kind
	// Origin is the side through which the vertex was first entered.
	// Meaningful only when HasOrigin is true; the start vertex has none.
	Origin    grid.Direction
	HasOrigin bool
	// Explored holds the directions already traversed outward from this
	// vertex. It starts with Origin and is full once discovery completes.
	Explored grid.DirectionSet
}

// Edge is one corridor between two vertices.
type Edge struct {
	From grid.Cell
	To   grid.Cell
	// Heading is the direction in which the corridor leaves From.
	Heading grid.Direction
	// Length is the number of steps from From to To.
	Length int
}

// Hop is the outcome of a single Creep.
type Hop struct {
	// To is the vertex cell the creep landed on.
	To grid.Cell
	// Arrival is the side of To through which it was entered.
	Arrival grid.Direction
	// Length is the number of cells stepped onto, To included.
	Length int
}

// Graph is the vertex set discovered by Build. Vertices live in one arena
// slice and are referenced everywhere else by their cell.
type Graph struct {
	grid   *grid.Grid
	walker *Walker

	vertices []Vertex
	index    *vindex.Tree[int] // cell → arena handle
	edges    []Edge

	start, goal int
}

// Grid returns the grid the graph was built from.
func (gr *Graph) Grid() *grid.Grid { return gr.grid }

// Start returns the start opening vertex.
func (gr *Graph) Start() Vertex { return gr.vertices[gr.start] }

// Goal returns the goal opening vertex.
func (gr *Graph) Goal() Vertex { return gr.vertices[gr.goal] }

// Len returns the number of indexed vertices.
func (gr *Graph) Len() int { return gr.index.Len() }

// Vertex looks up the vertex at c.
func (gr *Graph) Vertex(c grid.Cell) (Vertex, bool) {
	h, ok := gr.index.Find(c)
	if !ok {
		return Vertex{}, false
	}

	return gr.vertices[h], true
}

// Vertices returns every indexed vertex in index order
// (ascending coordinate sum, then discovery order).
func (gr *Graph) Vertices() []Vertex {
	out := make([]Vertex, 0, gr.index.Len())
	for _, h := range gr.index.All() {
		out = append(out, gr.vertices[h])
	}

	return out
}

// Edges returns the discovered corridors in discovery order.
func (gr *Graph) Edges() []Edge {
	out := make([]Edge, len(gr.edges))
	copy(out, gr.edges)

	return out
}

// Solution is the path between the two openings.
type Solution struct {
	// Path lists every cell from Start to Goal inclusive, in walking order.
	Path  []grid.Cell
	Start grid.Cell
	Goal  grid.Cell
	// Vertices and Edges describe the graph the path was found in.
	Vertices int
	Edges    int
}

// Len returns the number of cells on the path.
func (s *Solution) Len() int { return len(s.Path) }
