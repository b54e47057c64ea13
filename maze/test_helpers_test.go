package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/grid"
)

// mustGrid builds a grid from a 0/1 literal.
func mustGrid(t testing.TB, rows ...[]int) *grid.Grid {
	t.Helper()
	g, err := grid.New(grid.MatrixFromInts(rows, grid.DefaultOptions()))
	require.NoError(t, err)

	return g
}

// perfectMaze carves a (2h+1)×(2w+1) spanning-tree maze with a randomized
// depth-first search and opens (0,1) and (2h, 2w-1). Every two path cells
// are joined by exactly one simple path.
func perfectMaze(w, h int, seed int64) grid.Matrix {
	rng := rand.New(rand.NewSource(seed))
	rows, cols := 2*h+1, 2*w+1
	m := make(grid.Matrix, rows)
	for r := range m {
		m[r] = make([]bool, cols)
	}
	seen := make([]bool, w*h)
	type room struct{ x, y int }
	stack := []room{{0, 0}}
	seen[0] = true
	m[1][1] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		var next []room
		for _, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			nx, ny := cur.x+d[0], cur.y+d[1]
			if nx >= 0 && nx < w && ny >= 0 && ny < h && !seen[ny*w+nx] {
				next = append(next, room{nx, ny})
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		n := next[rng.Intn(len(next))]
		seen[n.y*w+n.x] = true
		m[2*n.y+1][2*n.x+1] = true
		m[cur.y+n.y+1][cur.x+n.x+1] = true
		stack = append(stack, n)
	}
	m[0][1] = true
	m[rows-1][cols-2] = true

	return m
}

// bfsDistance returns the number of cells on the shortest path from a to b,
// or -1 if b is unreachable.
func bfsDistance(g *grid.Grid, a, b grid.Cell) int {
	dist := map[grid.Cell]int{a: 1}
	queue := []grid.Cell{a}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == b {
			return dist[u]
		}
		for _, d := range grid.Directions {
			v := u.Step(d)
			if _, ok := dist[v]; ok || !g.At(v) {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return -1
}

// requireContiguous asserts that consecutive cells are orthogonal neighbors
// and that every cell is a path cell.
func requireContiguous(t *testing.T, g *grid.Grid, path []grid.Cell) {
	t.Helper()
	for i, c := range path {
		require.True(t, g.At(c), "cell %v at %d is a wall", c, i)
		if i > 0 {
			require.True(t, path[i-1].Adjacent(c), "teleport %v -> %v at %d", path[i-1], c, i)
		}
	}
}
