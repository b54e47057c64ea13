package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/grid"
)

// bendGrid is a 5-wide, 4-tall corridor with three bends:
//
//	. # . . .
//	. # . # #
//	. # # # .
//	. . . . .
func bendGrid(t *testing.T) *grid.Grid {
	return mustGrid(t,
		[]int{0, 1, 0, 0, 0},
		[]int{0, 1, 0, 1, 1},
		[]int{0, 1, 1, 1, 0},
		[]int{0, 0, 0, 0, 0},
	)
}

func TestStep(t *testing.T) {
	w := NewWalker(bendGrid(t))
	start := grid.Cell{Row: 0, Col: 1}

	next, ok := w.Step(start, grid.South)
	assert.True(t, ok)
	assert.Equal(t, grid.Cell{Row: 1, Col: 1}, next)

	same, ok := w.Step(start, grid.East)
	assert.False(t, ok, "wall")
	assert.Equal(t, start, same)

	_, ok = w.Step(start, grid.North)
	assert.False(t, ok, "off the grid")
}

func TestWalk_StopsAtWall(t *testing.T) {
	w := NewWalker(bendGrid(t))

	end, n := w.Walk(grid.Cell{Row: 0, Col: 1}, grid.South, nil)
	assert.Equal(t, grid.Cell{Row: 2, Col: 1}, end)
	assert.Equal(t, 2, n)

	end, _ = w.Walk(end, grid.East, nil)
	assert.Equal(t, grid.Cell{Row: 2, Col: 3}, end)
	end, _ = w.Walk(end, grid.North, nil)
	assert.Equal(t, grid.Cell{Row: 1, Col: 3}, end)
	end, _ = w.Walk(end, grid.East, nil)
	assert.Equal(t, grid.Cell{Row: 1, Col: 4}, end)
}

func TestWalk_StopsOnVertex(t *testing.T) {
	// The junction at (1,2) interrupts the straight run east.
	w := NewWalker(mustGrid(t,
		[]int{0, 0, 0, 0, 0},
		[]int{1, 1, 1, 1, 1},
		[]int{0, 0, 1, 0, 0},
		[]int{0, 0, 0, 0, 0},
	))
	var trail []grid.Cell
	end, n := w.Walk(grid.Cell{Row: 1, Col: 0}, grid.East, &trail)
	assert.Equal(t, grid.Cell{Row: 1, Col: 2}, end)
	assert.Equal(t, 2, n)
	assert.Equal(t, []grid.Cell{{Row: 1, Col: 1}, {Row: 1, Col: 2}}, trail)
}

func TestCreep_AroundBends(t *testing.T) {
	w := NewWalker(bendGrid(t))
	var trail []grid.Cell

	hop, err := w.Creep(grid.Cell{Row: 0, Col: 1}, grid.South, &trail)
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{Row: 1, Col: 4}, hop.To)
	assert.Equal(t, grid.West, hop.Arrival)
	assert.Equal(t, 6, hop.Length)
	assert.Equal(t, []grid.Cell{
		{Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
		{Row: 2, Col: 3}, {Row: 1, Col: 3}, {Row: 1, Col: 4},
	}, trail)

	// And back again.
	back, err := w.Creep(hop.To, hop.Arrival, nil)
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{Row: 0, Col: 1}, back.To)
	assert.Equal(t, grid.South, back.Arrival)
	assert.Equal(t, 6, back.Length)
}

func TestCreep_IntoWall(t *testing.T) {
	w := NewWalker(bendGrid(t))
	_, err := w.Creep(grid.Cell{Row: 0, Col: 1}, grid.West, nil)
	assert.ErrorIs(t, err, ErrNoStep)
}

func TestClassification(t *testing.T) {
	g := mustGrid(t,
		[]int{0, 1, 0, 0, 0},
		[]int{0, 1, 1, 1, 0},
		[]int{0, 1, 0, 0, 0},
		[]int{0, 1, 0, 0, 0},
	)
	w := NewWalker(g)

	assert.True(t, w.IsVertex(grid.Cell{Row: 1, Col: 1}))
	assert.True(t, w.IsJunction(grid.Cell{Row: 1, Col: 1}))
	assert.Equal(t, Junction, w.Kind(grid.Cell{Row: 1, Col: 1}))

	assert.True(t, w.IsVertex(grid.Cell{Row: 1, Col: 3}))
	assert.False(t, w.IsJunction(grid.Cell{Row: 1, Col: 3}))
	assert.Equal(t, DeadEnd, w.Kind(grid.Cell{Row: 1, Col: 3}))

	assert.False(t, w.IsVertex(grid.Cell{Row: 1, Col: 2}), "corridor")
	assert.False(t, w.IsVertex(grid.Cell{Row: 2, Col: 1}), "corridor")

	assert.Equal(t, Opening, w.Kind(grid.Cell{Row: 0, Col: 1}))
	assert.Equal(t, Opening, w.Kind(grid.Cell{Row: 3, Col: 1}))
}
