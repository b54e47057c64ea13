package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/grid"
)

// TestRegions_Islands checks a 4×3 grid with two islands:
//
//	.##.
//	..#.
//	##..
//
// Path cells: {(0,0),(1,0),(1,1)} and {(0,3),(1,3),(2,2),(2,3)}.
func TestRegions_Islands(t *testing.T) {
	g, err := grid.New(grid.MatrixFromInts([][]int{
		{1, 0, 0, 1},
		{1, 1, 0, 1},
		{0, 0, 1, 1},
	}, grid.DefaultOptions()))
	require.NoError(t, err)

	regions := g.Regions()
	require.Len(t, regions, 2)
	assert.Equal(t, []grid.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, regions[0])
	assert.ElementsMatch(t, []grid.Cell{
		{Row: 0, Col: 3}, {Row: 1, Col: 3}, {Row: 2, Col: 3}, {Row: 2, Col: 2},
	}, regions[1])

	assert.True(t, g.Connected(grid.Cell{Row: 0, Col: 3}, grid.Cell{Row: 2, Col: 2}))
	assert.False(t, g.Connected(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 3}))
	assert.False(t, g.Connected(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 1}), "wall cell")
}

// Diagonal contact does not join regions.
func TestRegions_DiagonalSplit(t *testing.T) {
	g, err := grid.New(grid.MatrixFromInts([][]int{
		{1, 0},
		{0, 1},
	}, grid.DefaultOptions()))
	require.NoError(t, err)

	assert.Len(t, g.Regions(), 2)
}

func TestRegions_AllWalls(t *testing.T) {
	g, err := grid.New(grid.MatrixFromInts([][]int{{0, 0}, {0, 0}}, grid.DefaultOptions()))
	require.NoError(t, err)

	assert.Empty(t, g.Regions())
}
