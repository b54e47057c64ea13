package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mazegraph/grid"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		m    grid.Matrix
		err  error
	}{
		{
			"JaggedShortRow",
			ints([]int{0, 1, 0}, []int{0, 0}, []int{0, 1, 0}),
			grid.ErrMatrixTooSmall,
		},
		{
			"TwoRows",
			ints([]int{0, 1, 0}, []int{0, 0, 1}),
			grid.ErrMatrixTooSmall,
		},
		{
			"JaggedLongRow",
			ints([]int{0, 1, 0}, []int{0, 1, 0, 0}, []int{0, 1, 0}),
			grid.ErrNonRectangular,
		},
		{
			"TopLeftCorner",
			ints([]int{1, 0, 0}, []int{0, 0, 0}, []int{0, 0, 0}),
			grid.ErrCornerIsPath,
		},
		{
			"BottomRightCorner",
			ints([]int{0, 0, 0}, []int{0, 0, 0}, []int{0, 0, 1}),
			grid.ErrCornerIsPath,
		},
		{
			"ThreeOpenings",
			ints([]int{0, 1, 0}, []int{1, 0, 0}, []int{0, 1, 0}),
			grid.ErrWrongExitCount,
		},
		{
			"NoOpenings",
			ints([]int{0, 0, 0}, []int{0, 1, 0}, []int{0, 0, 0}),
			grid.ErrWrongExitCount,
		},
		{
			"AdjacentOnTopEdge",
			ints([]int{0, 1, 1, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}),
			grid.ErrExitsTooClose,
		},
		{
			"AdjacentOnLeftEdge",
			ints([]int{0, 0, 0}, []int{1, 0, 0}, []int{1, 0, 0}, []int{0, 0, 0}),
			grid.ErrExitsTooClose,
		},
		{
			"Valid",
			ints([]int{0, 1, 0}, []int{0, 1, 0}, []int{0, 1, 0}),
			nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := grid.Validate(tc.m)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestValidate_Order checks that the first violated rule wins.
func TestValidate_Order(t *testing.T) {
	// Corner path and three openings: corners are checked first.
	m := ints([]int{1, 1, 0}, []int{1, 0, 0}, []int{0, 1, 0})
	assert.ErrorIs(t, grid.Validate(m), grid.ErrCornerIsPath)

	// Too small and corner path: size is checked first.
	m = ints([]int{1, 0, 0}, []int{0, 0, 0})
	assert.ErrorIs(t, grid.Validate(m), grid.ErrMatrixTooSmall)
}
