package imageio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/grid"
)

func TestDecodeText(t *testing.T) {
	src := `
# fork
0 1 0
0,1,0

0	0	0
`
	m, err := DecodeText(strings.NewReader(src), grid.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, grid.Matrix{
		{false, true, false},
		{false, true, false},
		{false, false, false},
	}, m)
}

func TestDecodeText_PathValue(t *testing.T) {
	m, err := DecodeText(strings.NewReader("1 0 1\n"), grid.Options{PathValue: 0})
	require.NoError(t, err)
	assert.Equal(t, grid.Matrix{{false, true, false}}, m)
}

func TestDecodeText_Errors(t *testing.T) {
	_, err := DecodeText(strings.NewReader("0 x 0\n"), grid.DefaultOptions())
	assert.ErrorContains(t, err, "line 1")

	_, err = DecodeText(strings.NewReader("\n# nothing\n"), grid.DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyImage)
}
