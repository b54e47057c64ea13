package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/grid"
)

func openMem(t *testing.T) *Store {
	t.Helper()
	s, err := Open("mazecache", Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func mustGrid(t *testing.T, rows ...[]int) *grid.Grid {
	t.Helper()
	g, err := grid.New(grid.MatrixFromInts(rows, grid.DefaultOptions()))
	require.NoError(t, err)

	return g
}

func TestFingerprint(t *testing.T) {
	a := mustGrid(t, []int{0, 1, 0}, []int{0, 1, 0}, []int{0, 1, 0})
	b := mustGrid(t, []int{0, 1, 0}, []int{0, 1, 0}, []int{0, 1, 0})
	c := mustGrid(t, []int{0, 1, 0}, []int{0, 1, 1}, []int{0, 1, 0})
	// Same cells, different shape.
	d := mustGrid(t, []int{0, 1, 0, 0, 1, 0, 0, 1, 0})

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(d))
}

func TestPutGet(t *testing.T) {
	s := openMem(t)
	rec := Record{
		Width:    3,
		Height:   3,
		Path:     []grid.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
		Vertices: 2,
		Edges:    1,
		SolvedAt: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Put(42, rec))

	got, err := s.Get(42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.Path, got.Path)
	assert.Equal(t, rec.Vertices, got.Vertices)
	assert.True(t, rec.SolvedAt.Equal(got.SolvedAt))
}

func TestGet_Miss(t *testing.T) {
	s := openMem(t)
	got, err := s.Get(7)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestDelete(t *testing.T) {
	s := openMem(t)
	require.NoError(t, s.Put(1, Record{Width: 3}))
	require.NoError(t, s.Delete(1))
	require.NoError(t, s.Delete(1))

	got, err := s.Get(1)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestClosed(t *testing.T) {
	s, err := Open("mazecache", Options{InMemory: true})
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.Get(1)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.Put(1, Record{}), ErrClosed)
	assert.ErrorIs(t, s.Delete(1), ErrClosed)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("  ", Options{})
	assert.Error(t, err)
}

func TestOpen_OnDisk(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir+"/cache", Options{Sync: true})
	require.NoError(t, err)
	require.NoError(t, s.Put(9, Record{Width: 5, Height: 5}))
	require.NoError(t, s.Close())

	s, err = Open(dir+"/cache", Options{})
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(9)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 5, got.Width)
}
