package maze

import (
	"testing"

	"github.com/katalvlaran/mazegraph/grid"
)

// BenchmarkSolve measures the full pipeline on a 401×401 perfect maze.
// Complexity: O(W×H)
func BenchmarkSolve(b *testing.B) {
	m := perfectMaze(200, 200, 7)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Solve(m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuild isolates graph discovery.
func BenchmarkBuild(b *testing.B) {
	g, err := grid.New(perfectMaze(200, 200, 7))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Build(g); err != nil {
			b.Fatal(err)
		}
	}
}
