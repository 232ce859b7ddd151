package assign_test

import (
	"testing"

	"github.com/katalvlaran/matchmax/assign"
	"github.com/katalvlaran/matchmax/matrix"
)

// benchMatrix builds an n×n matrix with deterministic pseudo-random values.
func benchMatrix(b *testing.B, n int) *matrix.Matrix {
	b.Helper()
	m, err := matrix.New(n, n)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	v := 17
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v = (v*31 + 7) % 101
			_ = m.Set(r, c, v)
		}
	}

	return m
}

// BenchmarkBacktrack_8 measures the exact search at the edge of practical
// sizing (8! = 40320 leaves).
func BenchmarkBacktrack_8(b *testing.B) {
	m := benchMatrix(b, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := assign.Backtrack(m); err != nil {
			b.Fatalf("Backtrack failed: %v", err)
		}
	}
}

// BenchmarkGreedy_100 measures the heuristic pass on a 100×100 matrix.
func BenchmarkGreedy_100(b *testing.B) {
	m := benchMatrix(b, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := assign.Greedy(m); err != nil {
			b.Fatalf("Greedy failed: %v", err)
		}
	}
}

// BenchmarkHungarian_20 measures the reduce-and-cover solver on a 20×20
// matrix of sequential values, a shape the heuristic cover always converges
// on (random fill can trip its documented non-convergence).
func BenchmarkHungarian_20(b *testing.B) {
	m, err := matrix.New(20, 20)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	for r := 0; r < 20; r++ {
		for c := 0; c < 20; c++ {
			_ = m.Set(r, c, r*20+c)
		}
	}
	opts := assign.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := assign.Hungarian(m, opts); err != nil {
			b.Fatalf("Hungarian failed: %v", err)
		}
	}
}
