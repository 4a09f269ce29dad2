package doublecomplex_test

import (
	"testing"

	"github.com/katalvlaran/homalg/doublecomplex"
)

// filledGrid caches every entry of an n×n support whose ranks follow a
// checkerboard of zero and non-zero modules, giving many small islands.
func filledGrid(b *testing.B, n int) *standalone {
	ranks := make(map[[2]int]int, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ranks[[2]int{i, j}] = (i/3 + j/3) % 2
		}
	}
	dc, err := newStandalone(newSupport(ranks))
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if _, err := dc.Get(i, j); err != nil {
				b.Fatalf("setup Get failed: %v", err)
			}
		}
	}
	return dc
}

// BenchmarkCheckComplete runs the oracle without memo on a 200×200 cached grid.
// Complexity: O(W×H)
func BenchmarkCheckComplete(b *testing.B) {
	dc := filledGrid(b, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = doublecomplex.CheckComplete[dcxC, dcxM, dcxM](dc, nil)
	}
}

// BenchmarkIslands groups the same grid into 3×3 islands.
// Complexity: O(W×H)
func BenchmarkIslands(b *testing.B) {
	dc := filledGrid(b, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = doublecomplex.Islands[dcxC, dcxM, dcxM](dc)
	}
}
