package warnsdorff_test

import (
	"testing"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/movegraph"
	"github.com/katalvlaran/knightour/warnsdorff"
)

// BenchmarkSolve_8x8 measures a full open-tour search on the classic
// board. The heuristic rarely backtracks here, so this is close to the
// best case. Complexity: ~O(W×H)
func BenchmarkSolve_8x8(b *testing.B) {
	size := board.NewSize(8, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := warnsdorff.Solve(size); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Stretched10x10 measures the hardest tile shape the
// tiling driver ever requests directly.
func BenchmarkSolve_Stretched10x10(b *testing.B) {
	size := board.NewSize(10, 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := warnsdorff.Solve(size, warnsdorff.WithStretched(movegraph.Horizontal)); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_CacheHit measures the memoized path: the tile is solved
// once during setup, every iteration only takes a view.
func BenchmarkSolve_CacheHit(b *testing.B) {
	size := board.NewSize(8, 8)
	cache := warnsdorff.NewCache()
	if _, err := warnsdorff.Solve(size,
		warnsdorff.WithStretched(movegraph.Horizontal), warnsdorff.WithCache(cache)); err != nil {
		b.Fatalf("setup Solve failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := warnsdorff.Solve(size,
			warnsdorff.WithStretched(movegraph.Horizontal), warnsdorff.WithCache(cache)); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}
