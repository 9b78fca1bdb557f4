package divide_test

import (
	"testing"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/divide"
	"github.com/katalvlaran/knightour/warnsdorff"
)

// BenchmarkSolve_100x100 measures the full tiling pipeline with a cold
// cache on every iteration. Complexity: O(W×H)
func BenchmarkSolve_100x100(b *testing.B) {
	size := board.NewSize(100, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := divide.Solve(size); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_100x100_WarmCache measures the same board with the tile
// cache shared across iterations, isolating partition and merge cost.
func BenchmarkSolve_100x100_WarmCache(b *testing.B) {
	size := board.NewSize(100, 100)
	cache := warnsdorff.NewCache()
	if _, err := divide.Solve(size, divide.WithCache(cache)); err != nil {
		b.Fatalf("setup Solve failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := divide.Solve(size, divide.WithCache(cache)); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkPartition measures sector layout alone on a large board.
func BenchmarkPartition(b *testing.B) {
	size := board.NewSize(1000, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = divide.Partition(size)
	}
}
