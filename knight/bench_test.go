package knight_test

import (
	"testing"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/knight"
)

// BenchmarkPossibleMoves measures candidate generation and ranking from
// a central square with every neighbor reachable, the engine's hot path.
// Complexity: O(1) (≤8 candidates, ≤8 lookahead probes each)
func BenchmarkPossibleMoves(b *testing.B) {
	size := board.NewSize(8, 8)
	reachable := func(_, to board.Pos) bool {
		return size.Fits(to)
	}
	pos := board.NewPos(4, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = knight.PossibleMoves(pos, reachable)
	}
}
