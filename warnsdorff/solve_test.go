package warnsdorff_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/movegraph"
	"github.com/katalvlaran/knightour/warnsdorff"
)

// walkTour follows next-links from start and returns the visited squares
// in order, stopping when the chain ends or returns to start.
func walkTour(t *testing.T, g *movegraph.Graph, start board.Pos) []board.Pos {
	t.Helper()
	tour := []board.Pos{start}
	seen := map[board.Pos]struct{}{start: {}}
	pos := start
	for {
		next, ok := g.NodeAt(pos).Next()
		if !ok || next == start {
			return tour
		}
		require.True(t, board.IsKnightMove(pos, next), "step %v -> %v", pos, next)
		_, dup := seen[next]
		require.False(t, dup, "square %v visited twice", next)
		seen[next] = struct{}{}
		tour = append(tour, next)
		pos = next
	}
}

//----------------------------------------------------------------------------//
// Basic mode
//----------------------------------------------------------------------------//

func TestSolve_SingleSquare(t *testing.T) {
	res, err := warnsdorff.Solve(board.NewSize(1, 1))
	require.NoError(t, err)
	require.Equal(t, int64(1), res.Graph.ToBoard().Visited())
}

func TestSolve_OpenTour5x5(t *testing.T) {
	res, err := warnsdorff.Solve(board.NewSize(5, 5))
	require.NoError(t, err)
	tour := walkTour(t, res.Graph, board.Zero)
	require.Len(t, tour, 25)
}

func TestSolve_OpenTour8x8(t *testing.T) {
	res, err := warnsdorff.Solve(board.NewSize(8, 8))
	require.NoError(t, err)
	tour := walkTour(t, res.Graph, board.Zero)
	require.Len(t, tour, 64)

	b := res.Graph.ToBoard()
	require.Equal(t, int64(1), b.At(board.Zero))
	require.Equal(t, int64(64), b.Visited())
	require.Empty(t, b.Unvisited())
}

func TestSolve_CustomStart(t *testing.T) {
	start := board.NewPos(2, 2)
	res, err := warnsdorff.Solve(board.NewSize(5, 5), warnsdorff.WithStart(start))
	require.NoError(t, err)
	tour := walkTour(t, res.Graph, start)
	require.Len(t, tour, 25)
	require.Equal(t, int64(1), res.Graph.ToBoard().At(start))
}

func TestSolve_DeadSquares(t *testing.T) {
	// An 8×8 board with a dead 2×2 block still has an open tour.
	dead := map[board.Pos]struct{}{
		board.NewPos(3, 3): {},
		board.NewPos(3, 4): {},
		board.NewPos(4, 3): {},
		board.NewPos(4, 4): {},
	}
	res, err := warnsdorff.Solve(board.NewSize(8, 8), warnsdorff.WithDead(dead))
	require.NoError(t, err)

	tour := walkTour(t, res.Graph, board.Zero)
	require.Len(t, tour, 60)
	for _, pos := range tour {
		_, isDead := dead[pos]
		require.False(t, isDead, "tour crosses dead square %v", pos)
	}
}

func TestSolve_NoTour(t *testing.T) {
	cases := []board.Size{
		board.NewSize(2, 2),
		board.NewSize(1, 5),
		board.NewSize(3, 3),
		board.NewSize(3, 5),
		board.NewSize(3, 6),
		board.NewSize(4, 2),
		board.NewSize(4, 4),
	}
	for _, size := range cases {
		_, err := warnsdorff.Solve(size)
		require.ErrorIs(t, err, warnsdorff.ErrNoTour, "size %v", size)
	}
}

//----------------------------------------------------------------------------//
// Structured modes
//----------------------------------------------------------------------------//

func TestSolve_Closed(t *testing.T) {
	res, err := warnsdorff.Solve(board.NewSize(6, 6), warnsdorff.WithClosed(false))
	require.NoError(t, err)

	tour := walkTour(t, res.Graph, board.Zero)
	require.Len(t, tour, 36)

	// Last square links back to the start: a closed tour.
	last := tour[len(tour)-1]
	next, ok := res.Graph.NodeAt(last).Next()
	require.True(t, ok)
	require.Equal(t, board.Zero, next)
	require.True(t, board.IsKnightMove(last, board.Zero))
}

func TestSolve_ClosedSkipCorner(t *testing.T) {
	// Odd×odd tiles cannot contain their corner in a closed tour.
	res, err := warnsdorff.Solve(board.NewSize(5, 5), warnsdorff.WithClosed(true))
	require.NoError(t, err)

	start := board.NewPos(1, 0)
	tour := walkTour(t, res.Graph, start)
	require.Len(t, tour, 24)
	for _, pos := range tour {
		require.NotEqual(t, board.Zero, pos, "dead corner visited")
	}

	last := tour[len(tour)-1]
	next, ok := res.Graph.NodeAt(last).Next()
	require.True(t, ok)
	require.Equal(t, start, next)
}

func TestSolve_Stretched(t *testing.T) {
	cases := []struct {
		dir movegraph.Direction
		end board.Pos
	}{
		{movegraph.Horizontal, board.NewPos(0, 1)},
		{movegraph.Vertical, board.NewPos(1, 0)},
	}
	for _, tc := range cases {
		res, err := warnsdorff.Solve(board.NewSize(8, 8), warnsdorff.WithStretched(tc.dir))
		require.NoError(t, err, "direction %v", tc.dir)

		tour := walkTour(t, res.Graph, board.Zero)
		require.Len(t, tour, 64, "direction %v", tc.dir)
		require.Equal(t, tc.end, tour[len(tour)-1], "direction %v", tc.dir)
	}
}

func TestSolve_Freeform(t *testing.T) {
	res, err := warnsdorff.Solve(board.NewSize(4, 5), warnsdorff.WithFreeform())
	require.NoError(t, err)
	tour := walkTour(t, res.Graph, board.Zero)
	require.Len(t, tour, 20)
}

//----------------------------------------------------------------------------//
// Cache
//----------------------------------------------------------------------------//

func TestSolve_CacheHit(t *testing.T) {
	cache := warnsdorff.NewCache()
	size := board.NewSize(8, 8)

	first, err := warnsdorff.Solve(size,
		warnsdorff.WithStretched(movegraph.Horizontal), warnsdorff.WithCache(cache))
	require.NoError(t, err)
	require.NotZero(t, first.Elapsed)
	require.Equal(t, 1, cache.Len())

	second, err := warnsdorff.Solve(size,
		warnsdorff.WithStretched(movegraph.Horizontal), warnsdorff.WithCache(cache))
	require.NoError(t, err)
	require.Zero(t, second.Elapsed)
	require.True(t, second.Graph.IsView())
	require.Equal(t, 1, cache.Len())

	tour := walkTour(t, second.Graph, board.Zero)
	require.Len(t, tour, 64)
}

func TestSolve_CacheTransposed(t *testing.T) {
	cache := warnsdorff.NewCache()

	_, err := warnsdorff.Solve(board.NewSize(6, 8),
		warnsdorff.WithStretched(movegraph.Horizontal), warnsdorff.WithCache(cache))
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	// The transposed shape along the opposite axis is derived by flipping
	// the cached tile, not searched again.
	res, err := warnsdorff.Solve(board.NewSize(8, 6),
		warnsdorff.WithStretched(movegraph.Vertical), warnsdorff.WithCache(cache))
	require.NoError(t, err)
	require.Equal(t, 2, cache.Len())

	tour := walkTour(t, res.Graph, board.Zero)
	require.Len(t, tour, 48)
	require.Equal(t, board.NewPos(1, 0), tour[len(tour)-1])
}

func TestCache_Empty(t *testing.T) {
	cache := warnsdorff.NewCache()
	_, ok := cache.Get(board.NewSize(8, 8), movegraph.Horizontal)
	require.False(t, ok)
	require.Zero(t, cache.Len())
}
