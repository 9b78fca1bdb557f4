package divide

import (
	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/movegraph"
	"github.com/katalvlaran/knightour/warnsdorff"
)

// base4x10 is a known stretched tour of the 4×10 tile, from (0,0) to
// (0,1), as (col,row) steps. The heuristic search struggles with this
// shape, so it is seeded instead of searched.
var base4x10 = [][2]uint16{
	{2, 1}, {3, 3}, {1, 2}, {3, 1}, {1, 0}, {0, 2}, {2, 3}, {0, 4}, {2, 5}, {3, 7},
	{2, 9}, {0, 8}, {1, 6}, {3, 5}, {1, 4}, {0, 6}, {1, 8}, {3, 9}, {2, 7}, {1, 5},
	{3, 6}, {2, 8}, {0, 9}, {1, 7}, {3, 8}, {1, 9}, {0, 7}, {2, 6}, {3, 4}, {2, 2},
	{3, 0}, {1, 1}, {0, 3}, {2, 4}, {0, 5}, {1, 3}, {3, 2}, {2, 0}, {0, 1},
}

// baseTile returns the precomputed stretched tour for the tile shapes
// that have one, seeding the cache with both orientations on first use.
func baseTile(c *warnsdorff.Cache, size board.Size, dir movegraph.Direction) (*movegraph.Graph, bool) {
	switch {
	case dir == movegraph.Horizontal && size.Width == 4 && size.Height == 10:
	case dir == movegraph.Vertical && size.Width == 10 && size.Height == 4:
	default:
		return nil, false
	}

	if g, ok := c.Get(size, dir); ok {
		return g, true
	}

	g := movegraph.New(4, 10)
	prev := board.Zero
	for _, step := range base4x10 {
		next := board.NewPos(step[0], step[1])
		g.NodeMut(prev).SetNext(next)
		g.NodeMut(next).SetPrev(prev)
		prev = next
	}

	c.Put(board.NewSize(4, 10), movegraph.Horizontal, g)
	c.Put(board.NewSize(10, 4), movegraph.Vertical, g.Flip())

	cached, _ := c.Get(size, dir)

	return cached, true
}
