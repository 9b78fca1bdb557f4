package warnsdorff

import (
	"fmt"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/movegraph"
)

// partnerSet maps a position to the partners of its predetermined edges.
type partnerSet map[board.Pos]map[board.Pos]struct{}

func (p partnerSet) add(from, to board.Pos) {
	if _, ok := p[from]; !ok {
		p[from] = make(map[board.Pos]struct{}, 2)
	}
	p[from][to] = struct{}{}
}

func (p partnerSet) link(a, b board.Pos) {
	p.add(a, b)
	p.add(b, a)
}

// mustTranslate translates pos by (dc, dr); the offsets used here stay on
// any tile of at least 3×3, so failure means the partitioner handed the
// engine an impossible tile.
func mustTranslate(pos board.Pos, dc, dr int32) board.Pos {
	to, ok := pos.TryTranslate(dc, dr)
	if !ok {
		panic(fmt.Sprintf("warnsdorff: preconnection offset (%d,%d) from %v leaves the board", dc, dr, pos))
	}

	return to
}

// preconnect builds the predetermined-edge map for structured modes: a
// hardcoded knight-move pattern near three tile corners (the fourth never
// connects to anything) that guarantees the corners wire up so the tile
// can be spliced to its neighbors, plus — for stretched tiles large
// enough — a fixed chain leading to the designated end point.
func preconnect(size board.Size, o Options) partnerSet {
	var (
		includeTopLeft bool // corner pattern at the origin corner too
		connectTopLeft bool // connect the origin corner square itself
		stretched      bool
	)
	switch o.Mode {
	case Basic:
		return nil
	case Closed:
		includeTopLeft = true
		connectTopLeft = !o.SkipCorner
	case Stretched:
		stretched = true
	}

	// Offset sign per corner: origin, top-right, bottom-left. The bottom
	// right corner is skipped — nothing ever connects to it.
	w := [3]int32{1, -1, 1}
	h := [3]int32{1, 1, -1}

	res := make(partnerSet)
	for i := 0; i < 3; i++ {
		if i == 0 && !includeTopLeft {
			continue
		}

		var corner board.Pos
		if w[i] == -1 {
			corner.Col = size.Width - 1
		}
		if h[i] == -1 {
			corner.Row = size.Height - 1
		}

		// Two fixed edges framing the corner: (0,h)-(2w,0) and (0,2h)-(w,0).
		res.link(mustTranslate(corner, 0, h[i]), mustTranslate(corner, 2*w[i], 0))
		res.link(mustTranslate(corner, 0, 2*h[i]), mustTranslate(corner, w[i], 0))

		// The origin corner is left out when it is the search start or dead.
		if i == 0 && !connectTopLeft {
			continue
		}
		res.link(mustTranslate(corner, 2*w[i], h[i]), corner)
		res.link(mustTranslate(corner, w[i], 2*h[i]), corner)
	}

	if stretched {
		preconnectEndPoint(res, o.Direction, size)
	}

	return res
}

// preconnectEndPoint fixes a diagonal chain of knight moves from the
// stretched end point toward the tile's center, keeping the search from
// walling the end point in on larger tiles.
func preconnectEndPoint(res partnerSet, dir movegraph.Direction, size board.Size) {
	half := size.MaxDim() / 2
	if half > size.Width {
		half = size.Width
	}
	if half > size.Height {
		half = size.Height
	}
	if half < 5 {
		// Small tile; the end point cannot get walled in.
		return
	}

	var prev board.Pos
	var dc, dr int32
	if dir.IsHorizontal() {
		prev, dc, dr = board.NewPos(0, 1), 2, 1
	} else {
		prev, dc, dr = board.NewPos(1, 0), 1, 2
	}

	for {
		next, ok := prev.TryTranslate(dc, dr)
		if !ok || !size.Fits(next) {
			return
		}
		res.link(prev, next)
		prev = next
		if prev.Col >= half && prev.Row >= half {
			return
		}
	}
}
