package divide

import (
	"fmt"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/movegraph"
)

// seamTranslate moves from the seam into the already-placed side; the
// partitioner never produces a seam closer than two squares to the board
// edge on that side.
func seamTranslate(pos board.Pos, dc, dr int32) board.Pos {
	to, ok := pos.TryTranslate(dc, dr)
	if !ok {
		panic(fmt.Sprintf("divide: seam offset (%d,%d) from %v leaves the board", dc, dr, pos))
	}

	return to
}

// Merge splices the solved tile at seam (of the given size) into the
// assembled graph in place. The tile's open tour runs between the two
// boundary squares next to the seam; the already-placed side gives up
// one corner edge and gains two edges across the seam, turning the two
// tours into one.
//
// A boundary node whose links match no expected pattern yields a
// *SpliceError: the partitioner or search produced a structurally
// invalid tour, which is a defect rather than an unsolvable board.
func Merge(g *movegraph.Graph, seam board.Pos, size board.Size, dir movegraph.Direction) error {
	secondStart := seam
	var secondEnd, firstEnd, firstStart board.Pos
	if dir.IsHorizontal() {
		secondEnd = seam.Add(board.NewPos(0, 1))
		firstEnd = seamTranslate(seam, -2, 0)
		firstStart = seamTranslate(seam, -1, 2)
	} else {
		secondEnd = seam.Add(board.NewPos(1, 0))
		firstEnd = seamTranslate(seam, 0, -2)
		firstStart = seamTranslate(seam, 2, -1)
	}

	// The corner edge firstEnd-firstStart exists in either orientation.
	// When it runs end-to-start the tile's tour points the wrong way for
	// the splice, so reverse the tile in place first.
	if next, ok := g.NodeAt(firstEnd).Next(); ok && next == firstStart {
		g.ReverseSection(seam, size)
	}

	if err := redirect(g.NodeMut(firstStart), &firstEnd, secondStart, dir); err != nil {
		return err
	}
	if err := redirect(g.NodeMut(firstEnd), &firstStart, secondEnd, dir); err != nil {
		return err
	}
	if err := redirect(g.NodeMut(secondStart), nil, firstStart, dir); err != nil {
		return err
	}

	return redirect(g.NodeMut(secondEnd), nil, firstEnd, dir)
}

// redirect rewires whichever link of n pointed at old to point at target
// instead. A nil old matches an open tile end: an unset link, or the
// root sentinel link a solved tile marks its start with.
func redirect(n *movegraph.Node, old *board.Pos, target board.Pos, dir movegraph.Direction) error {
	matches := func(link board.Pos, set bool) bool {
		if old == nil {
			return !set || link == n.Pos()
		}

		return set && link == *old
	}

	prev, hasPrev := n.Prev()
	next, hasNext := n.Next()
	switch {
	case matches(prev, hasPrev):
		n.SetPrev(target)
	case matches(next, hasNext):
		n.SetNext(target)
	default:
		err := &SpliceError{Pos: n.Pos(), OldTarget: old, NewTarget: target, Dir: dir}
		if hasPrev {
			err.Prev = &prev
		}
		if hasNext {
			err.Next = &next
		}

		return err
	}

	return nil
}
