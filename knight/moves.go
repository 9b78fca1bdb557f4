package knight

import (
	"sort"

	"github.com/katalvlaran/knightour/board"
)

// Reachable reports whether a knight standing on from may move to to.
type Reachable func(from, to board.Pos) bool

// lookaheadDepth is how many moves ahead the Warnsdorff ranking inspects.
const lookaheadDepth = 1

// unreachableRank sorts a zero-mobility candidate behind every live one.
const unreachableRank = int(^uint(0) >> 1)

// PossibleMoves returns the legal moves from pos, filtered by reachable
// and sorted ascending by 1-move-lookahead onward mobility (Warnsdorff's
// rule). The sort is stable, so equally ranked candidates keep the
// canonical offset order.
//
// Complexity: O(1) per call — at most 8 candidates, each ranked by
// counting at most 8 onward moves.
func PossibleMoves(pos board.Pos, reachable Reachable) []board.Pos {
	moves := generate(pos, reachable)

	ranks := make(map[board.Pos]int, len(moves))
	for _, m := range moves {
		n := MovesCount(m, reachable, lookaheadDepth)
		if n < lookaheadDepth {
			n = unreachableRank
		}
		ranks[m] = n
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return ranks[moves[i]] < ranks[moves[j]]
	})

	return moves
}

// MovesCount counts the moves reachable from pos looking ahead the given
// number of moves: depth 1 counts immediate candidates, depth 2 sums each
// candidate's own candidate count, and so on. Depth 0 is defined as 0.
func MovesCount(pos board.Pos, reachable Reachable, ahead uint8) int {
	if ahead == 0 {
		return 0
	}

	count := 0
	for _, m := range generate(pos, reachable) {
		if ahead == 1 {
			count++
		} else {
			count += MovesCount(m, reachable, ahead-1)
		}
	}

	return count
}

// generate yields the in-range knight moves from pos passing reachable,
// in canonical offset order.
func generate(pos board.Pos, reachable Reachable) []board.Pos {
	moves := make([]board.Pos, 0, 8)
	for _, d := range board.KnightOffsets {
		to, ok := pos.TryTranslate(d[0], d[1])
		if ok && reachable(pos, to) {
			moves = append(moves, to)
		}
	}

	return moves
}
