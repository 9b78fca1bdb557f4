package movegraph

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/knightour/board"
)

// Board is the externally visible, materialized form of a solved graph:
// every visited square numbered 1..N in tour order, dead or unvisited
// squares left 0.
type Board struct {
	size  board.Size
	cells []int64
}

// Size returns the board's dimensions.
func (b *Board) Size() board.Size {
	return b.size
}

// At returns the tour number of pos (1-based), or 0 for a dead or
// unvisited square.
func (b *Board) At(pos board.Pos) int64 {
	return b.cells[int(pos.Row)*int(b.size.Width)+int(pos.Col)]
}

// Visited returns the count of numbered squares.
func (b *Board) Visited() int64 {
	var n int64
	for _, c := range b.cells {
		if c != 0 {
			n++
		}
	}

	return n
}

// Unvisited lists the squares left unnumbered, for diagnostics.
func (b *Board) Unvisited() []board.Pos {
	var out []board.Pos
	var col, row uint16
	for row = 0; row < b.size.Height; row++ {
		for col = 0; col < b.size.Width; col++ {
			pos := board.NewPos(col, row)
			if b.At(pos) == 0 {
				out = append(out, pos)
			}
		}
	}

	return out
}

// String renders the numbered board as a bordered text grid.
func (b *Board) String() string {
	width := len(strconv.FormatInt(b.size.Area(), 10))
	var sb strings.Builder

	border := func() {
		for i := 0; i < int(b.size.Width); i++ {
			sb.WriteString("+--")
			sb.WriteString(strings.Repeat("-", width))
		}
		sb.WriteString("+\n")
	}

	border()
	var col, row uint16
	for row = 0; row < b.size.Height; row++ {
		for col = 0; col < b.size.Width; col++ {
			v := strconv.FormatInt(b.At(board.NewPos(col, row)), 10)
			sb.WriteString("| ")
			sb.WriteString(strings.Repeat(" ", width-len(v)))
			sb.WriteString(v)
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
		border()
	}

	return sb.String()
}

// ToBoard materializes the tour: it picks the first linked node in scan
// order, walks backward via prev until it finds the root sentinel, a
// chain head, or comes full circle, then numbers squares 1..N walking
// forward via next. Squares with neither link stay 0 (dead or unvisited).
//
// Complexity: O(W×H).
func (g *Graph) ToBoard() *Board {
	b := &Board{
		size:  g.Size(),
		cells: make([]int64, int(g.width)*int(g.height)),
	}

	// 1. Find any node that is part of the tour.
	var start NodeRef
	var found bool
	g.eachPos(func(pos board.Pos) {
		if found {
			return
		}
		n := g.NodeAt(pos)
		_, hasNext := n.Next()
		_, hasPrev := n.Prev()
		if hasNext || hasPrev {
			start, found = n, true
		}
	})
	if !found {
		return b
	}

	// 2. Walk backward to the start of the chain. The walk ends at the
	// root sentinel (prev == own pos), at a node with no prev, or back at
	// the walk's own origin for a sentinel-less cycle.
	walkStart := start.Pos()
	cur := start
	for {
		prev, ok := cur.Prev()
		if !ok || prev == cur.Pos() {
			break
		}
		if prev == walkStart {
			break
		}
		cur = g.NodeAt(prev)
	}

	// 3. Number forward until the chain ends or closes.
	var i int64 = 1
	b.setAt(cur.Pos(), i)
	for {
		next, ok := cur.Next()
		if !ok || b.At(next) != 0 {
			break
		}
		i++
		b.setAt(next, i)
		cur = g.NodeAt(next)
	}

	return b
}

func (b *Board) setAt(pos board.Pos, v int64) {
	b.cells[int(pos.Row)*int(b.size.Width)+int(pos.Col)] = v
}
