package movegraph

import (
	"fmt"

	"github.com/katalvlaran/knightour/board"
)

// Graph is the move graph: a width×height grid of tour nodes. It either
// owns its node storage or is a zero-copy view over another Graph (an
// alias, a reversal, a rectangular section, or a reversed section). A view
// borrows its source for its entire lifetime and must not outlive it.
type Graph struct {
	width, height uint16

	// nodes is the owning storage, row-major. nil for views.
	nodes []Node

	// src, reversed and offset describe a view: reads are delegated to
	// src at pos+offset, with next/prev swapped when reversed.
	src      *Graph
	reversed bool
	offset   board.Pos
}

// New allocates an owning width×height graph. Every node carries its
// precomputed list of in-bounds knight-move neighbors; all tour links
// start unset.
//
// Complexity: O(W×H).
func New(width, height uint16) *Graph {
	g := newEmpty(width, height)
	var y, x uint16
	for y = 0; y < height; y++ {
		for x = 0; x < width; x++ {
			pos := board.NewPos(x, y)
			edges := make([]board.Pos, 0, 8)
			for _, d := range board.KnightOffsets {
				if to, ok := pos.TryTranslate(d[0], d[1]); ok && to.Col < width && to.Row < height {
					edges = append(edges, to)
				}
			}
			g.nodes[g.index(pos)] = Node{pos: pos, edges: edges}
		}
	}

	return g
}

// newEmpty allocates owning storage with zeroed nodes (no edges, no links).
func newEmpty(width, height uint16) *Graph {
	return &Graph{
		width:  width,
		height: height,
		nodes:  make([]Node, int(width)*int(height)),
	}
}

// Size returns the graph's dimensions.
func (g *Graph) Size() board.Size {
	return board.NewSize(g.width, g.height)
}

// Width returns the graph's width in squares.
func (g *Graph) Width() uint16 { return g.width }

// Height returns the graph's height in squares.
func (g *Graph) Height() uint16 { return g.height }

// IsView reports whether g is a non-owning view.
func (g *Graph) IsView() bool { return g.src != nil }

func (g *Graph) index(pos board.Pos) int {
	return int(pos.Row)*int(g.width) + int(pos.Col)
}

func (g *Graph) checkBounds(pos board.Pos) {
	if pos.Col >= g.width || pos.Row >= g.height {
		panic(fmt.Sprintf("movegraph: position %v outside %v", pos, g.Size()))
	}
}

// NodeAt returns a read handle to the node at pos, applying the view's
// transform (offset translation and next/prev reversal) on the way.
func (g *Graph) NodeAt(pos board.Pos) NodeRef {
	g.checkBounds(pos)
	if g.src != nil {
		r := g.src.NodeAt(pos.Add(g.offset))
		if g.reversed {
			r = r.Reversed()
		}

		return r
	}

	return NodeRef{node: &g.nodes[g.index(pos)]}
}

// NodeMut returns a mutable handle to the node at pos. Only the owning
// variant supports mutation; calling NodeMut on a view is a programming
// error and panics.
func (g *Graph) NodeMut(pos board.Pos) *Node {
	if g.src != nil {
		panic("movegraph: cannot mutate through a graph view")
	}
	g.checkBounds(pos)

	return &g.nodes[g.index(pos)]
}

// Ref returns a plain non-owning view of g. O(1).
func (g *Graph) Ref() *Graph {
	if g.src != nil {
		c := *g

		return &c
	}

	return &Graph{width: g.width, height: g.height, src: g}
}

// Reverse returns g with the next/prev interpretation swapped. For views
// this is O(1) and collapses algebraically (a reversal of a reversal is
// the identity). For the owning variant it is a full relink pass into a
// fresh owning graph, keeping later iteration cheap.
func (g *Graph) Reverse() *Graph {
	if g.src != nil {
		c := *g
		c.reversed = !c.reversed

		return &c
	}

	res := newEmpty(g.width, g.height)
	for i := range g.nodes {
		n := g.nodes[i]
		n.reverseInPlace()
		res.nodes[i] = n
	}

	return res
}

// Section returns a zero-copy view of the rectangle of the given size
// anchored at offset. Sections of sections collapse into a single offset.
// The rectangle must lie within g; violating that is a programming error
// and panics.
func (g *Graph) Section(offset board.Pos, size board.Size) *Graph {
	if int(offset.Col)+int(size.Width) > int(g.width) || int(offset.Row)+int(size.Height) > int(g.height) {
		panic(fmt.Sprintf("movegraph: section %v at %v outside %v", size, offset, g.Size()))
	}
	if g.src != nil {
		return &Graph{
			width:    size.Width,
			height:   size.Height,
			src:      g.src,
			reversed: g.reversed,
			offset:   g.offset.Add(offset),
		}
	}

	return &Graph{width: size.Width, height: size.Height, src: g, offset: offset}
}

// Combine places other next to g along direction and returns a new owning
// graph holding both, every copied node's position, edge list and links
// translated by the placement offset. The non-merge dimension must match
// exactly; a mismatch is a partitioner defect reported as
// ErrDimensionMismatch.
//
// Complexity: O(area of the result).
func (g *Graph) Combine(other *Graph, direction Direction) (*Graph, error) {
	var width, height uint16
	var offset board.Pos
	switch direction {
	case Horizontal:
		if g.height != other.height {
			return nil, fmt.Errorf("%w: heights %d and %d (horizontal combine)",
				ErrDimensionMismatch, g.height, other.height)
		}
		width, height = g.width+other.width, g.height
		offset = board.NewPos(g.width, 0)
	default:
		if g.width != other.width {
			return nil, fmt.Errorf("%w: widths %d and %d (vertical combine)",
				ErrDimensionMismatch, g.width, other.width)
		}
		width, height = g.width, g.height+other.height
		offset = board.NewPos(0, g.height)
	}

	res := newEmpty(width, height)
	g.eachPos(func(pos board.Pos) {
		n := g.NodeAt(pos).cloneWithOffset(board.Zero)
		res.nodes[res.index(n.pos)] = n
	})
	other.eachPos(func(pos board.Pos) {
		n := other.NodeAt(pos).cloneWithOffset(offset)
		res.nodes[res.index(n.pos)] = n
	})

	return res, nil
}

// InsertSection copies only the tour links (not the edge lists) of every
// node of src into g at offset; this is how pre-solved tiles land in the
// final board-sized graph. g must be the owning variant and the section
// must fit.
func (g *Graph) InsertSection(src *Graph, offset board.Pos) {
	if int(offset.Col)+int(src.width) > int(g.width) || int(offset.Row)+int(src.height) > int(g.height) {
		panic(fmt.Sprintf("movegraph: insert of %v at %v outside %v", src.Size(), offset, g.Size()))
	}
	src.eachPos(func(pos board.Pos) {
		from := src.NodeAt(pos)
		to := g.NodeMut(pos.Add(offset))
		if next, ok := from.Next(); ok {
			to.SetNext(next.Add(offset))
		} else {
			to.ClearNext()
		}
		if prev, ok := from.Prev(); ok {
			to.SetPrev(prev.Add(offset))
		} else {
			to.ClearPrev()
		}
	})
}

// ReverseSection swaps next and prev in place for every node of the given
// rectangle. The merger applies it when a tile's internal orientation does
// not match the seam.
func (g *Graph) ReverseSection(pos board.Pos, size board.Size) {
	var col, row uint16
	for col = pos.Col; col < pos.Col+size.Width; col++ {
		for row = pos.Row; row < pos.Row+size.Height; row++ {
			g.NodeMut(board.NewPos(col, row)).reverseInPlace()
		}
	}
}

// Flip returns a new owning graph transposed along the main diagonal:
// every node's position, edge list and links have their axes swapped.
// A cached horizontal stretched tile flipped this way is a valid vertical
// solution for the transposed size.
func (g *Graph) Flip() *Graph {
	res := newEmpty(g.height, g.width)
	g.eachPos(func(pos board.Pos) {
		from := g.NodeAt(pos)
		n := Node{pos: flipPos(pos)}
		n.edges = make([]board.Pos, len(from.Edges()))
		for i, e := range from.Edges() {
			n.edges[i] = flipPos(e)
		}
		if next, ok := from.Next(); ok {
			n.SetNext(flipPos(next))
		}
		if prev, ok := from.Prev(); ok {
			n.SetPrev(flipPos(prev))
		}
		res.nodes[res.index(n.pos)] = n
	})

	return res
}

func flipPos(p board.Pos) board.Pos {
	return board.NewPos(p.Row, p.Col)
}

// eachPos visits every position of g in row-major order.
func (g *Graph) eachPos(fn func(board.Pos)) {
	var y, x uint16
	for y = 0; y < g.height; y++ {
		for x = 0; x < g.width; x++ {
			fn(board.NewPos(x, y))
		}
	}
}
