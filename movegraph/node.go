package movegraph

import "github.com/katalvlaran/knightour/board"

// link is an optional tour pointer.
type link struct {
	pos board.Pos
	set bool
}

// Node is one board square's slot in the tour. Its position and edge list
// are fixed at construction; only the next/prev tour links ever change.
type Node struct {
	pos   board.Pos
	edges []board.Pos
	next  link
	prev  link
}

// Pos returns the node's own coordinate.
func (n *Node) Pos() board.Pos {
	return n.pos
}

// Edges returns the precomputed in-bounds knight-move neighbors. The slice
// is shared and must not be modified; it exists for diagnostics only.
func (n *Node) Edges() []board.Pos {
	return n.edges
}

// Next returns the tour successor, if set.
func (n *Node) Next() (board.Pos, bool) {
	return n.next.pos, n.next.set
}

// Prev returns the tour predecessor, if set.
func (n *Node) Prev() (board.Pos, bool) {
	return n.prev.pos, n.prev.set
}

// IsRoot reports whether the node is the tour root sentinel: visited,
// start of the chain, its prev pointing at itself.
func (n *Node) IsRoot() bool {
	return n.prev.set && n.prev.pos == n.pos
}

// SetNext points the tour successor at pos.
func (n *Node) SetNext(pos board.Pos) {
	n.next = link{pos: pos, set: true}
}

// SetPrev points the tour predecessor at pos.
func (n *Node) SetPrev(pos board.Pos) {
	n.prev = link{pos: pos, set: true}
}

// ClearNext unsets the tour successor.
func (n *Node) ClearNext() {
	n.next = link{}
}

// ClearPrev unsets the tour predecessor.
func (n *Node) ClearPrev() {
	n.prev = link{}
}

// TakePrev returns the current predecessor and unsets it in one step; the
// backtracking engine uses it to retreat.
func (n *Node) TakePrev() (board.Pos, bool) {
	p := n.prev
	n.prev = link{}

	return p.pos, p.set
}

// reverseInPlace swaps the roles of next and prev.
func (n *Node) reverseInPlace() {
	n.next, n.prev = n.prev, n.next
}

// NodeRef is a read-only handle to a node, transparently applying the
// owning view's reversal: on a reversed view, Next reads prev and vice
// versa.
type NodeRef struct {
	node     *Node
	reversed bool
}

// Pos returns the referenced node's coordinate.
func (r NodeRef) Pos() board.Pos {
	return r.node.pos
}

// Next returns the tour successor under the view's orientation.
func (r NodeRef) Next() (board.Pos, bool) {
	if r.reversed {
		return r.node.Prev()
	}

	return r.node.Next()
}

// Prev returns the tour predecessor under the view's orientation.
func (r NodeRef) Prev() (board.Pos, bool) {
	if r.reversed {
		return r.node.Next()
	}

	return r.node.Prev()
}

// Edges returns the referenced node's precomputed knight edges.
func (r NodeRef) Edges() []board.Pos {
	return r.node.edges
}

// Reversed returns the same reference with the orientation flipped.
func (r NodeRef) Reversed() NodeRef {
	return NodeRef{node: r.node, reversed: !r.reversed}
}

// cloneWithOffset materializes the referenced node translated by offset,
// honoring the view's orientation.
func (r NodeRef) cloneWithOffset(offset board.Pos) Node {
	n := Node{
		pos:   r.node.pos.Add(offset),
		edges: translate(r.node.edges, offset),
		next:  translateLink(r.node.next, offset),
		prev:  translateLink(r.node.prev, offset),
	}
	if r.reversed {
		n.reverseInPlace()
	}

	return n
}

func translate(positions []board.Pos, offset board.Pos) []board.Pos {
	if offset == board.Zero {
		return positions
	}
	out := make([]board.Pos, len(positions))
	for i, p := range positions {
		out[i] = p.Add(offset)
	}

	return out
}

func translateLink(l link, offset board.Pos) link {
	if !l.set {
		return link{}
	}

	return link{pos: l.pos.Add(offset), set: true}
}
