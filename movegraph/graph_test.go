package movegraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/movegraph"
)

// chain links the given positions into a tour on g, marking the first
// position as the root sentinel, and optionally closes the cycle.
func chain(g *movegraph.Graph, closed bool, positions ...board.Pos) {
	g.NodeMut(positions[0]).SetPrev(positions[0])
	for i := 1; i < len(positions); i++ {
		g.NodeMut(positions[i-1]).SetNext(positions[i])
		g.NodeMut(positions[i]).SetPrev(positions[i-1])
	}
	if closed {
		g.NodeMut(positions[len(positions)-1]).SetNext(positions[0])
	}
}

//----------------------------------------------------------------------------//
// Construction and node access
//----------------------------------------------------------------------------//

// TestNew_Edges verifies the precomputed knight-edge lists.
func TestNew_Edges(t *testing.T) {
	g := movegraph.New(8, 8)
	cases := []struct {
		pos  board.Pos
		want int
	}{
		{board.NewPos(0, 0), 2},
		{board.NewPos(7, 7), 2},
		{board.NewPos(0, 4), 4},
		{board.NewPos(4, 4), 8},
		{board.NewPos(1, 1), 4},
	}
	for _, tc := range cases {
		got := g.NodeAt(tc.pos).Edges()
		if len(got) != tc.want {
			t.Errorf("edges at %v = %d; want %d", tc.pos, len(got), tc.want)
		}
		for _, e := range got {
			if !board.IsKnightMove(tc.pos, e) {
				t.Errorf("edge %v -> %v is not a knight move", tc.pos, e)
			}
		}
	}
}

// TestNodeMut_ViewPanics asserts that mutation through any view fails loudly.
func TestNodeMut_ViewPanics(t *testing.T) {
	g := movegraph.New(4, 4)
	views := map[string]*movegraph.Graph{
		"ref":     g.Ref(),
		"reverse": g.Ref().Reverse(),
		"section": g.Section(board.NewPos(1, 1), board.NewSize(2, 2)),
	}
	for name, v := range views {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NodeMut through %s view did not panic", name)
				}
			}()
			v.NodeMut(board.Zero)
		}()
	}
}

//----------------------------------------------------------------------------//
// View algebra
//----------------------------------------------------------------------------//

// TestReverse_View checks that a reversed view swaps next/prev on read and
// that reversing twice collapses to the identity.
func TestReverse_View(t *testing.T) {
	g := movegraph.New(3, 3)
	chain(g, false, board.NewPos(0, 0), board.NewPos(2, 1), board.NewPos(0, 2))

	rev := g.Ref().Reverse()
	n := rev.NodeAt(board.NewPos(2, 1))
	if prev, _ := n.Prev(); prev != board.NewPos(0, 2) {
		t.Errorf("reversed prev = %v; want C-3", prev)
	}
	if next, _ := n.Next(); next != board.NewPos(0, 0) {
		t.Errorf("reversed next = %v; want A-1", next)
	}

	ident := rev.Reverse()
	n = ident.NodeAt(board.NewPos(2, 1))
	if next, _ := n.Next(); next != board.NewPos(0, 2) {
		t.Errorf("double-reversed next = %v; want C-3", next)
	}
}

// TestReverse_Owning checks the relink pass on the owning variant.
func TestReverse_Owning(t *testing.T) {
	g := movegraph.New(3, 3)
	chain(g, false, board.NewPos(0, 0), board.NewPos(2, 1), board.NewPos(0, 2))

	rev := g.Reverse()
	if rev.IsView() {
		t.Fatal("Reverse of owning graph returned a view")
	}
	if next, ok := rev.NodeAt(board.NewPos(0, 2)).Next(); !ok || next != board.NewPos(2, 1) {
		t.Errorf("owning reverse next = %v,%v; want C-2,true", next, ok)
	}
	// Source graph is untouched.
	if next, _ := g.NodeAt(board.NewPos(0, 0)).Next(); next != board.NewPos(2, 1) {
		t.Error("Reverse mutated its source")
	}
}

// TestSection_Compose verifies that sections translate reads and that a
// section of a section collapses offsets.
func TestSection_Compose(t *testing.T) {
	g := movegraph.New(6, 6)
	g.NodeMut(board.NewPos(3, 3)).SetNext(board.NewPos(5, 4))

	sec := g.Section(board.NewPos(2, 2), board.NewSize(4, 4))
	inner := sec.Section(board.NewPos(1, 1), board.NewSize(2, 2))
	n := inner.NodeAt(board.Zero)
	if n.Pos() != board.NewPos(3, 3) {
		t.Fatalf("composed section reads %v; want D-4", n.Pos())
	}
	if next, ok := n.Next(); !ok || next != board.NewPos(5, 4) {
		t.Errorf("composed section next = %v,%v; want F-5,true", next, ok)
	}
}

//----------------------------------------------------------------------------//
// Graph-level operations
//----------------------------------------------------------------------------//

// TestCombine places two tiles side by side and translates the second
// tile's positions and links.
func TestCombine(t *testing.T) {
	left := movegraph.New(2, 2)
	chain(left, false, board.NewPos(0, 0), board.NewPos(1, 1))
	right := movegraph.New(3, 2)
	chain(right, false, board.NewPos(0, 0), board.NewPos(2, 1))

	got, err := left.Combine(right, movegraph.Horizontal)
	if err != nil {
		t.Fatalf("Combine error: %v", err)
	}
	if got.Size() != board.NewSize(5, 2) {
		t.Fatalf("combined size = %v; want 5x2", got.Size())
	}
	// Right tile's chain shifted by (2,0); its root sentinel moved too.
	if next, _ := got.NodeAt(board.NewPos(2, 0)).Next(); next != board.NewPos(4, 1) {
		t.Errorf("translated next = %v; want E-2", next)
	}
	if prev, _ := got.NodeAt(board.NewPos(2, 0)).Prev(); prev != board.NewPos(2, 0) {
		t.Errorf("translated root sentinel prev = %v; want C-1", prev)
	}

	if _, err = left.Combine(movegraph.New(3, 3), movegraph.Horizontal); !errors.Is(err, movegraph.ErrDimensionMismatch) {
		t.Errorf("height mismatch error = %v; want ErrDimensionMismatch", err)
	}
	if _, err = left.Combine(movegraph.New(3, 2), movegraph.Vertical); !errors.Is(err, movegraph.ErrDimensionMismatch) {
		t.Errorf("width mismatch error = %v; want ErrDimensionMismatch", err)
	}
}

// TestInsertSection copies links only, translated by the offset.
func TestInsertSection(t *testing.T) {
	tile := movegraph.New(2, 2)
	chain(tile, false, board.NewPos(0, 0), board.NewPos(1, 1))

	dst := movegraph.New(4, 4)
	dst.InsertSection(tile, board.NewPos(2, 2))

	if next, ok := dst.NodeAt(board.NewPos(2, 2)).Next(); !ok || next != board.NewPos(3, 3) {
		t.Errorf("inserted next = %v,%v; want D-4,true", next, ok)
	}
	// Edges belong to the destination graph, not the tile.
	for _, e := range dst.NodeAt(board.NewPos(2, 2)).Edges() {
		if !board.NewSize(4, 4).Fits(e) {
			t.Errorf("edge %v escaped the destination board", e)
		}
	}
}

// TestReverseSection swaps links in place only inside the rectangle.
func TestReverseSection(t *testing.T) {
	g := movegraph.New(4, 2)
	g.NodeMut(board.NewPos(0, 0)).SetNext(board.NewPos(2, 1))
	g.NodeMut(board.NewPos(3, 0)).SetNext(board.NewPos(1, 1))

	g.ReverseSection(board.NewPos(2, 0), board.NewSize(2, 2))

	if _, ok := g.NodeAt(board.NewPos(0, 0)).Prev(); ok {
		t.Error("node outside the section was reversed")
	}
	if prev, ok := g.NodeAt(board.NewPos(3, 0)).Prev(); !ok || prev != board.NewPos(1, 1) {
		t.Errorf("section node prev = %v,%v; want B-2,true", prev, ok)
	}
}

// TestFlip transposes positions, edges and links.
func TestFlip(t *testing.T) {
	g := movegraph.New(2, 4)
	chain(g, false, board.NewPos(0, 0), board.NewPos(1, 2))

	f := g.Flip()
	if f.Size() != board.NewSize(4, 2) {
		t.Fatalf("flipped size = %v; want 4x2", f.Size())
	}
	if next, ok := f.NodeAt(board.Zero).Next(); !ok || next != board.NewPos(2, 1) {
		t.Errorf("flipped next = %v,%v; want C-2,true", next, ok)
	}
	for _, e := range f.NodeAt(board.NewPos(2, 1)).Edges() {
		if !board.IsKnightMove(board.NewPos(2, 1), e) {
			t.Errorf("flipped edge %v is not a knight move", e)
		}
	}
}

//----------------------------------------------------------------------------//
// Materialization
//----------------------------------------------------------------------------//

// TestToBoard_OpenChain numbers an open chain from its head.
func TestToBoard_OpenChain(t *testing.T) {
	g := movegraph.New(3, 3)
	chain(g, false, board.NewPos(0, 0), board.NewPos(2, 1), board.NewPos(0, 2), board.NewPos(1, 0))

	b := g.ToBoard()
	want := map[board.Pos]int64{
		board.NewPos(0, 0): 1,
		board.NewPos(2, 1): 2,
		board.NewPos(0, 2): 3,
		board.NewPos(1, 0): 4,
	}
	for pos, n := range want {
		if got := b.At(pos); got != n {
			t.Errorf("At(%v) = %d; want %d", pos, got, n)
		}
	}
	if got := b.Visited(); got != 4 {
		t.Errorf("Visited() = %d; want 4", got)
	}
	if got := len(b.Unvisited()); got != 5 {
		t.Errorf("len(Unvisited()) = %d; want 5", got)
	}
}

// TestToBoard_Cycle stops numbering when the walk closes on itself.
func TestToBoard_Cycle(t *testing.T) {
	g := movegraph.New(3, 3)
	chain(g, true, board.NewPos(0, 0), board.NewPos(2, 1), board.NewPos(1, 2))

	b := g.ToBoard()
	if got := b.Visited(); got != 3 {
		t.Errorf("Visited() = %d; want 3", got)
	}
	if got := b.At(board.NewPos(0, 0)); got != 1 {
		t.Errorf("cycle numbering starts at %d; want 1", got)
	}
}

// TestToBoard_Empty returns an all-zero board for an unsolved graph.
func TestToBoard_Empty(t *testing.T) {
	if got := movegraph.New(2, 2).ToBoard().Visited(); got != 0 {
		t.Errorf("Visited() = %d; want 0", got)
	}
}
