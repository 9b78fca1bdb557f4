package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/movegraph"
	"github.com/katalvlaran/knightour/render"
)

// tinyTour links a 3-move tour on a 3×3 graph.
func tinyTour() *movegraph.Graph {
	g := movegraph.New(3, 3)
	positions := []board.Pos{
		board.NewPos(0, 0), board.NewPos(2, 1), board.NewPos(0, 2), board.NewPos(1, 0),
	}
	g.NodeMut(positions[0]).SetPrev(positions[0])
	for i := 1; i < len(positions); i++ {
		g.NodeMut(positions[i-1]).SetNext(positions[i])
		g.NodeMut(positions[i]).SetPrev(positions[i-1])
	}

	return g
}

func TestText(t *testing.T) {
	var buf strings.Builder
	if err := render.Text(&buf, tinyTour().ToBoard()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"1", "2", "3", "4", "|"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestSVG(t *testing.T) {
	var buf strings.Builder
	render.SVG(&buf, tinyTour(), 1234*time.Millisecond)

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("output is not an svg document")
	}
	if !strings.Contains(out, "Elapsed time: 1.234 seconds") {
		t.Errorf("missing title, got:\n%s", out)
	}
	// 3 tour moves on top of the 8 grid lines.
	if got := strings.Count(out, "<line"); got != 8+3 {
		t.Errorf("line count = %d; want 11", got)
	}

	// A move from (0,0) to (2,1): centers (15,25) and (35,35).
	if !strings.Contains(out, `x1="15"`) || !strings.Contains(out, `y1="25"`) {
		t.Error("first move does not start at the (0,0) cell center")
	}
}
