// Package render writes a solved tour as a numbered text grid or as an
// SVG drawing of the move sequence.
package render

import (
	"fmt"
	"io"
	"time"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/movegraph"
)

const (
	cell     = 10 // square size in pixels
	margin   = 10
	titleBar = 20
	minWidth = 250 // keep the title readable on tiny boards
)

// Text writes the bordered numbered grid of a materialized board.
func Text(w io.Writer, b *movegraph.Board) error {
	_, err := io.WriteString(w, b.String())

	return err
}

// SVG draws the tour: a title line with the elapsed time, a gray board
// grid, and one black line segment per move between cell centers.
func SVG(w io.Writer, g *movegraph.Graph, elapsed time.Duration) {
	gridW := int(g.Width()) * cell
	gridH := int(g.Height()) * cell

	fileWidth := gridW + 1 + 2*margin
	if fileWidth < minWidth {
		fileWidth = minWidth
	}
	fileHeight := gridH + 1 + margin + titleBar

	canvas := svg.New(w)
	canvas.Start(fileWidth, fileHeight)

	title := fmt.Sprintf("Elapsed time: %d.%03d seconds", int(elapsed.Seconds()), elapsed.Milliseconds()%1000)
	canvas.Text(margin, margin, title, "font-size:15px;dominant-baseline:middle;font-family:Arial;fill:black")

	const gridStyle = "stroke:gray;stroke-width:1"
	for col := 0; col <= int(g.Width()); col++ {
		x := margin + col*cell
		canvas.Line(x, titleBar, x, titleBar+gridH, gridStyle)
	}
	for row := 0; row <= int(g.Height()); row++ {
		y := titleBar + row*cell
		canvas.Line(margin, y, margin+gridW, y, gridStyle)
	}

	const moveStyle = "stroke:black;stroke-width:1.5"
	var col, row uint16
	for row = 0; row < g.Height(); row++ {
		for col = 0; col < g.Width(); col++ {
			pos := board.NewPos(col, row)
			next, ok := g.NodeAt(pos).Next()
			if !ok {
				continue
			}
			canvas.Line(center(pos.Col), centerY(pos.Row), center(next.Col), centerY(next.Row), moveStyle)
		}
	}

	canvas.End()
}

func center(col uint16) int {
	return int(col)*cell + cell/2 + margin
}

func centerY(row uint16) int {
	return int(row)*cell + cell/2 + titleBar
}
