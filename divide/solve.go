package divide

import (
	"fmt"
	"time"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/movegraph"
	"github.com/katalvlaran/knightour/warnsdorff"
)

// Solve finds a knight's tour of the given board by partitioning,
// solving each sector and splicing the sector tours together. Boards
// with an even dimension yield a closed tour; odd×odd boards yield an
// open tour starting at the origin. It returns warnsdorff.ErrNoTour
// when a sector has no tour, and a *SpliceError on an internal
// inconsistency.
func Solve(size board.Size, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Cache == nil {
		o.Cache = warnsdorff.NewCache()
	}

	if size.MinDim() < 3 {
		return Result{}, fmt.Errorf("%s: %w", size, warnsdorff.ErrNoTour)
	}

	begin := time.Now()

	sectors := Partition(size)
	o.Logger.Debug().Stringer("size", size).Int("sectors", len(sectors)).Msg("partitioned")

	graph := movegraph.New(size.Width, size.Height)
	for _, sec := range sectors {
		tile, err := solveSector(sec, o)
		if err != nil {
			return Result{}, err
		}

		graph.InsertSection(tile, sec.Offset)
		if sec.Offset == board.Zero {
			continue
		}
		if err := Merge(graph, sec.Offset, sec.Size, sec.Dir); err != nil {
			return Result{}, err
		}
		o.Logger.Debug().
			Stringer("offset", sec.Offset).
			Stringer("tile", sec.Size).
			Stringer("direction", sec.Dir).
			Msg("sector merged")
	}

	// Odd×odd boards were assembled as a closed tour skipping the origin;
	// splice the origin back in as the sole tour start.
	if size.Width%2 == 1 && size.Height%2 == 1 {
		finishOpen(graph)
	}

	return Result{Graph: graph, Elapsed: time.Since(begin)}, nil
}

func solveSector(sec Sector, o Options) (*movegraph.Graph, error) {
	if sec.Offset == board.Zero {
		// The origin sector anchors the whole tour and is solved closed.
		// 4×5 has no closed or structured tour at all, and odd×odd tiles
		// cannot include their corner square in a closed tour.
		if sec.Size.MinDim() == 4 && sec.Size.MaxDim() == 5 {
			res, err := warnsdorff.Solve(sec.Size,
				warnsdorff.WithFreeform(), warnsdorff.WithCache(o.Cache), warnsdorff.WithLogger(o.Logger))
			return res.Graph, err
		}

		skipCorner := sec.Size.Width%2 == 1 && sec.Size.Height%2 == 1
		res, err := warnsdorff.Solve(sec.Size,
			warnsdorff.WithClosed(skipCorner), warnsdorff.WithLogger(o.Logger))
		return res.Graph, err
	}

	if tile, ok := baseTile(o.Cache, sec.Size, sec.Dir); ok {
		return tile, nil
	}

	res, err := warnsdorff.Solve(sec.Size,
		warnsdorff.WithStretched(sec.Dir), warnsdorff.WithCache(o.Cache), warnsdorff.WithLogger(o.Logger))
	return res.Graph, err
}

// finishOpen breaks the assembled cycle at the fixed edge into (2,1) and
// wires the skipped origin square in as the new tour start.
func finishOpen(g *movegraph.Graph) {
	into := board.NewPos(2, 1)

	g.NodeMut(board.Zero).SetNext(into)

	node := g.NodeMut(into)
	if old, ok := node.Prev(); ok {
		g.NodeMut(old).ClearNext()
	}
	node.SetPrev(board.Zero)
}
