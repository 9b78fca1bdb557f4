package divide

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/movegraph"
	"github.com/katalvlaran/knightour/warnsdorff"
)

// Sector is one tile of a board partition.
type Sector struct {
	// Offset is the tile's top-left square on the full board.
	Offset board.Pos

	// Size is the tile's dimensions, both at most 10.
	Size board.Size

	// Dir is the axis along which the tile merges onto the sectors
	// placed before it.
	Dir movegraph.Direction
}

// Option configures a Solve call.
type Option func(*Options)

// Options holds the configurable parameters of a divide-and-conquer solve.
type Options struct {
	// Cache memoizes stretched tile solutions across sectors. A private
	// cache is created when nil.
	Cache *warnsdorff.Cache

	// Logger receives per-sector progress output. Default zerolog.Nop().
	Logger zerolog.Logger
}

// DefaultOptions returns the defaults: private cache, no logging.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithCache installs a shared stretched-tile cache, letting repeated
// solves reuse tile solutions.
func WithCache(c *warnsdorff.Cache) Option {
	return func(o *Options) {
		o.Cache = c
	}
}

// WithLogger installs a logger for per-sector progress output.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Result is a successful divide-and-conquer outcome.
type Result struct {
	// Graph holds the assembled board-wide tour.
	Graph *movegraph.Graph

	// Elapsed is the wall-clock duration of partitioning, tile solving
	// and merging combined.
	Elapsed time.Duration
}

// SpliceError reports a seam node whose links do not match any expected
// pre-splice pattern. It indicates a partitioner or search defect, never
// an unsolvable board; the caller can tell the two apart by type.
type SpliceError struct {
	// Pos is the seam node at fault.
	Pos board.Pos

	// Prev and Next are the node's links at the time of the splice,
	// nil when unset.
	Prev *board.Pos
	Next *board.Pos

	// OldTarget is the link value the splice expected to find, nil for
	// the sentinel pattern of an open tile end.
	OldTarget *board.Pos

	// NewTarget is the cross-seam partner the splice tried to install.
	NewTarget board.Pos

	// Dir is the merge direction of the failing splice.
	Dir movegraph.Direction
}

func optPos(p *board.Pos) string {
	if p == nil {
		return "none"
	}

	return p.String()
}

// Error implements error.
func (e *SpliceError) Error() string {
	return fmt.Sprintf("divide: cannot splice node %s [%s -> %s]: expected link %s, new target %s (%s merge)",
		e.Pos, optPos(e.Prev), optPos(e.Next), optPos(e.OldTarget), e.NewTarget, e.Dir)
}
