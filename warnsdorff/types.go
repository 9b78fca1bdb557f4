package warnsdorff

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/movegraph"
)

// ErrNoTour is returned when the search space is exhausted: no knight's
// tour exists for the requested board, dead squares and mode. This is an
// expected outcome for parity-impossible shapes, not a defect.
var ErrNoTour = errors.New("warnsdorff: no knight's tour exists for this configuration")

// Mode selects the structural constraint the search runs under.
type Mode int

const (
	// Basic searches an arbitrary shape: explicit dead squares and start.
	Basic Mode = iota
	// Closed searches a structured closed tour (last square one knight
	// move from the first), used for the tile covering the board origin.
	Closed
	// Stretched searches an open tour between two fixed boundary squares.
	Stretched
	// Freeform searches a tiny tile with no structural constraint.
	Freeform
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Basic:
		return "basic"
	case Closed:
		return "closed"
	case Stretched:
		return "stretched"
	default:
		return "freeform"
	}
}

// Option configures a Solve call. Use with Solve(size, opts...).
type Option func(*Options)

// Options holds the configurable parameters of a search.
type Options struct {
	// Mode selects the structural constraint; default Basic.
	Mode Mode

	// Dead is the set of excluded squares (Basic mode only).
	Dead map[board.Pos]struct{}

	// Start is the first square of the tour (Basic mode only; structured
	// modes fix their own start). Default is the board origin.
	Start board.Pos

	// SkipCorner excludes the origin corner and starts next to it
	// (Closed mode on odd×odd tiles, where the corner square cannot be
	// part of a closed tour).
	SkipCorner bool

	// Direction is the merge axis of a Stretched tile.
	Direction movegraph.Direction

	// Cache memoizes Stretched and Freeform solutions when non-nil.
	Cache *Cache

	// Logger receives per-move trace output. Default zerolog.Nop().
	Logger zerolog.Logger
}

// DefaultOptions returns the Basic-mode defaults: no dead squares, origin
// start, no cache, no logging.
func DefaultOptions() Options {
	return Options{
		Mode:      Basic,
		Start:     board.Zero,
		Direction: movegraph.Horizontal,
		Logger:    zerolog.Nop(),
	}
}

// WithDead sets the excluded-square set for a Basic search.
func WithDead(dead map[board.Pos]struct{}) Option {
	return func(o *Options) {
		o.Dead = dead
	}
}

// WithStart sets the starting square for a Basic search.
func WithStart(pos board.Pos) Option {
	return func(o *Options) {
		o.Start = pos
	}
}

// WithClosed selects Closed mode. skipCorner excludes the origin corner,
// required when both tile dimensions are odd.
func WithClosed(skipCorner bool) Option {
	return func(o *Options) {
		o.Mode = Closed
		o.SkipCorner = skipCorner
	}
}

// WithStretched selects Stretched mode along the given merge axis.
func WithStretched(dir movegraph.Direction) Option {
	return func(o *Options) {
		o.Mode = Stretched
		o.Direction = dir
	}
}

// WithFreeform selects Freeform mode.
func WithFreeform() Option {
	return func(o *Options) {
		o.Mode = Freeform
	}
}

// WithCache installs the stretched-tile memo cache.
func WithCache(c *Cache) Option {
	return func(o *Options) {
		o.Cache = c
	}
}

// WithLogger installs a logger for per-move trace output.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Result is a successful search outcome.
type Result struct {
	// Graph holds the solved tour. It is a read-only view when the
	// solution came from the cache.
	Graph *movegraph.Graph

	// Elapsed is the wall-clock search duration (zero on a cache hit).
	Elapsed time.Duration
}
