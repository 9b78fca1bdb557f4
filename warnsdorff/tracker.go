package warnsdorff

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/movegraph"
)

// tracker emits a trace event per engine step. Disabled trackers skip all
// formatting work, so the engine keeps calling it unconditionally.
type tracker struct {
	log     zerolog.Logger
	enabled bool
	moves   uint64
	backs   uint64
}

func newTracker(log zerolog.Logger) *tracker {
	return &tracker{log: log, enabled: log.GetLevel() <= zerolog.TraceLevel}
}

func (t *tracker) advance(from, to board.Pos, depth int) {
	t.moves++
	if !t.enabled {
		return
	}
	t.log.Trace().
		Stringer("from", from).
		Stringer("to", to).
		Int("depth", depth).
		Msg("advance")
}

func (t *tracker) backtrack(from board.Pos, depth, skip int) {
	t.backs++
	if !t.enabled {
		return
	}
	t.log.Trace().
		Stringer("from", from).
		Int("depth", depth).
		Int("skip", skip).
		Msg("backtrack")
}

func (t *tracker) done(g *movegraph.Graph) {
	if !t.enabled {
		return
	}
	t.log.Trace().
		Uint64("moves", t.moves).
		Uint64("backtracks", t.backs).
		Msg("tour complete")
	t.log.Trace().Msg("\n" + g.ToBoard().String())
}
