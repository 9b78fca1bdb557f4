// Package warnsdorff implements the heuristic backtracking search that
// finds a knight's tour on boards small enough to search directly.
//
// The engine is an explicit state machine, not language recursion: it
// keeps one skip count per placed tour position, advances by linking the
// best-ranked candidate not yet skipped at this depth, and retreats by
// unlinking the current node and bumping the predecessor's skip count.
// Exhausting candidates with only the start on the stack means no tour
// exists for the configuration — a normal outcome reported as ErrNoTour,
// never an error to log.
//
// Four modes share the engine (see Options):
//
//   - Basic: arbitrary shape — dead squares and a custom start allowed.
//   - Closed: structured closed tour for the tile covering the origin.
//   - Stretched: open tour between two fixed boundary squares, designed
//     to be spliced edge-to-edge with a neighboring tile.
//   - Freeform: tiny tile with no structural constraint.
//
// Closed and Stretched modes preconnect a few knight edges near the tile
// corners, forcing the search to wire the corners so the tile can later
// be spliced to its neighbors.
//
// Stretched solutions are memoized in an explicit Cache keyed by
// (size, direction); a missing entry is derived from its transposed twin
// by flipping instead of re-searching whenever possible.
package warnsdorff
