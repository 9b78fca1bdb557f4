package warnsdorff

import (
	"fmt"
	"time"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/knight"
	"github.com/katalvlaran/knightour/movegraph"
)

// solveParams is the mode-independent shape of a search.
type solveParams struct {
	dead      map[board.Pos]struct{}
	endPoint  *board.Pos
	start     board.Pos
	useCache  bool
	direction movegraph.Direction
}

func parseMode(o Options) solveParams {
	p := solveParams{direction: movegraph.Horizontal}
	switch o.Mode {
	case Basic:
		p.dead = o.Dead
		p.start = o.Start
	case Closed:
		if o.SkipCorner {
			p.dead = map[board.Pos]struct{}{board.Zero: {}}
			p.start = board.NewPos(1, 0)
		}
		end := p.start
		p.endPoint = &end
	case Stretched:
		p.direction = o.Direction
		end := board.NewPos(0, 1)
		if !p.direction.IsHorizontal() {
			end = board.NewPos(1, 0)
		}
		p.endPoint = &end
		p.useCache = true
	case Freeform:
		p.useCache = true
	}

	return p
}

// Solve runs the heuristic search for a tour of the given board under the
// configured mode. It returns ErrNoTour when the whole search space is
// exhausted without completing a tour.
//
// Runtime is effectively linear on boards the heuristic handles well and
// exponential in the worst case; keep direct searches small (the tiling
// in package divide never asks for more than 10×10).
func Solve(size board.Size, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := parseMode(o)

	if p.useCache && o.Cache != nil {
		if g, ok := o.Cache.Get(size, p.direction); ok {
			o.Logger.Debug().Stringer("size", size).Stringer("direction", p.direction).Msg("cache hit")
			return Result{Graph: g}, nil
		}

		// A transposed twin can be flipped instead of re-searched.
		if g, ok := o.Cache.Get(size.Flip(), p.direction.Opposite()); ok {
			begin := time.Now()
			flipped := g.Flip()
			elapsed := time.Since(begin)
			o.Cache.Put(size, p.direction, flipped)
			o.Logger.Debug().Stringer("size", size).Stringer("direction", p.direction).Msg("cache hit via transposition")
			return Result{Graph: flipped.Ref(), Elapsed: elapsed}, nil
		}
	}

	graph := movegraph.New(size.Width, size.Height)
	// The start node points prev at itself: visited, and recognizable as
	// the tour root when walking back.
	graph.NodeMut(p.start).SetPrev(p.start)

	predetermined := preconnect(size, o)

	// One move per square to visit; one fewer for open tours because the
	// start square costs no move.
	expected := int(size.Area()) - len(p.dead)
	if p.endPoint == nil || *p.endPoint != p.start {
		expected--
	}

	track := newTracker(o.Logger)
	o.Logger.Debug().
		Stringer("size", size).
		Stringer("mode", o.Mode).
		Int("expected_moves", expected).
		Msg("search start")

	pos := p.start
	// One skip count per tour position: skips[d] is how many top-ranked
	// candidates depth d has already tried and rejected.
	skips := []int{0}

	begin := time.Now()
	for len(skips) <= expected {
		skip := skips[len(skips)-1]

		// Only the final move is forced onto the end point.
		var target *board.Pos
		if len(skips) == expected {
			target = p.endPoint
		}

		checker := reachabilityChecker{
			target:           target,
			endPoint:         p.endPoint,
			dead:             p.dead,
			graph:            graph,
			start:            p.start,
			predetermined:    predetermined,
			moveToEndAllowed: expected-len(skips) < 3,
		}

		moves := knight.PossibleMoves(pos, checker.reachable)
		switch {
		case skip < len(moves):
			next := moves[skip]
			skips = append(skips, 0)
			graph.NodeMut(pos).SetNext(next)
			graph.NodeMut(next).SetPrev(pos)
			track.advance(pos, next, len(skips))
			pos = next
		case len(skips) > 1:
			skips = skips[:len(skips)-1]
			skips[len(skips)-1]++
			prev, ok := graph.NodeMut(pos).TakePrev()
			if !ok {
				panic(fmt.Sprintf("warnsdorff: no previous move recorded for %v", pos))
			}
			graph.NodeMut(prev).ClearNext()
			track.backtrack(pos, len(skips), skips[len(skips)-1])
			pos = prev
		default:
			return Result{}, fmt.Errorf("%s %s: %w", size, o.Mode, ErrNoTour)
		}
	}
	elapsed := time.Since(begin)

	track.done(graph)

	if p.useCache && o.Cache != nil {
		o.Cache.Put(size, p.direction, graph)
	}

	return Result{Graph: graph, Elapsed: elapsed}, nil
}

// reachabilityChecker decides whether a single knight move is admissible
// in the current search state. It layers the structural rules (end-point
// exclusion, predetermined corner edges) over plain occupancy checks.
type reachabilityChecker struct {
	target           *board.Pos
	endPoint         *board.Pos
	dead             map[board.Pos]struct{}
	graph            *movegraph.Graph
	predetermined    partnerSet
	start            board.Pos
	moveToEndAllowed bool
}

func (c *reachabilityChecker) reachable(from, to board.Pos) bool {
	// Final move: nothing but the designated end point qualifies.
	if c.target != nil {
		return to == *c.target
	}

	// The end point is reserved for the final move.
	if c.endPoint != nil && to == *c.endPoint {
		return false
	}

	if to == from || to == c.start {
		return false
	}

	if !c.graph.Size().Fits(to) {
		return false
	}
	if _, isDead := c.dead[to]; isDead {
		return false
	}

	if c.occupied(to) {
		return false
	}

	if partners, ok := c.predetermined[to]; ok {
		// Partners already consumed by the tour no longer constrain the
		// square; the current square and the end point stay relevant.
		live := make(map[board.Pos]struct{}, len(partners))
		for p := range partners {
			if !c.occupied(p) || p == from || (c.endPoint != nil && p == *c.endPoint) {
				live[p] = struct{}{}
			}
		}

		if _, ok := live[from]; ok {
			// Moving along a predetermined edge is always admissible.
			return true
		}
		if len(live) > 1 {
			// Entering the middle of a pending chain from outside would
			// orphan one of its ends.
			return false
		}
		if c.endPoint != nil && !c.moveToEndAllowed {
			if _, ok := live[*c.endPoint]; ok {
				return false
			}
		}
	}

	if partners, ok := c.predetermined[from]; ok {
		// Leaving a predetermined square off-pattern is allowed only once
		// all its partners are already on the tour.
		for p := range partners {
			if !c.occupied(p) {
				return false
			}
		}
	}

	return true
}

func (c *reachabilityChecker) occupied(pos board.Pos) bool {
	_, ok := c.graph.NodeAt(pos).Prev()
	return ok
}
