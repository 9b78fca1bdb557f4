// Package movegraph holds the data structure both solver halves share: a
// dense grid of tour nodes, one per board square, doubly linked into a
// knight's tour by the search engine and rewired at tile seams by the
// merger.
//
// A Graph is either the owning storage for its nodes or a zero-copy view
// over another Graph:
//
//   - Ref: plain alias of the source.
//   - Reverse: next/prev swapped on every read.
//   - Section: a rectangle of the source, anchored at an offset.
//   - A reversed section combines the last two.
//
// Views never allocate node storage, compose algebraically (reversing a
// reversal, or taking a section of a section, collapses to a single
// transform), and must not outlive their source graph. Only the owning
// variant may be mutated; NodeMut through a view panics, because that is a
// programming error rather than a runtime condition.
//
// The tour itself lives in the nodes' next/prev links. A node whose prev
// is its own position is the tour root sentinel (visited, start of chain,
// no real predecessor); a node with neither link set is unvisited or a
// dead square.
//
// Complexity: node access is O(1) through any view; Combine, InsertSection,
// ReverseSection, Flip and ToBoard are linear in the squares they touch.
package movegraph
