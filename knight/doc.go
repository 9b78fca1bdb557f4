// Package knight enumerates and ranks knight moves for the backtracking
// search engine.
//
// PossibleMoves applies Warnsdorff's rule: candidates are ordered by how
// few onward moves they leave open, so the search fills the board's tight
// corners first and backtracks rarely. A candidate with zero onward
// mobility sorts to the very end — a genuine dead end is still preferable
// to leaving the search with no candidates at all, but only as an absolute
// last resort.
//
// The caller supplies reachability as a predicate so the same generator
// serves every search mode (dead squares, visited squares, preconnected
// seam edges) without this package knowing about any of them.
package knight
