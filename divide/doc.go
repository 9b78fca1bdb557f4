// Package divide solves large boards by tiling them into rectangles the
// direct search handles quickly, solving each tile independently and
// splicing the tile tours into one board-wide tour.
//
// The pipeline has three stages:
//
//  1. Partition cuts the board into an ordered list of sectors, each at
//     most 10×10, the first covering the board origin. Axis lengths are
//     halved recursively; the split point is chosen so the far part is
//     always even, because even-length stretched tiles are always
//     solvable. A fixed override table further subdivides the handful of
//     tile shapes the heuristic search is known to crawl on.
//  2. Each sector is solved on its own: the origin sector as a closed
//     tour, every other sector as a stretched tour oriented toward the
//     neighbor it merges with. Solutions land in a shared cache, and the
//     4×10 stretched tile is seeded from a precomputed tour.
//  3. Merge splices each solved sector into the assembled graph in
//     partition order by rewiring the four nodes nearest the seam. The
//     corner edges the splice relies on are guaranteed by the search's
//     corner preconnection; a mismatch is a SpliceError, an invariant
//     violation rather than an unsolvable board.
//
// Boards with at least one even dimension come out as closed tours.
// Odd×odd boards are assembled with the origin square left out and then
// finished open, with the origin square spliced back in as the sole tour
// start.
//
// Overall work is linear in the board area: the tile count grows with
// the area while every per-tile search is bounded by the 10×10 cap.
package divide
