// Package knightour finds knight's tours — paths visiting every square
// of a chessboard-like board exactly once by knight moves — on boards
// from 1×1 up to arbitrarily large rectangles.
//
// 🚀 What is knightour?
//
//	A solver toolkit built from small, composable packages:
//		• board: positions, sizes and their chess-style text forms
//		• movegraph: the tour as a doubly linked graph with zero-copy views
//		• knight: move generation and Warnsdorff candidate ranking
//		• warnsdorff: heuristic backtracking search for direct solving
//		• divide: divide-and-conquer tiling for very large boards
//		• shape: dead-square masks from text drawings, images or rounded corners
//		• render: numbered text grids and SVG move diagrams
//
// ✨ Why choose knightour?
//
//   - Linear-time large boards – tiles are capped at 10×10, so a
//     1000×1000 board is just more tiles, not more search
//   - Arbitrary shapes – exclude squares and the search adapts
//   - Deterministic – same board, same tour, every run
//
// Quick ASCII example (an open 5×5 tour, numbered in move order):
//
//	|  1 | 14 |  9 | 20 |  3 |
//	| 24 | 19 |  2 | 15 | 10 |
//	| 13 |  8 | 25 |  4 | 21 |
//	| 18 | 23 |  6 | 11 | 16 |
//	|  7 | 12 | 17 | 22 |  5 |
//
// Start with divide.Solve for clean rectangles, warnsdorff.Solve for
// shaped boards, and render for output.
//
//	go get github.com/katalvlaran/knightour
package knightour
