// Package board provides the coordinate primitives every other knightour
// package builds on: a 0-based board position, a board size, and the
// knight-move legality test.
//
// Design notes:
//
//   - Pos and Size are small value types (uint16 components) meant to be
//     copied freely; Area is computed in int64 so boards with thousands of
//     squares per side never overflow.
//   - TryTranslate never wraps: translating a position off the board's
//     unsigned range reports failure instead of producing a garbage square.
//   - Positions render and parse in chess style: column letters (base-26,
//     bijective, so Z is followed by AA), then the 1-based row, e.g. "A1"
//     or "AB-14".
//
// Complexity: every operation in this package is O(1) except parsing and
// formatting, which are linear in the text length.
package board
