// Package shape derives the excluded-square geometry of a board from an
// external description: a text drawing, an image, or rounded corners.
//
// Each constructor yields a Mask, the board size plus the set of dead
// squares the search must avoid. Masks feed the exhaustive-search path
// only; the divide-and-conquer solver requires a clean rectangle.
package shape
