package movegraph

import "errors"

// ErrDimensionMismatch is returned by Combine when the two graphs disagree
// on the non-merge dimension. It always indicates a partitioner defect,
// never bad user input.
var ErrDimensionMismatch = errors.New("movegraph: combine dimension mismatch")

// Direction selects the axis along which two tiles touch: Horizontal means
// side by side (shared vertical seam), Vertical means stacked.
type Direction int

const (
	// Horizontal merges a tile onto its left-hand neighbor.
	Horizontal Direction = iota
	// Vertical merges a tile onto the neighbor above it.
	Vertical
)

// Opposite returns the other axis.
func (d Direction) Opposite() Direction {
	if d == Horizontal {
		return Vertical
	}

	return Horizontal
}

// IsHorizontal reports whether d is Horizontal.
func (d Direction) IsHorizontal() bool {
	return d == Horizontal
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}

	return "vertical"
}
