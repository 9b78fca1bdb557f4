// Package board defines sentinel errors shared by the position and size
// parsers.
package board

import "errors"

// Sentinel errors for board parsing.
var (
	// ErrPosFormat indicates a position string that is not of the form
	// <COLUMN>[-]<ROW> with letter columns and a 1-based numeric row.
	ErrPosFormat = errors.New("board: expected position of the form <COLUMN>[-]<ROW>, e.g. \"A1\" or \"AB-14\"")

	// ErrSizeFormat indicates a size string that is not of the form
	// <WIDTH>x<HEIGHT> or a single <LENGTH> for square boards.
	ErrSizeFormat = errors.New("board: expected size of the form <width>x<height> or <length>")
)
