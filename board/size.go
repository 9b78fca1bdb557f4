package board

import (
	"strconv"
	"strings"
)

// Size is a board's width and height in squares.
type Size struct {
	Width, Height uint16
}

// NewSize returns the size with the given width and height.
func NewSize(w, h uint16) Size {
	return Size{Width: w, Height: h}
}

// Area returns Width×Height. Computed in int64 so very large boards
// (up to 65535 squares per side) never overflow.
func (s Size) Area() int64 {
	return int64(s.Width) * int64(s.Height)
}

// Fits reports whether pos lies inside a board of this size.
func (s Size) Fits(pos Pos) bool {
	return pos.Col < s.Width && pos.Row < s.Height
}

// Flip returns the transposed size (width and height swapped).
func (s Size) Flip() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// WithWidth returns a copy of s with the width replaced.
func (s Size) WithWidth(w uint16) Size {
	return Size{Width: w, Height: s.Height}
}

// WithHeight returns a copy of s with the height replaced.
func (s Size) WithHeight(h uint16) Size {
	return Size{Width: s.Width, Height: h}
}

// MinDim returns the shorter of the two dimensions.
func (s Size) MinDim() uint16 {
	if s.Width < s.Height {
		return s.Width
	}

	return s.Height
}

// MaxDim returns the longer of the two dimensions.
func (s Size) MaxDim() uint16 {
	if s.Width > s.Height {
		return s.Width
	}

	return s.Height
}

// String renders the size as "<width>x<height>".
func (s Size) String() string {
	return strconv.Itoa(int(s.Width)) + "x" + strconv.Itoa(int(s.Height))
}

// ParseSize parses "<width>x<height>" or a bare "<length>" (square board).
// Returns ErrSizeFormat on malformed input.
func ParseSize(s string) (Size, error) {
	parts := strings.Split(strings.TrimSpace(s), "x")
	if len(parts) == 0 || len(parts) > 2 {
		return Size{}, ErrSizeFormat
	}

	dims := make([]uint16, 0, 2)
	for _, part := range parts {
		v, err := strconv.ParseUint(part, 10, 16)
		if err != nil || v == 0 {
			return Size{}, ErrSizeFormat
		}
		dims = append(dims, uint16(v))
	}
	if len(dims) == 1 {
		dims = append(dims, dims[0])
	}

	return Size{Width: dims[0], Height: dims[1]}, nil
}
