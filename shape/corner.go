package shape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/knightour/board"
)

// Corner is the elliptical radius cut off at one board corner, with
// independent vertical and horizontal extents.
type Corner struct {
	V uint16
	H uint16
}

// CornerRadius holds the four per-corner radii of a rounded board.
type CornerRadius struct {
	TopLeft     Corner
	TopRight    Corner
	BottomRight Corner
	BottomLeft  Corner
}

// ParseCornerRadius parses a rounded-corner description. Accepted forms:
//
//	"3"                          the same radius on all four corners
//	"1 2 3 4" or "1,2,3,4"       top left, top right, bottom right,
//	                             bottom left
//	"(1 2) (3 4) (5 6) (7 8)"    per-corner (vertical, horizontal) pairs,
//	                             mixable with bare numbers
func ParseCornerRadius(s string) (CornerRadius, error) {
	var corners []Corner

	rest := strings.TrimSpace(s)
	for rest != "" {
		var c Corner
		var err error
		if rest[0] == '(' {
			end := strings.IndexByte(rest, ')')
			if end < 0 {
				return CornerRadius{}, fmt.Errorf("shape: unterminated corner group in %q", s)
			}
			c, err = parseCornerGroup(rest[1:end])
			rest = rest[end+1:]
		} else {
			i := 0
			for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
				i++
			}
			if i == 0 {
				return CornerRadius{}, fmt.Errorf("shape: invalid character %q in corner radius", rest[0])
			}
			var v uint16
			v, err = parseRadius(rest[:i])
			c = Corner{V: v, H: v}
			rest = rest[i:]
		}
		if err != nil {
			return CornerRadius{}, err
		}
		corners = append(corners, c)
		rest = strings.TrimLeft(rest, ", \t")
	}

	switch len(corners) {
	case 1:
		return CornerRadius{TopLeft: corners[0], TopRight: corners[0], BottomRight: corners[0], BottomLeft: corners[0]}, nil
	case 4:
		return CornerRadius{TopLeft: corners[0], TopRight: corners[1], BottomRight: corners[2], BottomLeft: corners[3]}, nil
	}

	return CornerRadius{}, fmt.Errorf("shape: expected 1 or 4 corner radii, got %d", len(corners))
}

func parseCornerGroup(body string) (Corner, error) {
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	switch len(fields) {
	case 1:
		v, err := parseRadius(fields[0])
		return Corner{V: v, H: v}, err
	case 2:
		v, err := parseRadius(fields[0])
		if err != nil {
			return Corner{}, err
		}
		h, err := parseRadius(fields[1])
		return Corner{V: v, H: h}, err
	}

	return Corner{}, fmt.Errorf("shape: corner group (%s) must hold 1 or 2 radii", body)
}

func parseRadius(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("shape: invalid corner radius %q", s)
	}

	return uint16(v), nil
}

// Mask marks the squares cut off by the corner ellipses as dead.
func (cr CornerRadius) Mask(size board.Size) Mask {
	mask := newMask(size)
	var col, row uint16
	for col = 0; col < size.Width; col++ {
		for row = 0; row < size.Height; row++ {
			pos := board.NewPos(col, row)
			if cr.cut(pos, size) {
				mask.kill(pos)
			}
		}
	}

	return mask
}

// cut reports whether pos lies beyond one of the corner ellipses. Each
// ellipse is centered one square inside its radius box; the vertical
// axis is scaled onto the horizontal one so a plain squared-distance
// comparison decides containment.
func (cr CornerRadius) cut(pos board.Pos, size board.Size) bool {
	w, h := int64(size.Width), int64(size.Height)
	x, y := int64(pos.Col), int64(pos.Row)

	beyond := func(c Corner, sector int) bool {
		if c.H == 0 || c.V == 0 {
			return false
		}
		ew, eh := int64(c.H), int64(c.V)

		var cx, cy int64
		switch sector {
		case 0:
			cx, cy = ew-1, eh-1
		case 1:
			cx, cy = w-ew, eh-1
		case 2:
			cx, cy = w-ew, h-eh
		case 3:
			cx, cy = ew-1, h-eh
		}

		var quadrant bool
		switch sector {
		case 0:
			quadrant = x < cx && y < cy
		case 1:
			quadrant = x > cx && y < cy
		case 2:
			quadrant = x > cx && y > cy
		case 3:
			quadrant = x < cx && y > cy
		}
		if !quadrant {
			return false
		}

		dx := x - cx
		dy := (y - cy) * ew / eh

		return dx*dx+dy*dy > ew*ew
	}

	return beyond(cr.TopLeft, 0) || beyond(cr.TopRight, 1) ||
		beyond(cr.BottomRight, 2) || beyond(cr.BottomLeft, 3)
}
