package board

import (
	"math"
	"strconv"
	"strings"
)

// Pos is a 0-based board coordinate. The zero value is the board origin
// (top-left corner, displayed as "A-1").
type Pos struct {
	Col, Row uint16
}

// Zero is the board origin.
var Zero = Pos{}

// NewPos returns the position at the given 0-based column and row.
func NewPos(col, row uint16) Pos {
	return Pos{Col: col, Row: row}
}

// TryTranslate returns the position shifted by (dc, dr). The second return
// value is false when the result would leave the unsigned coordinate range;
// the arithmetic never wraps.
func (p Pos) TryTranslate(dc, dr int32) (Pos, bool) {
	c := int32(p.Col) + dc
	r := int32(p.Row) + dr
	if c < 0 || r < 0 || c > math.MaxUint16 || r > math.MaxUint16 {
		return Pos{}, false
	}

	return Pos{Col: uint16(c), Row: uint16(r)}, true
}

// Add returns the position shifted by o, treating o as a non-negative offset.
func (p Pos) Add(o Pos) Pos {
	return Pos{Col: p.Col + o.Col, Row: p.Row + o.Row}
}

// KnightOffsets lists the eight knight-move deltas as (dcol, drow) pairs in
// the canonical generation order used throughout the solver. The order is
// load-bearing for search determinism: candidate ranking is stable, so ties
// keep this order.
var KnightOffsets = [8][2]int32{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// IsKnightMove reports whether a and b are exactly one legal knight move
// apart: (|Δcol|, |Δrow|) ∈ {(1,2), (2,1)}.
func IsKnightMove(a, b Pos) bool {
	dc := int32(a.Col) - int32(b.Col)
	if dc < 0 {
		dc = -dc
	}
	dr := int32(a.Row) - int32(b.Row)
	if dr < 0 {
		dr = -dr
	}

	return (dc == 1 && dr == 2) || (dc == 2 && dr == 1)
}

// String renders the position in chess style: bijective base-26 column
// letters, a dash, and the 1-based row ("A-1", "AB-14").
func (p Pos) String() string {
	return alphabetize(uint32(p.Col)+1) + "-" + strconv.Itoa(int(p.Row)+1)
}

// alphabetize converts a 1-based column number to bijective base-26
// letters: 1 -> "A", 26 -> "Z", 27 -> "AA", 53 -> "BA".
func alphabetize(val uint32) string {
	if val == 0 {
		return "A"
	}
	var buf [8]byte
	i := len(buf)
	for val > 0 {
		val--
		i--
		buf[i] = byte('A' + val%26)
		val /= 26
	}

	return string(buf[i:])
}

// ParsePos parses a chess-style position: column letters followed by a
// 1-based row, with an optional dash between them. Both "A1" and "a-1"
// denote the board origin. Returns ErrPosFormat on malformed input.
func ParsePos(s string) (Pos, error) {
	var (
		col, row   uint32
		hasCol     bool
		hasRow     bool
		sawDash    bool
		c          rune
	)
	for _, c = range s {
		switch {
		case !hasRow && !sawDash && c >= 'A' && c <= 'Z':
			col = col*26 + uint32(c-'A') + 1
			hasCol = true
		case !hasRow && !sawDash && c >= 'a' && c <= 'z':
			col = col*26 + uint32(c-'a') + 1
			hasCol = true
		case hasCol && !hasRow && !sawDash && c == '-':
			sawDash = true
		case hasCol && c >= '0' && c <= '9':
			row = row*10 + uint32(c-'0')
			hasRow = true
		default:
			return Pos{}, ErrPosFormat
		}
	}
	if !hasCol || !hasRow || row < 1 {
		return Pos{}, ErrPosFormat
	}
	if col-1 > math.MaxUint16 || row-1 > math.MaxUint16 {
		return Pos{}, ErrPosFormat
	}

	// 0-index internally, 1-display externally.
	return Pos{Col: uint16(col - 1), Row: uint16(row - 1)}, nil
}

// ParsePosArg adapts ParsePos for flag parsing, trimming surrounding space.
func ParsePosArg(arg string) (Pos, error) {
	return ParsePos(strings.TrimSpace(arg))
}
