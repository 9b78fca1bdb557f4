package shape

import (
	"github.com/katalvlaran/knightour/board"
)

// Mask is a board size with the squares excluded from play.
type Mask struct {
	// Size is the bounding board.
	Size board.Size

	// Dead holds the excluded squares.
	Dead map[board.Pos]struct{}
}

// newMask returns an empty mask for the given size.
func newMask(size board.Size) Mask {
	return Mask{Size: size, Dead: make(map[board.Pos]struct{})}
}

// kill marks a square dead.
func (m Mask) kill(pos board.Pos) {
	m.Dead[pos] = struct{}{}
}

// Alive reports whether a square is playable: inside the board and not
// excluded.
func (m Mask) Alive(pos board.Pos) bool {
	if !m.Size.Fits(pos) {
		return false
	}
	_, dead := m.Dead[pos]

	return !dead
}

// LiveArea is the number of playable squares.
func (m Mask) LiveArea() int64 {
	return m.Size.Area() - int64(len(m.Dead))
}
