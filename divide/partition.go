package divide

import (
	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/movegraph"
)

// SplitLength splits a tile axis into two runs. The split point is
// rounded so the second run is always even: even-length stretched tiles
// are guaranteed solvable, odd ones are not.
func SplitLength(length uint16) (uint16, uint16) {
	half := (length/4)*2 + length%2

	return half, length - half
}

// segment is a run along one axis: offset and length.
type segment struct {
	offset uint16
	length uint16
}

// segmentAxis cuts an axis of the given length into runs of at most 10.
// other is the board's extent along the perpendicular axis; it decides
// whether the axis needs cutting at all and whether the 3-wide strip
// rule applies.
func segmentAxis(length, other uint16) []segment {
	if length <= 10 {
		return []segment{{0, length}}
	}

	if other == 3 {
		// 3-wide strips cannot be halved: closed 3×n tours only exist
		// for a few lengths. Peel even 4-long stretched runs off the far
		// end until the head is small enough to search directly.
		head := length
		for head > 10 {
			head -= 4
		}

		segments := []segment{{0, head}}
		for offset := head; offset < length; offset += 4 {
			segments = append(segments, segment{offset, 4})
		}

		return segments
	}

	return splitRun(make([]segment, 0, length/6+2), 0, length)
}

// splitRun recursively halves a run until every piece fits a tile,
// appending pieces in ascending offset order.
func splitRun(segments []segment, offset, length uint16) []segment {
	if length <= 10 {
		return append(segments, segment{offset, length})
	}

	first, second := SplitLength(length)
	segments = splitRun(segments, offset, first)

	return splitRun(segments, offset+first, second)
}

// mergeDirection is the axis along which a sector at pos merges onto the
// sectors placed before it: onto its left neighbor when it has one,
// otherwise onto the row above.
func mergeDirection(pos board.Pos) movegraph.Direction {
	if pos.Col > 0 {
		return movegraph.Horizontal
	}

	return movegraph.Vertical
}

// closedSplits subdivides origin-sector shapes whose closed search is
// pathologically slow. Keys are (short side, long side); values are the
// two runs the long side splits into.
var closedSplits = map[[2]uint16][2]uint16{
	{5, 10}: {6, 4},
	{5, 9}:  {5, 4},
	{7, 9}:  {5, 4},
}

// openSplits subdivides stretched-sector shapes whose search is
// pathologically slow (10×8 with a horizontal merge being the worst
// offender). Keys are (non-merge axis, merge axis); values are the runs
// the merge axis splits into.
var openSplits = map[[2]uint16][]uint16{
	{5, 8}:   {4, 4},
	{5, 10}:  {6, 4},
	{6, 8}:   {4, 4},
	{6, 10}:  {6, 4},
	{7, 8}:   {4, 4},
	{7, 10}:  {6, 4},
	{8, 6}:   {3, 3},
	{8, 8}:   {4, 4},
	{8, 10}:  {3, 3, 4},
	{9, 8}:   {4, 4},
	{9, 10}:  {6, 4},
	{10, 6}:  {3, 3},
	{10, 8}:  {4, 4},
	{10, 10}: {4, 3, 3},
}

// Partition cuts a board into an ordered list of sectors, each at most
// 10×10, the origin sector first. Every sector merges onto sectors that
// precede it in the list, so a driver can solve and splice in one pass.
func Partition(size board.Size) []Sector {
	horizontal := segmentAxis(size.Width, size.Height)
	vertical := horizontal
	if size.Width != size.Height {
		vertical = segmentAxis(size.Height, size.Width)
	}

	sectors := make([]Sector, 0, len(horizontal)*len(vertical)*2)
	for _, v := range vertical {
		for _, h := range horizontal {
			pos := board.NewPos(h.offset, v.offset)
			tile := board.NewSize(h.length, v.length)
			if pos == board.Zero {
				sectors = appendClosedSector(sectors, pos, tile)
			} else {
				sectors = appendOpenSector(sectors, pos, tile)
			}
		}
	}

	return sectors
}

func appendClosedSector(sectors []Sector, pos board.Pos, size board.Size) []Sector {
	split, ok := closedSplits[[2]uint16{size.MinDim(), size.MaxDim()}]
	if !ok {
		return append(sectors, Sector{Offset: pos, Size: size, Dir: mergeDirection(pos)})
	}

	// Split along the long side; the second piece merges back onto the
	// first across that split.
	if size.MinDim() == size.Width {
		return append(sectors,
			Sector{Offset: pos, Size: board.NewSize(size.Width, split[0]), Dir: mergeDirection(pos)},
			Sector{Offset: pos.Add(board.NewPos(0, split[0])), Size: board.NewSize(size.Width, split[1]), Dir: movegraph.Vertical},
		)
	}

	return append(sectors,
		Sector{Offset: pos, Size: board.NewSize(split[0], size.Height), Dir: mergeDirection(pos)},
		Sector{Offset: pos.Add(board.NewPos(split[0], 0)), Size: board.NewSize(split[1], size.Height), Dir: movegraph.Horizontal},
	)
}

func appendOpenSector(sectors []Sector, pos board.Pos, size board.Size) []Sector {
	dir := mergeDirection(pos)
	mergeAxis, nonMerge := size.Height, size.Width
	if dir.IsHorizontal() {
		mergeAxis, nonMerge = size.Width, size.Height
	}

	split, ok := openSplits[[2]uint16{nonMerge, mergeAxis}]
	if !ok {
		return append(sectors, Sector{Offset: pos, Size: size, Dir: dir})
	}

	// All pieces line up along the merge axis and merge in the same
	// direction, each onto the piece before it.
	offset := pos
	for _, run := range split {
		tile := board.NewSize(nonMerge, run)
		step := board.NewPos(0, run)
		if dir.IsHorizontal() {
			tile = board.NewSize(run, nonMerge)
			step = board.NewPos(run, 0)
		}
		sectors = append(sectors, Sector{Offset: offset, Size: tile, Dir: dir})
		offset = offset.Add(step)
	}

	return sectors
}
