package shape

import (
	"bufio"
	"fmt"
	"io"
	"unicode"

	"github.com/katalvlaran/knightour/board"
)

// FromText reads a text drawing and turns it into a mask: any printable
// character is a playable square, whitespace and control characters are
// dead, and short lines are padded with dead squares up to the longest
// line. The board is as wide as the longest line and as tall as the line
// count.
func FromText(r io.Reader) (Mask, error) {
	scanner := bufio.NewScanner(r)

	var lines [][]rune
	maxLen := 0
	for scanner.Scan() {
		runes := []rune(scanner.Text())
		if len(runes) > maxLen {
			maxLen = len(runes)
		}
		lines = append(lines, runes)
	}
	if err := scanner.Err(); err != nil {
		return Mask{}, fmt.Errorf("shape: reading board text: %w", err)
	}

	mask := newMask(board.NewSize(uint16(maxLen), uint16(len(lines))))
	for row, runes := range lines {
		col := 0
		for _, ch := range runes {
			if unicode.IsSpace(ch) || unicode.IsControl(ch) {
				mask.kill(board.NewPos(uint16(col), uint16(row)))
			}
			col++
		}
		for ; col < maxLen; col++ {
			mask.kill(board.NewPos(uint16(col), uint16(row)))
		}
	}

	return mask, nil
}
