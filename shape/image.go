package shape

import (
	"errors"
	"fmt"
	"image"

	"github.com/katalvlaran/knightour/board"
)

// ErrNotBlackWhite is returned by FromImage in BlackWhite mode when the
// image contains a pixel that is neither pure black nor pure white.
var ErrNotBlackWhite = errors.New("shape: image is not black and white; try the luminance or alpha mode")

// ImageMode selects how FromImage decides whether a pixel marks a dead
// square.
type ImageMode int

const (
	// Alpha marks squares dead where the pixel's alpha channel meets the
	// threshold.
	Alpha ImageMode = iota
	// BlackWhite marks squares dead at black pixels and playable at
	// white ones; any other color is an error.
	BlackWhite
	// Luminance marks squares dead where the pixel's weighted luminance
	// (30/59/11) meets the threshold.
	Luminance
)

// String implements fmt.Stringer.
func (m ImageMode) String() string {
	switch m {
	case Alpha:
		return "alpha"
	case BlackWhite:
		return "blackwhite"
	default:
		return "luminance"
	}
}

// ParseImageMode parses an ImageMode name.
func ParseImageMode(s string) (ImageMode, error) {
	switch s {
	case "alpha":
		return Alpha, nil
	case "blackwhite", "bw":
		return BlackWhite, nil
	case "luminance", "lum":
		return Luminance, nil
	}

	return 0, fmt.Errorf("shape: unknown image mode %q", s)
}

// FromImage turns an image into a mask, one pixel per square: pixels the
// mode marks as drawn become dead squares, the rest stay playable.
func FromImage(img image.Image, mode ImageMode, threshold uint8) (Mask, error) {
	bounds := img.Bounds()
	mask := newMask(board.NewSize(uint16(bounds.Dx()), uint16(bounds.Dy())))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r32, g32, b32, a32 := img.At(x, y).RGBA()
			r, g, b, a := uint8(r32>>8), uint8(g32>>8), uint8(b32>>8), uint8(a32>>8)

			var drawn bool
			switch mode {
			case Alpha:
				drawn = a >= threshold
			case BlackWhite:
				switch {
				case r == 255 && g == 255 && b == 255 && a == 255:
					drawn = false
				case r == 0 && g == 0 && b == 0 && a == 255:
					drawn = true
				default:
					return Mask{}, ErrNotBlackWhite
				}
			case Luminance:
				sum := uint32(r)*30 + uint32(g)*59 + uint32(b)*11
				drawn = uint8(sum/100) >= threshold
			}

			if drawn {
				mask.kill(board.NewPos(uint16(x-bounds.Min.X), uint16(y-bounds.Min.Y)))
			}
		}
	}

	return mask, nil
}
