package bitmap

import (
	"image"
	"math/bits"

	"github.com/moolekkari/unibitmap/internal/jbig2/errors"
)

// nextOnPixel finds the first 'ON' pixel at or after the 'xStart', 'yStart'
// position in the raster order. The words of the rows are tested as a whole
// and only a non zero word is searched for the bit. The bitmap is not changed.
// When no pixel is found 'ok' is false.
func (b *Bitmap) nextOnPixel(xStart, yStart int) (pt image.Point, ok bool, err error) {
	const processName = "nextOnPixel"
	if xStart < 0 || yStart < 0 {
		return pt, false, errors.Wrapf(ErrInvalidCoordinates, processName, "xStart: %d, yStart: %d", xStart, yStart)
	}
	wpr := b.WordsPerRow()
	for y := yStart; y < b.Height; y++ {
		var x int
		if y == yStart {
			x = xStart
		}
		if x >= b.Width {
			continue
		}
		idx := x >> 5
		// drop the bits on the left of 'x'
		word := b.Word(y, idx) & (^uint32(0) >> uint(x&31))
		for {
			if word != 0 {
				return image.Pt(idx<<5+bits.LeadingZeros32(word), y), true, nil
			}
			idx++
			if idx >= wpr {
				break
			}
			word = b.Word(y, idx)
		}
	}
	return pt, false, nil
}
