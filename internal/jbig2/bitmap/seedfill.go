package bitmap

import (
	"image"

	"github.com/moolekkari/unibitmap/internal/jbig2/errors"
)

// SeedFillBB clears the connected component containing the seed pixel 'x', 'y'
// from the bitmap 'bm' and returns its bounding box. If the seed is off or lies
// outside of the bitmap the function returns a nil box and no error.
// The 'connectivity' must be 4 or 8.
func SeedFillBB(bm *Bitmap, x, y, connectivity int) (*image.Rectangle, error) {
	const processName = "SeedFillBB"
	box, err := seedFillStackBB(bm, newSegmentStack(0), x, y, connectivity)
	if err != nil {
		return nil, errors.Wrap(err, processName, "")
	}
	return box, nil
}

// seedFillStackBB is the scan line stack seed fill that clears the component
// of the seed pixel 'x', 'y' and gathers its bounding box on the way.
// The 'stack' is empty on return from a successful fill.
func seedFillStackBB(bm *Bitmap, stack *segmentStack, x, y, connectivity int) (*image.Rectangle, error) {
	const processName = "seedFillStackBB"
	if bm == nil {
		return nil, errors.Wrap(ErrNilBitmap, processName, "")
	}
	if err := bm.validate(); err != nil {
		return nil, errors.Wrap(err, processName, "")
	}
	if stack == nil {
		return nil, errors.Error(processName, "nil segment stack")
	}
	var (
		box *image.Rectangle
		err error
	)
	switch connectivity {
	case 4:
		box, err = seedFill4BB(bm, stack, x, y)
	case 8:
		box, err = seedFill8BB(bm, stack, x, y)
	default:
		return nil, errors.Wrapf(ErrInvalidConnectivity, processName, "connectivity: %d", connectivity)
	}
	if err != nil {
		return nil, errors.Wrap(err, processName, "")
	}
	return box, nil
}

// seedFill4BB is the 4-connected variant of the seed fill. A popped segment
// states that the pixels 'x1'..'x2' of the line 'y'-'dy' were cleared, so the
// 4-connected neighbors on the line 'y' are exactly 'x1'..'x2'.
func seedFill4BB(bm *Bitmap, stack *segmentStack, x, y int) (*image.Rectangle, error) {
	const processName = "seedFill4BB"
	xMax, yMax := bm.Width-1, bm.Height-1
	if x < 0 || x > xMax || y < 0 || y > yMax || !bm.bit(x, y) {
		return nil, nil
	}
	stack.reset()

	bb := &boundingBox{minX: x, maxX: x, minY: y, maxY: y}
	// the first segment explores the line below the seed, the second the seed line itself
	if err := stack.pushSegment(x, x, y, 1, yMax); err != nil {
		return nil, errors.Wrap(err, processName, "seed")
	}
	if err := stack.pushSegment(x, x, y+1, -1, yMax); err != nil {
		return nil, errors.Wrap(err, processName, "seed")
	}

	var x1, x2, dy, xStart int
	for stack.len() > 0 {
		x1, x2, y, dy = stack.pop()

		for x = x1; x >= 0 && bm.bit(x, y); x-- {
			bm.clearPixel(x, y)
		}
		// the pixel at 'x1' was off, look for the runs on the right
		skip := x >= x1
		if !skip {
			xStart = x + 1
			if xStart < x1 {
				// leak on left
				if err := stack.push(xStart, x1-1, y, -dy, yMax, bb); err != nil {
					return nil, errors.Wrap(err, processName, "left leak")
				}
			}
			x = x1 + 1
		}

		for {
			if !skip {
				for ; x <= xMax && bm.bit(x, y); x++ {
					bm.clearPixel(x, y)
				}
				if err := stack.push(xStart, x-1, y, dy, yMax, bb); err != nil {
					return nil, errors.Wrap(err, processName, "")
				}
				if x > x2+1 {
					// leak on right
					if err := stack.push(x2+1, x-1, y, -dy, yMax, bb); err != nil {
						return nil, errors.Wrap(err, processName, "right leak")
					}
				}
			}
			skip = false

			for x++; x <= x2 && x <= xMax && !bm.bit(x, y); x++ {
			}
			xStart = x
			if x > x2 || x > xMax {
				break
			}
		}
	}
	return bb.rectangle(), nil
}

// seedFill8BB is the 8-connected variant of the seed fill. The 8-connected
// neighbors on the line 'y' of the cleared pixels 'x1'..'x2' on the line 'y'-'dy'
// are 'x1'-1..'x2'+1, thus the scanning window is one pixel wider on both sides.
func seedFill8BB(bm *Bitmap, stack *segmentStack, x, y int) (*image.Rectangle, error) {
	const processName = "seedFill8BB"
	xMax, yMax := bm.Width-1, bm.Height-1
	if x < 0 || x > xMax || y < 0 || y > yMax || !bm.bit(x, y) {
		return nil, nil
	}
	stack.reset()

	bb := &boundingBox{minX: x, maxX: x, minY: y, maxY: y}
	if err := stack.pushSegment(x, x, y, 1, yMax); err != nil {
		return nil, errors.Wrap(err, processName, "seed")
	}
	if err := stack.pushSegment(x, x, y+1, -1, yMax); err != nil {
		return nil, errors.Wrap(err, processName, "seed")
	}

	var x1, x2, dy, xStart int
	for stack.len() > 0 {
		x1, x2, y, dy = stack.pop()

		for x = x1 - 1; x >= 0 && bm.bit(x, y); x-- {
			bm.clearPixel(x, y)
		}
		// the pixel at 'x1'-1 was off, look for the runs on the right
		skip := x >= x1-1
		if !skip {
			xStart = x + 1
			// leak on left, the run always reaches past 'x1' here
			if err := stack.push(xStart, x1-1, y, -dy, yMax, bb); err != nil {
				return nil, errors.Wrap(err, processName, "left leak")
			}
			x = x1
		}

		for {
			if !skip {
				for ; x <= xMax && bm.bit(x, y); x++ {
					bm.clearPixel(x, y)
				}
				if err := stack.push(xStart, x-1, y, dy, yMax, bb); err != nil {
					return nil, errors.Wrap(err, processName, "")
				}
				if x > x2+1 {
					// leak on right
					if err := stack.push(x2+1, x-1, y, -dy, yMax, bb); err != nil {
						return nil, errors.Wrap(err, processName, "right leak")
					}
				}
			}
			skip = false

			for x++; x <= x2+1 && x <= xMax && !bm.bit(x, y); x++ {
			}
			xStart = x
			if x > x2+1 || x > xMax {
				break
			}
		}
	}
	return bb.rectangle(), nil
}
