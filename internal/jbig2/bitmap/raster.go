package bitmap

import (
	"image"

	"github.com/moolekkari/unibitmap/internal/jbig2/errors"
)

// RasterOperator is the raster operation code combining the source and destination pixels.
type RasterOperator int

// Raster operators.
const (
	// PixClr clears the destination pixels.
	PixClr RasterOperator = iota
	// PixSet sets the destination pixels.
	PixSet
	// PixSrc copies the source pixels into the destination.
	PixSrc
	// PixSrcOrDst combines the source and destination with the bitwise OR.
	PixSrcOrDst
	// PixSrcAndDst combines the source and destination with the bitwise AND.
	PixSrcAndDst
	// PixSrcXorDst combines the source and destination with the bitwise XOR.
	PixSrcXorDst
)

func (op RasterOperator) usesSource() bool {
	return op != PixClr && op != PixSet
}

// RasterOperation applies the operator 'op' on the destination rectangle
// 'dx', 'dy', 'dw', 'dh' of the bitmap 'b', using the 'src' pixels starting at 'sx', 'sy'.
// The rectangle is clipped to both the destination and the source bitmaps.
// The 'src' is ignored by PixClr and PixSet.
func (b *Bitmap) RasterOperation(dx, dy, dw, dh int, op RasterOperator, src *Bitmap, sx, sy int) error {
	const processName = "RasterOperation"
	if op < PixClr || op > PixSrcXorDst {
		return errors.Errorf(processName, "invalid raster operator: %d", op)
	}
	dst := image.Rect(dx, dy, dx+dw, dy+dh).Intersect(b.Bounds())
	if op.usesSource() {
		if src == nil {
			return errors.Wrap(ErrNilBitmap, processName, "source")
		}
		// source bounds expressed in the destination coordinates
		srcBounds := src.Bounds().Add(image.Pt(dx-sx, dy-sy))
		dst = dst.Intersect(srcBounds)
	}
	if dst.Empty() {
		return nil
	}
	ox, oy := sx-dx, sy-dy
	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			var s bool
			if op.usesSource() {
				s = src.bit(x+ox, y+oy)
			}
			d := b.bit(x, y)
			var v bool
			switch op {
			case PixClr:
			case PixSet:
				v = true
			case PixSrc:
				v = s
			case PixSrcOrDst:
				v = s || d
			case PixSrcAndDst:
				v = s && d
			case PixSrcXorDst:
				v = s != d
			}
			if v == d {
				continue
			}
			if v {
				b.Data[y*b.RowStride+x>>3] |= 0x80 >> uint(x&0x07)
			} else {
				b.clearPixel(x, y)
			}
		}
	}
	return nil
}

// ClipRectangle clips the 'b' bitmap to the 'box' rectangle. The returned
// rectangle is the 'box' intersected with the bitmap bounds and locates the
// clipped bitmap within 'b'.
func (b *Bitmap) ClipRectangle(box *image.Rectangle) (*Bitmap, *image.Rectangle, error) {
	const processName = "ClipRectangle"
	if box == nil {
		return nil, nil, errors.Error(processName, "box is not defined")
	}
	clipped := box.Intersect(b.Bounds())
	if clipped.Empty() {
		return nil, nil, errors.Errorf(processName, "box: %v doesn't overlap the bitmap: %v", *box, b.Bounds())
	}
	d := New(clipped.Dx(), clipped.Dy())
	d.Color = b.Color
	if err := d.RasterOperation(0, 0, d.Width, d.Height, PixSrc, b, clipped.Min.X, clipped.Min.Y); err != nil {
		return nil, nil, errors.Wrap(err, processName, "")
	}
	return d, &clipped, nil
}

// Xor returns a new bitmap being the bitwise XOR of the 'b' and 'd' bitmaps.
// Both bitmaps must be of the same size.
func (b *Bitmap) Xor(d *Bitmap) (*Bitmap, error) {
	const processName = "Xor"
	if d == nil {
		return nil, errors.Wrap(ErrNilBitmap, processName, "")
	}
	if b.Width != d.Width || b.Height != d.Height {
		return nil, errors.Wrapf(ErrSizeMismatch, processName, "%dx%d vs %dx%d", b.Width, b.Height, d.Width, d.Height)
	}
	result := b.Copy()
	for y := 0; y < b.Height; y++ {
		row := y * b.RowStride
		drow := y * d.RowStride
		for i := 0; i < b.RowStride; i++ {
			result.Data[row+i] ^= d.Data[drow+i]
		}
	}
	return result, nil
}
