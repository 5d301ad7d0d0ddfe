package bitmap

import (
	"encoding/binary"
	"image"
	"math/bits"
	"strings"

	"github.com/moolekkari/unibitmap/internal/jbig2/errors"
)

// Bitmap is the jbig2 binary image. Each row of the 'Data' is packed into
// 'RowStride' bytes, where the most significant bit of a byte is the leftmost pixel.
type Bitmap struct {
	// Width and Height are the dimensions of the bitmap in pixels.
	Width, Height int
	// RowStride is the number of bytes used by a single row.
	RowStride int
	// Data is the packed pixel data, 'Height' rows of 'RowStride' bytes.
	Data []byte
	// Color is the bit interpretation of the data.
	Color Color
}

// New creates a new zero valued bitmap of the given 'width' and 'height'.
func New(width, height int) *Bitmap {
	bm := newBitmap(width, height)
	bm.Data = make([]byte, height*bm.RowStride)
	return bm
}

// NewWithData creates a new bitmap of the given size that uses the provided 'data'.
// The bits of the row padding in 'data' are cleared.
func NewWithData(width, height int, data []byte) (*Bitmap, error) {
	const processName = "NewWithData"
	if width < 0 || height < 0 {
		return nil, errors.Errorf(processName, "invalid size: %dx%d", width, height)
	}
	bm := newBitmap(width, height)
	if len(data) < height*bm.RowStride {
		return nil, errors.Errorf(processName, "invalid data length: %d - should be: %d", len(data), height*bm.RowStride)
	}
	bm.Data = data
	bm.clearPadding()
	return bm, nil
}

func newBitmap(width, height int) *Bitmap {
	return &Bitmap{
		Width:     width,
		Height:    height,
		RowStride: (width + 7) >> 3,
	}
}

// Bounds returns the rectangle covering the whole bitmap.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// validate checks if the bitmap size, row stride and data length are consistent.
func (b *Bitmap) validate() error {
	const processName = "validate"
	if b.Width < 0 || b.Height < 0 {
		return errors.Wrapf(ErrInvalidBitmap, processName, "size: %dx%d", b.Width, b.Height)
	}
	if b.RowStride < (b.Width+7)>>3 {
		return errors.Wrapf(ErrInvalidBitmap, processName, "row stride: %d - should be at least: %d", b.RowStride, (b.Width+7)>>3)
	}
	if len(b.Data) < b.Height*b.RowStride {
		return errors.Wrapf(ErrInvalidBitmap, processName, "data length: %d - should be at least: %d", len(b.Data), b.Height*b.RowStride)
	}
	return nil
}

// Copy gets a copy of the current bitmap.
func (b *Bitmap) Copy() *Bitmap {
	data := make([]byte, len(b.Data))
	copy(data, b.Data)
	return &Bitmap{
		Width:     b.Width,
		Height:    b.Height,
		RowStride: b.RowStride,
		Data:      data,
		Color:     b.Color,
	}
}

// GetByteIndex gets the byte index of the pixel at 'x', 'y'.
func (b *Bitmap) GetByteIndex(x, y int) int {
	return y*b.RowStride + (x >> 3)
}

// GetBitOffset gets the bit offset of the pixel within its byte.
func (b *Bitmap) GetBitOffset(x int) int {
	return x & 0x07
}

// GetPixel gets the pixel value at the coordinates 'x', 'y'.
// Pixels outside of the bitmap are off.
func (b *Bitmap) GetPixel(x, y int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return false
	}
	return b.bit(x, y)
}

// SetPixel sets the pixel at the 'x', 'y' coordinates to the 'pixel' value.
// Any non zero 'pixel' sets the bit.
func (b *Bitmap) SetPixel(x, y int, pixel byte) error {
	const processName = "SetPixel"
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return errors.Errorf(processName, "index out of range: %d, %d", x, y)
	}
	i := b.GetByteIndex(x, y)
	shift := uint(7 - b.GetBitOffset(x))
	if pixel != 0 {
		b.Data[i] |= 1 << shift
	} else {
		b.Data[i] &^= 1 << shift
	}
	return nil
}

// bit gets the pixel at 'x', 'y' without the bounds checking.
func (b *Bitmap) bit(x, y int) bool {
	return b.Data[y*b.RowStride+x>>3]&(0x80>>uint(x&0x07)) != 0
}

// clearPixel clears the pixel at 'x', 'y' without the bounds checking.
func (b *Bitmap) clearPixel(x, y int) {
	b.Data[y*b.RowStride+x>>3] &^= 0x80 >> uint(x&0x07)
}

// WordsPerRow gets the number of 32-bit words needed to hold a single row.
func (b *Bitmap) WordsPerRow() int {
	return (b.Width + 31) >> 5
}

// Word gets the 'index'th 32-bit word of the 'row'. The first pixel of the
// word is its most significant bit. Bits past the row end are zero.
func (b *Bitmap) Word(row, index int) uint32 {
	rowStart := row * b.RowStride
	start := rowStart + index<<2
	end := rowStart + b.RowStride

	var word uint32
	if start+4 <= end {
		word = binary.BigEndian.Uint32(b.Data[start : start+4])
	} else {
		for i := 0; i < 4; i++ {
			word <<= 8
			if start+i < end {
				word |= uint32(b.Data[start+i])
			}
		}
	}
	if index == b.WordsPerRow()-1 {
		if r := b.Width & 31; r != 0 {
			word &= ^uint32(0) << uint(32-r)
		}
	}
	return word
}

// CountPixels counts the 'ON' pixels in the bitmap.
func (b *Bitmap) CountPixels() int {
	var count int
	wpr := b.WordsPerRow()
	for y := 0; y < b.Height; y++ {
		for i := 0; i < wpr; i++ {
			count += bits.OnesCount32(b.Word(y, i))
		}
	}
	return count
}

// Zero checks if the bitmap has no 'ON' pixels.
func (b *Bitmap) Zero() bool {
	wpr := b.WordsPerRow()
	for y := 0; y < b.Height; y++ {
		for i := 0; i < wpr; i++ {
			if b.Word(y, i) != 0 {
				return false
			}
		}
	}
	return true
}

// Equals checks if the bitmaps have equal sizes and pixels. The row padding is not compared.
func (b *Bitmap) Equals(d *Bitmap) bool {
	if d == nil || b.Width != d.Width || b.Height != d.Height {
		return false
	}
	wpr := b.WordsPerRow()
	for y := 0; y < b.Height; y++ {
		for i := 0; i < wpr; i++ {
			if b.Word(y, i) != d.Word(y, i) {
				return false
			}
		}
	}
	return true
}

// String implements the fmt.Stringer interface. Each row is written
// on its own line where 'x' marks an 'ON' pixel and '.' an 'OFF' one.
func (b *Bitmap) String() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.bit(x, y) {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Bitmap) clearPadding() {
	r := b.Width & 0x07
	if r == 0 {
		return
	}
	mask := byte(0xff << uint(8-r))
	for y := 0; y < b.Height; y++ {
		b.Data[y*b.RowStride+b.RowStride-1] &= mask
	}
}
