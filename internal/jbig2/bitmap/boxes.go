package bitmap

import (
	"image"

	"github.com/moolekkari/unibitmap/internal/jbig2/errors"
)

// Boxes is the ordered collection of rectangles.
type Boxes []*image.Rectangle

// Add adds the 'box' at the end of the collection.
func (b *Boxes) Add(box *image.Rectangle) error {
	const processName = "Boxes.Add"
	if b == nil {
		return errors.Error(processName, "'Boxes' not defined")
	}
	if box == nil {
		return errors.Error(processName, "provided nil box")
	}
	*b = append(*b, box)
	return nil
}

// Get gets the box at 'i' index.
func (b Boxes) Get(i int) (*image.Rectangle, error) {
	const processName = "Boxes.Get"
	if i < 0 || i >= len(b) {
		return nil, errors.Errorf(processName, "index: '%d' out of range", i)
	}
	return b[i], nil
}

// Len gets the number of boxes.
func (b Boxes) Len() int {
	return len(b)
}

// Bitmaps is the ordered collection of bitmaps paired with the boxes locating them.
type Bitmaps struct {
	Values []*Bitmap
	Boxes  []*image.Rectangle
}

// AddBitmap adds the bitmap 'bm' to the 'b' Values.
func (b *Bitmaps) AddBitmap(bm *Bitmap) {
	b.Values = append(b.Values, bm)
}

// AddBox adds the 'box' to the 'b' Boxes.
func (b *Bitmaps) AddBox(box *image.Rectangle) {
	b.Boxes = append(b.Boxes, box)
}

// GetBitmap gets the bitmap at the 'i' index.
func (b *Bitmaps) GetBitmap(i int) (*Bitmap, error) {
	const processName = "Bitmaps.GetBitmap"
	if b == nil {
		return nil, errors.Error(processName, "'Bitmaps' not defined")
	}
	if i < 0 || i >= len(b.Values) {
		return nil, errors.Errorf(processName, "index: '%d' out of range", i)
	}
	return b.Values[i], nil
}

// GetBox gets the box at the 'i' index.
func (b *Bitmaps) GetBox(i int) (*image.Rectangle, error) {
	const processName = "Bitmaps.GetBox"
	if b == nil {
		return nil, errors.Error(processName, "'Bitmaps' not defined")
	}
	if i < 0 || i >= len(b.Boxes) {
		return nil, errors.Errorf(processName, "index: '%d' out of range", i)
	}
	return b.Boxes[i], nil
}

// Size gets the number of bitmaps.
func (b *Bitmaps) Size() int {
	return len(b.Values)
}
