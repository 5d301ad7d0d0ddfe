package bitmap

import (
	"image"

	"github.com/moolekkari/unibitmap/common"
	"github.com/moolekkari/unibitmap/internal/jbig2/errors"
)

// ConnComponents gets the connected components of the bitmap 'b' using the
// 'connectivity' 4 or 8. The boxes of the components are returned in the raster
// order of their first pixels. If the 'bms' is provided, it is filled with the
// bitmaps of the components and their boxes.
// The bitmap 'b' is not changed.
func (b *Bitmap) ConnComponents(bms *Bitmaps, connectivity int) (*Boxes, error) {
	const processName = "Bitmap.ConnComponents"
	if bms == nil {
		boxes, err := ConnComponentsBB(b, connectivity)
		if err != nil {
			return nil, errors.Wrap(err, processName, "")
		}
		return boxes, nil
	}
	components, boxes, err := ConnComponentsBitmapsBB(b, connectivity)
	if err != nil {
		return nil, errors.Wrap(err, processName, "")
	}
	for i, bm := range components.Values {
		bms.AddBitmap(bm)
		bms.AddBox(components.Boxes[i])
	}
	return boxes, nil
}

// ConnComponentsBB gets the bounding boxes of the connected components of the 'bm'
// bitmap. This is the fast path that doesn't extract the component bitmaps.
func ConnComponentsBB(bm *Bitmap, connectivity int) (*Boxes, error) {
	const processName = "ConnComponentsBB"
	if err := validateComponentsInput(bm, connectivity); err != nil {
		return nil, errors.Wrap(err, processName, "")
	}
	boxes := &Boxes{}
	if bm.Zero() {
		return boxes, nil
	}
	if err := connComponentsBB(bm.Copy(), newSegmentStack(0), connectivity, boxes); err != nil {
		return nil, errors.Wrap(err, processName, "")
	}
	common.Log.Debug("[%s] %dx%d bitmap, connectivity: %d, components: %d", processName, bm.Width, bm.Height, connectivity, len(*boxes))
	return boxes, nil
}

// connComponentsBB sweeps the 'work' bitmap, clearing each component found
// and adding its box to the 'boxes'. On return the 'work' bitmap is zero.
func connComponentsBB(work *Bitmap, stack *segmentStack, connectivity int, boxes *Boxes) error {
	const processName = "connComponentsBB"
	err := sweepComponents(work, stack, connectivity, func(pt image.Point, box *image.Rectangle) error {
		if err := boxes.Add(box); err != nil {
			return err
		}
		if common.Log.IsLogLevel(common.LogLevelTrace) {
			common.Log.Trace("[%s] component: %d, seed: %v, box: %v", processName, len(*boxes), pt, *box)
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, processName, "")
	}
	return nil
}

// ConnComponentsBitmapsBB gets the connected components of the 'bm' bitmap together
// with their bitmaps. The i'th bitmap of the result has the size of the i'th box
// and contains only the pixels of the i'th component.
func ConnComponentsBitmapsBB(bm *Bitmap, connectivity int) (*Bitmaps, *Boxes, error) {
	const processName = "ConnComponentsBitmapsBB"
	if err := validateComponentsInput(bm, connectivity); err != nil {
		return nil, nil, errors.Wrap(err, processName, "")
	}
	bms, boxes := &Bitmaps{}, &Boxes{}
	if bm.Zero() {
		return bms, boxes, nil
	}
	if err := connComponentsBitmapsBB(bm.Copy(), bm.Copy(), newSegmentStack(0), connectivity, bms, boxes); err != nil {
		return nil, nil, errors.Wrap(err, processName, "")
	}
	common.Log.Debug("[%s] %dx%d bitmap, connectivity: %d, components: %d", processName, bm.Width, bm.Height, connectivity, len(*boxes))
	return bms, boxes, nil
}

// connComponentsBitmapsBB sweeps the 'work' bitmap like connComponentsBB. The 'orig'
// bitmap starts as an equal copy of 'work' and after each component is kept
// equal to 'work' outside of the components not yet found.
func connComponentsBitmapsBB(work, orig *Bitmap, stack *segmentStack, connectivity int, bms *Bitmaps, boxes *Boxes) error {
	const processName = "connComponentsBitmapsBB"
	err := sweepComponents(work, stack, connectivity, func(pt image.Point, box *image.Rectangle) error {
		if err := boxes.Add(box); err != nil {
			return err
		}
		component, err := extractComponent(work, orig, box)
		if err != nil {
			return errors.Wrapf(err, processName, "component: %d", len(*boxes))
		}
		bms.AddBitmap(component)
		bms.AddBox(box)
		if common.Log.IsLogLevel(common.LogLevelTrace) {
			common.Log.Trace("[%s] component: %d, seed: %v, box: %v", processName, len(*boxes), pt, *box)
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, processName, "")
	}
	return nil
}

// sweepComponents scans the 'work' bitmap in raster order. Each 'ON' pixel found
// seeds a fill that clears its component, which is then passed to the 'fn' together
// with its box. The scan continues from the seed, as every pixel before it is
// already off. Any error of the fill or the 'fn' stops the sweep.
func sweepComponents(work *Bitmap, stack *segmentStack, connectivity int, fn func(pt image.Point, box *image.Rectangle) error) error {
	const processName = "sweepComponents"
	var pt image.Point
	for {
		next, ok, err := work.nextOnPixel(pt.X, pt.Y)
		if err != nil {
			return errors.Wrap(err, processName, "")
		}
		if !ok {
			return nil
		}
		pt = next

		box, err := seedFillStackBB(work, stack, pt.X, pt.Y, connectivity)
		if err != nil {
			return errors.Wrapf(err, processName, "seed: %v", pt)
		}
		if box == nil {
			return errors.Errorf(processName, "no component found at the 'ON' pixel: %v", pt)
		}
		if err = fn(pt, box); err != nil {
			return errors.Wrapf(err, processName, "seed: %v", pt)
		}
	}
}

// extractComponent gets the bitmap of the component just cleared from 'work'
// within the 'box'. The only difference between the 'work' and 'orig' bitmaps in the
// 'box' are the component pixels, thus their XOR is the component. The component is
// then removed from 'orig' as well.
func extractComponent(work, orig *Bitmap, box *image.Rectangle) (*Bitmap, error) {
	const processName = "extractComponent"
	cleared, _, err := work.ClipRectangle(box)
	if err != nil {
		return nil, errors.Wrap(err, processName, "work")
	}
	original, _, err := orig.ClipRectangle(box)
	if err != nil {
		return nil, errors.Wrap(err, processName, "orig")
	}
	component, err := cleared.Xor(original)
	if err != nil {
		return nil, errors.Wrap(err, processName, "")
	}
	if err = orig.RasterOperation(box.Min.X, box.Min.Y, box.Dx(), box.Dy(), PixSrcXorDst, component, 0, 0); err != nil {
		return nil, errors.Wrap(err, processName, "")
	}
	return component, nil
}

// CountConnComponents gets the number of the connected components in the 'bm' bitmap.
func CountConnComponents(bm *Bitmap, connectivity int) (int, error) {
	const processName = "CountConnComponents"
	if err := validateComponentsInput(bm, connectivity); err != nil {
		return 0, errors.Wrap(err, processName, "")
	}
	if bm.Zero() {
		return 0, nil
	}
	var count int
	err := sweepComponents(bm.Copy(), newSegmentStack(0), connectivity, func(image.Point, *image.Rectangle) error {
		count++
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, processName, "")
	}
	return count, nil
}

func validateComponentsInput(bm *Bitmap, connectivity int) error {
	const processName = "validateComponentsInput"
	if bm == nil {
		common.Log.Debug("[%s] nil bitmap", processName)
		return errors.Wrap(ErrNilBitmap, processName, "")
	}
	if err := bm.validate(); err != nil {
		common.Log.Debug("[%s] %v", processName, err)
		return errors.Wrap(err, processName, "")
	}
	if connectivity != 4 && connectivity != 8 {
		common.Log.Debug("[%s] invalid connectivity: %d", processName, connectivity)
		return errors.Wrapf(ErrInvalidConnectivity, processName, "connectivity: %d", connectivity)
	}
	return nil
}
