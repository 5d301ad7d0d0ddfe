package bitmap

import (
	"image"

	"github.com/moolekkari/unibitmap/internal/jbig2/errors"
)

// fillSegment is the scan line seed fill work item. The pixels 'xLeft'..'xRight'
// on the line 'y' were just cleared and the line 'y'+'dy' is the one to explore next.
type fillSegment struct {
	xLeft  int
	xRight int
	y      int
	dy     int
}

// boundingBox accumulates the extent of the pixels cleared by a single fill.
type boundingBox struct {
	minX, minY int
	maxX, maxY int
}

func (bb *boundingBox) update(xLeft, xRight, y int) {
	if xLeft < bb.minX {
		bb.minX = xLeft
	}
	if xRight > bb.maxX {
		bb.maxX = xRight
	}
	if y < bb.minY {
		bb.minY = y
	}
	if y > bb.maxY {
		bb.maxY = y
	}
}

func (bb *boundingBox) rectangle() *image.Rectangle {
	r := image.Rect(bb.minX, bb.minY, bb.maxX+1, bb.maxY+1)
	return &r
}

// segmentStack is the LIFO of the fill segments. The popped segments are moved
// to the 'aux' pool and reused by the following pushes. A single stack serves
// every fill of a component sweep.
type segmentStack struct {
	items []*fillSegment
	aux   []*fillSegment

	// allocated is the number of segments created by the stack.
	allocated int
	// limit is the maximum number of allocated segments. Zero means no limit.
	limit int
}

func newSegmentStack(limit int) *segmentStack {
	return &segmentStack{limit: limit}
}

func (s *segmentStack) len() int {
	return len(s.items)
}

// push updates the bounding box 'bb' with the segment extent and, if the line
// 'y'+'dy' lies within 0..'yMax', stores the segment on the stack.
func (s *segmentStack) push(xLeft, xRight, y, dy, yMax int, bb *boundingBox) error {
	bb.update(xLeft, xRight, y)
	return s.pushSegment(xLeft, xRight, y, dy, yMax)
}

// pushSegment stores the segment without touching any bounding box.
func (s *segmentStack) pushSegment(xLeft, xRight, y, dy, yMax int) error {
	const processName = "pushSegment"
	if y+dy < 0 || y+dy > yMax {
		return nil
	}
	var seg *fillSegment
	if n := len(s.aux); n > 0 {
		seg = s.aux[n-1]
		s.aux[n-1] = nil
		s.aux = s.aux[:n-1]
	} else {
		if s.limit > 0 && s.allocated >= s.limit {
			return errors.Wrapf(ErrSegmentStackOverflow, processName, "limit: %d", s.limit)
		}
		seg = &fillSegment{}
		s.allocated++
	}
	seg.xLeft, seg.xRight, seg.y, seg.dy = xLeft, xRight, y, dy
	s.items = append(s.items, seg)
	return nil
}

// pop removes the top segment and returns the line to explore: 'y' is the
// stored line moved by 'dy'. The caller must check that the stack is not empty.
func (s *segmentStack) pop() (xLeft, xRight, y, dy int) {
	n := len(s.items) - 1
	seg := s.items[n]
	s.items[n] = nil
	s.items = s.items[:n]
	s.aux = append(s.aux, seg)
	return seg.xLeft, seg.xRight, seg.y + seg.dy, seg.dy
}

// reset moves all the pending segments into the pool.
func (s *segmentStack) reset() {
	for i, seg := range s.items {
		s.aux = append(s.aux, seg)
		s.items[i] = nil
	}
	s.items = s.items[:0]
}
