package bitmap

import "errors"

var (
	// ErrNilBitmap is returned when the provided bitmap is nil.
	ErrNilBitmap = errors.New("provided nil bitmap")
	// ErrInvalidBitmap is returned when the bitmap geometry doesn't match its data.
	ErrInvalidBitmap = errors.New("invalid bitmap")
	// ErrInvalidConnectivity is returned when the connectivity is neither 4 nor 8.
	ErrInvalidConnectivity = errors.New("invalid connectivity - must be 4 or 8")
	// ErrInvalidCoordinates is returned when a scan starts at negative coordinates.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	// ErrSegmentStackOverflow is returned when the fill segment pool exceeds its limit.
	ErrSegmentStackOverflow = errors.New("fill segment pool limit exceeded")
	// ErrSizeMismatch is returned when the bitmaps of a binary operation differ in size.
	ErrSizeMismatch = errors.New("bitmap sizes don't match")
)
