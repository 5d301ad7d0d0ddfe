// Package bitmap contains the bitmap data container for the
// binary images used when decoding the jbig2 encoded images.
// This package contains also the binary image operational functions
// that locate the connected components of an image, do the raster
// operations and split an image into the bitmaps of its components.
package bitmap
