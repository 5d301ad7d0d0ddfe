package bitmap

import (
	"image"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fromRows creates the bitmap out of the rows where the 'x' is an 'ON' pixel.
// Whitespace at both ends of the input is trimmed.
func fromRows(t testing.TB, rows ...string) *Bitmap {
	t.Helper()
	require.NotEmpty(t, rows)
	bm := New(len(rows[0]), len(rows))
	for y, row := range rows {
		require.Len(t, row, bm.Width, "row: %d", y)
		for x, c := range row {
			if c == 'x' {
				require.NoError(t, bm.SetPixel(x, y, 1))
			}
		}
	}
	return bm
}

// fromArt parses the multiline string into a bitmap.
func fromArt(t testing.TB, art string) *Bitmap {
	t.Helper()
	return fromRows(t, strings.Fields(art)...)
}

// randomBitmap creates a bitmap where each pixel is on with the 'density' probability.
func randomBitmap(rnd *rand.Rand, width, height int, density float64) *Bitmap {
	bm := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rnd.Float64() < density {
				bm.Data[bm.GetByteIndex(x, y)] |= 0x80 >> uint(x&0x07)
			}
		}
	}
	return bm
}

// referenceComponents labels the components with a plain breadth first search over
// the pixels visited in raster order. It returns the boxes and the pixel sets.
func referenceComponents(bm *Bitmap, connectivity int) ([]image.Rectangle, [][]image.Point) {
	neighbors := []image.Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	if connectivity == 8 {
		neighbors = append(neighbors, image.Pt(-1, -1), image.Pt(1, -1), image.Pt(-1, 1), image.Pt(1, 1))
	}
	visited := make([]bool, bm.Width*bm.Height)
	var (
		boxes  []image.Rectangle
		pixels [][]image.Point
	)
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			if visited[y*bm.Width+x] || !bm.GetPixel(x, y) {
				continue
			}
			visited[y*bm.Width+x] = true
			queue := []image.Point{{x, y}}
			box := image.Rect(x, y, x+1, y+1)
			var component []image.Point
			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				component = append(component, p)
				box = box.Union(image.Rect(p.X, p.Y, p.X+1, p.Y+1))
				for _, n := range neighbors {
					q := p.Add(n)
					if !q.In(bm.Bounds()) || visited[q.Y*bm.Width+q.X] || !bm.GetPixel(q.X, q.Y) {
						continue
					}
					visited[q.Y*bm.Width+q.X] = true
					queue = append(queue, q)
				}
			}
			boxes = append(boxes, box)
			pixels = append(pixels, component)
		}
	}
	return boxes, pixels
}

func boxValues(boxes *Boxes) []image.Rectangle {
	result := make([]image.Rectangle, 0, len(*boxes))
	for _, box := range *boxes {
		result = append(result, *box)
	}
	return result
}
