package bitmap

import (
	"errors"
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFillBB(t *testing.T) {
	t.Run("Diagonal", func(t *testing.T) {
		bm := New(12, 12)
		require.NoError(t, bm.SetPixel(5, 5, 1))
		require.NoError(t, bm.SetPixel(6, 6, 1))

		t.Run("Connectivity8", func(t *testing.T) {
			work := bm.Copy()
			box, err := SeedFillBB(work, 5, 5, 8)
			require.NoError(t, err)
			require.NotNil(t, box)
			assert.Equal(t, image.Rect(5, 5, 7, 7), *box)
			assert.True(t, work.Zero())
		})

		t.Run("Connectivity4", func(t *testing.T) {
			work := bm.Copy()
			box, err := SeedFillBB(work, 5, 5, 4)
			require.NoError(t, err)
			require.NotNil(t, box)
			assert.Equal(t, image.Rect(5, 5, 6, 6), *box)
			assert.True(t, work.GetPixel(6, 6))
			assert.Equal(t, 1, work.CountPixels())
		})

		t.Run("SeedBelow", func(t *testing.T) {
			work := bm.Copy()
			box, err := SeedFillBB(work, 6, 6, 8)
			require.NoError(t, err)
			require.NotNil(t, box)
			assert.Equal(t, image.Rect(5, 5, 7, 7), *box)
		})
	})

	t.Run("AntiDiagonal", func(t *testing.T) {
		bm := fromArt(t, `
			....x
			...x.
			..x..
			.x...
			x....
		`)
		for _, seed := range []image.Point{{4, 0}, {2, 2}, {0, 4}} {
			work := bm.Copy()
			box, err := SeedFillBB(work, seed.X, seed.Y, 8)
			require.NoError(t, err)
			require.NotNil(t, box)
			assert.Equal(t, image.Rect(0, 0, 5, 5), *box, "seed: %v", seed)
			assert.True(t, work.Zero(), "seed: %v", seed)
		}
	})

	t.Run("SeedOff", func(t *testing.T) {
		bm := fromArt(t, `
			x.
			.x
		`)
		box, err := SeedFillBB(bm, 1, 0, 4)
		require.NoError(t, err)
		assert.Nil(t, box)
		assert.Equal(t, 2, bm.CountPixels())
	})

	t.Run("SeedOutside", func(t *testing.T) {
		bm := fromArt(t, `
			xx
			xx
		`)
		for _, seed := range []image.Point{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
			box, err := SeedFillBB(bm, seed.X, seed.Y, 8)
			require.NoError(t, err)
			assert.Nil(t, box)
		}
		assert.Equal(t, 4, bm.CountPixels())
	})

	t.Run("InvalidInput", func(t *testing.T) {
		bm := fromArt(t, `
			xx
		`)
		_, err := SeedFillBB(bm, 0, 0, 6)
		assert.True(t, errors.Is(err, ErrInvalidConnectivity))
		assert.Equal(t, 2, bm.CountPixels())

		_, err = SeedFillBB(nil, 0, 0, 4)
		assert.True(t, errors.Is(err, ErrNilBitmap))
	})
}

func TestSeedFillLeaks(t *testing.T) {
	// the shapes can only be fully cleared when the runs growing sideways
	// are explored back in the direction they came from
	tests := []struct {
		name string
		art  string
		seed image.Point
		box  image.Rectangle
	}{
		{
			name: "UpsideDownU",
			art: `
				xxxxxxx
				x.....x
				x.....x
				x.....x
			`,
			seed: image.Pt(0, 3),
			box:  image.Rect(0, 0, 7, 4),
		},
		{
			name: "U",
			art: `
				x.....x
				x.....x
				x.....x
				xxxxxxx
			`,
			seed: image.Pt(6, 0),
			box:  image.Rect(0, 0, 7, 4),
		},
		{
			name: "OnePixelLeftLeak",
			art: `
				..x..
				.xx..
				.x...
			`,
			seed: image.Pt(2, 0),
			box:  image.Rect(1, 0, 3, 3),
		},
		{
			name: "SeedRowLeftLeak",
			art: `
				.....
				.xx..
				.x...
			`,
			seed: image.Pt(2, 1),
			box:  image.Rect(1, 1, 3, 3),
		},
		{
			name: "Spiral",
			art: `
				xxxxxxxxx
				........x
				xxxxxxx.x
				x.....x.x
				x.xxx.x.x
				x.x...x.x
				x.xxxxx.x
				x.......x
				xxxxxxxxx
			`,
			seed: image.Pt(4, 4),
			box:  image.Rect(0, 0, 9, 9),
		},
		{
			name: "Comb",
			art: `
				x.x.x.x.x
				x.x.x.x.x
				xxxxxxxxx
				x.x.x.x.x
			`,
			seed: image.Pt(8, 0),
			box:  image.Rect(0, 0, 9, 4),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, connectivity := range []int{4, 8} {
				bm := fromArt(t, tc.art)
				box, err := SeedFillBB(bm, tc.seed.X, tc.seed.Y, connectivity)
				require.NoError(t, err)
				require.NotNil(t, box)
				assert.Equal(t, tc.box, *box, "connectivity: %d", connectivity)
				assert.True(t, bm.Zero(), "connectivity: %d\n%s", connectivity, bm)
			}
		})
	}
}

func TestSeedFillStackReuse(t *testing.T) {
	bm := fromArt(t, `
		xx...x
		.x..xx
		....x.
	`)
	stack := newSegmentStack(0)

	box, err := seedFillStackBB(bm, stack, 0, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), *box)
	assert.Zero(t, stack.len())
	allocated := stack.allocated

	box, err = seedFillStackBB(bm, stack, 5, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(4, 0, 6, 3), *box)
	assert.Zero(t, stack.len())
	assert.True(t, bm.Zero())
	assert.Len(t, stack.aux, stack.allocated)
	assert.True(t, stack.allocated >= allocated)
}

func TestSeedFillStackOverflow(t *testing.T) {
	bm := New(20, 20)
	require.NoError(t, bm.RasterOperation(0, 0, 20, 20, PixSet, nil, 0, 0))

	_, err := seedFillStackBB(bm, newSegmentStack(1), 10, 10, 8)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSegmentStackOverflow))
}

func TestSeedFillRandom(t *testing.T) {
	// every fill must clear exactly the component found by the breadth first search
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 60; i++ {
		width, height := 1+rnd.Intn(70), 1+rnd.Intn(40)
		bm := randomBitmap(rnd, width, height, 0.3+0.4*rnd.Float64())
		for _, connectivity := range []int{4, 8} {
			boxes, components := referenceComponents(bm, connectivity)
			for j, component := range components {
				work := bm.Copy()
				seed := component[rnd.Intn(len(component))]
				box, err := SeedFillBB(work, seed.X, seed.Y, connectivity)
				require.NoError(t, err)
				require.NotNil(t, box)
				require.Equal(t, boxes[j], *box, "bitmap: %d, connectivity: %d, seed: %v\n%s", i, connectivity, seed, bm)

				for _, p := range component {
					require.False(t, work.GetPixel(p.X, p.Y))
				}
				require.Equal(t, bm.CountPixels()-len(component), work.CountPixels(),
					"bitmap: %d, connectivity: %d, seed: %v\n%s", i, connectivity, seed, bm)
			}
		}
	}
}
