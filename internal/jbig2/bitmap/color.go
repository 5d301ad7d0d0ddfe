package bitmap

// Color is the jbig2 color interpretation enum.
// The naming convention taken from 'https://en.wikipedia.org/wiki/Binary_image#Interpretation'.
// The color is carried along with the bitmap data. The component functions
// always treat the set bits as the foreground, regardless of the color.
type Color int

const (
	// Vanilla is the bit interpretation where the 1'th bit means white and the 0'th bit means black.
	Vanilla Color = iota
	// Chocolate is the bit interpretation where the 0'th bit means white and the 1'th bit means black.
	Chocolate
)

// String implements fmt.Stringer interface.
func (c Color) String() string {
	switch c {
	case Vanilla:
		return "Vanilla"
	case Chocolate:
		return "Chocolate"
	}
	return "Unknown"
}
