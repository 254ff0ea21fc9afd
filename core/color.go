package core

import "fmt"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Scale multiplies each channel by factor. Results saturate to [0, 255] and are
// truncated toward zero, never rounded.
func (c RGB) Scale(factor float64) RGB {
	return RGB{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
	}
}

func scaleChannel(v uint8, factor float64) uint8 {
	f := float64(v) * factor
	if f >= 255 {
		return 255
	}
	// NaN fails both comparisons and lands here
	if !(f > 0) {
		return 0
	}
	return uint8(f)
}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c == other
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
