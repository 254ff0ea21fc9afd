package scene

import (
	"fmt"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/fireworks/core"
)

// Palette is a set of colors particles pick from uniformly
type Palette []core.RGB

// Pick returns a random palette entry, white for an empty palette
func (p Palette) Pick(rng *rand.Rand) core.RGB {
	if len(p) == 0 {
		return core.RGBWhite
	}
	return p[rng.IntN(len(p))]
}

func rgb(r, g, b uint8) core.RGB {
	return core.RGB{R: r, G: g, B: b}
}

// ParseHex converts "#rrggbb" or "#rgb" to RGB
func ParseHex(s string) (core.RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return core.RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

func fromColorful(c colorful.Color) core.RGB {
	r, g, b := c.Clamped().RGB255()
	return core.RGB{R: r, G: g, B: b}
}

// RandomPalette builds n bright colors with random hue in HCL space
func RandomPalette(rng *rand.Rand, n int) Palette {
	p := make(Palette, n)
	for i := range p {
		p[i] = fromColorful(colorful.Hcl(rng.Float64()*360, 0.4+rng.Float64()*0.6, 0.6+rng.Float64()*0.4))
	}
	return p
}

// Named palettes used by demos and the dynamic generator
var (
	Ember    = Palette{rgb(255, 102, 75), rgb(144, 56, 67), rgb(255, 225, 124), rgb(206, 32, 41)}
	Carnival = Palette{rgb(235, 39, 155), rgb(250, 216, 68), rgb(242, 52, 72), rgb(63, 52, 200), rgb(255, 139, 57)}
	Glacier  = Palette{rgb(152, 186, 227), rgb(89, 129, 177), rgb(54, 84, 117), rgb(240, 244, 254)}
	Meadow   = Palette{rgb(34, 87, 122), rgb(56, 163, 165), rgb(87, 204, 153), rgb(128, 237, 153), rgb(199, 249, 204)}
	Pastel   = Palette{rgb(205, 180, 219), rgb(255, 200, 221), rgb(255, 175, 204), rgb(189, 224, 254), rgb(162, 210, 255)}
	Sunset   = Palette{rgb(79, 0, 11), rgb(114, 0, 38), rgb(206, 66, 87), rgb(255, 127, 81), rgb(255, 155, 84)}
	Harbor   = Palette{rgb(0, 29, 61), rgb(0, 53, 102), rgb(255, 195, 0), rgb(255, 214, 10)}
	Gold     = Palette{rgb(250, 216, 68)}
	Sand     = Palette{rgb(242, 233, 190), rgb(226, 196, 136), rgb(149, 202, 176), rgb(26, 64, 126)}
	Pearl    = Palette{rgb(242, 233, 190), rgb(226, 196, 136), rgb(255, 248, 253)}
	Dusk     = Palette{rgb(152, 186, 227), rgb(54, 84, 117), rgb(21, 39, 60)}
	Rose     = Palette{rgb(233, 232, 237), rgb(254, 142, 130), rgb(200, 27, 72), rgb(86, 18, 31)}
	Spark    = Palette{rgb(226, 196, 136), rgb(255, 245, 253), rgb(208, 58, 99)}
)

// dynamicPalettes is the rotation of the dynamic generator
var dynamicPalettes = []Palette{Ember, Carnival, Glacier, Meadow, Pastel, Sunset, Harbor}
