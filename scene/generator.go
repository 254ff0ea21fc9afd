package scene

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/fireworks/constants"
	"github.com/lixenwraith/fireworks/firework"
	"github.com/lixenwraith/fireworks/vmath"
)

// Generator keeps a dynamic manager populated with random bursts. Each Feed adds at
// most one firework, so a freshly sized plot fills up over a few frames.
type Generator struct {
	rng      *rand.Rand
	gradient bool
	palettes []Palette
	// random makes every burst draw a new HCL palette instead of a named one
	random bool
}

// NewGenerator returns a generator cycling the built-in palettes
func NewGenerator(rng *rand.Rand, gradientOn bool) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Generator{
		rng:      rng,
		gradient: gradientOn,
		palettes: dynamicPalettes,
	}
}

// WithRandomPalettes switches to generated palettes
func (g *Generator) WithRandomPalettes(on bool) *Generator {
	g.random = on
	return g
}

// Target returns the population the generator maintains for a plot
func Target(plotW, plotH int) int {
	return max(plotW, 0)*max(plotH, 0)/constants.DynamicDensityDivisor + constants.DynamicBaseline
}

// Feed adds one burst when m is below target. Positions may fall slightly
// outside the plot so edges get partial bursts.
func (g *Generator) Feed(m *firework.Manager, plotW, plotH int, now time.Time) {
	if m.Len() >= Target(plotW, plotH) {
		return
	}

	x := float64(g.rng.IntN(max(plotW, 0)+6) - 3)
	y := float64(g.rng.IntN(max(plotH, 0)+2) - 1)
	delay := time.Duration(g.rng.Int64N(int64(constants.DynamicMaxDelay)))

	var palette Palette
	if g.random {
		palette = RandomPalette(g.rng, 4)
	} else {
		palette = g.palettes[g.rng.IntN(len(g.palettes))]
	}

	m.Add(Burst(g.rng, now, vmath.V(x, y), delay, g.gradient, palette))
}
