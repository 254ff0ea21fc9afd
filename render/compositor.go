package render

import (
	"math/rand/v2"

	"github.com/lixenwraith/fireworks/constants"
	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/firework"
	"github.com/lixenwraith/fireworks/vmath"
)

// Compositor rasterizes particle trails into a character grid. Each frame starts
// from a blank grid and the first glyph written to a cell wins, so fireworks later
// in the manager are drawn on top.
type Compositor struct {
	grid        *core.Grid
	doubleWidth bool
	rng         *rand.Rand
}

// NewCompositor sizes the grid for a width x height terminal. In double-width mode
// each grid cell covers two terminal columns.
func NewCompositor(width, height int, doubleWidth bool, rng *rand.Rand) *Compositor {
	c := &Compositor{
		grid:        core.NewGrid(0, 0),
		doubleWidth: doubleWidth,
		rng:         rng,
	}
	c.Resize(width, height)
	return c
}

// Resize reallocates the grid for new terminal dimensions
func (c *Compositor) Resize(width, height int) {
	if c.doubleWidth {
		width = (width - 1) / 2
	}
	c.grid.Resize(width, height)
}

// Grid returns the frame produced by the last Render
func (c *Compositor) Grid() *core.Grid {
	return c.grid
}

func (c *Compositor) DoubleWidth() bool {
	return c.doubleWidth
}

// PlotSize returns the logical plot extent that maps onto the grid
func (c *Compositor) PlotSize() (int, int) {
	if c.doubleWidth {
		return c.grid.Width(), c.grid.Height()
	}
	return int(float64(c.grid.Width()) / constants.PlotAspect), c.grid.Height()
}

// Render clears the grid and draws every Alive firework, last to first
func (c *Compositor) Render(m *firework.Manager) {
	c.grid.Clear()

	fws := m.Fireworks()
	for i := len(fws) - 1; i >= 0; i-- {
		f := fws[i]
		if f.State() != firework.Alive {
			continue
		}
		cfg := f.Config()
		particles := f.Particles()
		for j := len(particles) - 1; j >= 0; j-- {
			c.drawParticle(particles[j], cfg)
		}
	}
}

// drawParticle walks the trail newest to oldest; segment density fades toward the tail
func (c *Compositor) drawParticle(p *firework.Particle, cfg *firework.Config) {
	stage := p.Stage()
	if stage == firework.StageDead {
		return
	}
	color := cfg.ColorOf(p)

	trail := p.Trail()
	n := len(trail)
	for idx := 0; idx+1 < n; idx++ {
		a := c.project(trail[n-1-idx])
		b := c.project(trail[n-2-idx])
		density := float64(n-idx-1) / float64(n)

		for _, pt := range vmath.Line(a, b) {
			if !c.grid.IsBlank(pt.X, pt.Y) {
				continue
			}
			r, ok := Glyph(stage, density, c.doubleWidth, c.rng)
			if !ok {
				return
			}
			c.grid.Set(pt.X, pt.Y, core.Cell{Rune: r, Color: color})
		}
	}
}

// project maps plot space to grid space
func (c *Compositor) project(v vmath.Vec2) vmath.Vec2 {
	if c.doubleWidth {
		return v
	}
	return vmath.Vec2{X: v.X * constants.PlotAspect, Y: v.Y}
}
