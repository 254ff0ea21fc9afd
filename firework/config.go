package firework

import (
	"github.com/lixenwraith/fireworks/constants"
	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/gradient"
	"github.com/lixenwraith/fireworks/vmath"
)

// Config is shared read-only by all particles of one firework
type Config struct {
	// GravityScale multiplies the constant downward pull
	GravityScale float64
	// DragScale scales quadratic air resistance; very large or very small values
	// make particles behave oddly
	DragScale float64
	// Force is an optional extra force law, nil for none
	Force Force
	// Gradient maps elapsed/lifetime to a brightness multiplier
	Gradient gradient.Curve
	// GradientEnabled toggles Gradient; dark opaque terminals look best with it on
	GradientEnabled bool
}

// DefaultConfig returns unit gravity, default drag, no extra force and a flat
// disabled gradient
func DefaultConfig() Config {
	return Config{
		GravityScale: constants.DefaultGravityScale,
		DragScale:    constants.DefaultDragScale,
		Gradient:     gradient.Flat,
	}
}

func (c Config) WithGravityScale(s float64) Config {
	c.GravityScale = s
	return c
}

func (c Config) WithDragScale(s float64) Config {
	c.DragScale = s
	return c
}

func (c Config) WithForce(f Force) Config {
	c.Force = f
	return c
}

func (c Config) WithGradient(g gradient.Curve) Config {
	c.Gradient = g
	return c
}

func (c Config) WithGradientEnabled(enabled bool) Config {
	c.GradientEnabled = enabled
	return c
}

// Acceleration sums gravity, quadratic drag and the extra force for p.
// Drag is zero when the particle is at rest.
func (c *Config) Acceleration(p *Particle) vmath.Vec2 {
	acc := vmath.Down.Scale(constants.GravityStrength * c.GravityScale)

	if speed := p.Vel.Len(); speed > 0 {
		// -normalize(v) * |v|^2 * k == -v * |v| * k
		acc = acc.Sub(p.Vel.Scale(speed * c.DragScale))
	}

	if c.Force != nil {
		acc = acc.Add(c.Force.Apply(p))
	}
	return acc
}

// Brightness returns the gradient multiplier for p, 1 when disabled
func (c *Config) Brightness(p *Particle) float64 {
	if !c.GradientEnabled || c.Gradient == nil {
		return 1
	}
	return c.Gradient(p.Progress())
}

// ColorOf resolves p's display color
func (c *Config) ColorOf(p *Particle) core.RGB {
	return p.Config.Color.Scale(c.Brightness(p))
}
