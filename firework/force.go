package firework

import "github.com/lixenwraith/fireworks/vmath"

// Force is an extra per-particle force law evaluated every sub-step against the
// particle's current state
type Force interface {
	Apply(p *Particle) vmath.Vec2
}

// ForceFunc adapts a plain function to Force
type ForceFunc func(p *Particle) vmath.Vec2

func (f ForceFunc) Apply(p *Particle) vmath.Vec2 {
	return f(p)
}

// Attractor pulls toward Center with magnitude Strength/distance.
// Negative Strength repels. Zero at the center itself.
type Attractor struct {
	Center   vmath.Vec2
	Strength float64
}

func (a Attractor) Apply(p *Particle) vmath.Vec2 {
	d := a.Center.Sub(p.Pos)
	dist := d.Len()
	if dist == 0 {
		return vmath.Zero
	}
	return d.Scale(a.Strength / (dist * dist))
}

// Spring pulls toward Center proportionally to displacement
type Spring struct {
	Center    vmath.Vec2
	Stiffness float64
}

func (s Spring) Apply(p *Particle) vmath.Vec2 {
	return s.Center.Sub(p.Pos).Scale(s.Stiffness)
}

// Constant applies the same force everywhere (wind)
type Constant struct {
	Vec vmath.Vec2
}

func (c Constant) Apply(*Particle) vmath.Vec2 {
	return c.Vec
}
