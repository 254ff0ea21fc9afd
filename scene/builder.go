// Package scene authors fireworks: a template builder, the built-in demos, YAML
// scene files and the dynamic population generator.
package scene

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/fireworks/firework"
	"github.com/lixenwraith/fireworks/vmath"
)

// IntSpan is the half-open interval [Min, Max). An empty span samples Min.
type IntSpan struct {
	Min, Max int
}

func (s IntSpan) Sample(rng *rand.Rand) int {
	if s.Max <= s.Min {
		return s.Min
	}
	return s.Min + rng.IntN(s.Max-s.Min)
}

// Span is the half-open interval [Min, Max) of seconds. An empty span samples Min.
type Span struct {
	Min, Max float64
}

func (s Span) Sample(rng *rand.Rand) float64 {
	if s.Max <= s.Min {
		return s.Min
	}
	return s.Min + rng.Float64()*(s.Max-s.Min)
}

// Duration samples the span as seconds
func (s Span) Duration(rng *rand.Rand) time.Duration {
	return time.Duration(s.Sample(rng) * float64(time.Second))
}

// Builder accumulates particle templates. Each emitted template samples its own
// trail length, lifetime and color.
type Builder struct {
	rng       *rand.Rand
	trail     IntSpan
	life      Span
	palette   Palette
	templates []firework.ParticleConfig
}

// NewBuilder starts with 20-25 cell trails, 2-2.5s lives and white particles
func NewBuilder(rng *rand.Rand) *Builder {
	return &Builder{
		rng:   rng,
		trail: IntSpan{20, 25},
		life:  Span{2, 2.5},
	}
}

func (b *Builder) Trail(min, max int) *Builder {
	b.trail = IntSpan{min, max}
	return b
}

func (b *Builder) Life(min, max float64) *Builder {
	b.life = Span{min, max}
	return b
}

func (b *Builder) Colors(p Palette) *Builder {
	b.palette = p
	return b
}

// Emit adds one template per velocity, all starting at pos
func (b *Builder) Emit(pos vmath.Vec2, vels ...vmath.Vec2) *Builder {
	for _, v := range vels {
		b.templates = append(b.templates, firework.ParticleConfig{
			InitPos:     pos,
			InitVel:     v,
			TrailLength: max(b.trail.Sample(b.rng), 1),
			LifeTime:    max(b.life.Duration(b.rng), time.Millisecond),
			Color:       b.palette.Pick(b.rng),
		})
	}
	return b
}

// EmitShared is Emit with one trail length and lifetime sampled for the whole batch
func (b *Builder) EmitShared(pos vmath.Vec2, vels ...vmath.Vec2) *Builder {
	trail, life := b.trail, b.life
	b.trail = IntSpan{trail.Sample(b.rng), 0}
	b.life = Span{life.Sample(b.rng), 0}
	b.Emit(pos, vels...)
	b.trail, b.life = trail, life
	return b
}

// Swirl adds one template per offset, placed at center+offset and moving
// tangentially at speed
func (b *Builder) Swirl(center vmath.Vec2, speed float64, offsets ...vmath.Vec2) *Builder {
	for _, p := range offsets {
		tangent := p.Perpendicular().Normalize().Scale(speed)
		b.Emit(center.Add(p), tangent)
	}
	return b
}

// Build returns the accumulated templates and empties the builder
func (b *Builder) Build() []firework.ParticleConfig {
	t := b.templates
	b.templates = nil
	return t
}
