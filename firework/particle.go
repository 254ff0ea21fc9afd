package firework

import (
	"fmt"
	"time"

	"github.com/lixenwraith/fireworks/constants"
	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/vmath"
)

// ParticleConfig is the immutable template a particle is spawned from.
// Every particle created from a template keeps a pointer to it.
type ParticleConfig struct {
	InitPos     vmath.Vec2
	InitVel     vmath.Vec2
	TrailLength int           // number of retained positions, head included
	LifeTime    time.Duration // spawn to death
	Color       core.RGB
}

// Validate checks the template invariants
func (c *ParticleConfig) Validate() error {
	if c.TrailLength <= 0 {
		return fmt.Errorf("%w: got %d", ErrTrailLength, c.TrailLength)
	}
	if c.LifeTime <= 0 {
		return fmt.Errorf("%w: got %v", ErrLifeTime, c.LifeTime)
	}
	return nil
}

// Particle is a single simulated point with a fixed-length position history
type Particle struct {
	Pos     vmath.Vec2
	Vel     vmath.Vec2
	Elapsed time.Duration
	Config  *ParticleConfig

	trail []vmath.Vec2 // oldest first, len == Config.TrailLength
	stage LifeStage
}

// NewParticle spawns a particle at the template's initial state. It panics when
// cfg fails Validate; New checks templates before any particle is spawned.
func NewParticle(cfg *ParticleConfig) *Particle {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	trail := make([]vmath.Vec2, cfg.TrailLength)
	for i := range trail {
		trail[i] = cfg.InitPos
	}
	return &Particle{
		Pos:    cfg.InitPos,
		Vel:    cfg.InitVel,
		Config: cfg,
		trail:  trail,
		stage:  StageAlive,
	}
}

// Stage returns the current life stage
func (p *Particle) Stage() LifeStage {
	return p.stage
}

// IsDead reports whether the particle reached the end of its life
func (p *Particle) IsDead() bool {
	return p.stage == StageDead
}

// Trail returns the position history, oldest first. Callers must not modify it.
func (p *Particle) Trail() []vmath.Vec2 {
	return p.trail
}

// Head returns the most recent trail position
func (p *Particle) Head() vmath.Vec2 {
	return p.trail[len(p.trail)-1]
}

// Progress returns elapsed/lifetime, the gradient curve input
func (p *Particle) Progress() float64 {
	if p.Config.LifeTime <= 0 {
		return 1
	}
	return float64(p.Elapsed) / float64(p.Config.LifeTime)
}

// Update advances the particle by exactly dt with fixed explicit-Euler sub-steps,
// shifts the trail and recomputes the life stage
func (p *Particle) Update(dt time.Duration, cfg *Config) {
	if dt < 0 {
		dt = 0
	}

	for remaining := dt; remaining > 0; {
		h := min(remaining, constants.PhysicsSubStep)
		s := h.Seconds()
		acc := cfg.Acceleration(p)
		p.Vel = p.Vel.Add(acc.Scale(s))
		p.Pos = p.Pos.Add(p.Vel.Scale(s))
		remaining -= h
	}

	copy(p.trail, p.trail[1:])
	p.trail[len(p.trail)-1] = p.Pos

	p.Elapsed += dt
	if s := StageFor(p.Elapsed, p.Config.LifeTime); s > p.stage {
		p.stage = s
	}
}
