package firework

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/fireworks/vmath"
)

// State of a firework. Transitions are Waiting -> Alive -> Gone; only Reset
// returns to Waiting.
type State uint8

const (
	Waiting State = iota
	Alive
	Gone
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Alive:
		return "alive"
	case Gone:
		return "gone"
	}
	return "unknown"
}

// Options describe a firework to construct
type Options struct {
	// CreatedAt is the authoring timestamp; activation happens at CreatedAt+Delay
	CreatedAt time.Time
	Delay     time.Duration
	Center    vmath.Vec2
	// Templates is the palette of particles to emit; copied on construction
	Templates []ParticleConfig
	Config    Config
	// Form defaults to a fresh Instant; the value is copied
	Form Form
	// Rand drives sustained sampling; defaults to a shared time-seeded source
	Rand *rand.Rand
}

// Firework is an emission-timed group of particle templates sharing one
// force/gradient configuration
type Firework struct {
	createdAt time.Time
	delay     time.Duration
	center    vmath.Vec2
	state     State
	config    Config
	form      Form
	templates []ParticleConfig
	particles []*Particle
	elapsed   time.Duration // time spent Alive
	rng       *rand.Rand
	scratch   []int
}

var defaultRand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))

// New validates o and builds a Waiting firework
func New(o Options) (*Firework, error) {
	if len(o.Templates) == 0 {
		return nil, ErrNoTemplates
	}
	for i := range o.Templates {
		if err := o.Templates[i].Validate(); err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
	}
	if o.Delay < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrDelay, o.Delay)
	}

	var form Form = &Instant{}
	if o.Form != nil {
		// Each firework owns its emission state
		form = o.Form.clone()
	}
	if err := form.validate(); err != nil {
		return nil, err
	}

	cfg := o.Config
	if cfg.Gradient == nil {
		cfg.Gradient = DefaultConfig().Gradient
	}

	rng := o.Rand
	if rng == nil {
		rng = defaultRand
	}

	templates := make([]ParticleConfig, len(o.Templates))
	copy(templates, o.Templates)

	return &Firework{
		createdAt: o.CreatedAt,
		delay:     o.Delay,
		center:    o.Center,
		state:     Waiting,
		config:    cfg,
		form:      form,
		templates: templates,
		rng:       rng,
		scratch:   make([]int, len(templates)),
	}, nil
}

// MustNew is New for static scene code; it panics on invalid options
func MustNew(o Options) *Firework {
	f, err := New(o)
	if err != nil {
		panic(err)
	}
	return f
}

// State returns the lifecycle state
func (f *Firework) State() State {
	return f.state
}

// IsGone reports whether the firework finished
func (f *Firework) IsGone() bool {
	return f.state == Gone
}

func (f *Firework) Center() vmath.Vec2 {
	return f.center
}

// Config returns the shared particle configuration
func (f *Firework) Config() *Config {
	return &f.config
}

func (f *Firework) Form() Form {
	return f.form
}

func (f *Firework) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Firework) Delay() time.Duration {
	return f.delay
}

// Elapsed returns time spent Alive since the last reset
func (f *Firework) Elapsed() time.Duration {
	return f.elapsed
}

// ActivatesAt returns the instant the firework leaves Waiting
func (f *Firework) ActivatesAt() time.Time {
	return f.createdAt.Add(f.delay)
}

// Particles returns the live particles. Callers must not modify the slice.
func (f *Firework) Particles() []*Particle {
	return f.particles
}

// Templates returns the particle palette. Callers must not modify the slice.
func (f *Firework) Templates() []ParticleConfig {
	return f.templates
}

// Update advances the firework to now by dt: activation, emission, particle
// integration, culling and the Gone transition
func (f *Firework) Update(now time.Time, dt time.Duration) {
	if dt < 0 {
		dt = 0
	}

	switch f.state {
	case Gone:
		return
	case Waiting:
		if now.Before(f.ActivatesAt()) {
			return
		}
		f.state = Alive
	}

	f.elapsed += dt
	f.emit(dt)

	for _, p := range f.particles {
		p.Update(dt, &f.config)
	}
	f.cull()

	if f.form.Exhausted(f.elapsed) && len(f.particles) == 0 {
		f.state = Gone
	}
}

func (f *Firework) emit(dt time.Duration) {
	switch form := f.form.(type) {
	case *Instant:
		if form.Used {
			return
		}
		for i := range f.templates {
			f.spawn(i)
		}
		form.Used = true
	case *Sustained:
		n := form.tick(dt, f.elapsed)
		for _, i := range sample(f.rng, f.scratch, len(f.templates), n) {
			f.spawn(i)
		}
	}
}

func (f *Firework) spawn(i int) {
	f.particles = append(f.particles, NewParticle(&f.templates[i]))
}

// cull drops dead particles in place
func (f *Firework) cull() {
	live := f.particles[:0]
	for _, p := range f.particles {
		if !p.IsDead() {
			live = append(live, p)
		}
	}
	clear(f.particles[len(live):])
	f.particles = live
}

// Reset rearms the firework as if it had been created at now
func (f *Firework) Reset(now time.Time) {
	f.createdAt = now
	f.state = Waiting
	f.elapsed = 0
	clear(f.particles)
	f.particles = f.particles[:0]
	f.form.Reset()
}
