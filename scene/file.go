package scene

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/fireworks/firework"
	"github.com/lixenwraith/fireworks/gradient"
	"github.com/lixenwraith/fireworks/vmath"
)

// ErrInvalidScene wraps every scene file validation failure
var ErrInvalidScene = errors.New("invalid scene")

// File is a parsed scene ready to hand to a Manager
type File struct {
	Loop      bool
	Install   firework.Install
	Gradient  bool
	Fireworks []*firework.Firework
}

// ParseOptions anchor a scene in plot space
type ParseOptions struct {
	Now time.Time
	// Center is added to every firework and particle offset
	Center vmath.Vec2
	// Gradient forces gradients on regardless of the file setting
	Gradient bool
	Rand     *rand.Rand
}

// Scene file schema. Positions are [x, y] offsets, spans are [min, max].
type sceneDoc struct {
	Loop      bool          `yaml:"loop"`
	Install   string        `yaml:"install"`
	Gradient  bool          `yaml:"gradient"`
	Fireworks []fireworkDoc `yaml:"fireworks"`
}

type fireworkDoc struct {
	Offset    []float64     `yaml:"offset"`
	Delay     time.Duration `yaml:"delay"`
	Gravity   *float64      `yaml:"gravity"`
	Drag      *float64      `yaml:"drag"`
	Curve     string        `yaml:"curve"`
	Form      *formDoc      `yaml:"form"`
	Force     *forceDoc     `yaml:"force"`
	Particles []groupDoc    `yaml:"particles"`
}

type formDoc struct {
	Kind     string        `yaml:"kind"`
	Lasts    time.Duration `yaml:"lasts"`
	Interval time.Duration `yaml:"interval"`
}

type forceDoc struct {
	Kind      string    `yaml:"kind"`
	Offset    []float64 `yaml:"offset"`
	Strength  float64   `yaml:"strength"`
	Stiffness float64   `yaml:"stiffness"`
	Vec       []float64 `yaml:"vec"`
}

type groupDoc struct {
	Shape  shapeDoc  `yaml:"shape"`
	Origin []float64 `yaml:"origin"`
	Swirl  float64   `yaml:"swirl"`
	Trail  []int     `yaml:"trail"`
	Life   []float64 `yaml:"life"`
	Colors []string  `yaml:"colors"`
}

// shapeDoc angles are degrees counter-clockwise from +x with y up
type shapeDoc struct {
	Kind   string  `yaml:"kind"`
	Radius float64 `yaml:"radius"`
	Count  int     `yaml:"count"`
	Dev    float64 `yaml:"dev"`
	From   float64 `yaml:"from"`
	To     float64 `yaml:"to"`
}

// Load reads and parses a scene file
func Load(path string, o ParseOptions) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	f, err := Parse(data, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse builds fireworks from scene YAML
func Parse(data []byte, o ParseOptions) (*File, error) {
	var doc sceneDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	out := &File{Loop: doc.Loop, Gradient: doc.Gradient || o.Gradient}
	switch doc.Install {
	case "", "static":
		out.Install = firework.StaticInstall
	case "dynamic":
		out.Install = firework.DynamicInstall
	default:
		return nil, fmt.Errorf("%w: install %q", ErrInvalidScene, doc.Install)
	}
	if len(doc.Fireworks) == 0 && out.Install == firework.StaticInstall {
		return nil, fmt.Errorf("%w: no fireworks", ErrInvalidScene)
	}

	b := NewBuilder(o.Rand)
	for i := range doc.Fireworks {
		fw, err := buildFirework(&doc.Fireworks[i], b, o, out.Gradient)
		if err != nil {
			return nil, fmt.Errorf("firework %d: %w", i, err)
		}
		out.Fireworks = append(out.Fireworks, fw)
	}
	return out, nil
}

func buildFirework(d *fireworkDoc, b *Builder, o ParseOptions, gradientOn bool) (*firework.Firework, error) {
	offset, err := vec(d.Offset, "offset")
	if err != nil {
		return nil, err
	}
	center := o.Center.Add(offset)

	curve, err := gradient.ByName(d.Curve)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	cfg := firework.DefaultConfig().WithGradient(curve).WithGradientEnabled(gradientOn)
	if d.Gravity != nil {
		cfg = cfg.WithGravityScale(*d.Gravity)
	}
	if d.Drag != nil {
		cfg = cfg.WithDragScale(*d.Drag)
	}
	if d.Force != nil {
		force, err := buildForce(d.Force, center)
		if err != nil {
			return nil, err
		}
		cfg = cfg.WithForce(force)
	}

	var form firework.Form
	if d.Form != nil {
		switch d.Form.Kind {
		case "", "instant":
		case "sustained":
			form = firework.NewSustained(d.Form.Lasts, d.Form.Interval)
		default:
			return nil, fmt.Errorf("%w: form %q", ErrInvalidScene, d.Form.Kind)
		}
	}

	if len(d.Particles) == 0 {
		return nil, fmt.Errorf("%w: no particles", ErrInvalidScene)
	}
	for j := range d.Particles {
		if err := emitGroup(&d.Particles[j], b, o.Rand, center); err != nil {
			b.Build()
			return nil, fmt.Errorf("particles %d: %w", j, err)
		}
	}

	fw, err := firework.New(firework.Options{
		CreatedAt: o.Now,
		Delay:     d.Delay,
		Center:    center,
		Templates: b.Build(),
		Config:    cfg,
		Form:      form,
		Rand:      o.Rand,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return fw, nil
}

func buildForce(d *forceDoc, center vmath.Vec2) (firework.Force, error) {
	offset, err := vec(d.Offset, "force offset")
	if err != nil {
		return nil, err
	}
	anchor := center.Add(offset)

	switch d.Kind {
	case "attract":
		return firework.Attractor{Center: anchor, Strength: d.Strength}, nil
	case "spring":
		return firework.Spring{Center: anchor, Stiffness: d.Stiffness}, nil
	case "constant":
		v, err := vec(d.Vec, "force vec")
		if err != nil {
			return nil, err
		}
		return firework.Constant{Vec: v}, nil
	}
	return nil, fmt.Errorf("%w: force %q", ErrInvalidScene, d.Kind)
}

func emitGroup(g *groupDoc, b *Builder, rng *rand.Rand, center vmath.Vec2) error {
	origin, err := vec(g.Origin, "origin")
	if err != nil {
		return err
	}
	points, err := g.Shape.points(rng)
	if err != nil {
		return err
	}

	palette := make(Palette, 0, len(g.Colors))
	for _, c := range g.Colors {
		col, err := ParseHex(c)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidScene, err)
		}
		palette = append(palette, col)
	}

	trail := IntSpan{20, 25}
	switch len(g.Trail) {
	case 0:
	case 1:
		trail = IntSpan{g.Trail[0], 0}
	case 2:
		trail = IntSpan{g.Trail[0], g.Trail[1]}
	default:
		return fmt.Errorf("%w: trail wants [min, max]", ErrInvalidScene)
	}
	if trail.Min <= 0 {
		return fmt.Errorf("%w: trail must be positive", ErrInvalidScene)
	}

	life := Span{2, 2.5}
	switch len(g.Life) {
	case 0:
	case 1:
		life = Span{g.Life[0], 0}
	case 2:
		life = Span{g.Life[0], g.Life[1]}
	default:
		return fmt.Errorf("%w: life wants [min, max]", ErrInvalidScene)
	}
	if life.Min <= 0 {
		return fmt.Errorf("%w: life must be positive", ErrInvalidScene)
	}

	b.Trail(trail.Min, trail.Max).Life(life.Min, life.Max).Colors(palette)
	pos := center.Add(origin)
	if g.Swirl != 0 {
		b.Swirl(pos, g.Swirl, points...)
	} else {
		b.Emit(pos, points...)
	}
	return nil
}

func (s *shapeDoc) points(rng *rand.Rand) ([]vmath.Vec2, error) {
	if s.Count <= 0 {
		return nil, fmt.Errorf("%w: shape count must be positive", ErrInvalidScene)
	}
	if s.Radius < 0 {
		return nil, fmt.Errorf("%w: negative shape radius", ErrInvalidScene)
	}
	from, to := s.From*math.Pi/180, s.To*math.Pi/180

	var pts []vmath.Vec2
	switch s.Kind {
	case "circle":
		pts = vmath.PointsInCircle(rng, int(s.Radius), s.Count)
	case "normal":
		if s.Dev > 0 {
			pts = vmath.PointsInCircleNormalDev(rng, s.Radius, s.Count, s.Dev)
		} else {
			pts = vmath.PointsInCircleNormal(rng, s.Radius, s.Count)
		}
	case "fan":
		pts = vmath.PointsInFan(rng, s.Radius, s.Count, from, to)
	case "arc":
		pts = vmath.PointsOnArc(rng, s.Radius, s.Count, from, to)
	case "ring":
		pts = vmath.PointsOnCircle(rng, s.Radius, s.Count)
	default:
		return nil, fmt.Errorf("%w: shape %q", ErrInvalidScene, s.Kind)
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("%w: shape %q produced no points", ErrInvalidScene, s.Kind)
	}
	return pts, nil
}

// vec reads an optional [x, y] pair
func vec(v []float64, what string) (vmath.Vec2, error) {
	switch len(v) {
	case 0:
		return vmath.Zero, nil
	case 2:
		return vmath.V(v[0], v[1]), nil
	}
	return vmath.Zero, fmt.Errorf("%w: %s wants [x, y]", ErrInvalidScene, what)
}
