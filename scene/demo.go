package scene

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/fireworks/firework"
	"github.com/lixenwraith/fireworks/gradient"
	"github.com/lixenwraith/fireworks/vmath"
)

// ErrUnknownDemo is returned by Demo for an out-of-range demo number
var ErrUnknownDemo = errors.New("unknown demo")

// DemoNames lists the built-in demos by number
var DemoNames = []string{
	"five bursts",
	"fountains and streaks",
	"layered bursts",
	"rocket",
	"glitter",
	"vortex",
	"heart",
	"fountain",
}

// DemoOptions place a demo in plot space
type DemoOptions struct {
	// Now is the creation time of every firework in the demo
	Now time.Time
	// Center is the anchor in plot coordinates, usually the middle of the plot
	Center vmath.Vec2
	// Delay shifts the whole demo
	Delay    time.Duration
	Gradient bool
	// Rand drives every random draw; nil uses a time-seeded source
	Rand *rand.Rand
}

// Demo builds built-in demo n
func Demo(n int, o DemoOptions) ([]*firework.Firework, error) {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	d := &demo{o: o, b: NewBuilder(o.Rand)}
	c, delay := o.Center, o.Delay

	switch n {
	case 0:
		return d.fiveBursts(c, delay), nil
	case 1:
		return d.fountains(c, delay), nil
	case 2:
		return d.layered(c, delay), nil
	case 3:
		return d.rocket(c.Add(vmath.V(0, 26)), delay), nil
	case 4:
		return []*firework.Firework{d.glitter(c, delay)}, nil
	case 5:
		return []*firework.Firework{d.vortex(c, delay)}, nil
	case 6:
		return []*firework.Firework{d.heart(c, delay)}, nil
	case 7:
		return []*firework.Firework{d.fountain(c.Add(vmath.V(0, 13)), delay)}, nil
	}
	return nil, fmt.Errorf("%w: %d (have 0-%d)", ErrUnknownDemo, n, len(DemoNames)-1)
}

// Burst is the basic randomized shell: 33-46 particles in a normal cloud of
// random radius, colored from palette
func Burst(rng *rand.Rand, now time.Time, center vmath.Vec2, delay time.Duration, gradientOn bool, palette Palette) *firework.Firework {
	d := &demo{o: DemoOptions{Now: now, Gradient: gradientOn, Rand: rng}, b: NewBuilder(rng)}
	return d.burst(center, delay, palette)
}

type demo struct {
	o DemoOptions
	b *Builder
}

func (d *demo) config(gravity, drag float64, curve gradient.Curve) firework.Config {
	return firework.DefaultConfig().
		WithGravityScale(gravity).
		WithDragScale(drag).
		WithGradient(curve).
		WithGradientEnabled(d.o.Gradient)
}

// make drains the builder into a new firework
func (d *demo) make(center vmath.Vec2, delay time.Duration, cfg firework.Config, form firework.Form) *firework.Firework {
	return firework.MustNew(firework.Options{
		CreatedAt: d.o.Now,
		Delay:     delay,
		Center:    center,
		Templates: d.b.Build(),
		Config:    cfg,
		Form:      form,
		Rand:      d.o.Rand,
	})
}

func (d *demo) normal(radius float64, n int) []vmath.Vec2 {
	return vmath.PointsInCircleNormal(d.o.Rand, radius, n)
}

func (d *demo) burst(c vmath.Vec2, delay time.Duration, palette Palette) *firework.Firework {
	radius := Span{230, 400}.Sample(d.o.Rand)
	n := IntSpan{33, 47}.Sample(d.o.Rand)
	d.b.Trail(20, 25).Life(1.8, 2.3).Colors(palette).Emit(c, d.normal(radius, n)...)
	return d.make(c, delay, d.config(1, 0.28, gradient.Explosion), nil)
}

func (d *demo) ember(c vmath.Vec2, delay time.Duration) *firework.Firework {
	d.b.Trail(23, 27).Life(2.1, 2.7).Colors(Ember).Emit(c, d.normal(250, 45)...)
	return d.make(c, delay, d.config(1, 0.28, gradient.Explosion), nil)
}

func (d *demo) sand(c vmath.Vec2, delay time.Duration) *firework.Firework {
	d.b.Trail(23, 43).Life(3.5, 5).Colors(Sand).Emit(c, d.normal(350, 135)...)
	return d.make(c, delay, d.config(0.7, 0.18, gradient.Explosion), nil)
}

func (d *demo) pearl(c vmath.Vec2, delay time.Duration) *firework.Firework {
	d.b.Trail(20, 33).Life(3.5, 5).Colors(Pearl).Emit(c, d.normal(350, 25)...)
	return d.make(c, delay, d.config(0.3, 0.28, gradient.Explosion), nil)
}

func (d *demo) dusk(c vmath.Vec2, delay time.Duration) *firework.Firework {
	d.b.Trail(33, 43).Life(3.5, 5).Colors(Dusk).Emit(c, d.normal(450, 80)...)
	return d.make(c, delay, d.config(1.4, 0.28, gradient.ExplosionDim), nil)
}

func (d *demo) floater(c vmath.Vec2, delay time.Duration) *firework.Firework {
	d.b.Trail(20, 23).Life(3.5, 4).Colors(Pearl).Emit(c, d.normal(350, 35)...)
	return d.make(c, delay, d.config(0.1, 0.19, gradient.Explosion), nil)
}

func (d *demo) glitter(c vmath.Vec2, delay time.Duration) *firework.Firework {
	d.b.Trail(5, 8).Life(3, 5.5).Colors(Gold).Emit(c, vmath.PointsInCircle(d.o.Rand, 100, 600)...)
	return d.make(c, delay, d.config(0, 0.15, gradient.ExplosionBright), nil)
}

func (d *demo) fiveBursts(c vmath.Vec2, delay time.Duration) []*firework.Firework {
	return []*firework.Firework{
		d.sand(c.Add(vmath.V(-5, -19)), delay),
		d.pearl(c.Add(vmath.V(-30, 0)), delay+400*time.Millisecond),
		d.dusk(c.Add(vmath.V(12, 0)), delay+1600*time.Millisecond),
		d.ember(c.Add(vmath.V(-9, 7)), delay+2*time.Second),
		d.floater(c.Add(vmath.V(24, -11)), delay+2300*time.Millisecond),
	}
}

// rocket launches a streak from start and bursts 53 cells above it
func (d *demo) rocket(start vmath.Vec2, delay time.Duration) []*firework.Firework {
	d.b.Trail(6, 0).Life(1.2, 0).Colors(Palette{rgb(255, 255, 235)}).Emit(start, vmath.Up.Scale(160))
	streak := d.make(start, delay, d.config(1, 0.04, gradient.Linear), nil)

	center := start.Add(vmath.Up.Scale(53))
	d.b.Trail(23, 43).Life(2.5, 4.5).Colors(Carnival).Emit(center, d.normal(350, 160)...)
	shell := d.make(center, delay+1200*time.Millisecond, d.config(0.3, 0.2, gradient.Explosion), nil)

	return []*firework.Firework{streak, shell}
}

func (d *demo) fountains(c vmath.Vec2, delay time.Duration) []*firework.Firework {
	var res []*firework.Firework
	amber := Palette{rgb(255, 183, 3), rgb(251, 133, 0), rgb(242, 233, 190)}

	for _, side := range []struct {
		x, angle float64
	}{{-31, 1.05}, {31, 2.09}} {
		pos := c.Add(vmath.V(side.x, 21))
		vels := vmath.PointsInFan(d.o.Rand, 60, 20, side.angle-0.05, side.angle+0.05)
		d.b.Trail(28, 38).Life(2.5, 3.8).Colors(amber).Emit(pos, vels...)
		res = append(res, d.make(pos, delay, d.config(1, 0.05, gradient.Linear), firework.NewSustained(5*time.Second, 80*time.Millisecond)))
	}

	for _, x := range []float64{-7, 7} {
		pos := c.Add(vmath.V(x, 21))
		vels := vmath.PointsInFan(d.o.Rand, 1000, 20, 5.7/12*math.Pi, 6.3/12*math.Pi)
		d.b.Trail(28, 38).Life(2.5, 3.8).Colors(Spark).Emit(pos, vels...)
		res = append(res, d.make(pos, delay+4*time.Second, d.config(0.9, 0.14, gradient.Linear), firework.NewSustained(5*time.Second, 80*time.Millisecond)))
	}

	waves := []struct {
		after   time.Duration
		palette Palette
	}{
		{2800 * time.Millisecond, Palette{rgb(0, 119, 182), rgb(144, 224, 239), rgb(12, 180, 216)}},
		{4000 * time.Millisecond, Palette{rgb(181, 23, 158), rgb(247, 37, 133), rgb(114, 9, 183)}},
		{5200 * time.Millisecond, Palette{rgb(217, 237, 146), rgb(153, 217, 140), rgb(82, 182, 154)}},
	}
	for _, w := range waves {
		for i := -33; i <= 33; i += 3 {
			pos := vmath.V(c.X+float64(i), c.Y+21)
			vel := vmath.PointsOnArc(d.o.Rand, 200, 1, 5.0/12*math.Pi, 7.0/12*math.Pi)
			d.b.Trail(24, 30).Life(2.1, 2.7).Colors(w.palette).Emit(pos, vel...)
			drag := Span{0.18, 0.24}.Sample(d.o.Rand)
			res = append(res, d.make(pos, delay+w.after, d.config(1, drag, gradient.Linear), nil))
		}
	}
	return res
}

func (d *demo) layered(c vmath.Vec2, delay time.Duration) []*firework.Firework {
	origin := c.Add(vmath.V(0, -6))
	ivory := Palette{rgb(255, 216, 190), rgb(255, 238, 221), rgb(248, 247, 255)}
	lagoon := Palette{rgb(17, 138, 178), rgb(6, 214, 160), rgb(7, 59, 76), rgb(255, 255, 255)}

	d.b.Trail(15, 20).Life(3, 5).Colors(ivory).Emit(origin, vmath.PointsInCircleNormalDev(d.o.Rand, 14, 200, 60)...)
	inner := d.make(c, delay, d.config(0.35, 0.15, gradient.Explosion), nil)

	d.b.Trail(20, 28).Life(4.8, 10).Colors(Glacier).Emit(origin, vmath.PointsInCircleNormalDev(d.o.Rand, 10000, 600, 30)...)
	halo := d.make(c, delay, d.config(0.5, 0.09, gradient.Explosion), nil)

	res := []*firework.Firework{inner, halo}
	for i, p := range vmath.PointsInCircle(d.o.Rand, 27, 10) {
		d.b.Trail(20, 30).Life(3, 4).Colors(lagoon).Emit(c.Add(p), vmath.PointsInCircleNormalDev(d.o.Rand, 100, 35, 350.0/9)...)
		after := time.Duration(i+4) * 200 * time.Millisecond
		res = append(res, d.make(c, delay+after, d.config(0.25, 0.28, gradient.ExplosionDim), nil))
	}
	return res
}

// vortex spins particles around c, held in orbit by an inverse-distance pull
func (d *demo) vortex(c vmath.Vec2, delay time.Duration) *firework.Firework {
	d.b.Trail(28, 40).Life(4.5, 7).Colors(Rose).Swirl(c, 15, vmath.PointsInCircle(d.o.Rand, 30, 45)...)
	cfg := d.config(0, 0.05, gradient.Fade).WithForce(firework.Attractor{Center: c, Strength: 150})
	return d.make(c, delay, cfg, firework.NewSustained(10*time.Second, 10*time.Millisecond))
}

// heart throws two fans that a spring pulls back through c
func (d *demo) heart(c vmath.Vec2, delay time.Duration) *firework.Firework {
	left := vmath.PointsInFan(d.o.Rand, 300, 45, 0.2*math.Pi, 0.3*math.Pi)
	right := vmath.PointsInFan(d.o.Rand, 300, 45, 0.7*math.Pi, 0.8*math.Pi)
	d.b.Trail(100, 105).Life(3, 3.2).Colors(Rose).EmitShared(c.Add(vmath.V(0, 15)), append(left, right...)...)
	cfg := d.config(0.1, 0.1, gradient.Fade).WithForce(firework.Spring{Center: c, Stiffness: 2})
	return d.make(c, delay, cfg, nil)
}

func (d *demo) fountain(c vmath.Vec2, delay time.Duration) *firework.Firework {
	vels := vmath.PointsInFan(d.o.Rand, 300, 45, 5.0/12*math.Pi, 7.0/12*math.Pi)
	d.b.Trail(28, 38).Life(2.5, 3.8).Colors(Spark).Emit(c, vels...)
	return d.make(c, delay, d.config(0.5, 0.15, gradient.Fade), firework.NewSustained(5*time.Second, 80*time.Millisecond))
}
