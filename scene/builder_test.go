package scene

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/lixenwraith/fireworks/vmath"
)

func TestSpanSample(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	if got := (IntSpan{5, 0}).Sample(rng); got != 5 {
		t.Errorf("Expected empty span to sample Min, got %d", got)
	}
	if got := (Span{1.5, 1.5}).Sample(rng); got != 1.5 {
		t.Errorf("Expected empty span to sample Min, got %f", got)
	}

	for i := 0; i < 500; i++ {
		if v := (IntSpan{3, 7}).Sample(rng); v < 3 || v >= 7 {
			t.Fatalf("IntSpan sample %d outside [3, 7)", v)
		}
		if v := (Span{0.5, 0.75}).Duration(rng); v < 500*time.Millisecond || v >= 750*time.Millisecond {
			t.Fatalf("Span duration %v outside [0.5s, 0.75s)", v)
		}
	}
}

func TestBuilderEmit(t *testing.T) {
	b := NewBuilder(rand.New(rand.NewPCG(1, 2)))
	vels := vmath.PointsOnCircle(rand.New(rand.NewPCG(5, 6)), 10, 12)
	pos := vmath.V(4, 8)

	tpl := b.Trail(3, 6).Life(1, 2).Colors(Ember).Emit(pos, vels...).Build()

	if len(tpl) != len(vels) {
		t.Fatalf("Expected %d templates, got %d", len(vels), len(tpl))
	}
	for i, c := range tpl {
		if c.InitPos != pos || c.InitVel != vels[i] {
			t.Errorf("Template %d: expected pos %v vel %v, got %v %v", i, pos, vels[i], c.InitPos, c.InitVel)
		}
		if c.TrailLength < 3 || c.TrailLength >= 6 {
			t.Errorf("Template %d trail %d outside [3, 6)", i, c.TrailLength)
		}
		if c.LifeTime < time.Second || c.LifeTime >= 2*time.Second {
			t.Errorf("Template %d life %v outside [1s, 2s)", i, c.LifeTime)
		}
		if !slices.Contains(Ember, c.Color) {
			t.Errorf("Template %d color %v not from palette", i, c.Color)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("Template %d invalid: %v", i, err)
		}
	}

	if rest := b.Build(); len(rest) != 0 {
		t.Errorf("Expected Build to empty the builder, got %d templates", len(rest))
	}
}

func TestBuilderEmitShared(t *testing.T) {
	b := NewBuilder(rand.New(rand.NewPCG(7, 8))).Trail(100, 105).Life(3, 3.2)
	tpl := b.EmitShared(vmath.Zero, vmath.V(1, 0), vmath.V(0, 1), vmath.V(-1, 0)).Build()

	for _, c := range tpl[1:] {
		if c.TrailLength != tpl[0].TrailLength || c.LifeTime != tpl[0].LifeTime {
			t.Errorf("Expected shared trail and life, got %d/%v vs %d/%v",
				c.TrailLength, c.LifeTime, tpl[0].TrailLength, tpl[0].LifeTime)
		}
	}

	// Ranges restored for later emissions
	for i := 0; i < 50; i++ {
		c := b.Emit(vmath.Zero, vmath.Zero).Build()[0]
		if c.TrailLength < 100 || c.TrailLength >= 105 {
			t.Fatalf("Expected trail range restored, got %d", c.TrailLength)
		}
	}
}

func TestBuilderSwirl(t *testing.T) {
	center := vmath.V(20, 10)
	offsets := []vmath.Vec2{vmath.V(3, 0), vmath.V(0, -4), vmath.V(-2, 2)}
	tpl := NewBuilder(rand.New(rand.NewPCG(1, 1))).Swirl(center, 15, offsets...).Build()

	for i, c := range tpl {
		if c.InitPos != center.Add(offsets[i]) {
			t.Errorf("Template %d: expected start %v, got %v", i, center.Add(offsets[i]), c.InitPos)
		}
		if math.Abs(c.InitVel.Len()-15) > 1e-9 {
			t.Errorf("Template %d: expected speed 15, got %f", i, c.InitVel.Len())
		}
		if math.Abs(c.InitVel.Dot(offsets[i])) > 1e-9 {
			t.Errorf("Template %d: expected tangential velocity, got %v for offset %v", i, c.InitVel, offsets[i])
		}
	}

	// Clockwise on screen: a point right of center starts moving up
	if v := tpl[0].InitVel; math.Abs(v.X) > 1e-9 || math.Abs(v.Y+15) > 1e-9 {
		t.Errorf("Expected (0, -15) for offset %v, got %v", offsets[0], v)
	}
}
