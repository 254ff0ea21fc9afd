package firework

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/fireworks/vmath"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func templates(n int, life time.Duration) []ParticleConfig {
	out := make([]ParticleConfig, n)
	for i := range out {
		out[i] = *testTemplate(vmath.V(float64(i), -10), 2, life)
	}
	return out
}

func TestNewValidation(t *testing.T) {
	good := templates(1, time.Second)
	tests := []struct {
		name string
		opts Options
		err  error
	}{
		{"no templates", Options{}, ErrNoTemplates},
		{"bad trail", Options{Templates: []ParticleConfig{{LifeTime: time.Second}}}, ErrTrailLength},
		{"bad life", Options{Templates: []ParticleConfig{{TrailLength: 1}}}, ErrLifeTime},
		{"negative delay", Options{Templates: good, Delay: -time.Second}, ErrDelay},
		{"bad form", Options{Templates: good, Form: NewSustained(0, time.Second)}, ErrForm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.opts)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Expected %v, got %v", tt.err, err)
			}
			if f != nil {
				t.Error("Expected nil firework on error")
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for invalid options")
		}
	}()
	MustNew(Options{})
}

func TestNewDefaults(t *testing.T) {
	f := MustNew(Options{CreatedAt: t0, Templates: templates(2, time.Second)})

	if f.State() != Waiting {
		t.Errorf("Expected Waiting, got %v", f.State())
	}
	if f.Form().Kind() != FormInstant {
		t.Errorf("Expected instant form by default, got %v", f.Form().Kind())
	}
	if f.Config().Gradient == nil {
		t.Error("Expected default gradient curve")
	}
	if len(f.Particles()) != 0 {
		t.Errorf("Expected no particles before activation, got %d", len(f.Particles()))
	}
}

func TestNewCopiesInputs(t *testing.T) {
	tpl := templates(1, time.Second)
	form := NewSustained(time.Second, 10*time.Millisecond)
	f := MustNew(Options{CreatedAt: t0, Templates: tpl, Form: form})

	tpl[0].TrailLength = 99
	if f.Templates()[0].TrailLength != 2 {
		t.Error("Expected templates to be copied")
	}

	f.Update(t0, 25*time.Millisecond)
	if form.Timer != 0 {
		t.Errorf("Expected caller's form untouched, timer %v", form.Timer)
	}
}

// Scenario: one instant template moving up, trail 2, life 1s
func TestInstantLifecycle(t *testing.T) {
	f := MustNew(Options{
		CreatedAt: t0,
		Templates: []ParticleConfig{*testTemplate(vmath.V(0, -10), 2, time.Second)},
		Config:    DefaultConfig(),
	})

	f.Update(t0, 0)
	if f.State() != Alive {
		t.Fatalf("Expected Alive at creation with zero delay, got %v", f.State())
	}
	if len(f.Particles()) != 1 {
		t.Fatalf("Expected 1 particle, got %d", len(f.Particles()))
	}
	p := f.Particles()[0]
	for _, pos := range p.Trail() {
		if pos != vmath.Zero {
			t.Errorf("Expected trail at origin, got %v", p.Trail())
		}
	}

	f.Update(t0.Add(500*time.Millisecond), 500*time.Millisecond)
	if p.Stage() != StageDeclining {
		t.Errorf("Expected Declining at 0.5s, got %v", p.Stage())
	}
	if p.Pos.Y >= 0 {
		t.Errorf("Expected particle above origin, got %v", p.Pos)
	}

	f.Update(t0.Add(1100*time.Millisecond), 600*time.Millisecond)
	if len(f.Particles()) != 0 {
		t.Errorf("Expected particle culled, got %d", len(f.Particles()))
	}
	if f.State() != Gone {
		t.Errorf("Expected Gone, got %v", f.State())
	}
}

func TestInstantFiresOnce(t *testing.T) {
	f := MustNew(Options{CreatedAt: t0, Templates: templates(3, 10*time.Second)})

	now := t0
	for i := 0; i < 20; i++ {
		f.Update(now, 50*time.Millisecond)
		if len(f.Particles()) != 3 {
			t.Fatalf("frame %d: expected 3 particles, got %d", i, len(f.Particles()))
		}
		now = now.Add(50 * time.Millisecond)
	}
}

func TestDelayedActivation(t *testing.T) {
	f := MustNew(Options{CreatedAt: t0, Delay: time.Second, Templates: templates(2, time.Second)})

	f.Update(t0.Add(999*time.Millisecond), 50*time.Millisecond)
	if f.State() != Waiting || len(f.Particles()) != 0 {
		t.Fatalf("Expected Waiting with no particles, got %v with %d", f.State(), len(f.Particles()))
	}
	if f.Elapsed() != 0 {
		t.Errorf("Expected no alive time while waiting, got %v", f.Elapsed())
	}

	f.Update(t0.Add(time.Second), 0)
	if f.State() != Alive || len(f.Particles()) != 2 {
		t.Errorf("Expected Alive with 2 particles, got %v with %d", f.State(), len(f.Particles()))
	}
}

func TestStateOneDirectional(t *testing.T) {
	f := MustNew(Options{CreatedAt: t0, Delay: 100 * time.Millisecond, Templates: templates(2, 300*time.Millisecond)})

	prev := f.State()
	now := t0
	for i := 0; i < 40; i++ {
		now = now.Add(25 * time.Millisecond)
		f.Update(now, 25*time.Millisecond)
		if f.State() < prev {
			t.Fatalf("State went backwards from %v to %v", prev, f.State())
		}
		prev = f.State()
	}
	if f.State() != Gone {
		t.Fatalf("Expected Gone after 1s, got %v", f.State())
	}

	// Gone is terminal until reset
	f.Update(now.Add(time.Hour), time.Second)
	if f.State() != Gone || len(f.Particles()) != 0 {
		t.Errorf("Expected Gone to stay inert, got %v with %d", f.State(), len(f.Particles()))
	}
}

func TestSustainedEmission(t *testing.T) {
	f := MustNew(Options{
		CreatedAt: t0,
		Templates: templates(4, 10*time.Second),
		Form:      NewSustained(time.Second, 100*time.Millisecond),
		Rand:      rand.New(rand.NewPCG(1, 2)),
	})

	f.Update(t0, 0)
	if len(f.Particles()) != 0 {
		t.Fatalf("Expected no particles on activation, got %d", len(f.Particles()))
	}

	now := t0
	for i := 0; i < 5; i++ {
		now = now.Add(100 * time.Millisecond)
		f.Update(now, 100*time.Millisecond)
	}
	if len(f.Particles()) != 5 {
		t.Errorf("Expected 5 particles after 5 intervals, got %d", len(f.Particles()))
	}

	// A single long frame caps at the template count
	now = now.Add(500 * time.Millisecond)
	f.Update(now, 500*time.Millisecond)
	if len(f.Particles()) != 9 {
		t.Errorf("Expected 4 more particles capped by templates, got %d total", len(f.Particles()))
	}

	// Past lasts nothing new is emitted
	now = now.Add(200 * time.Millisecond)
	f.Update(now, 200*time.Millisecond)
	if len(f.Particles()) != 9 {
		t.Errorf("Expected emission stopped past lasts, got %d", len(f.Particles()))
	}
	if f.State() != Alive {
		t.Errorf("Expected Alive while particles remain, got %v", f.State())
	}
}

func TestSustainedGoneAfterParticlesDie(t *testing.T) {
	f := MustNew(Options{
		CreatedAt: t0,
		Templates: templates(2, 200*time.Millisecond),
		Form:      NewSustained(300*time.Millisecond, 50*time.Millisecond),
		Rand:      rand.New(rand.NewPCG(9, 9)),
	})

	now := t0
	for i := 0; i < 30 && f.State() != Gone; i++ {
		f.Update(now, 20*time.Millisecond)
		now = now.Add(20 * time.Millisecond)
	}
	if f.State() != Gone {
		t.Fatalf("Expected Gone, got %v with %d particles", f.State(), len(f.Particles()))
	}
	if f.Elapsed() <= 300*time.Millisecond {
		t.Errorf("Expected Gone only after lasts, elapsed %v", f.Elapsed())
	}
}

func TestFireworkReset(t *testing.T) {
	f := MustNew(Options{CreatedAt: t0, Delay: 50 * time.Millisecond, Templates: templates(2, 100*time.Millisecond)})

	now := t0
	for i := 0; i < 10; i++ {
		now = now.Add(50 * time.Millisecond)
		f.Update(now, 50*time.Millisecond)
	}
	if f.State() != Gone {
		t.Fatalf("Expected Gone before reset, got %v", f.State())
	}

	f.Reset(now)
	if f.State() != Waiting || f.Elapsed() != 0 || len(f.Particles()) != 0 {
		t.Fatalf("Expected pristine Waiting state, got %v elapsed %v particles %d",
			f.State(), f.Elapsed(), len(f.Particles()))
	}
	if !f.CreatedAt().Equal(now) || !f.ActivatesAt().Equal(now.Add(50*time.Millisecond)) {
		t.Errorf("Expected creation moved to %v, got %v", now, f.CreatedAt())
	}

	f.Update(now.Add(50*time.Millisecond), 0)
	if f.State() != Alive || len(f.Particles()) != 2 {
		t.Errorf("Expected rerun to emit again, got %v with %d", f.State(), len(f.Particles()))
	}
}

func TestNegativeDtIsClamped(t *testing.T) {
	f := MustNew(Options{CreatedAt: t0, Templates: templates(1, time.Second)})
	f.Update(t0, -time.Second)
	if f.Elapsed() != 0 {
		t.Errorf("Expected elapsed 0, got %v", f.Elapsed())
	}
	if p := f.Particles()[0]; p.Elapsed != 0 || p.Pos != vmath.Zero {
		t.Errorf("Expected untouched particle, got %v at %v", p.Elapsed, p.Pos)
	}
}
