package firework

import (
	"testing"
	"time"
)

type recordingListener struct {
	launched []*Firework
	faded    []*Firework
}

func (r *recordingListener) Launched(f *Firework) { r.launched = append(r.launched, f) }
func (r *recordingListener) Faded(f *Firework)    { r.faded = append(r.faded, f) }

func shortFirework(delay time.Duration) *Firework {
	return MustNew(Options{CreatedAt: t0, Delay: delay, Templates: templates(2, 100*time.Millisecond)})
}

func runFrames(m *Manager, from time.Time, frames int, dt time.Duration) time.Time {
	now := from
	for i := 0; i < frames; i++ {
		now = now.Add(dt)
		m.Update(now, dt)
	}
	return now
}

func TestManagerAddInsert(t *testing.T) {
	a, b, c := shortFirework(0), shortFirework(0), shortFirework(0)
	m := NewManager(a, nil)
	m.Add(c)
	m.Insert(1, b)

	if m.Len() != 3 {
		t.Fatalf("Expected 3 fireworks, got %d", m.Len())
	}
	got := m.Fireworks()
	if got[0] != a || got[1] != b || got[2] != c {
		t.Error("Expected order a, b, c")
	}

	d, e := shortFirework(0), shortFirework(0)
	m.Insert(-5, d)
	m.Insert(100, e)
	if m.Fireworks()[0] != d || m.Fireworks()[4] != e {
		t.Error("Expected out-of-range inserts clamped to the ends")
	}
	m.Insert(0, nil)
	if m.Len() != 5 {
		t.Errorf("Expected nil insert ignored, got %d", m.Len())
	}
}

func TestManagerDefaults(t *testing.T) {
	m := NewManager()
	if m.Loop() || m.Install() != StaticInstall {
		t.Errorf("Expected static non-looping manager, got loop=%v install=%v", m.Loop(), m.Install())
	}
	if !m.AllGone() {
		t.Error("Expected empty manager to report all gone")
	}
}

func TestManagerStaticNoLoopKeepsGone(t *testing.T) {
	m := NewManager(shortFirework(0), shortFirework(0))
	runFrames(m, t0, 20, 20*time.Millisecond)

	if !m.AllGone() {
		t.Fatal("Expected all fireworks Gone")
	}
	if m.Len() != 2 {
		t.Errorf("Expected static install to keep fireworks, got %d", m.Len())
	}
}

func TestManagerStaticLoopRestarts(t *testing.T) {
	m := NewManager(shortFirework(0), shortFirework(40*time.Millisecond))
	m.SetLoop(true)

	now := t0
	restarted := false
	for i := 0; i < 30; i++ {
		now = now.Add(20 * time.Millisecond)
		m.Update(now, 20*time.Millisecond)
		if m.Fireworks()[0].State() == Waiting {
			restarted = true
			break
		}
	}
	if !restarted {
		t.Fatal("Expected looping show to restart")
	}
	for _, f := range m.Fireworks() {
		if f.State() != Waiting || !f.CreatedAt().Equal(now) {
			t.Errorf("Expected every firework rearmed at %v, got %v created %v", now, f.State(), f.CreatedAt())
		}
	}

	// The rerun plays out like the first run
	m.Update(now, 0)
	if got := len(m.Fireworks()[0].Particles()); got != 2 {
		t.Errorf("Expected rerun to emit 2 particles, got %d", got)
	}
}

func TestManagerLoopIgnoresEmpty(t *testing.T) {
	m := NewManager()
	m.SetLoop(true)
	m.Update(t0, time.Second)
	if m.Len() != 0 {
		t.Errorf("Expected empty manager untouched, got %d", m.Len())
	}
}

func TestManagerDynamicPrunes(t *testing.T) {
	keep := MustNew(Options{CreatedAt: t0, Templates: templates(1, 10*time.Second)})
	m := NewManager(shortFirework(0), keep, shortFirework(0))
	m.SetInstall(DynamicInstall)
	m.SetLoop(true)

	runFrames(m, t0, 10, 20*time.Millisecond)

	if m.Len() != 1 || m.Fireworks()[0] != keep {
		t.Fatalf("Expected only the long-lived firework to remain, got %d", m.Len())
	}

	runFrames(m, t0, 600, 20*time.Millisecond)
	if m.Len() != 0 {
		t.Errorf("Expected dynamic manager to drain, got %d", m.Len())
	}
	if m.Install().String() != "dynamic" {
		t.Errorf("Expected dynamic install name, got %q", m.Install())
	}
}

func TestManagerListener(t *testing.T) {
	a, b := shortFirework(0), shortFirework(60*time.Millisecond)
	m := NewManager(a, b)
	rec := &recordingListener{}
	m.SetListener(rec)

	m.Update(t0, 0)
	if len(rec.launched) != 1 || rec.launched[0] != a {
		t.Fatalf("Expected a launched first, got %d launches", len(rec.launched))
	}

	runFrames(m, t0, 15, 20*time.Millisecond)
	if len(rec.launched) != 2 || rec.launched[1] != b {
		t.Errorf("Expected b launched second, got %d launches", len(rec.launched))
	}
	if len(rec.faded) != 2 || rec.faded[0] != a || rec.faded[1] != b {
		t.Errorf("Expected a then b faded, got %d fades", len(rec.faded))
	}

	m.SetListener(nil)
	m.Reset(t0)
	m.Update(t0, 0)
	if len(rec.launched) != 2 {
		t.Error("Expected removed listener to stay silent")
	}
}
