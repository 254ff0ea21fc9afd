package firework

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"
)

func TestSustainedTickCarriesRemainder(t *testing.T) {
	s := NewSustained(10*time.Second, 100*time.Millisecond)

	steps := []struct {
		dt    time.Duration
		want  int
		timer time.Duration
	}{
		{40 * time.Millisecond, 0, 40 * time.Millisecond},
		{40 * time.Millisecond, 0, 80 * time.Millisecond},
		{40 * time.Millisecond, 1, 20 * time.Millisecond},
		{250 * time.Millisecond, 2, 70 * time.Millisecond},
		{30 * time.Millisecond, 1, 0},
	}
	for i, st := range steps {
		if got := s.tick(st.dt, time.Second); got != st.want {
			t.Errorf("step %d: tick() = %d, want %d", i, got, st.want)
		}
		if s.Timer != st.timer {
			t.Errorf("step %d: timer = %v, want %v", i, s.Timer, st.timer)
		}
	}
}

func TestSustainedTickChunkingIndependent(t *testing.T) {
	interval := 100 * time.Millisecond
	tests := []struct {
		name   string
		frame  time.Duration
		frames int
	}{
		{"one interval per frame", interval, 10},
		{"tenth interval per frame", interval / 10, 100},
		{"quarter interval per frame", interval / 4, 40},
		{"whole span in one frame", 10 * interval, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSustained(time.Minute, interval)
			total := 0
			for i := 0; i < tt.frames; i++ {
				total += s.tick(tt.frame, 0)
			}
			if total != 10 {
				t.Errorf("Expected 10 emissions over 10 intervals, got %d", total)
			}
		})
	}
}

func TestSustainedStopsAfterLasts(t *testing.T) {
	s := NewSustained(time.Second, 10*time.Millisecond)
	if n := s.tick(time.Second, 1001*time.Millisecond); n != 0 {
		t.Errorf("Expected no emission after lasts, got %d", n)
	}
	if !s.Exhausted(1001 * time.Millisecond) {
		t.Error("Expected exhausted past lasts")
	}
	if s.Exhausted(time.Second) {
		t.Error("Expected still emitting at exactly lasts")
	}
}

func TestFormValidate(t *testing.T) {
	tests := []struct {
		name string
		form Form
		ok   bool
	}{
		{"instant", &Instant{}, true},
		{"sustained", NewSustained(time.Second, time.Millisecond), true},
		{"zero lasts", NewSustained(0, time.Millisecond), false},
		{"zero interval", NewSustained(time.Second, 0), false},
		{"negative interval", NewSustained(time.Second, -time.Millisecond), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.validate()
			if tt.ok && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrForm) {
				t.Errorf("Expected ErrForm, got %v", err)
			}
		})
	}
}

func TestFormReset(t *testing.T) {
	i := &Instant{Used: true}
	i.Reset()
	if i.Used || i.Exhausted(0) {
		t.Error("Expected instant rearmed")
	}

	s := NewSustained(time.Second, time.Second)
	s.Timer = 300 * time.Millisecond
	s.Reset()
	if s.Timer != 0 {
		t.Errorf("Expected timer cleared, got %v", s.Timer)
	}
}

func TestSampleDistinctAndCapped(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	scratch := make([]int, 6)

	for round := 0; round < 50; round++ {
		got := sample(rng, scratch, 6, 4)
		if len(got) != 4 {
			t.Fatalf("Expected 4 indices, got %d", len(got))
		}
		seen := map[int]bool{}
		for _, i := range got {
			if i < 0 || i >= 6 {
				t.Fatalf("Index %d out of range", i)
			}
			if seen[i] {
				t.Fatalf("Duplicate index %d in %v", i, got)
			}
			seen[i] = true
		}
	}

	if got := sample(rng, scratch, 6, 20); len(got) != 6 {
		t.Errorf("Expected request capped at 6, got %d", len(got))
	}
	if got := sample(rng, scratch, 6, 0); len(got) != 0 {
		t.Errorf("Expected empty sample, got %v", got)
	}
}

func TestSampleCoversAllTemplates(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	scratch := make([]int, 5)
	counts := make([]int, 5)

	for round := 0; round < 500; round++ {
		for _, i := range sample(rng, scratch, 5, 1) {
			counts[i]++
		}
	}
	for i, c := range counts {
		if c == 0 {
			t.Errorf("Template %d never sampled", i)
		}
	}
}
