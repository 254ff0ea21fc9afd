package firework

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// FormKind tags the explosion form variant
type FormKind uint8

const (
	FormInstant FormKind = iota
	FormSustained
)

func (k FormKind) String() string {
	if k == FormSustained {
		return "sustained"
	}
	return "instant"
}

// Form controls how a firework turns its templates into live particles.
// Implemented by *Instant and *Sustained only.
type Form interface {
	Kind() FormKind
	// Exhausted reports that no more particles will be emitted
	Exhausted(aliveFor time.Duration) bool
	// Reset rearms the form
	Reset()

	validate() error
	clone() Form
}

// Instant fires every template exactly once on activation
type Instant struct {
	Used bool
}

func (i *Instant) Kind() FormKind { return FormInstant }

func (i *Instant) Exhausted(time.Duration) bool { return i.Used }

func (i *Instant) Reset() { i.Used = false }

func (i *Instant) validate() error { return nil }

func (i *Instant) clone() Form {
	c := *i
	return &c
}

// Sustained emits random templates every Interval while the firework has been
// alive for at most Lasts. Timer carries the sub-interval remainder across frames.
type Sustained struct {
	Lasts    time.Duration
	Interval time.Duration
	Timer    time.Duration
}

// NewSustained returns an armed sustained form
func NewSustained(lasts, interval time.Duration) *Sustained {
	return &Sustained{Lasts: lasts, Interval: interval}
}

func (s *Sustained) Kind() FormKind { return FormSustained }

func (s *Sustained) Exhausted(aliveFor time.Duration) bool {
	return aliveFor > s.Lasts
}

func (s *Sustained) Reset() { s.Timer = 0 }

func (s *Sustained) clone() Form {
	c := *s
	return &c
}

func (s *Sustained) validate() error {
	if s.Lasts <= 0 || s.Interval <= 0 {
		return fmt.Errorf("%w: sustained lasts %v interval %v", ErrForm, s.Lasts, s.Interval)
	}
	return nil
}

// tick accumulates dt and returns how many emission cadences elapsed. The
// remainder stays in Timer, so the running total is floor(time/Interval) however
// the frames are chunked.
func (s *Sustained) tick(dt, aliveFor time.Duration) int {
	if aliveFor > s.Lasts {
		return 0
	}
	total := s.Timer + dt
	if total < s.Interval {
		s.Timer = total
		return 0
	}
	s.Timer = total % s.Interval
	return int(total / s.Interval)
}

// sample picks n distinct indices from [0, total) uniformly using a partial
// Fisher-Yates shuffle over scratch. n is capped at total.
func sample(rng *rand.Rand, scratch []int, total, n int) []int {
	n = min(n, total)
	if n <= 0 {
		return nil
	}
	scratch = scratch[:total]
	for i := range scratch {
		scratch[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + rng.IntN(total-i)
		scratch[i], scratch[j] = scratch[j], scratch[i]
	}
	return scratch[:n]
}
