package firework

import "time"

// Install controls how the manager's population evolves
type Install uint8

const (
	// StaticInstall keeps every firework; the show may loop once all are Gone
	StaticInstall Install = iota
	// DynamicInstall prunes Gone fireworks and expects an external feed to add new
	// ones. Looping does not apply.
	DynamicInstall
)

func (i Install) String() string {
	if i == DynamicInstall {
		return "dynamic"
	}
	return "static"
}

// Listener observes firework lifecycle transitions during Manager.Update
type Listener interface {
	// Launched is called on the frame a firework leaves Waiting
	Launched(f *Firework)
	// Faded is called on the frame a firework becomes Gone
	Faded(f *Firework)
}

// Manager owns an ordered set of fireworks. Order is the render z-order.
type Manager struct {
	fireworks []*Firework
	loop      bool
	install   Install
	listener  Listener
}

// NewManager creates a static, non-looping manager
func NewManager(fireworks ...*Firework) *Manager {
	m := &Manager{}
	m.Add(fireworks...)
	return m
}

// Add appends fireworks, ignoring nils
func (m *Manager) Add(fireworks ...*Firework) {
	for _, f := range fireworks {
		if f != nil {
			m.fireworks = append(m.fireworks, f)
		}
	}
}

// Insert places f at index i, clamped to [0, Len()]
func (m *Manager) Insert(i int, f *Firework) {
	if f == nil {
		return
	}
	i = max(0, min(i, len(m.fireworks)))
	m.fireworks = append(m.fireworks, nil)
	copy(m.fireworks[i+1:], m.fireworks[i:])
	m.fireworks[i] = f
}

// Fireworks returns the managed fireworks in order. Callers must not modify it.
func (m *Manager) Fireworks() []*Firework {
	return m.fireworks
}

func (m *Manager) Len() int {
	return len(m.fireworks)
}

func (m *Manager) SetLoop(loop bool) {
	m.loop = loop
}

func (m *Manager) Loop() bool {
	return m.loop
}

func (m *Manager) SetInstall(install Install) {
	m.install = install
}

func (m *Manager) Install() Install {
	return m.install
}

// SetListener registers the lifecycle observer, nil to remove
func (m *Manager) SetListener(l Listener) {
	m.listener = l
}

// AllGone reports whether every firework is Gone (true when empty)
func (m *Manager) AllGone() bool {
	for _, f := range m.fireworks {
		if !f.IsGone() {
			return false
		}
	}
	return true
}

// Update steps every firework, then applies the install policy: dynamic prunes
// Gone fireworks, static restarts the show when looping and everything is Gone
func (m *Manager) Update(now time.Time, dt time.Duration) {
	for _, f := range m.fireworks {
		prev := f.State()
		f.Update(now, dt)
		m.notify(f, prev)
	}

	switch m.install {
	case DynamicInstall:
		m.prune()
	case StaticInstall:
		if m.loop && len(m.fireworks) > 0 && m.AllGone() {
			m.Reset(now)
		}
	}
}

func (m *Manager) notify(f *Firework, prev State) {
	if m.listener == nil {
		return
	}
	cur := f.State()
	if prev == Waiting && cur != Waiting {
		m.listener.Launched(f)
	}
	if prev != Gone && cur == Gone {
		m.listener.Faded(f)
	}
}

func (m *Manager) prune() {
	live := m.fireworks[:0]
	for _, f := range m.fireworks {
		if !f.IsGone() {
			live = append(live, f)
		}
	}
	clear(m.fireworks[len(live):])
	m.fireworks = live
}

// Reset restarts every firework as if created at now
func (m *Manager) Reset(now time.Time) {
	for _, f := range m.fireworks {
		f.Reset(now)
	}
}
