package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fireworks/constants"
	"github.com/lixenwraith/fireworks/firework"
)

// SoundManager plays firework sound effects through a shared mixer.
// It satisfies firework.Listener, so a Manager can drive it directly.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	lastPlayed  [soundTypeCount]time.Time
	now         func() time.Time
	initialized bool
}

var _ firework.Listener = (*SoundManager)(nil)

// NewSoundManager creates a sound manager; nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker. Disabled audio is a successful no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBuffer)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: speaker ready at %d Hz", sm.cfg.SampleRate)
	return nil
}

// Cleanup drops all playing sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; an empty mixer streams silence
	sm.initialized = false
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play starts a sound and reports whether it was queued. Repeats of the same
// sound inside MinGap are dropped.
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.allow(st) {
		return false
	}
	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// allow applies the per-sound throttle and records the play time. Caller holds mu.
func (sm *SoundManager) allow(st SoundType) bool {
	if st < 0 || st >= soundTypeCount {
		return false
	}
	now := sm.now()
	last := sm.lastPlayed[st]
	if !last.IsZero() && now.Sub(last) < sm.cfg.MinGap {
		return false
	}
	sm.lastPlayed[st] = now
	return true
}

// Launched plays the launch sound for the firework's form
func (sm *SoundManager) Launched(f *firework.Firework) {
	if st, ok := soundFor(f.Form().Kind(), false); ok {
		sm.Play(st)
	}
}

// Faded plays the crackle of a finished instant burst
func (sm *SoundManager) Faded(f *firework.Firework) {
	if st, ok := soundFor(f.Form().Kind(), true); ok {
		sm.Play(st)
	}
}

// soundFor maps a lifecycle transition to its sound
func soundFor(kind firework.FormKind, faded bool) (SoundType, bool) {
	switch {
	case !faded && kind == firework.FormInstant:
		return SoundBoom, true
	case !faded && kind == firework.FormSustained:
		return SoundWhistle, true
	case faded && kind == firework.FormInstant:
		return SoundCrackle, true
	}
	return 0, false
}
