package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/fireworks/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally gliding between two frequencies
type oscillator struct {
	freqStart float64
	freqEnd   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose frequency moves linearly from start to end
// over duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freqStart: start,
		freqEnd:   end,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freqStart + (o.freqEnd-o.freqStart)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// crackle emits sparse decaying pops, the glitter of a fading burst
type crackle struct {
	rate     beep.SampleRate
	pos      int
	duration int
	seed     int64
	pop      float64 // current pop amplitude
}

// NewCrackle creates a crackle generator; the seed fixes the pop pattern
func NewCrackle(duration time.Duration, rate beep.SampleRate, seed int64) beep.Streamer {
	return &crackle{
		rate:     rate,
		duration: rate.N(duration),
		seed:     seed,
	}
}

func (c *crackle) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.pos >= c.duration {
			return i, i > 0
		}

		c.seed = (c.seed*1103515245 + 12345) & 0x7fffffff
		r := float64(c.seed) / float64(0x7fffffff)

		// Roughly 60 pops per second
		if r < 60/float64(c.rate) {
			c.pop = 1
		}
		noise := r*2 - 1
		sample := c.pop * noise
		c.pop *= 0.995

		samples[i][0] = sample
		samples[i][1] = sample
		c.pos++
	}
	return len(samples), true
}

func (c *crackle) Err() error { return nil }

// newVolume wraps s in a linear volume. math.Log2(0) is -Inf, so zero is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateBoomSound generates a low thump with a noise tail for instant bursts
func CreateBoomSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	thump := NewSweep(120, 35, constants.BoomSoundDuration, WaveSine, rate)
	thumpShaped := NewEnvelope(thump, constants.BoomSoundDuration, constants.BoomSoundAttack, constants.BoomSoundRelease, rate)

	noise := NewOscillator(0, constants.BoomSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.BoomSoundDuration, constants.BoomSoundAttack, constants.BoomSoundRelease/2, rate)

	mixed := beep.Take(rate.N(constants.BoomSoundDuration), beep.Mix(
		newVolume(thumpShaped, 0.8),
		newVolume(noiseShaped, 0.25),
	))

	vol := cfg.EffectVolumes[SoundBoom] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateWhistleSound generates a rising whistle for sustained fountains
func CreateWhistleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(700, 2200, constants.WhistleSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.WhistleSoundDuration, constants.WhistleSoundAttack, constants.WhistleSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundWhistle] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateCrackleSound generates the glitter tail of a fading burst
func CreateCrackleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	gen := NewCrackle(constants.CrackleSoundDuration, rate, rand.Int64())
	shaped := NewEnvelope(gen, constants.CrackleSoundDuration, constants.CrackleSoundAttack, constants.CrackleSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundCrackle] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// GetSoundEffect returns the streamer for the given sound type, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundBoom:
		return CreateBoomSound(cfg)
	case SoundWhistle:
		return CreateWhistleSound(cfg)
	case SoundCrackle:
		return CreateCrackleSound(cfg)
	default:
		return nil
	}
}
