package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/fireworks/constants"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "FIREWORKS_AUDIO_ENABLED"
	EnvMasterVolume = "FIREWORKS_MASTER_VOLUME" // 0-100
	EnvSFXVolumes   = "FIREWORKS_SFX_VOLUMES"   // JSON object keyed by sound name
	EnvSampleRate   = "FIREWORKS_SAMPLE_RATE"
)

// AudioConfig holds sound effect settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
	// MinGap throttles repeats of the same sound
	MinGap time.Duration
}

// DefaultAudioConfig returns enabled audio at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundBoom:    1.0,
			SoundWhistle: 0.4,
			SoundCrackle: 0.6,
		},
		MinGap: constants.MinSoundGap,
	}
}

// LoadAudioConfig loads audio configuration from environment variables.
// Malformed values are ignored.
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
