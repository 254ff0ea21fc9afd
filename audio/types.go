package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundBoom    SoundType = iota // Instant burst
	SoundWhistle                  // Sustained fountain starting
	SoundCrackle                  // Instant burst fading out
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundBoom:
		return "boom"
	case SoundWhistle:
		return "whistle"
	case SoundCrackle:
		return "crackle"
	}
	return "unknown"
}
