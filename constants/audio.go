package constants

import "time"

// MinSoundGap is the minimum gap between two plays of the same sound
const MinSoundGap = 80 * time.Millisecond

// SpeakerBuffer is the speaker buffer length
const SpeakerBuffer = 100 * time.Millisecond

// Boom Sound Timing
const (
	BoomSoundDuration = 700 * time.Millisecond
	BoomSoundAttack   = 5 * time.Millisecond
	BoomSoundRelease  = 600 * time.Millisecond
)

// Whistle Sound Timing
const (
	WhistleSoundDuration = 900 * time.Millisecond
	WhistleSoundAttack   = 150 * time.Millisecond
	WhistleSoundRelease  = 300 * time.Millisecond
)

// Crackle Sound Timing
const (
	CrackleSoundDuration = 500 * time.Millisecond
	CrackleSoundAttack   = 2 * time.Millisecond
	CrackleSoundRelease  = 250 * time.Millisecond
)
