package constants

import "time"

// Frame pacing
const (
	// FrameUpdateInterval is the default frame period (20 fps)
	FrameUpdateInterval = 50 * time.Millisecond

	// MinFPS and MaxFPS bound the -fps flag
	MinFPS = 1
	MaxFPS = 120
)

// Dynamic population
const (
	// DynamicDensityDivisor sets one firework per this many plot cells
	DynamicDensityDivisor = 1300

	// DynamicBaseline is always added on top of the density-derived target
	DynamicBaseline = 3

	// DynamicMaxDelay bounds the random activation delay of generated fireworks
	DynamicMaxDelay = 2 * time.Second
)

// EventChannelSize buffers terminal events between the poller and the main loop
const EventChannelSize = 256
