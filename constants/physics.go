package constants

import "time"

// Particle integration
const (
	// PhysicsSubStep is the fixed explicit-Euler step; larger frame deltas are split
	PhysicsSubStep = time.Millisecond

	// GravityStrength is the acceleration along the down axis at gravity scale 1
	GravityStrength = 10.0

	// DefaultGravityScale and DefaultDragScale are the firework config defaults
	DefaultGravityScale = 1.0
	DefaultDragScale    = 0.28
)

// Life stage thresholds as elapsed/lifetime ratios
const (
	DecliningThreshold = 0.40
	DyingThreshold     = 0.65
	DeadThreshold      = 1.0
)
