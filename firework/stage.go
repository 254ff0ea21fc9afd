package firework

import (
	"time"

	"github.com/lixenwraith/fireworks/constants"
)

// LifeStage is a particle's visual phase, derived from elapsed/lifetime.
// Stages only move forward: Alive -> Declining -> Dying -> Dead.
type LifeStage uint8

const (
	StageAlive LifeStage = iota
	StageDeclining
	StageDying
	StageDead
)

func (s LifeStage) String() string {
	switch s {
	case StageAlive:
		return "alive"
	case StageDeclining:
		return "declining"
	case StageDying:
		return "dying"
	case StageDead:
		return "dead"
	}
	return "unknown"
}

// StageFor maps an elapsed time to its life stage
func StageFor(elapsed, lifeTime time.Duration) LifeStage {
	if lifeTime <= 0 {
		return StageDead
	}
	p := float64(elapsed) / float64(lifeTime)
	switch {
	case p < constants.DecliningThreshold:
		return StageAlive
	case p < constants.DyingThreshold:
		return StageDeclining
	case p < constants.DeadThreshold:
		return StageDying
	}
	return StageDead
}
