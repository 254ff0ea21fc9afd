// Package gradient provides brightness curves over a particle's normalized
// lifetime. The input is elapsed/lifetime (0 at spawn, 1 at death); the output
// multiplies each colour channel.
package gradient

import (
	"errors"
	"fmt"
	"sort"
)

// Curve maps lifetime progress to a brightness multiplier
type Curve func(x float64) float64

// ErrUnknown is returned by ByName for unregistered curve names
var ErrUnknown = errors.New("unknown gradient")

// Flat keeps the base colour for the whole lifetime
func Flat(float64) float64 { return 1 }

// Explosion ramps up quickly, overshoots and fades linearly
func Explosion(x float64) float64 {
	if x < 0.087 {
		return 150 * x * x
	}
	return -0.8*x + 1.2
}

// ExplosionBright is a staged brightening that peaks late
func ExplosionBright(x float64) float64 {
	switch {
	case x < 0.067:
		return 5*x + 0.1
	case x < 0.2:
		return 2*x + 0.3
	case x < 0.5:
		return x + 0.5
	case x < 0.684:
		return 0.5*x + 0.75
	}
	d := x - 0.65
	return -7*d*d + 1.1
}

// ExplosionDim is Explosion at 60% intensity
func ExplosionDim(x float64) float64 {
	return Explosion(x) * 0.6
}

// Linear fades from full brightness to 30%
func Linear(x float64) float64 {
	return -0.7*x + 1
}

// Fade holds slightly above base brightness then drops sharply at the end
func Fade(x float64) float64 {
	if x < 0.8125 {
		return -0.4*x + 1.1
	}
	return -2*x + 2.2
}

var registry = map[string]Curve{
	"flat":             Flat,
	"explosion":        Explosion,
	"explosion-bright": ExplosionBright,
	"explosion-dim":    ExplosionDim,
	"linear":           Linear,
	"fade":             Fade,
}

// ByName resolves a curve by its scene-file name
func ByName(name string) (Curve, error) {
	if name == "" {
		return Flat, nil
	}
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return c, nil
}

// Names returns registered curve names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
