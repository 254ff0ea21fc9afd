package vmath

import "math"

// LineStep is the sub-cell advance along the driving axis
const LineStep = 0.2

// Line rasterizes the segment a→b into grid cells, start cell first.
// The walk advances LineStep along the axis with the larger delta and the
// slope-proportional amount along the other one, and stops once the distance to b
// grows past the distance recorded at the last emitted cell. Degenerate segments
// (zero length, NaN, Inf) yield only the start cell.
func Line(a, b Vec2) []Point {
	start := a.Round()
	path := []Point{start}
	if !a.IsFinite() || !b.IsFinite() {
		return path
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return path
	}

	var stepX, stepY float64
	if math.Abs(dx) >= math.Abs(dy) {
		stepX = sign(dx) * LineStep
		stepY = sign(dy) * math.Abs(LineStep*dy/dx)
	} else {
		stepY = sign(dy) * LineStep
		stepX = sign(dx) * math.Abs(LineStep*dx/dy)
	}

	// Bound the walk so float drift can never spin forever
	maxSteps := int(math.Max(math.Abs(dx), math.Abs(dy))/LineStep) + 8

	ds := DistanceSq(a, b) + epsilon
	x, y := a.X, a.Y
	for i := 0; i <= maxSteps; i++ {
		p := Vec2{x, y}
		d := DistanceSq(p, b)
		if d > ds {
			break
		}
		if cell := p.Round(); cell != path[len(path)-1] {
			path = append(path, cell)
			ds = d
		}
		x += stepX
		y += stepY
	}
	return path
}

const epsilon = 1e-6

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
