package vmath

import (
	"math"
	"math/rand/v2"
)

// maxRejections bounds rejection sampling per requested point
const maxRejections = 10000

// PointsInCircle returns n integer lattice points uniformly chosen inside a disk
func PointsInCircle(rng *rand.Rand, radius, n int) []Vec2 {
	if n <= 0 || radius < 0 {
		return nil
	}
	res := make([]Vec2, 0, n)
	r2 := radius * radius
	for len(res) < n {
		x := rng.IntN(2*radius+1) - radius
		y := rng.IntN(2*radius+1) - radius
		if x*x+y*y <= r2 {
			res = append(res, Vec2{float64(x), float64(y)})
		}
	}
	return res
}

// PointsInCircleNormal returns n points inside a disk, normally distributed around
// the center with standard deviation radius/9
func PointsInCircleNormal(rng *rand.Rand, radius float64, n int) []Vec2 {
	return PointsInCircleNormalDev(rng, radius, n, radius/9)
}

// PointsInCircleNormalDev is PointsInCircleNormal with an explicit standard deviation
func PointsInCircleNormalDev(rng *rand.Rand, radius float64, n int, dev float64) []Vec2 {
	if n <= 0 || radius <= 0 || dev <= 0 {
		return nil
	}
	res := make([]Vec2, 0, n)
	r2 := radius * radius
	for tries := 0; len(res) < n && tries < n*maxRejections; tries++ {
		x := rng.NormFloat64() * dev
		y := rng.NormFloat64() * dev
		if x*x+y*y <= r2 {
			res = append(res, Vec2{x, y})
		}
	}
	return res
}

// PointsInFan returns n points uniformly distributed in the circular sector between
// start and end (radians, counter-clockwise from +x, positive angles pointing up on
// screen)
func PointsInFan(rng *rand.Rand, radius float64, n int, start, end float64) []Vec2 {
	if n <= 0 || radius <= 0 {
		return nil
	}
	if start > end {
		start, end = end, start
	}
	res := make([]Vec2, 0, n)
	r2 := radius * radius
	for tries := 0; len(res) < n && tries < n*maxRejections; tries++ {
		x := (rng.Float64()*2 - 1) * radius
		y := (rng.Float64()*2 - 1) * radius
		t := math.Atan2(y, x)
		if t >= start && t <= end && x*x+y*y <= r2 {
			res = append(res, Vec2{x, -y})
		}
	}
	return res
}

// PointsOnArc returns n points on the arc of given radius between start and end
func PointsOnArc(rng *rand.Rand, radius float64, n int, start, end float64) []Vec2 {
	if n <= 0 {
		return nil
	}
	if start > end {
		start, end = end, start
	}
	res := make([]Vec2, n)
	for i := range res {
		a := start + rng.Float64()*(end-start)
		res[i] = Vec2{radius * math.Cos(a), -radius * math.Sin(a)}
	}
	return res
}

// PointsOnCircle returns n points on the full circle of given radius
func PointsOnCircle(rng *rand.Rand, radius float64, n int) []Vec2 {
	return PointsOnArc(rng, radius, n, 0, 2*math.Pi)
}
