package collision

import (
	"math"

	"github.com/automoto/parkour-gen/shared/gamemath"
	"gonum.org/v1/gonum/spatial/r3"
)

// LineTrace returns the nearest body tagged tag crossed by start→end.
func (w *World) LineTrace(start, end r3.Vec, tag string) (Hit, bool) {
	area := gamemath.BoundsOf(gamemath.Flat(start), gamemath.Flat(end))
	length := r3.Norm(r3.Sub(end, start))

	best, found := Hit{}, false
	bestT := math.Inf(1)
	for _, b := range w.candidates(area, tag) {
		t, n, ok := gamemath.SegmentBox(start, end, b.box)
		if !ok || t >= bestT {
			continue
		}
		bestT = t
		best = Hit{
			Point:    gamemath.Lerp(start, end, t),
			Normal:   n,
			Distance: t * length,
		}
		found = true
	}
	return best, found
}

// ShapeCast sweeps s from start to end and returns the first contact with a
// body tagged tag. The sweep is sampled at half-radius steps; a zero-length
// sweep is an overlap test.
func (w *World) ShapeCast(s Sphere, start, end r3.Vec, tag string) (Hit, bool) {
	area := gamemath.Inflate(gamemath.BoundsOf(gamemath.Flat(start), gamemath.Flat(end)), s.Radius)
	bodies := w.candidates(area, tag)
	if len(bodies) == 0 {
		return Hit{}, false
	}

	travel := r3.Sub(end, start)
	length := r3.Norm(travel)
	steps := 1
	if s.Radius > 0 && length > 0 {
		steps = int(math.Ceil(length / (s.Radius / 2)))
	}

	for i := 0; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		p := gamemath.Lerp(start, end, frac)

		nearest, nearestDist := r3.Vec{}, math.Inf(1)
		for _, b := range bodies {
			c := gamemath.ClosestPointOnBox(b.box, p)
			if d := r3.Norm(r3.Sub(p, c)); d <= s.Radius && d < nearestDist {
				nearest, nearestDist = c, d
			}
		}
		if math.IsInf(nearestDist, 1) {
			continue
		}

		normal := r3.Vec{Z: 1}
		switch {
		case nearestDist > 0:
			normal = r3.Unit(r3.Sub(p, nearest))
		case length > 0:
			normal = r3.Unit(r3.Scale(-1, travel))
		}
		return Hit{Point: nearest, Normal: normal, Distance: frac * length}, true
	}
	return Hit{}, false
}
