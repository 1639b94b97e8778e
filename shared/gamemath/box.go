package gamemath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// BoundsOf returns the smallest box holding every point.
func BoundsOf(pts ...r2.Vec) r2.Box {
	if len(pts) == 0 {
		return r2.Box{}
	}
	b := r2.Box{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// Inflate grows b by d on every side. A negative d shrinks it.
func Inflate(b r2.Box, d float64) r2.Box {
	return r2.Box{
		Min: r2.Vec{X: b.Min.X - d, Y: b.Min.Y - d},
		Max: r2.Vec{X: b.Max.X + d, Y: b.Max.Y + d},
	}
}

// Overlaps reports whether a and b share interior area. Boxes that only touch
// along an edge do not overlap.
func Overlaps(a, b r2.Box) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

// Within reports whether inner lies entirely inside outer.
func Within(inner, outer r2.Box) bool {
	return inner.Min.X >= outer.Min.X && inner.Min.Y >= outer.Min.Y &&
		inner.Max.X <= outer.Max.X && inner.Max.Y <= outer.Max.Y
}

// ClosestPointOnBox clamps p into b.
func ClosestPointOnBox(b r3.Box, p r3.Vec) r3.Vec {
	return r3.Vec{
		X: ClampFloat(p.X, b.Min.X, b.Max.X),
		Y: ClampFloat(p.Y, b.Min.Y, b.Max.Y),
		Z: ClampFloat(p.Z, b.Min.Z, b.Max.Z),
	}
}

// SegmentBox intersects the segment start→end with b using the slab method.
// It returns the entry fraction along the segment and the face normal hit.
// A segment starting inside b hits at 0 with a normal opposing the travel.
func SegmentBox(start, end r3.Vec, b r3.Box) (float64, r3.Vec, bool) {
	d := r3.Sub(end, start)
	tMin, tMax := 0.0, 1.0
	var normal r3.Vec

	axes := [3]struct {
		s, d, lo, hi float64
		n            r3.Vec
	}{
		{start.X, d.X, b.Min.X, b.Max.X, r3.Vec{X: 1}},
		{start.Y, d.Y, b.Min.Y, b.Max.Y, r3.Vec{Y: 1}},
		{start.Z, d.Z, b.Min.Z, b.Max.Z, r3.Vec{Z: 1}},
	}
	for _, a := range axes {
		if a.d == 0 {
			if a.s < a.lo || a.s > a.hi {
				return 0, r3.Vec{}, false
			}
			continue
		}
		t1 := (a.lo - a.s) / a.d
		t2 := (a.hi - a.s) / a.d
		n := r3.Scale(-1, a.n)
		if t1 > t2 {
			t1, t2 = t2, t1
			n = a.n
		}
		if t1 > tMin {
			tMin = t1
			normal = n
		}
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, r3.Vec{}, false
		}
	}
	if normal == (r3.Vec{}) && r3.Norm(d) > 0 {
		normal = r3.Scale(-1, r3.Unit(d))
	}
	return tMin, normal, true
}

// PointSegmentDistance returns the distance from p to the segment a→b and
// the fraction along the segment of the closest point.
func PointSegmentDistance(p, a, b r3.Vec) (float64, float64) {
	ab := r3.Sub(b, a)
	lenSq := r3.Norm2(ab)
	if lenSq == 0 {
		return r3.Norm(r3.Sub(p, a)), 0
	}
	t := ClampFloat(r3.Dot(r3.Sub(p, a), ab)/lenSq, 0, 1)
	closest := r3.Add(a, r3.Scale(t, ab))
	return r3.Norm(r3.Sub(p, closest)), t
}
