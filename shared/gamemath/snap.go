// Package gamemath holds the small geometric helpers shared by the generators.
// It has no dependencies on donburi or resolv.
package gamemath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SnapToGrid rounds v to the nearest multiple of unit. A non-positive unit
// leaves v untouched.
func SnapToGrid(v, unit float64) float64 {
	if unit <= 0 {
		return v
	}
	return math.Round(v/unit) * unit
}

// SnapXY snaps the horizontal components of p, keeping its height.
func SnapXY(p r3.Vec, unit float64) r3.Vec {
	return r3.Vec{X: SnapToGrid(p.X, unit), Y: SnapToGrid(p.Y, unit), Z: p.Z}
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt clamps v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
