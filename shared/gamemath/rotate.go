package gamemath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

var up = r3.Vec{Z: 1}

// RotateYaw rotates v about the vertical axis by yaw radians.
func RotateYaw(v r3.Vec, yaw float64) r3.Vec {
	if yaw == 0 {
		return v
	}
	return r3.Rotate(v, yaw, up)
}

// Yaw returns the heading of dir in the horizontal plane. A vertical or zero
// vector yields 0.
func Yaw(dir r3.Vec) float64 {
	if dir.X == 0 && dir.Y == 0 {
		return 0
	}
	return math.Atan2(dir.Y, dir.X)
}

// Flat drops the height component.
func Flat(v r3.Vec) r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// HorizontalDistance is the 2D distance between a and b.
func HorizontalDistance(a, b r3.Vec) float64 {
	return r2.Norm(r2.Sub(Flat(a), Flat(b)))
}

// HeightDifference is |a.Z - b.Z|.
func HeightDifference(a, b r3.Vec) float64 {
	return math.Abs(a.Z - b.Z)
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}
