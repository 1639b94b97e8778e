// Package placement is the value model exchanged between the generators and
// the host: platforms, obstacles, transforms and the spawn capability.
package placement

import (
	"math"

	"github.com/automoto/parkour-gen/shared/gamemath"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Platform is a placed traversable surface. Size holds the full width along
// the local X axis, depth along local Y and the slab height. Local +X is
// forward and local +Y is left.
type Platform struct {
	ID       int
	Position r3.Vec
	Size     r3.Vec
	Yaw      float64
	Mesh     MeshChoice
	Label    string `json:",omitempty"`
}

// Valid reports whether every dimension is positive.
func (p Platform) Valid() bool {
	return p.Size.X > 0 && p.Size.Y > 0 && p.Size.Z > 0
}

// HalfExtents is half of Size.
func (p Platform) HalfExtents() r3.Vec {
	return r3.Scale(0.5, p.Size)
}

// Top is the height of the walkable surface.
func (p Platform) Top() float64 {
	return p.Position.Z + p.Size.Z/2
}

// Bottom is the height of the underside.
func (p Platform) Bottom() float64 {
	return p.Position.Z - p.Size.Z/2
}

// MaxDimension is the largest of width, depth and height.
func (p Platform) MaxDimension() float64 {
	return math.Max(p.Size.X, math.Max(p.Size.Y, p.Size.Z))
}

// ToWorld maps a point in the platform frame to world space.
func (p Platform) ToWorld(local r3.Vec) r3.Vec {
	return r3.Add(p.Position, gamemath.RotateYaw(local, p.Yaw))
}

// Footprint is the axis-aligned 2D box around the rotated footprint.
func (p Platform) Footprint() r2.Box {
	h := p.HalfExtents()
	pts := make([]r2.Vec, 0, 4)
	for _, sx := range [2]float64{-1, 1} {
		for _, sy := range [2]float64{-1, 1} {
			w := p.ToWorld(r3.Vec{X: sx * h.X, Y: sy * h.Y})
			pts = append(pts, gamemath.Flat(w))
		}
	}
	return gamemath.BoundsOf(pts...)
}

// Box is the axis-aligned 3D bounding box.
func (p Platform) Box() r3.Box {
	fp := p.Footprint()
	return r3.Box{
		Min: r3.Vec{X: fp.Min.X, Y: fp.Min.Y, Z: p.Bottom()},
		Max: r3.Vec{X: fp.Max.X, Y: fp.Max.Y, Z: p.Top()},
	}
}

// Transform returns the platform's placement transform.
func (p Platform) Transform() Transform {
	return Transform{Position: p.Position, Yaw: p.Yaw}
}

// Overlaps reports whether a and b, each shrunk by tolerance, share interior
// area.
func Overlaps(a, b r2.Box, tolerance float64) bool {
	return gamemath.Overlaps(gamemath.Inflate(a, -tolerance), gamemath.Inflate(b, -tolerance))
}
