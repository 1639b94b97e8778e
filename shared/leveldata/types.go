// Package leveldata loads blockout TMX maps: static geometry the generators
// must build around, and spawn points the platform chain can start from.
// It has no dependency on the generators or the host.
package leveldata

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultBlockerHeight is used for blockers without a height property.
const DefaultBlockerHeight = 1000.0

// CollisionData holds everything a blockout map contributes to generation.
type CollisionData struct {
	Blockers    []Blocker
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// Blocker is a static solid. X, Y, W and H are its footprint in map units;
// Elevation is the height of its underside.
type Blocker struct {
	X, Y, W, H float64
	Elevation  float64
	Height     float64
	Kind       string // "tile" for wg-tiles, else the object's kind property
}

// Box returns the blocker's world-space volume.
func (b Blocker) Box() r3.Box {
	return r3.Box{
		Min: r3.Vec{X: b.X, Y: b.Y, Z: b.Elevation},
		Max: r3.Vec{X: b.X + b.W, Y: b.Y + b.H, Z: b.Elevation + b.Height},
	}
}

// SpawnPoint is a candidate start for a platform chain.
type SpawnPoint struct {
	X, Y      float64
	Elevation float64
	Yaw       float64 // radians, read from degrees in the map
	Index     int
}

// Position returns the spawn point in world space.
func (s SpawnPoint) Position() r3.Vec {
	return r3.Vec{X: s.X, Y: s.Y, Z: s.Elevation}
}

func degrees(d float64) float64 {
	return d * math.Pi / 180
}
