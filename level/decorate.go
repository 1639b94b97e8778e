package level

import (
	"math"

	"github.com/automoto/parkour-gen/config"
	"github.com/automoto/parkour-gen/rng"
	"github.com/automoto/parkour-gen/shared/gamemath"
	"github.com/automoto/parkour-gen/shared/placement"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// maxFootprintScale bounds the building footprint, in Footprint units.
const maxFootprintScale = 6

// Decorate rings the course with background buildings: Layers rectangles
// around the platforms' bounds, each walked at BuildingSpacing intervals.
func Decorate(cfg config.DecorateConfig, platforms []placement.Platform, src rng.Source) []placement.Obstacle {
	if len(platforms) == 0 || cfg.BuildingSpacing <= 0 {
		return nil
	}

	bounds := platforms[0].Footprint()
	for _, p := range platforms[1:] {
		fp := p.Footprint()
		bounds = gamemath.BoundsOf(bounds.Min, bounds.Max, fp.Min, fp.Max)
	}

	var out []placement.Obstacle
	for layer := 0; layer < cfg.Layers; layer++ {
		ring := gamemath.Inflate(bounds, cfg.Buffer+float64(layer)*cfg.LayerSpacing)
		for _, at := range perimeter(ring, cfg.BuildingSpacing) {
			scale := r3.Vec{
				X: float64(src.Int(1, maxFootprintScale)),
				Y: float64(src.Int(1, maxFootprintScale)),
				Z: src.Float(cfg.ScaleMin, cfg.ScaleMax),
			}
			out = append(out, placement.Obstacle{
				Kind: placement.Building,
				Transform: placement.Transform{
					Position: r3.Vec{X: at.X, Y: at.Y, Z: src.Float(-2, 2) * cfg.SpawnHeight},
					Yaw:      src.Float(0, 2*math.Pi),
				},
				Size: r3.Scale(cfg.Footprint, scale),
			})
		}
	}
	return out
}

// perimeter returns points every spacing units around b, starting at Min
// and running counter-clockwise.
func perimeter(b r2.Box, spacing float64) []r2.Vec {
	size := b.Size()
	total := 2 * (size.X + size.Y)
	n := int(total / spacing)

	pts := make([]r2.Vec, 0, n)
	for i := 0; i < n; i++ {
		d := float64(i) * spacing
		switch {
		case d < size.X:
			pts = append(pts, r2.Vec{X: b.Min.X + d, Y: b.Min.Y})
		case d < size.X+size.Y:
			pts = append(pts, r2.Vec{X: b.Max.X, Y: b.Min.Y + d - size.X})
		case d < 2*size.X+size.Y:
			pts = append(pts, r2.Vec{X: b.Max.X - (d - size.X - size.Y), Y: b.Max.Y})
		default:
			pts = append(pts, r2.Vec{X: b.Min.X, Y: b.Max.Y - (d - 2*size.X - size.Y)})
		}
	}
	return pts
}
