package grammar

import (
	"math"

	"github.com/automoto/parkour-gen/shared/gamemath"
	"github.com/automoto/parkour-gen/shared/placement"
	"gonum.org/v1/gonum/spatial/r3"
)

// Faces are the facing top edges of two consecutive platforms: the side of
// the old platform pointing along the placement direction and the side of
// the new one pointing back at it. Start corners correspond to each other.
type Faces struct {
	OldStart r3.Vec
	OldEnd   r3.Vec
	NewStart r3.Vec
	NewEnd   r3.Vec
}

// IsZero reports the sentinel returned when no face pair exists.
func (f Faces) IsZero() bool {
	return f == Faces{}
}

func (f Faces) OldMid() r3.Vec { return gamemath.Lerp(f.OldStart, f.OldEnd, 0.5) }
func (f Faces) NewMid() r3.Vec { return gamemath.Lerp(f.NewStart, f.NewEnd, 0.5) }

// ClosestFaces resolves the facing sides for the categories that bridge a
// gap: long jumps, below and very-low placements. Any other category, or a
// degenerate platform, yields the zero Faces.
func ClosestFaces(old, next placement.Platform, cat Category) Faces {
	switch cat.Kind {
	case LongJump, Below, VeryLow:
	default:
		return Faces{}
	}
	dx, dy := cat.Dir.Axis()
	oa, ob, _, ok := old.Face(dx, dy)
	if !ok {
		return Faces{}
	}
	na, nb, _, ok := next.Face(-dx, -dy)
	if !ok {
		return Faces{}
	}
	return Faces{OldStart: oa, OldEnd: ob, NewStart: na, NewEnd: nb}
}

// WallRunLocation is the point halfway between the two face midpoints,
// raised by raise. Zero faces give the zero vector.
func WallRunLocation(f Faces, raise float64) r3.Vec {
	if f.IsZero() {
		return r3.Vec{}
	}
	mid := gamemath.Lerp(f.OldMid(), f.NewMid(), 0.5)
	mid.Z += raise
	return mid
}

// WallRunYaw faces the slab from the old platform toward the new one. Zero
// faces give 0.
func WallRunYaw(f Faces) float64 {
	if f.IsZero() {
		return 0
	}
	return gamemath.Yaw(r3.Sub(f.NewMid(), f.OldMid()))
}

// WallRunDistance is the distance between corresponding face corners.
func WallRunDistance(f Faces) float64 {
	if f.IsZero() {
		return 0
	}
	return r3.Norm(r3.Sub(f.NewStart, f.OldStart))
}

// obstacles plans the supporting geometry for an accepted placement.
func (g *Generator) obstacles(cat Category, old, next placement.Platform) []placement.Obstacle {
	var out []placement.Obstacle
	switch cat.Kind {
	case LongJump:
		if o, ok := g.wallRun(cat, old, next); ok {
			out = append(out, o)
		}
		out = append(out, g.mantleWall(next))
	case Below, VeryLow:
		out = append(out, g.staircase(cat, old, next)...)
	default:
		out = append(out, g.vaults(next)...)
		out = append(out, g.mantleWall(next))
	}
	return out
}

func (g *Generator) wallRun(cat Category, old, next placement.Platform) (placement.Obstacle, bool) {
	f := ClosestFaces(old, next, cat)
	if f.IsZero() {
		return placement.Obstacle{}, false
	}
	return placement.Obstacle{
		Kind: placement.WallRun,
		Transform: placement.Transform{
			Position: WallRunLocation(f, g.cfg.WallRunRaise),
			Yaw:      WallRunYaw(f),
		},
		Size: r3.Vec{
			X: WallRunDistance(f) * g.cfg.WallRunLength,
			Y: g.cfg.WallRunThickness,
			Z: g.cfg.WallRunHeight,
		},
		Material: g.registry.ObstacleMaterial,
	}, true
}

// crossAxis returns the platform's long dimension, the dimension across it
// and the yaw of an obstacle lying across the long axis.
func crossAxis(p placement.Platform) (length, span, yaw float64, alongX bool) {
	if p.Size.X > p.Size.Y {
		return p.Size.X, p.Size.Y, p.Yaw, true
	}
	return p.Size.Y, p.Size.X, p.Yaw + math.Pi/2, false
}

func onAxis(alongX bool, d, z float64) r3.Vec {
	if alongX {
		return r3.Vec{X: d, Z: z}
	}
	return r3.Vec{Y: d, Z: z}
}

// mantleWall stands a thin wall across the platform's long axis, drifted
// randomly along it.
func (g *Generator) mantleWall(p placement.Platform) placement.Obstacle {
	length, span, yaw, alongX := crossAxis(p)
	spread := g.cfg.MantleWallSpread * length
	h := g.cfg.MantleWallHeight
	local := onAxis(alongX, g.src.Float(-spread, spread), p.Size.Z/2+h/2)

	return placement.Obstacle{
		Kind:      placement.MantleWall,
		Transform: placement.Transform{Position: p.ToWorld(local), Yaw: yaw},
		Size:      r3.Vec{X: g.cfg.MantleWallThickness, Y: span, Z: h},
		Material:  g.registry.ObstacleMaterial,
	}
}

// vaults lays a row of low bars across the platform at a random spacing.
func (g *Generator) vaults(p placement.Platform) []placement.Obstacle {
	length, span, yaw, alongX := crossAxis(p)
	spacing := g.draw(g.cfg.VaultSpacing)
	if spacing <= 0 {
		return nil
	}
	n := min(int(length/spacing), g.cfg.MaxVaults)

	start := -length/2 + g.src.Float(100, math.Max(100, length/3))
	h := g.cfg.VaultHeight

	out := make([]placement.Obstacle, 0, n)
	for i := 0; i < n; i++ {
		thickness := g.draw(g.cfg.VaultThickness)
		d := start + float64(i)*spacing
		if d+thickness/2 > length/2 {
			break
		}
		out = append(out, placement.Obstacle{
			Kind:      placement.Vault,
			Transform: placement.Transform{Position: p.ToWorld(onAxis(alongX, d, p.Size.Z/2+h/2)), Yaw: yaw},
			Size:      r3.Vec{X: thickness, Y: span * g.cfg.VaultLength, Z: h},
			Material:  g.registry.ObstacleMaterial,
		})
	}
	return out
}

// StepCount is the number of mantle blocks needed to climb dz.
func StepCount(dz, gridUnit float64, maxSteps int) int {
	if gridUnit <= 0 {
		return 1
	}
	return gamemath.ClampInt(int(math.Ceil(math.Abs(dz)/gridUnit)), 1, maxSteps)
}

// staircase steps down from the old platform's height onto the near edge of
// the new, lower platform. Nothing is planned for a single step or when the
// faces cannot be resolved.
func (g *Generator) staircase(cat Category, old, next placement.Platform) []placement.Obstacle {
	f := ClosestFaces(old, next, cat)
	if f.IsZero() {
		return nil
	}
	dz := old.Top() - next.Top()
	if dz <= 0 {
		return nil
	}

	steps := StepCount(dz, g.cfg.GridUnit, g.cfg.MaxMantleSteps)
	depth := g.cfg.MantleStepDepth
	dx, _ := cat.Dir.Axis()
	avail := next.Size.Y
	if dx != 0 {
		avail = next.Size.X
	}
	if depth > 0 && float64(steps)*depth > avail {
		steps = int(avail / depth)
	}
	if steps <= 1 {
		return nil
	}

	ax, ay := cat.Dir.Axis()
	inward := gamemath.RotateYaw(r3.Vec{X: ax, Y: ay}, next.Yaw)
	width := math.Min(g.cfg.MantleBlockWidth, r3.Norm(r3.Sub(f.NewStart, f.NewEnd)))
	base := f.NewMid()

	out := make([]placement.Obstacle, 0, steps)
	for i := 0; i < steps; i++ {
		height := dz * float64(steps-i) / float64(steps)
		pos := r3.Add(base, r3.Scale((float64(i)+0.5)*depth, inward))
		pos.Z = next.Top() + height/2
		out = append(out, placement.Obstacle{
			Kind:      placement.MantleBlock,
			Transform: placement.Transform{Position: pos, Yaw: gamemath.Yaw(inward)},
			Size:      r3.Vec{X: depth, Y: width, Z: height},
			Material:  g.registry.ObstacleMaterial,
		})
	}
	return out
}
