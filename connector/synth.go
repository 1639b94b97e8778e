package connector

import (
	"math"

	"github.com/automoto/parkour-gen/collision"
	"github.com/automoto/parkour-gen/shared/gamemath"
	"github.com/automoto/parkour-gen/shared/placement"
	"github.com/automoto/parkour-gen/tags"
	"gonum.org/v1/gonum/spatial/r3"
)

// ClosestEdges returns the corner edges of a and b whose start points are
// nearest each other.
func ClosestEdges(a, b placement.Platform) (placement.Edge, placement.Edge, bool) {
	ea, ok := a.Edges()
	if !ok {
		return placement.Edge{}, placement.Edge{}, false
	}
	eb, ok := b.Edges()
	if !ok {
		return placement.Edge{}, placement.Edge{}, false
	}

	bi, bj, best := 0, 0, math.Inf(1)
	for i := range ea {
		for j := range eb {
			if d := r3.Norm2(r3.Sub(ea[i].Start, eb[j].Start)); d < best {
				bi, bj, best = i, j, d
			}
		}
	}
	return ea[bi], eb[bj], true
}

// WaypointCount is the number of mantle waypoints over distance.
func WaypointCount(distance, spacing float64) int {
	if spacing <= 0 {
		return 3
	}
	return max(3, int(math.Ceil(distance/spacing)))
}

// mantle walks from the top of a's nearest corner to the top of b's,
// easing the height and probing below each point for support.
func (c *Connector) mantle(a, b placement.Platform) ([]Waypoint, string) {
	from, to, ok := ClosestEdges(a, b)
	if !ok {
		return nil, ReasonDegenerate
	}
	n := WaypointCount(r3.Norm(r3.Sub(to.End, from.Start)), c.cfg.WaypointSpacing)

	ball := collision.Sphere{Radius: c.cfg.SupportRadius}
	jitter := c.cfg.WaypointJitter

	out := make([]Waypoint, n)
	for i := range out {
		alpha := float64(i) / float64(n-1)
		p := gamemath.Lerp(from.End, to.End, alpha)
		p.Z = gamemath.EaseBlend(from.End.Z, to.End.Z, alpha)
		p.X += c.src.Float(-jitter, jitter)
		p.Y += c.src.Float(-jitter, jitter)

		below := r3.Vec{X: p.X, Y: p.Y, Z: p.Z - c.cfg.SupportDepth}
		_, hit := c.query.ShapeCast(ball, p, below, tags.ResolvPlatform)
		out[i] = Waypoint{Point: p, Supported: hit}
	}
	return out, ""
}

// EdgePoint is where the ray from p's top centre along the horizontal
// direction dir leaves p's top face. A zero dir yields the top centre.
func EdgePoint(p placement.Platform, dir r3.Vec) r3.Vec {
	local := gamemath.RotateYaw(dir, -p.Yaw)
	h := p.HalfExtents()
	t := math.Inf(1)
	if local.X != 0 {
		t = math.Min(t, h.X/math.Abs(local.X))
	}
	if local.Y != 0 {
		t = math.Min(t, h.Y/math.Abs(local.Y))
	}
	if math.IsInf(t, 1) {
		t = 0
	}
	return p.ToWorld(r3.Vec{X: local.X * t, Y: local.Y * t, Z: h.Z})
}

// wallRun plans the slab spanning platforms a and b.
func (c *Connector) wallRun(a, b int) (placement.Obstacle, string) {
	pa, pb := c.platforms[a], c.platforms[b]
	if !pa.Valid() || !pb.Valid() {
		return placement.Obstacle{}, ReasonDegenerate
	}

	flat := r3.Sub(pb.Position, pa.Position)
	flat.Z = 0
	if r3.Norm(flat) == 0 {
		return placement.Obstacle{}, ReasonDegenerate
	}
	dir := r3.Unit(flat)
	start := EdgePoint(pa, dir)
	end := EdgePoint(pb, r3.Scale(-1, dir))

	edgeDist := gamemath.HorizontalDistance(start, end)
	if edgeDist < c.cfg.MinJumpDistance {
		return placement.Obstacle{}, ReasonTooClose
	}
	if math.Abs(start.Z-end.Z) > c.cfg.WallRunMaxHeight {
		return placement.Obstacle{}, ReasonTooSteep
	}
	if _, hit := c.query.LineTrace(start, end, tags.ResolvSolid); hit {
		return placement.Obstacle{}, ReasonBlocked
	}
	for k, p := range c.platforms {
		if k == a || k == b {
			continue
		}
		if d, _ := gamemath.PointSegmentDistance(p.Position, start, end); d < p.MaxDimension() {
			return placement.Obstacle{}, ReasonPlatformWay
		}
	}

	return placement.Obstacle{
		Kind: placement.WallRun,
		Transform: placement.Transform{
			Position: gamemath.Lerp(start, end, 0.5),
			Yaw:      gamemath.Yaw(r3.Sub(end, start)),
		},
		Size: r3.Vec{
			X: edgeDist * c.cfg.SlabLength,
			Y: c.cfg.SlabThickness,
			Z: math.Min(c.cfg.SlabMaxHeight, c.cfg.WallRunMaxHeight),
		},
		Material: c.cfg.SlabMaterial,
	}, ""
}
