package level

import (
	"github.com/automoto/parkour-gen/shared/placement"
	"gonum.org/v1/gonum/spatial/r3"
)

// MantlePointSize is the extent of the marker spawned per mantle waypoint.
var MantlePointSize = r3.Vec{X: 50, Y: 50, Z: 50}

// Apply materializes plan through s: platforms in index order, then the
// grammar obstacles, connector geometry and decorations. Mantle waypoints
// without support are not spawned and carry no material. It returns the platform handles by index.
func Apply(plan *Plan, s placement.Spawner) []placement.Handle {
	handles := make([]placement.Handle, len(plan.Platforms))
	for i, p := range plan.Platforms {
		handles[i] = s.SpawnPlatform(p.Transform(), p.Size, p.Mesh)
	}
	for _, o := range plan.Obstacles {
		s.SpawnObstacle(o.Kind, o.Transform, o.Size, o.Material)
	}
	for _, c := range plan.Connections {
		for _, wp := range c.Waypoints {
			if wp.Supported {
				s.SpawnObstacle(placement.MantlePoint, placement.Transform{Position: wp.Point}, MantlePointSize, "")
			}
		}
		if c.Slab != nil {
			s.SpawnObstacle(c.Slab.Kind, c.Slab.Transform, c.Slab.Size, c.Slab.Material)
		}
	}
	for _, d := range plan.Decorations {
		s.SpawnObstacle(d.Kind, d.Transform, d.Size, d.Material)
	}
	return handles
}
