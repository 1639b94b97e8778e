package factory

import (
	"github.com/automoto/parkour-gen/archetypes"
	"github.com/automoto/parkour-gen/components"
	"github.com/automoto/parkour-gen/shared/placement"
	"github.com/automoto/parkour-gen/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// CreatePlatform creates a platform entity with a collision body over its
// footprint.
func CreatePlatform(ecs *ecs.ECS, index int, t placement.Transform, size r3.Vec, mesh placement.MeshChoice, origin r2.Vec) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	p := placement.Platform{Position: t.Position, Size: size, Yaw: t.Yaw}
	obj := newObject(p.Footprint(), origin, tags.ResolvPlatform)
	addToSpace(ecs, platform, obj, p.Bottom(), p.Top())

	components.Platform.SetValue(platform, components.PlatformData{
		Index:     index,
		Transform: t,
		Size:      size,
		Mesh:      mesh,
	})

	return platform
}
