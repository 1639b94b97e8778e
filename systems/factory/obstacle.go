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

// kindTag returns the tag marking obstacles of kind, if any.
func kindTag(kind placement.ObstacleKind) donburi.IComponentType {
	switch kind {
	case placement.WallRun:
		return tags.WallRun
	case placement.MantleWall, placement.MantleBlock, placement.MantlePoint:
		return tags.Mantle
	case placement.Vault:
		return tags.Vault
	}
	return nil
}

// CreateObstacle creates an obstacle entity. Buildings are scenery and get
// no collision body.
func CreateObstacle(ecs *ecs.ECS, kind placement.ObstacleKind, t placement.Transform, size r3.Vec, material string, origin r2.Vec) *donburi.Entry {
	data := components.ObstacleData{Kind: kind, Transform: t, Size: size, Material: material}

	if kind == placement.Building {
		building := archetypes.Building.Spawn(ecs)
		components.Obstacle.SetValue(building, data)
		return building
	}

	var obstacle *donburi.Entry
	if tag := kindTag(kind); tag != nil {
		obstacle = archetypes.Obstacle.Spawn(ecs, tag)
	} else {
		obstacle = archetypes.Obstacle.Spawn(ecs)
	}

	// Obstacles share the platform footprint math
	box := placement.Platform{Position: t.Position, Size: size, Yaw: t.Yaw}
	obj := newObject(box.Footprint(), origin, tags.ResolvObstacle)
	addToSpace(ecs, obstacle, obj, box.Bottom(), box.Top())

	components.Obstacle.SetValue(obstacle, data)
	return obstacle
}
