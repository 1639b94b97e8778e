package archetypes

import (
	"github.com/automoto/parkour-gen/components"
	cfg "github.com/automoto/parkour-gen/config"
	"github.com/automoto/parkour-gen/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		tags.Generated,
		components.Platform,
		components.Object,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		tags.Generated,
		components.Obstacle,
		components.Object,
	)
	// Buildings are scenery and carry no collision body
	Building = newArchetype(
		tags.Building,
		tags.Generated,
		components.Obstacle,
	)
	Checkpoint = newArchetype(
		tags.Generated,
		components.Checkpoint,
	)
	FinishLine = newArchetype(
		tags.Finish,
		tags.Generated,
		components.FinishLine,
	)
	StaticBlock = newArchetype(
		tags.StaticBlock,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
