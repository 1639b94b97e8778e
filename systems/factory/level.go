package factory

import (
	"github.com/automoto/parkour-gen/archetypes"
	"github.com/automoto/parkour-gen/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the entity holding the current plan. It starts empty
// until the first regeneration.
func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{})
	return level
}
