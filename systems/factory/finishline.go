package factory

import (
	"github.com/automoto/parkour-gen/archetypes"
	"github.com/automoto/parkour-gen/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

// CreateFinishLine marks the final platform of a level
func CreateFinishLine(ecs *ecs.ECS, platform int, position r3.Vec) *donburi.Entry {
	finishLine := archetypes.FinishLine.Spawn(ecs)

	components.FinishLine.SetValue(finishLine, components.FinishLineData{
		Platform: platform,
		Position: position,
	})

	return finishLine
}
