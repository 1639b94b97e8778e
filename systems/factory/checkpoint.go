package factory

import (
	"github.com/automoto/parkour-gen/archetypes"
	"github.com/automoto/parkour-gen/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

// CreateCheckpoint marks a route platform as a respawn point
func CreateCheckpoint(ecs *ecs.ECS, checkpointID, platform int, spawn r3.Vec) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		CheckpointID: checkpointID,
		Platform:     platform,
		Spawn:        spawn,
	})

	return checkpoint
}
