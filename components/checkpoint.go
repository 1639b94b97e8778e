package components

import (
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

// CheckpointData marks a platform on the start-to-finish route
type CheckpointData struct {
	CheckpointID int    // order along the route
	Platform     int    // plan index of the platform
	Spawn        r3.Vec // respawn position, on the platform's top surface
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
