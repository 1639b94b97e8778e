package components

import (
	"github.com/automoto/parkour-gen/level"
	"github.com/automoto/parkour-gen/shared/placement"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

type LevelData struct {
	Plan        *level.Plan
	Handles     []placement.Handle // spawned platform entries by plan index
	PlayerSpawn r3.Vec             // above the start platform
	Generation  int                // incremented on every regeneration
}

var Level = donburi.NewComponentType[LevelData]()
