package components

import (
	"github.com/automoto/parkour-gen/shared/placement"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

type ObstacleData struct {
	Kind      placement.ObstacleKind
	Transform placement.Transform
	Size      r3.Vec
	Material  string
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
