package components

import (
	"github.com/automoto/parkour-gen/shared/placement"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

type PlatformData struct {
	Index     int // position in the plan
	Transform placement.Transform
	Size      r3.Vec
	Mesh      placement.MeshChoice
}

var Platform = donburi.NewComponentType[PlatformData]()
