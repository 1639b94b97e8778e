package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's collision body. The resolv object covers the
// footprint; Bottom and Top give the vertical extent.
type ObjectData struct {
	*resolv.Object
	Bottom float64
	Top    float64
}

var Object = donburi.NewComponentType[ObjectData]()
