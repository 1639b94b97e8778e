package components

import (
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

type FinishLineData struct {
	Platform int
	Position r3.Vec
}

var FinishLine = donburi.NewComponentType[FinishLineData]()
