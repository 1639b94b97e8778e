package factory

import (
	"math"

	"github.com/automoto/parkour-gen/archetypes"
	"github.com/automoto/parkour-gen/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

// CreateSpace creates the resolv space covering bounds. Bodies are placed
// relative to bounds.Min.
func CreateSpace(ecs *ecs.ECS, bounds r2.Box, cellSize float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	size := bounds.Size()
	cs := int(math.Max(1, math.Ceil(cellSize)))
	spaceData := resolv.NewSpace(int(math.Ceil(size.X))+1, int(math.Ceil(size.Y))+1, cs, cs)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace links obj to entry and adds it to the space, if there is one.
func addToSpace(ecs *ecs.ECS, entry *donburi.Entry, obj *resolv.Object, bottom, top float64) {
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	obj.Data = entry // Link for O(1) lookup
	components.Object.SetValue(entry, components.ObjectData{Object: obj, Bottom: bottom, Top: top})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// newObject creates a resolv object for a world footprint, translated by
// origin into space coordinates.
func newObject(fp r2.Box, origin r2.Vec, tags ...string) *resolv.Object {
	sz := fp.Size()
	return resolv.NewObject(fp.Min.X-origin.X, fp.Min.Y-origin.Y, math.Max(sz.X, 1), math.Max(sz.Y, 1), tags...)
}
