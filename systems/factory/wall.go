package factory

import (
	"github.com/automoto/parkour-gen/archetypes"
	"github.com/automoto/parkour-gen/shared/leveldata"
	"github.com/automoto/parkour-gen/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

// CreateStaticBlock creates a solid from a blockout map blocker. Static
// blocks survive regeneration.
func CreateStaticBlock(ecs *ecs.ECS, b leveldata.Blocker, origin r2.Vec) *donburi.Entry {
	block := archetypes.StaticBlock.Spawn(ecs)

	fp := r2.Box{Min: r2.Vec{X: b.X, Y: b.Y}, Max: r2.Vec{X: b.X + b.W, Y: b.Y + b.H}}
	obj := newObject(fp, origin, tags.ResolvSolid)
	addToSpace(ecs, block, obj, b.Elevation, b.Elevation+b.Height)

	return block
}
