package systems

import (
	"log"

	"github.com/automoto/parkour-gen/components"
	"github.com/automoto/parkour-gen/level"
	"github.com/automoto/parkour-gen/shared/leveldata"
	"github.com/automoto/parkour-gen/shared/placement"
	"github.com/automoto/parkour-gen/systems/factory"
	"github.com/automoto/parkour-gen/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// playerSpawnHeight lifts the player spawn and checkpoint respawns above
// the platform surface.
const playerSpawnHeight = 100.0

// Scene hosts generated levels in a donburi world. It is the Spawner a plan
// is applied through.
type Scene struct {
	ECS    *ecs.ECS
	origin r2.Vec
	next   int // plan index of the next spawned platform
}

// NewScene creates the world, its collision space and the level entity.
// Static blockers are added once and survive regeneration.
func NewScene(bounds r2.Box, cellSize float64, static *leveldata.CollisionData) *Scene {
	s := &Scene{
		ECS:    ecs.NewECS(donburi.NewWorld()),
		origin: bounds.Min,
	}

	factory.CreateSpace(s.ECS, bounds, cellSize)
	factory.CreateLevel(s.ECS)

	if static != nil {
		for _, b := range static.Blockers {
			factory.CreateStaticBlock(s.ECS, b, s.origin)
		}
	}
	return s
}

// SpawnPlatform creates the next platform entity. Platforms must be spawned
// in plan order.
func (s *Scene) SpawnPlatform(t placement.Transform, scale r3.Vec, mesh placement.MeshChoice) placement.Handle {
	e := factory.CreatePlatform(s.ECS, s.next, t, scale, mesh, s.origin)
	s.next++
	return e
}

// SpawnObstacle creates an obstacle entity.
func (s *Scene) SpawnObstacle(kind placement.ObstacleKind, t placement.Transform, scale r3.Vec, material string) {
	factory.CreateObstacle(s.ECS, kind, t, scale, material, s.origin)
}

// Teardown removes every generated entity and its collision body, returning
// how many were removed.
func (s *Scene) Teardown() int {
	var doomed []*donburi.Entry
	tags.Generated.Each(s.ECS.World, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})

	spaceEntry, hasSpace := components.Space.First(s.ECS.World)
	for _, e := range doomed {
		if hasSpace && e.HasComponent(components.Object) {
			if obj := components.Object.Get(e); obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
		s.ECS.World.Remove(e.Entity())
	}

	s.next = 0
	if levelEntry, ok := components.Level.First(s.ECS.World); ok {
		levelData := components.Level.Get(levelEntry)
		levelData.Plan = nil
		levelData.Handles = nil
	}
	return len(doomed)
}

// Regenerate replaces the current level with a freshly generated one. The
// old level is torn down first; on error the scene is left empty.
func Regenerate(s *Scene, gen *level.Generator, mode level.Mode, seed int64) (*level.Plan, error) {
	removed := s.Teardown()

	plan, err := gen.Generate(mode, seed)
	if err != nil {
		return nil, err
	}

	handles := level.Apply(plan, s)
	markRoute(s.ECS, plan, handles)

	levelEntry, ok := components.Level.First(s.ECS.World)
	if !ok {
		levelEntry = factory.CreateLevel(s.ECS)
	}
	levelData := components.Level.Get(levelEntry)
	levelData.Plan = plan
	levelData.Handles = handles
	if start := plan.Start(); start != nil {
		levelData.PlayerSpawn = spawnAbove(*start)
	}
	levelData.Generation++

	log.Printf("Regenerated level %d: removed %d entities, spawned %d platforms",
		levelData.Generation, removed, len(handles))
	return plan, nil
}

// markRoute tags the start platform and places checkpoints along the route
// with a finish line on its last platform.
func markRoute(e *ecs.ECS, plan *level.Plan, handles []placement.Handle) {
	if len(handles) == 0 {
		return
	}
	if start, ok := handles[0].(*donburi.Entry); ok {
		start.AddComponent(tags.Start)
	}

	route := plan.Route
	if len(route) < 2 {
		// Unreachable finish: no checkpoints, but the last platform still ends the level
		route = []int{0, len(plan.Platforms) - 1}
	}
	for i, idx := range route[1 : len(route)-1] {
		factory.CreateCheckpoint(e, i+1, idx, spawnAbove(plan.Platforms[idx]))
	}

	finish := route[len(route)-1]
	if finish != 0 {
		p := plan.Platforms[finish]
		factory.CreateFinishLine(e, finish, r3.Vec{X: p.Position.X, Y: p.Position.Y, Z: p.Top()})
	}
}

func spawnAbove(p placement.Platform) r3.Vec {
	return r3.Vec{X: p.Position.X, Y: p.Position.Y, Z: p.Top() + playerSpawnHeight}
}
