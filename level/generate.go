package level

import (
	"fmt"
	"log"

	"github.com/automoto/parkour-gen/collision"
	"github.com/automoto/parkour-gen/config"
	"github.com/automoto/parkour-gen/connector"
	"github.com/automoto/parkour-gen/grammar"
	"github.com/automoto/parkour-gen/layout"
	"github.com/automoto/parkour-gen/partition"
	"github.com/automoto/parkour-gen/rng"
	"github.com/automoto/parkour-gen/shared/gamemath"
	"github.com/automoto/parkour-gen/shared/leveldata"
	"github.com/automoto/parkour-gen/shared/placement"
	"github.com/automoto/parkour-gen/tags"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// worldMargin pads the collision world beyond the grid so chains wandering
// off it still get a broad phase.
const worldMargin = 20000.0

// Generator runs the pipeline for one configuration.
type Generator struct {
	cfg    *config.Config
	rules  grammar.RuleSet
	static *leveldata.CollisionData
}

// New creates a Generator. static may be nil.
func New(cfg *config.Config, rules grammar.RuleSet, static *leveldata.CollisionData) *Generator {
	return &Generator{cfg: cfg, rules: rules, static: static}
}

// space extends the platform overlap test to the static solids.
type space struct {
	*collision.World
}

func (s space) Blocked(footprint r2.Box) bool {
	return s.World.Blocked(footprint) || s.World.Overlapping(footprint, tags.ResolvSolid)
}

// Bounds is the region generated geometry can occupy.
func (g *Generator) Bounds() r2.Box {
	return gamemath.Inflate(layout.GridBounds(g.cfg.Partition, r2.Vec{}), worldMargin)
}

// Static returns the blockout collision data, or nil.
func (g *Generator) Static() *leveldata.CollisionData { return g.static }

// World builds the collision world for a run, seeded with the static
// blockers.
func (g *Generator) World() *collision.World {
	w := collision.NewWorld(g.Bounds(), g.cfg.Partition.CellLength)
	if g.static != nil {
		for _, b := range g.static.Blockers {
			w.AddBox(b.Box(), tags.ResolvSolid)
		}
	}
	return w
}

// Generate decides a complete plan for mode. The same seed and
// configuration always produce the same plan.
func (g *Generator) Generate(mode Mode, seed int64) (*Plan, error) {
	src := rng.New(seed)
	world := g.World()
	sp := space{world}
	registry := grammar.RegistryFrom(g.cfg.Grammar)

	plan := &Plan{Mode: mode, Seed: seed}
	switch mode {
	case ModeGrid:
		cells, err := partition.Partition(g.cfg.Partition, src)
		if err != nil {
			return nil, fmt.Errorf("grid layout: %w", err)
		}
		res := layout.New(g.cfg.Layout, g.cfg.Partition, plan.Origin, registry, src, sp).Place(cells)
		plan.Cells = cells
		plan.CellLength = g.cfg.Partition.CellLength
		plan.Platforms = res.Platforms
		plan.Skipped = res.Skipped
	case ModeChain:
		chain, err := grammar.New(g.cfg.Grammar, g.rules, src, sp).Generate(g.seedTransform())
		if err != nil {
			return nil, fmt.Errorf("grammar: %w", err)
		}
		plan.Platforms = chain.Platforms
		plan.Obstacles = chain.Obstacles()
		plan.Skipped = chain.Skipped
	default:
		return nil, fmt.Errorf("generate: unknown mode %d", int(mode))
	}

	plan.Connections = connector.New(g.cfg.Connector, plan.Platforms, world, src).ConnectAll()

	if mode == ModeChain && g.cfg.Decorate.Enabled {
		plan.Decorations = Decorate(g.cfg.Decorate, plan.Platforms, src)
	}

	plan.Route, plan.Reachable = Route(plan)

	log.Printf("Generated %s level: seed %d, %d platforms, %d connectors, %d skipped, reachable %t",
		mode, seed, len(plan.Platforms), len(plan.Connections), plan.Skipped, plan.Reachable)
	return plan, nil
}

// seedTransform starts the chain at the first spawn point of the blockout
// map, or at the grid centre.
func (g *Generator) seedTransform() placement.Transform {
	if g.static != nil && len(g.static.SpawnPoints) > 0 {
		sp := g.static.SpawnPoints[0]
		return placement.Transform{Position: sp.Position(), Yaw: sp.Yaw}
	}
	c := layout.GridBounds(g.cfg.Partition, r2.Vec{}).Center()
	return placement.Transform{Position: r3.Vec{X: c.X, Y: c.Y}}
}
