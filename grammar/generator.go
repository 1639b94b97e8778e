// Package grammar grows a linear chain of platforms by walking a production
// grammar. Each step picks a placement category, computes where the next
// platform goes relative to the last one, validates it against everything
// already placed and plans the obstacles that go with it.
//
// Generation only decides; nothing is spawned here. The resulting Chain is
// applied to a host separately.
package grammar

import (
	"fmt"
	"log"

	"github.com/automoto/parkour-gen/config"
	"github.com/automoto/parkour-gen/rng"
	"github.com/automoto/parkour-gen/shared/gamemath"
	"github.com/automoto/parkour-gen/shared/placement"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Space is the collision capability placements are validated against.
type Space interface {
	Blocked(footprint r2.Box) bool
	Occupy(p placement.Platform)
}

// Step records one accepted placement.
type Step struct {
	Category  Category
	Platform  int // index into Chain.Platforms
	Parent    int
	Attempts  int
	Obstacles []placement.Obstacle
}

// Chain is the outcome of one generation run. Platforms[0] is the seed.
type Chain struct {
	Platforms []placement.Platform
	Steps     []Step
	Skipped   int // steps abandoned after exhausting their attempts
	Attempts  int // placement attempts across the whole run
}

// Obstacles flattens the obstacles of every step in step order.
func (c *Chain) Obstacles() []placement.Obstacle {
	var out []placement.Obstacle
	for _, s := range c.Steps {
		out = append(out, s.Obstacles...)
	}
	return out
}

// Generator holds the configuration of a chain run.
type Generator struct {
	cfg      config.GrammarConfig
	rules    RuleSet
	registry placement.Registry
	src      rng.Source
	space    Space
}

// New creates a Generator. Accepted platforms are recorded in space, which
// may already hold static geometry.
func New(cfg config.GrammarConfig, rules RuleSet, src rng.Source, space Space) *Generator {
	return &Generator{
		cfg:      cfg,
		rules:    rules,
		registry: RegistryFrom(cfg),
		src:      src,
		space:    space,
	}
}

// RegistryFrom builds the mesh registry named by cfg.
func RegistryFrom(cfg config.GrammarConfig) placement.Registry {
	return placement.Registry{
		PlatformMeshes:   cfg.PlatformMeshes,
		StartMaterial:    cfg.StartMaterial,
		FinishMaterial:   cfg.FinishMaterial,
		ObstacleMaterial: cfg.ObstacleMaterial,
	}
}

// cursor is the state carried from one step to the next.
type cursor struct {
	last   int
	sx, sy float64 // scale of the last platform, in grid units per half extent
	dir    Direction
	hasDir bool
}

// Generate grows a chain of up to cfg.PlatformCount platforms, the seed
// included, starting at seed. A step that fails MaxAttempts times in a row
// is skipped; an unknown follow-up rule ends the chain early. Only an
// unknown start rule is an error.
func (g *Generator) Generate(seed placement.Transform) (*Chain, error) {
	if _, err := g.rules.Rule(g.cfg.StartRule); err != nil {
		return nil, fmt.Errorf("start chain: %w", err)
	}

	total := g.cfg.PlatformCount
	chain := &Chain{}

	sx, sy := g.drawScale(), g.drawScale()
	first := g.platform(seed.Position, seed.Yaw, sx, sy)
	first.Mesh = g.registry.Pick(g.src, 0, total)
	first.Label = "Platform: 1 : Start"
	g.accept(chain, first)

	cur := cursor{last: 0, sx: sx, sy: sy}
	rule := g.cfg.StartRule
	remaining := total - 1
	failures := 0

	for remaining > 0 {
		cats, err := g.rules.Rule(rule)
		if err != nil {
			log.Printf("Chain ended early: %v", err)
			break
		}
		cat := g.choose(cats, cur)
		chain.Attempts++

		nsx, nsy := g.drawScale(), g.drawScale()
		cand := g.place(chain.Platforms[cur.last], cur, cat, nsx, nsy)

		if g.valid(cand) {
			idx := len(chain.Platforms)
			cand.Mesh = g.registry.Pick(g.src, idx, total)
			cand.Label = fmt.Sprintf("Platform: %d : %s", idx+1, cat)

			obstacles := g.obstacles(cat, chain.Platforms[cur.last], cand)
			g.accept(chain, cand)
			chain.Steps = append(chain.Steps, Step{
				Category:  cat,
				Platform:  idx,
				Parent:    cur.last,
				Attempts:  failures + 1,
				Obstacles: obstacles,
			})

			cur = cursor{last: idx, sx: nsx, sy: nsy, dir: cat.Dir, hasDir: true}
			failures = 0
			remaining--
		} else {
			failures++
			if failures >= g.cfg.MaxAttempts {
				log.Printf("No valid position for platform %d after %d attempts, skipping",
					total-remaining+1, failures)
				chain.Skipped++
				failures = 0
				remaining--
			}
		}

		rule = g.rules.PickNext(g.src, cat.Kind)
	}

	if n := len(chain.Platforms); n > 1 {
		chain.Platforms[n-1].Mesh.Material = g.registry.FinishMaterial
	}
	return chain, nil
}

func (g *Generator) accept(chain *Chain, p placement.Platform) {
	p.ID = len(chain.Platforms)
	chain.Platforms = append(chain.Platforms, p)
	g.space.Occupy(p)
}

// choose drops candidates that would double straight back on the previous
// step, falling back to the full set if nothing is left.
func (g *Generator) choose(cats []Category, cur cursor) Category {
	valid := cats
	if cur.hasDir {
		valid = make([]Category, 0, len(cats))
		for _, c := range cats {
			if c.Dir != cur.dir.Opposite() {
				valid = append(valid, c)
			}
		}
		if len(valid) == 0 {
			valid = cats
		}
	}
	return valid[rng.Pick(g.src, len(valid))]
}

func (g *Generator) drawScale() float64 {
	return float64(g.src.Int(int(g.cfg.ScaleMin), int(g.cfg.ScaleMax)))
}

func (g *Generator) platform(pos r3.Vec, yaw, sx, sy float64) placement.Platform {
	gu := g.cfg.GridUnit
	return placement.Platform{
		Position: pos,
		Size:     r3.Vec{X: 2 * sx * gu, Y: 2 * sy * gu, Z: g.cfg.Thickness},
		Yaw:      yaw,
	}
}

// place computes the candidate platform for cat next to last.
func (g *Generator) place(last placement.Platform, cur cursor, cat Category, sx, sy float64) placement.Platform {
	local := r3.Add(BaseOffset(cat.Dir, cur.sx, cur.sy, sx, sy, g.cfg.GridUnit), g.extraOffset(cat))
	pos := r3.Add(last.Position, gamemath.RotateYaw(local, last.Yaw))
	return g.platform(gamemath.SnapXY(pos, g.cfg.GridUnit), last.Yaw, sx, sy)
}

// BaseOffset is the local offset that puts two platforms of the given
// scales edge to edge along d.
func BaseOffset(d Direction, curX, curY, newX, newY, gridUnit float64) r3.Vec {
	dx, dy := d.Axis()
	return r3.Vec{
		X: dx * (curX + newX) * gridUnit,
		Y: dy * (curY + newY) * gridUnit,
	}
}

// extraOffset draws the category-specific gap and height change.
func (g *Generator) extraOffset(cat Category) r3.Vec {
	dx, dy := cat.Dir.Axis()
	along := func(d, z float64) r3.Vec {
		return r3.Vec{X: dx * d, Y: dy * d, Z: z}
	}
	c := g.cfg

	switch cat.Kind {
	case SmallJump:
		return along(g.draw(c.SmallJumpGap), g.src.Float(-c.SmallJumpHeight, c.SmallJumpHeight))
	case LongJump:
		return along(g.draw(c.LongJumpGap), g.src.Float(-c.LongJumpHeight, c.LongJumpHeight))
	case Above:
		return along(g.draw(c.AboveGap), g.draw(c.AboveHeight))
	case Below:
		return along(g.draw(c.BelowGap), -g.draw(c.BelowHeight))
	case VeryHigh:
		return r3.Vec{Z: g.draw(c.AboveHeight) * c.ExtremeFactor}
	case VeryLow:
		return r3.Vec{Z: -g.draw(c.BelowHeight) * c.ExtremeFactor}
	}
	return r3.Vec{}
}

func (g *Generator) draw(r config.Range) float64 {
	return g.src.Float(r.Min, r.Max)
}

// valid rejects candidates overlapping an accepted platform. The candidate
// is shrunk by the tolerance first so edge-adjacent platforms pass.
func (g *Generator) valid(p placement.Platform) bool {
	return !g.space.Blocked(gamemath.Inflate(p.Footprint(), -g.cfg.Tolerance))
}
