// Package layout turns partition cells into platforms: one slab per cell,
// sized and positioned at random within it and kept clear of its neighbours.
package layout

import (
	"fmt"
	"log"

	"github.com/automoto/parkour-gen/config"
	"github.com/automoto/parkour-gen/partition"
	"github.com/automoto/parkour-gen/rng"
	"github.com/automoto/parkour-gen/shared/gamemath"
	"github.com/automoto/parkour-gen/shared/placement"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Space is the collision capability candidate platforms are checked against.
type Space interface {
	Blocked(footprint r2.Box) bool
	Occupy(p placement.Platform)
}

// Result is the outcome of a layout pass.
type Result struct {
	Platforms []placement.Platform
	Cells     []int // partition cell index of each platform
	Skipped   int   // cells left empty after exhausting their attempts
}

// Layout places platforms into partition cells.
type Layout struct {
	cfg      config.LayoutConfig
	grid     config.PartitionConfig
	origin   r2.Vec
	registry placement.Registry
	src      rng.Source
	space    Space
}

// New creates a Layout for a grid whose upper-left corner sits at origin.
func New(cfg config.LayoutConfig, grid config.PartitionConfig, origin r2.Vec, registry placement.Registry, src rng.Source, space Space) *Layout {
	return &Layout{cfg: cfg, grid: grid, origin: origin, registry: registry, src: src, space: space}
}

// GridBounds is the world rectangle covered by the grid.
func GridBounds(grid config.PartitionConfig, origin r2.Vec) r2.Box {
	whole := partition.Cell{LowerRightX: grid.GridWidth, LowerRightY: grid.GridHeight}
	return whole.Bounds(origin, grid.CellLength)
}

// Place visits cells in random order and puts one platform in each.
func (l *Layout) Place(cells []partition.Cell) Result {
	order := make([]int, len(cells))
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(l.src, len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	bounds := GridBounds(l.grid, l.origin)
	var res Result
	for _, ci := range order {
		p, ok := l.placeIn(cells[ci], bounds)
		if !ok {
			log.Printf("No room in cell %s after %d attempts, leaving it empty", cells[ci], l.cfg.MaxAttempts)
			res.Skipped++
			continue
		}
		p.ID = len(res.Platforms)
		res.Platforms = append(res.Platforms, p)
		res.Cells = append(res.Cells, ci)
		l.space.Occupy(p)
	}

	for i := range res.Platforms {
		res.Platforms[i].Mesh = l.registry.Pick(l.src, i, len(res.Platforms))
	}
	return res
}

func (l *Layout) placeIn(c partition.Cell, bounds r2.Box) (placement.Platform, bool) {
	unit := l.grid.CellLength
	w := float64(l.src.Int(1, c.Width())) * unit
	d := float64(l.src.Int(1, c.Height())) * unit
	z := l.src.Float(l.cfg.BaseHeightMin, l.cfg.BaseHeightMax)

	cell := c.Bounds(l.origin, unit)
	centre := gamemath.Lerp(r3.Vec{X: cell.Min.X, Y: cell.Min.Y}, r3.Vec{X: cell.Max.X, Y: cell.Max.Y}, 0.5)
	slackX := (cell.Size().X - w) / 2
	slackY := (cell.Size().Y - d) / 2

	for attempt := 0; attempt < l.cfg.MaxAttempts; attempt++ {
		p := placement.Platform{
			Position: r3.Vec{
				X: centre.X + l.src.Float(-slackX, slackX),
				Y: centre.Y + l.src.Float(-slackY, slackY),
				Z: z,
			},
			Size:  r3.Vec{X: w, Y: d, Z: l.cfg.Thickness},
			Label: fmt.Sprintf("Cell %s", c),
		}
		fp := p.Footprint()
		if !gamemath.Within(fp, bounds) {
			continue
		}
		if l.space.Blocked(gamemath.Inflate(fp, l.cfg.MinJumpDistance)) {
			continue
		}
		return p, true
	}
	return placement.Platform{}, false
}
