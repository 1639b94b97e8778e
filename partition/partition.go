// Package partition divides a bounded grid into non-overlapping rectangular
// cells by binary space partitioning.
package partition

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/parkour-gen/config"
	"github.com/automoto/parkour-gen/rng"
)

// ErrEmptyGrid is returned for grids without area.
var ErrEmptyGrid = errors.New("partition: empty grid")

type axis int

const (
	alongX axis = iota // cut perpendicular to X, dividing the width
	alongY
)

// entry is a cell waiting on the stack with the number of times it was
// pushed back for being oversized.
type entry struct {
	cell    Cell
	retries int
}

// Partitioner splits a grid depth first using an explicit stack.
type Partitioner struct {
	cfg  config.PartitionConfig
	src  rng.Source
	maxW int
	maxH int

	stack []entry
	cells []Cell

	// Iterations and Oversized describe the last run.
	Iterations int
	Oversized  int
}

// New creates a Partitioner. Randomness comes only from src.
func New(cfg config.PartitionConfig, src rng.Source) *Partitioner {
	maxW, maxH := cfg.MaxCell()
	return &Partitioner{cfg: cfg, src: src, maxW: maxW, maxH: maxH}
}

// Partition is a convenience wrapper around New and Run.
func Partition(cfg config.PartitionConfig, src rng.Source) ([]Cell, error) {
	return New(cfg, src).Run()
}

// Run partitions the whole grid and returns the final cells. Cells that are
// still oversized after MaxCellRetries pushbacks are accepted as they are.
func (p *Partitioner) Run() ([]Cell, error) {
	if p.cfg.GridWidth <= 0 || p.cfg.GridHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, p.cfg.GridWidth, p.cfg.GridHeight)
	}

	p.stack = append(p.stack[:0], entry{cell: Cell{
		LowerRightX: p.cfg.GridWidth,
		LowerRightY: p.cfg.GridHeight,
	}})
	p.cells = nil
	p.Iterations, p.Oversized = 0, 0

	for len(p.stack) > 0 {
		if p.Iterations >= p.cfg.MaxIterations {
			log.Printf("Partition hit iteration ceiling %d, accepting %d pending cells",
				p.cfg.MaxIterations, len(p.stack))
			for _, e := range p.stack {
				p.cells = append(p.cells, e.cell)
			}
			p.stack = p.stack[:0]
			break
		}
		p.Iterations++

		e := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]

		if a, b, ok := p.split(e.cell); ok {
			p.stack = append(p.stack, entry{cell: a}, entry{cell: b})
			continue
		}

		if p.cfg.UseMaxSize && p.oversized(e.cell) {
			if e.retries < p.cfg.MaxCellRetries {
				p.stack = append(p.stack, entry{cell: e.cell, retries: e.retries + 1})
				continue
			}
			p.Oversized++
			log.Printf("Accepting oversized cell %s after %d retries", e.cell, e.retries)
		}
		p.cells = append(p.cells, e.cell)
	}

	return p.cells, nil
}

func (p *Partitioner) oversized(c Cell) bool {
	return c.Width() > p.maxW || c.Height() > p.maxH
}

// split tries a random axis first and the other one if that fails.
func (p *Partitioner) split(c Cell) (Cell, Cell, bool) {
	first, second := alongX, alongY
	if p.src.Bool() {
		first, second = alongY, alongX
	}
	if a, b, ok := p.splitAxis(c, first); ok {
		return a, b, true
	}
	return p.splitAxis(c, second)
}

// splitAxis cuts c along ax with probability proportional to the cell's share
// of the grid on that axis, provided both halves keep the minimum size.
func (p *Partitioner) splitAxis(c Cell, ax axis) (Cell, Cell, bool) {
	extent, grid, min := c.Width(), p.cfg.GridWidth, p.cfg.MinCellWidth
	lo, hi := c.UpperLeftX, c.LowerRightX
	if ax == alongY {
		extent, grid, min = c.Height(), p.cfg.GridHeight, p.cfg.MinCellHeight
		lo, hi = c.UpperLeftY, c.LowerRightY
	}

	chance := float64(extent) / float64(grid) * p.cfg.SplitRate
	if p.src.Float(0, 1) >= chance || extent < 2*min {
		return Cell{}, Cell{}, false
	}

	at := p.src.Int(lo+min, hi-min)
	a, b := c, c
	if ax == alongX {
		a.LowerRightX, b.UpperLeftX = at, at
	} else {
		a.LowerRightY, b.UpperLeftY = at, at
	}
	return a, b, true
}
