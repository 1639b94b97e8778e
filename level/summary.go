package level

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/automoto/parkour-gen/connector"
)

// Summary is a statistical digest of a plan.
type Summary struct {
	Platforms    int
	Obstacles    int
	Decorations  int
	Skipped      int
	Connections  map[connector.Type]int
	MeanHeight   float64
	StdDevHeight float64
	MinHeight    float64
	MaxHeight    float64
	PlatformArea float64 // total footprint area
	CellArea     float64 // world area covered by partition cells
	RouteLength  int
	Reachable    bool
}

// Summarize computes the digest of plan.
func Summarize(plan *Plan, cellLength float64) Summary {
	s := Summary{
		Platforms:   len(plan.Platforms),
		Obstacles:   len(plan.Obstacles),
		Decorations: len(plan.Decorations),
		Skipped:     plan.Skipped,
		Connections: make(map[connector.Type]int),
		RouteLength: len(plan.Route),
		Reachable:   plan.Reachable,
	}
	for _, c := range plan.Connections {
		s.Connections[c.Type]++
	}

	if len(plan.Platforms) > 0 {
		heights := make([]float64, len(plan.Platforms))
		areas := make([]float64, len(plan.Platforms))
		for i, p := range plan.Platforms {
			heights[i] = p.Top()
			areas[i] = p.Size.X * p.Size.Y
		}
		s.MeanHeight, s.StdDevHeight = stat.PopMeanStdDev(heights, nil)
		s.MinHeight = floats.Min(heights)
		s.MaxHeight = floats.Max(heights)
		s.PlatformArea = floats.Sum(areas)
	}

	if len(plan.Cells) > 0 {
		cells := make([]float64, len(plan.Cells))
		for i, c := range plan.Cells {
			cells[i] = float64(c.Area())
		}
		s.CellArea = floats.Sum(cells) * cellLength * cellLength
	}
	return s
}

// Write prints the summary as aligned text.
func (s Summary) Write(w io.Writer) error {
	types := make([]connector.Type, 0, len(s.Connections))
	for t := range s.Connections {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	if _, err := fmt.Fprintf(w, "platforms   %d (skipped %d)\nobstacles   %d\ndecorations %d\n",
		s.Platforms, s.Skipped, s.Obstacles, s.Decorations); err != nil {
		return err
	}
	for _, t := range types {
		if _, err := fmt.Fprintf(w, "  %-10s %d\n", t, s.Connections[t]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "height      mean %.1f sd %.1f range [%.1f, %.1f]\narea        platforms %.0f cells %.0f\nroute       %d platforms, reachable %t\n",
		s.MeanHeight, s.StdDevHeight, s.MinHeight, s.MaxHeight, s.PlatformArea, s.CellArea, s.RouteLength, s.Reachable)
	return err
}
