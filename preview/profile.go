package preview

import (
	"fmt"
	"image/color"

	"github.com/automoto/parkour-gen/level"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	profileColor = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	routeColor   = color.RGBA{R: 230, G: 120, B: 40, A: 255}
)

// HeightProfile saves a chart of platform top height by plan index to path.
// The image format follows the file extension. Route platforms are marked.
func HeightProfile(plan *level.Plan, path string) error {
	p, err := heightPlot(plan)
	if err != nil {
		return err
	}
	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save height profile: %w", err)
	}
	return nil
}

func heightPlot(plan *level.Plan) (*plot.Plot, error) {
	if plan == nil || len(plan.Platforms) == 0 {
		return nil, ErrEmptyPlan
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s level, seed %d - Platform Heights", plan.Mode, plan.Seed)
	p.X.Label.Text = "Platform"
	p.Y.Label.Text = "Top height"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(plan.Platforms))
	for i, pl := range plan.Platforms {
		pts[i] = plotter.XY{X: float64(i), Y: pl.Top()}
	}

	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("height profile: %w", err)
	}
	line.Color = profileColor
	line.Width = vg.Points(1)
	scatter.Color = profileColor
	scatter.Shape = draw.CircleGlyph{}
	p.Add(line, scatter)
	p.Legend.Add("platforms", line, scatter)

	if len(plan.Route) > 0 {
		route := make(plotter.XYs, len(plan.Route))
		for i, idx := range plan.Route {
			route[i] = plotter.XY{X: float64(idx), Y: plan.Platforms[idx].Top()}
		}
		marks, err := plotter.NewScatter(route)
		if err != nil {
			return nil, fmt.Errorf("height profile: %w", err)
		}
		marks.Color = routeColor
		marks.Shape = draw.RingGlyph{}
		marks.Radius = vg.Points(5)
		p.Add(marks)
		p.Legend.Add("route", marks)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}
