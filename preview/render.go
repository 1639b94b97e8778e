// Package preview draws plans for inspection: a top-down PNG of the layout
// and a height profile chart of the platform sequence.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"

	"github.com/automoto/parkour-gen/config"
	"github.com/automoto/parkour-gen/connector"
	"github.com/automoto/parkour-gen/level"
	"github.com/automoto/parkour-gen/shared/gamemath"
	"github.com/automoto/parkour-gen/shared/placement"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrEmptyPlan is returned when there is nothing to draw.
var ErrEmptyPlan = errors.New("plan has no platforms")

const (
	lineWidth  = 2
	routeWidth = 4
	pointSize  = 3
)

// canvas maps world plan-view coordinates onto an image. World +Y points up
// in the image.
type canvas struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	bounds r2.Box
	scale  float64
	margin float64
}

func newCanvas(cfg config.PreviewConfig, bounds r2.Box) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.Background), image.Point{}, draw.Src)

	size := bounds.Size()
	margin := float64(cfg.Margin)
	sx := (float64(cfg.Width) - 2*margin) / math.Max(size.X, 1)
	sy := (float64(cfg.Height) - 2*margin) / math.Max(size.Y, 1)

	return &canvas{
		img:    img,
		z:      vector.NewRasterizer(cfg.Width, cfg.Height),
		bounds: bounds,
		scale:  math.Min(sx, sy),
		margin: margin,
	}
}

func (c *canvas) pixel(p r2.Vec) (float32, float32) {
	x := c.margin + (p.X-c.bounds.Min.X)*c.scale
	y := float64(c.img.Bounds().Dy()) - c.margin - (p.Y-c.bounds.Min.Y)*c.scale
	return float32(x), float32(y)
}

// fill rasterises the closed polygon pts.
func (c *canvas) fill(pts []r2.Vec, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	c.z.MoveTo(c.pixel(pts[0]))
	for _, p := range pts[1:] {
		c.z.LineTo(c.pixel(p))
	}
	c.z.ClosePath()
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// line draws a segment width pixels wide.
func (c *canvas) line(a, b r2.Vec, width float64, col color.RGBA) {
	d := r2.Sub(b, a)
	n := r2.Norm(d)
	if n == 0 {
		return
	}
	half := width / 2 / c.scale
	off := r2.Scale(half/n, r2.Vec{X: -d.Y, Y: d.X})
	c.fill([]r2.Vec{r2.Add(a, off), r2.Add(b, off), r2.Sub(b, off), r2.Sub(a, off)}, col)
}

func (c *canvas) outline(box r2.Box, col color.RGBA) {
	tl := r2.Vec{X: box.Min.X, Y: box.Max.Y}
	br := r2.Vec{X: box.Max.X, Y: box.Min.Y}
	c.line(box.Min, tl, 1, col)
	c.line(tl, box.Max, 1, col)
	c.line(box.Max, br, 1, col)
	c.line(br, box.Min, 1, col)
}

func (c *canvas) dot(p r2.Vec, col color.RGBA) {
	r := pointSize / c.scale
	c.fill([]r2.Vec{
		{X: p.X - r, Y: p.Y - r}, {X: p.X + r, Y: p.Y - r},
		{X: p.X + r, Y: p.Y + r}, {X: p.X - r, Y: p.Y + r},
	}, col)
}

func (c *canvas) label(p r2.Vec, s string, col color.RGBA) {
	x, y := c.pixel(p)
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
	}
	w := d.MeasureString(s)
	d.Dot = fixed.Point26_6{X: fixed.I(int(x)) - w/2, Y: fixed.I(int(y) + 4)}
	d.DrawString(s)
}

// footprint returns the plan-view corners of a box, rotated by its yaw.
func footprint(p placement.Platform) []r2.Vec {
	c, ok := p.Corners()
	if !ok {
		return nil
	}
	return []r2.Vec{
		{X: c.TopLeft.X, Y: c.TopLeft.Y},
		{X: c.TopRight.X, Y: c.TopRight.Y},
		{X: c.BottomRight.X, Y: c.BottomRight.Y},
		{X: c.BottomLeft.X, Y: c.BottomLeft.Y},
	}
}

func obstacleFootprint(o placement.Obstacle) []r2.Vec {
	return footprint(placement.Platform{Position: o.Transform.Position, Size: o.Size, Yaw: o.Transform.Yaw})
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = gamemath.ClampFloat(t, 0, 1)
	mix := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t)) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func connectionColor(cfg config.PreviewConfig, t connector.Type) color.RGBA {
	switch t {
	case connector.Mantle:
		return cfg.Mantle
	case connector.WallRun:
		return cfg.WallRun
	case connector.LedgeGrab:
		return cfg.LedgeGrab
	}
	return cfg.Obstacle
}

// planBounds covers every platform, obstacle and cell of plan.
func planBounds(plan *level.Plan) r2.Box {
	var pts []r2.Vec
	for _, p := range plan.Platforms {
		fp := p.Footprint()
		pts = append(pts, fp.Min, fp.Max)
	}
	for _, o := range plan.Obstacles {
		pts = append(pts, obstacleFootprint(o)...)
	}
	for _, o := range plan.Decorations {
		pts = append(pts, obstacleFootprint(o)...)
	}
	for _, cell := range plan.Cells {
		b := cell.Bounds(plan.Origin, plan.CellLength)
		pts = append(pts, b.Min, b.Max)
	}
	return gamemath.BoundsOf(pts...)
}

// Render writes a top-down PNG of plan: partition cells outlined, platforms
// shaded from low to high, obstacles, connectors coloured by mechanic, and
// the start-to-finish route.
func Render(plan *level.Plan, w io.Writer, cfg config.PreviewConfig) error {
	if cfg.Width <= 2*cfg.Margin || cfg.Height <= 2*cfg.Margin {
		return fmt.Errorf("preview: image %dx%d too small for margin %d", cfg.Width, cfg.Height, cfg.Margin)
	}
	if plan == nil || len(plan.Platforms) == 0 {
		return ErrEmptyPlan
	}

	c := newCanvas(cfg, planBounds(plan))

	if plan.CellLength > 0 {
		for _, cell := range plan.Cells {
			c.outline(cell.Bounds(plan.Origin, plan.CellLength), cfg.CellLine)
		}
	}

	dim := lerpColor(cfg.Background, cfg.Obstacle, 0.4)
	for _, o := range plan.Decorations {
		c.fill(obstacleFootprint(o), dim)
	}

	tops := make([]float64, len(plan.Platforms))
	for i, p := range plan.Platforms {
		tops[i] = p.Top()
	}
	lo, hi := floats.Min(tops), floats.Max(tops)
	for i, p := range plan.Platforms {
		t := 0.5
		if hi > lo {
			t = (tops[i] - lo) / (hi - lo)
		}
		c.fill(footprint(p), lerpColor(cfg.LowColor, cfg.HighColor, t))
	}

	for _, o := range plan.Obstacles {
		c.fill(obstacleFootprint(o), cfg.Obstacle)
	}

	for _, conn := range plan.Connections {
		col := connectionColor(cfg, conn.Type)
		if conn.Slab != nil {
			c.fill(obstacleFootprint(*conn.Slab), col)
		}
		a, b := plan.Platforms[conn.A].Position, plan.Platforms[conn.B].Position
		c.line(r2.Vec{X: a.X, Y: a.Y}, r2.Vec{X: b.X, Y: b.Y}, lineWidth, col)
		for _, wp := range conn.Waypoints {
			if wp.Supported {
				c.dot(r2.Vec{X: wp.Point.X, Y: wp.Point.Y}, col)
			}
		}
	}

	for i := 1; i < len(plan.Route); i++ {
		a, b := plan.Platforms[plan.Route[i-1]].Position, plan.Platforms[plan.Route[i]].Position
		c.line(r2.Vec{X: a.X, Y: a.Y}, r2.Vec{X: b.X, Y: b.Y}, routeWidth, cfg.Route)
	}

	if cfg.ShowLabels {
		for i, p := range plan.Platforms {
			c.label(r2.Vec{X: p.Position.X, Y: p.Position.Y}, strconv.Itoa(i), cfg.Label)
		}
	}

	return png.Encode(w, c.img)
}
