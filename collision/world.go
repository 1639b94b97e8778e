// Package collision answers the spatial queries the generators make against
// already placed geometry. A resolv space provides the broad phase over the
// horizontal plane; exact box tests run on the handful of candidates it returns.
package collision

import (
	"math"

	"github.com/automoto/parkour-gen/shared/gamemath"
	"github.com/automoto/parkour-gen/shared/placement"
	"github.com/automoto/parkour-gen/tags"
	"github.com/solarlune/resolv"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Hit describes the first contact of a trace or cast.
type Hit struct {
	Point    r3.Vec
	Normal   r3.Vec
	Distance float64
}

// Sphere is the swept shape used by ShapeCast.
type Sphere struct {
	Radius float64
}

// Query is the blocking spatial query capability.
type Query interface {
	LineTrace(start, end r3.Vec, tag string) (Hit, bool)
	ShapeCast(s Sphere, start, end r3.Vec, tag string) (Hit, bool)
}

type body struct {
	box r3.Box
	tag string
	obj *resolv.Object // nil for bodies outside the space
}

func (b *body) footprint() r2.Box {
	return r2.Box{
		Min: r2.Vec{X: b.box.Min.X, Y: b.box.Min.Y},
		Max: r2.Vec{X: b.box.Max.X, Y: b.box.Max.Y},
	}
}

// World is a collision world over a bounded rectangle of the horizontal
// plane. Bodies reaching outside the rectangle are still tracked and tested,
// just without the broad phase.
type World struct {
	space    *resolv.Space
	bounds   r2.Box
	bodies   []*body
	overflow []*body
}

// NewWorld creates a world covering bounds with broad-phase cells of the given size.
func NewWorld(bounds r2.Box, cellSize float64) *World {
	if cellSize < 1 {
		cellSize = 1
	}
	size := bounds.Size()
	w := int(math.Ceil(size.X)) + 1
	h := int(math.Ceil(size.Y)) + 1
	cs := int(math.Ceil(cellSize))
	return &World{
		space:  resolv.NewSpace(w, h, cs, cs),
		bounds: bounds,
	}
}

// Bounds is the rectangle covered by the broad phase.
func (w *World) Bounds() r2.Box {
	return w.bounds
}

// Len is the number of bodies in the world.
func (w *World) Len() int {
	return len(w.bodies)
}

// AddBox inserts a static box under tag.
func (w *World) AddBox(box r3.Box, tag string) {
	b := &body{box: box.Canon(), tag: tag}
	fp := b.footprint()
	if gamemath.Within(fp, w.bounds) {
		x, y := fp.Min.X-w.bounds.Min.X, fp.Min.Y-w.bounds.Min.Y
		sz := fp.Size()
		obj := resolv.NewObject(x, y, math.Max(sz.X, 1), math.Max(sz.Y, 1), tag)
		obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
		obj.Data = b
		w.space.Add(obj)
		b.obj = obj
	} else {
		w.overflow = append(w.overflow, b)
	}
	w.bodies = append(w.bodies, b)
}

// Occupy records an accepted platform.
func (w *World) Occupy(p placement.Platform) {
	w.AddBox(p.Box(), tags.ResolvPlatform)
}

// Blocked reports whether footprint shares interior area with any platform.
func (w *World) Blocked(footprint r2.Box) bool {
	return w.Overlapping(footprint, tags.ResolvPlatform)
}

// Overlapping reports whether area shares interior area with any body
// tagged tag.
func (w *World) Overlapping(area r2.Box, tag string) bool {
	for _, b := range w.candidates(area, tag) {
		if gamemath.Overlaps(area, b.footprint()) {
			return true
		}
	}
	return false
}

// Clear removes every body.
func (w *World) Clear() {
	for _, b := range w.bodies {
		if b.obj != nil {
			w.space.Remove(b.obj)
		}
	}
	w.bodies = nil
	w.overflow = nil
}

// candidates returns the bodies tagged tag whose broad-phase cells touch area.
func (w *World) candidates(area r2.Box, tag string) []*body {
	var out []*body

	q := gamemath.Inflate(area, 1)
	if gamemath.Overlaps(q, w.bounds) {
		sz := q.Size()
		query := resolv.NewObject(q.Min.X-w.bounds.Min.X, q.Min.Y-w.bounds.Min.Y, sz.X, sz.Y)
		w.space.Add(query)
		if check := query.Check(0, 0, tag); check != nil {
			for _, o := range check.ObjectsByTags(tag) {
				if b, ok := o.Data.(*body); ok {
					out = append(out, b)
				}
			}
		}
		w.space.Remove(query)
	}

	for _, b := range w.overflow {
		if b.tag == tag {
			out = append(out, b)
		}
	}
	return out
}
