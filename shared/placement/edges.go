package placement

import (
	"github.com/automoto/parkour-gen/shared/gamemath"
	"gonum.org/v1/gonum/spatial/r3"
)

// Corners are the four top-surface corners in plan view, looking down with
// forward pointing up, plus the centre of the top surface.
type Corners struct {
	TopLeft     r3.Vec
	TopRight    r3.Vec
	BottomLeft  r3.Vec
	BottomRight r3.Vec
	Centre      r3.Vec
}

// Edge is a vertical corner edge running from the underside (Start) to the
// top surface (End). Normal points horizontally away from the platform centre.
type Edge struct {
	Start  r3.Vec
	End    r3.Vec
	Normal r3.Vec
}

// Corner identifies one of the four corners.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// local offsets in units of half extents
var cornerSigns = [4][2]float64{
	TopLeft:     {1, 1},
	TopRight:    {1, -1},
	BottomRight: {-1, -1},
	BottomLeft:  {-1, 1},
}

// Corners derives the top corners. It reports false for degenerate platforms.
func (p Platform) Corners() (Corners, bool) {
	if !p.Valid() {
		return Corners{}, false
	}
	top := p.Size.Z / 2
	return Corners{
		TopLeft:     p.cornerAt(TopLeft, top),
		TopRight:    p.cornerAt(TopRight, top),
		BottomLeft:  p.cornerAt(BottomLeft, top),
		BottomRight: p.cornerAt(BottomRight, top),
		Centre:      p.ToWorld(r3.Vec{Z: top}),
	}, true
}

// Edges derives the four vertical corner edges in TopLeft, TopRight,
// BottomRight, BottomLeft order. It reports false for degenerate platforms.
func (p Platform) Edges() ([4]Edge, bool) {
	var edges [4]Edge
	if !p.Valid() {
		return edges, false
	}
	h := p.HalfExtents()
	for c := TopLeft; c <= BottomLeft; c++ {
		s := cornerSigns[c]
		out := r3.Unit(r3.Vec{X: s[0] * h.X, Y: s[1] * h.Y})
		edges[c] = Edge{
			Start:  p.cornerAt(c, -h.Z),
			End:    p.cornerAt(c, h.Z),
			Normal: gamemath.RotateYaw(out, p.Yaw),
		}
	}
	return edges, true
}

// Face returns the two top corners of the side whose outward local normal is
// (dx, dy), one of the four cardinal unit vectors, and the side midpoint.
func (p Platform) Face(dx, dy float64) (r3.Vec, r3.Vec, r3.Vec, bool) {
	if !p.Valid() || (dx == 0) == (dy == 0) {
		return r3.Vec{}, r3.Vec{}, r3.Vec{}, false
	}
	h := p.HalfExtents()
	var a, b r3.Vec
	if dx != 0 {
		a = r3.Vec{X: dx * h.X, Y: h.Y, Z: h.Z}
		b = r3.Vec{X: dx * h.X, Y: -h.Y, Z: h.Z}
	} else {
		a = r3.Vec{X: h.X, Y: dy * h.Y, Z: h.Z}
		b = r3.Vec{X: -h.X, Y: dy * h.Y, Z: h.Z}
	}
	mid := r3.Vec{X: dx * h.X, Y: dy * h.Y, Z: h.Z}
	return p.ToWorld(a), p.ToWorld(b), p.ToWorld(mid), true
}

func (p Platform) cornerAt(c Corner, z float64) r3.Vec {
	h := p.HalfExtents()
	s := cornerSigns[c]
	return p.ToWorld(r3.Vec{X: s[0] * h.X, Y: s[1] * h.Y, Z: z})
}
