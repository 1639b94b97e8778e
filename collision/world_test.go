package collision

import (
	"testing"

	"github.com/automoto/parkour-gen/shared/placement"
	"github.com/automoto/parkour-gen/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func newTestWorld() *World {
	return NewWorld(r2.Box{Min: r2.Vec{X: -5000, Y: -5000}, Max: r2.Vec{X: 5000, Y: 5000}}, 250)
}

func platformAt(x, y, z, w, d float64) placement.Platform {
	return placement.Platform{Position: r3.Vec{X: x, Y: y, Z: z}, Size: r3.Vec{X: w, Y: d, Z: 50}}
}

func box(x0, y0, z0, x1, y1, z1 float64) r3.Box {
	return r3.NewBox(x0, y0, z0, x1, y1, z1)
}

func TestWorld_Blocked(t *testing.T) {
	t.Parallel()

	w := newTestWorld()
	w.Occupy(platformAt(0, 0, 0, 1000, 1000))
	require.Equal(t, 1, w.Len())

	tests := []struct {
		name string
		fp   r2.Box
		want bool
	}{
		{"overlapping", r2.Box{Min: r2.Vec{X: 400, Y: 400}, Max: r2.Vec{X: 800, Y: 800}}, true},
		{"edge adjacent", r2.Box{Min: r2.Vec{X: 500, Y: -500}, Max: r2.Vec{X: 1500, Y: 500}}, false},
		{"far away", r2.Box{Min: r2.Vec{X: 3000, Y: 3000}, Max: r2.Vec{X: 3500, Y: 3500}}, false},
		{"negative quadrant", r2.Box{Min: r2.Vec{X: -600, Y: -600}, Max: r2.Vec{X: -400, Y: -400}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Blocked(tt.fp))
		})
	}
}

func TestWorld_OverflowBodies(t *testing.T) {
	t.Parallel()

	w := newTestWorld()
	w.Occupy(platformAt(9000, 9000, 0, 1000, 1000))

	assert.True(t, w.Blocked(r2.Box{Min: r2.Vec{X: 8800, Y: 8800}, Max: r2.Vec{X: 9200, Y: 9200}}))
	assert.False(t, w.Blocked(r2.Box{Min: r2.Vec{X: 0, Y: 0}, Max: r2.Vec{X: 100, Y: 100}}))
}

func TestWorld_TagsSeparate(t *testing.T) {
	t.Parallel()

	w := newTestWorld()
	w.AddBox(box(-100, -100, 0, 100, 100, 500), tags.ResolvSolid)

	assert.False(t, w.Blocked(r2.Box{Min: r2.Vec{X: -50, Y: -50}, Max: r2.Vec{X: 50, Y: 50}}))

	_, hit := w.LineTrace(r3.Vec{X: -1000, Z: 100}, r3.Vec{X: 1000, Z: 100}, tags.ResolvSolid)
	assert.True(t, hit)
	_, hit = w.LineTrace(r3.Vec{X: -1000, Z: 100}, r3.Vec{X: 1000, Z: 100}, tags.ResolvPlatform)
	assert.False(t, hit)
}

func TestWorld_Clear(t *testing.T) {
	t.Parallel()

	w := newTestWorld()
	w.Occupy(platformAt(0, 0, 0, 100, 100))
	w.Occupy(platformAt(9000, 0, 0, 100, 100))
	w.Clear()

	assert.Equal(t, 0, w.Len())
	assert.False(t, w.Blocked(r2.Box{Min: r2.Vec{X: -10, Y: -10}, Max: r2.Vec{X: 10, Y: 10}}))
	assert.False(t, w.Blocked(r2.Box{Min: r2.Vec{X: 8990, Y: -10}, Max: r2.Vec{X: 9010, Y: 10}}))
}

func TestWorld_LineTrace(t *testing.T) {
	t.Parallel()

	w := newTestWorld()
	w.AddBox(box(1000, -100, 0, 1200, 100, 400), tags.ResolvSolid)
	w.AddBox(box(2000, -100, 0, 2200, 100, 400), tags.ResolvSolid)

	t.Run("nearest of two", func(t *testing.T) {
		h, ok := w.LineTrace(r3.Vec{Z: 200}, r3.Vec{X: 3000, Z: 200}, tags.ResolvSolid)
		require.True(t, ok)
		assert.InDelta(t, 1000, h.Point.X, 1e-6)
		assert.InDelta(t, 1000, h.Distance, 1e-6)
		assert.Equal(t, r3.Vec{X: -1}, h.Normal)
	})

	t.Run("over the top", func(t *testing.T) {
		_, ok := w.LineTrace(r3.Vec{Z: 600}, r3.Vec{X: 3000, Z: 600}, tags.ResolvSolid)
		assert.False(t, ok)
	})

	t.Run("reverse direction", func(t *testing.T) {
		h, ok := w.LineTrace(r3.Vec{X: 3000, Z: 200}, r3.Vec{Z: 200}, tags.ResolvSolid)
		require.True(t, ok)
		assert.InDelta(t, 2200, h.Point.X, 1e-6)
	})
}

func TestWorld_ShapeCast(t *testing.T) {
	t.Parallel()

	w := newTestWorld()
	w.AddBox(box(-500, -500, -50, 500, 500, 0), tags.ResolvPlatform)

	t.Run("finds support below", func(t *testing.T) {
		h, ok := w.ShapeCast(Sphere{Radius: 50}, r3.Vec{Z: 300}, r3.Vec{Z: -300}, tags.ResolvPlatform)
		require.True(t, ok)
		assert.InDelta(t, 0, h.Point.Z, 1e-9)
		assert.InDelta(t, 1, h.Normal.Z, 1e-9)
		assert.InDelta(t, 250, h.Distance, 25)
	})

	t.Run("misses off the edge", func(t *testing.T) {
		_, ok := w.ShapeCast(Sphere{Radius: 50}, r3.Vec{X: 700, Z: 300}, r3.Vec{X: 700, Z: -300}, tags.ResolvPlatform)
		assert.False(t, ok)
	})

	t.Run("overlap test", func(t *testing.T) {
		_, ok := w.ShapeCast(Sphere{Radius: 50}, r3.Vec{Z: 30}, r3.Vec{Z: 30}, tags.ResolvPlatform)
		assert.True(t, ok)
		_, ok = w.ShapeCast(Sphere{Radius: 50}, r3.Vec{Z: 80}, r3.Vec{Z: 80}, tags.ResolvPlatform)
		assert.False(t, ok)
	})
}

func TestWorld_Overlapping(t *testing.T) {
	t.Parallel()

	w := newTestWorld()
	w.AddBox(box(-100, -100, 0, 100, 100, 500), tags.ResolvSolid)

	assert.True(t, w.Overlapping(r2.Box{Min: r2.Vec{X: -50, Y: -50}, Max: r2.Vec{X: 50, Y: 50}}, tags.ResolvSolid))
	assert.False(t, w.Overlapping(r2.Box{Min: r2.Vec{X: 100, Y: -50}, Max: r2.Vec{X: 200, Y: 50}}, tags.ResolvSolid))
	assert.False(t, w.Overlapping(r2.Box{Min: r2.Vec{X: -50, Y: -50}, Max: r2.Vec{X: 50, Y: 50}}, tags.ResolvObstacle))
}
