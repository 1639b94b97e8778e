package placement

import (
	"math"
	"testing"

	"github.com/automoto/parkour-gen/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func slab(x, y, z, w, d float64) Platform {
	return Platform{Position: r3.Vec{X: x, Y: y, Z: z}, Size: r3.Vec{X: w, Y: d, Z: 50}}
}

func TestPlatform_Footprint(t *testing.T) {
	t.Parallel()

	t.Run("axis aligned", func(t *testing.T) {
		p := slab(100, 200, 0, 40, 20)
		assert.Equal(t, r2.Box{Min: r2.Vec{X: 80, Y: 190}, Max: r2.Vec{X: 120, Y: 210}}, p.Footprint())
	})

	t.Run("quarter turn swaps extents", func(t *testing.T) {
		p := slab(0, 0, 0, 40, 20)
		p.Yaw = math.Pi / 2
		fp := p.Footprint()
		assert.InDelta(t, -10, fp.Min.X, 1e-9)
		assert.InDelta(t, 10, fp.Max.X, 1e-9)
		assert.InDelta(t, -20, fp.Min.Y, 1e-9)
		assert.InDelta(t, 20, fp.Max.Y, 1e-9)
	})

	t.Run("box spans thickness", func(t *testing.T) {
		b := slab(0, 0, 100, 10, 10).Box()
		assert.Equal(t, 75.0, b.Min.Z)
		assert.Equal(t, 125.0, b.Max.Z)
	})
}

func TestPlatform_Corners(t *testing.T) {
	t.Parallel()

	p := slab(0, 0, 0, 20, 10)
	c, ok := p.Corners()
	require.True(t, ok)
	assert.Equal(t, r3.Vec{X: 10, Y: 5, Z: 25}, c.TopLeft)
	assert.Equal(t, r3.Vec{X: 10, Y: -5, Z: 25}, c.TopRight)
	assert.Equal(t, r3.Vec{X: -10, Y: 5, Z: 25}, c.BottomLeft)
	assert.Equal(t, r3.Vec{X: -10, Y: -5, Z: 25}, c.BottomRight)
	assert.Equal(t, r3.Vec{Z: 25}, c.Centre)

	_, ok = Platform{Size: r3.Vec{X: 10, Y: 0, Z: 5}}.Corners()
	assert.False(t, ok)
}

func TestPlatform_Edges(t *testing.T) {
	t.Parallel()

	p := slab(0, 0, 0, 20, 20)
	edges, ok := p.Edges()
	require.True(t, ok)

	for i, e := range edges {
		assert.Equal(t, -25.0, e.Start.Z, "edge %d", i)
		assert.Equal(t, 25.0, e.End.Z, "edge %d", i)
		assert.Equal(t, e.Start.X, e.End.X)
		assert.Equal(t, e.Start.Y, e.End.Y)
		assert.InDelta(t, 1, r3.Norm(e.Normal), 1e-9)
		// normal points away from the centre
		assert.Greater(t, r3.Dot(e.Normal, r3.Vec{X: e.Start.X, Y: e.Start.Y}), 0.0)
	}

	_, ok = Platform{}.Edges()
	assert.False(t, ok)
}

func TestPlatform_Face(t *testing.T) {
	t.Parallel()

	p := slab(0, 0, 0, 20, 10)
	a, b, mid, ok := p.Face(1, 0)
	require.True(t, ok)
	assert.Equal(t, 10.0, a.X)
	assert.Equal(t, 10.0, b.X)
	assert.Equal(t, r3.Vec{X: 10, Z: 25}, mid)

	_, _, mid, ok = p.Face(0, -1)
	require.True(t, ok)
	assert.Equal(t, r3.Vec{Y: -5, Z: 25}, mid)

	_, _, _, ok = p.Face(1, 1)
	assert.False(t, ok)
}

func TestPlatform_Dimensions(t *testing.T) {
	t.Parallel()

	p := Platform{Position: r3.Vec{Z: 10}, Size: r3.Vec{X: 30, Y: 70, Z: 20}}
	assert.Equal(t, 70.0, p.MaxDimension())
	assert.Equal(t, 20.0, p.Top())
	assert.Equal(t, 0.0, p.Bottom())
	assert.True(t, p.Valid())
}

func TestObstacleKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "WallRun", WallRun.String())
	assert.Equal(t, "Building", Building.String())
	assert.Equal(t, "ObstacleKind(42)", ObstacleKind(42).String())
}

func TestRegistry_Pick(t *testing.T) {
	t.Parallel()

	r := Registry{PlatformMeshes: []string{"a", "b"}, StartMaterial: "start", FinishMaterial: "finish"}
	src := rng.New(1)

	first := r.Pick(src, 0, 5)
	assert.Equal(t, "start", first.Material)
	assert.Contains(t, r.PlatformMeshes, first.Mesh)

	assert.Equal(t, "", r.Pick(src, 2, 5).Material)
	assert.Equal(t, "finish", r.Pick(src, 4, 5).Material)
	assert.Equal(t, "", Registry{}.Pick(src, 1, 3).Mesh)
}
