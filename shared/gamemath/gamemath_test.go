package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSnapToGrid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v, unit, want float64
	}{
		{124, 50, 100},
		{126, 50, 150},
		{-74, 50, -50},
		{33.3, 0, 33.3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SnapToGrid(tt.v, tt.unit))
	}
	assert.Equal(t, r3.Vec{X: 100, Y: -50, Z: 17}, SnapXY(r3.Vec{X: 110, Y: -60, Z: 17}, 50))
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, ClampInt(-3, 1, 10))
	assert.Equal(t, 10, ClampInt(42, 1, 10))
	assert.Equal(t, 0.5, ClampFloat(0.5, 0, 1))
}

func TestRotateYaw_QuarterTurn(t *testing.T) {
	t.Parallel()

	got := RotateYaw(r3.Vec{X: 1}, math.Pi/2)
	assert.InDelta(t, 0, got.X, 1e-9)
	assert.InDelta(t, 1, got.Y, 1e-9)
	assert.InDelta(t, 0, got.Z, 1e-9)
	assert.InDelta(t, math.Pi/2, Yaw(got), 1e-9)
}

func TestDistances(t *testing.T) {
	t.Parallel()

	a := r3.Vec{X: 0, Y: 0, Z: 100}
	b := r3.Vec{X: 3, Y: 4, Z: -50}
	assert.InDelta(t, 5, HorizontalDistance(a, b), 1e-9)
	assert.InDelta(t, 150, HeightDifference(a, b), 1e-9)
	assert.Equal(t, HorizontalDistance(a, b), HorizontalDistance(b, a))
}

func TestEaseBlend(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 100, EaseBlend(100, 300, 0), 1e-3)
	assert.InDelta(t, 300, EaseBlend(100, 300, 1), 1e-3)
	assert.InDelta(t, 200, EaseBlend(100, 300, 0.5), 1e-3)
	// eased, so the first quarter covers less than a linear quarter
	assert.Less(t, EaseBlend(0, 100, 0.25), 25.0)
	assert.Greater(t, EaseBlend(0, 100, 0.75), 75.0)
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	a := r2.Box{Min: r2.Vec{X: 0, Y: 0}, Max: r2.Vec{X: 10, Y: 10}}
	tests := []struct {
		name string
		b    r2.Box
		want bool
	}{
		{"inside", r2.Box{Min: r2.Vec{X: 2, Y: 2}, Max: r2.Vec{X: 4, Y: 4}}, true},
		{"touching edge", r2.Box{Min: r2.Vec{X: 10, Y: 0}, Max: r2.Vec{X: 20, Y: 10}}, false},
		{"apart", r2.Box{Min: r2.Vec{X: 11, Y: 0}, Max: r2.Vec{X: 20, Y: 10}}, false},
		{"partial", r2.Box{Min: r2.Vec{X: 9, Y: 9}, Max: r2.Vec{X: 20, Y: 20}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, a))
		})
	}

	shrunk := Inflate(a, -1)
	assert.Equal(t, r2.Vec{X: 1, Y: 1}, shrunk.Min)
	assert.True(t, Within(shrunk, a))
	assert.False(t, Within(a, shrunk))
}

func TestBoundsOf(t *testing.T) {
	t.Parallel()

	b := BoundsOf(r2.Vec{X: 3, Y: -1}, r2.Vec{X: -2, Y: 5}, r2.Vec{X: 0, Y: 0})
	assert.Equal(t, r2.Box{Min: r2.Vec{X: -2, Y: -1}, Max: r2.Vec{X: 3, Y: 5}}, b)
	assert.Equal(t, r2.Box{}, BoundsOf())
}

func TestSegmentBox(t *testing.T) {
	t.Parallel()

	box := r3.Box{Min: r3.Vec{X: 10, Y: -5, Z: -5}, Max: r3.Vec{X: 20, Y: 5, Z: 5}}

	t.Run("hit front face", func(t *testing.T) {
		frac, n, ok := SegmentBox(r3.Vec{}, r3.Vec{X: 40}, box)
		assert.True(t, ok)
		assert.InDelta(t, 0.25, frac, 1e-9)
		assert.Equal(t, r3.Vec{X: -1}, n)
	})
	t.Run("miss above", func(t *testing.T) {
		_, _, ok := SegmentBox(r3.Vec{Z: 10}, r3.Vec{X: 40, Z: 10}, box)
		assert.False(t, ok)
	})
	t.Run("stops short", func(t *testing.T) {
		_, _, ok := SegmentBox(r3.Vec{}, r3.Vec{X: 5}, box)
		assert.False(t, ok)
	})
	t.Run("from above", func(t *testing.T) {
		frac, n, ok := SegmentBox(r3.Vec{X: 15, Z: 25}, r3.Vec{X: 15, Z: -25}, box)
		assert.True(t, ok)
		assert.InDelta(t, 0.4, frac, 1e-9)
		assert.Equal(t, r3.Vec{Z: 1}, n)
	})
}

func TestPointSegmentDistance(t *testing.T) {
	t.Parallel()

	d, frac := PointSegmentDistance(r3.Vec{X: 5, Y: 3}, r3.Vec{}, r3.Vec{X: 10})
	assert.InDelta(t, 3, d, 1e-9)
	assert.InDelta(t, 0.5, frac, 1e-9)

	d, frac = PointSegmentDistance(r3.Vec{X: -4, Y: 3}, r3.Vec{}, r3.Vec{X: 10})
	assert.InDelta(t, 5, d, 1e-9)
	assert.Equal(t, 0.0, frac)

	assert.Equal(t, r3.Vec{X: 10, Y: 0, Z: 5}, ClosestPointOnBox(
		r3.Box{Min: r3.Vec{X: 0, Y: 0, Z: 0}, Max: r3.Vec{X: 10, Y: 10, Z: 10}},
		r3.Vec{X: 30, Y: -3, Z: 5}))
}
