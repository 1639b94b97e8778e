package grammar

import (
	"testing"

	"github.com/automoto/parkour-gen/rng"
	"github.com/automoto/parkour-gen/shared/gamemath"
	"github.com/automoto/parkour-gen/shared/placement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func slab(x, y, z, w, d float64) placement.Platform {
	return placement.Platform{Position: r3.Vec{X: x, Y: y, Z: z}, Size: r3.Vec{X: w, Y: d, Z: 60}}
}

func testGenerator(seed int64) *Generator {
	return New(testConfig(), DefaultRuleSet(), rng.New(seed), &openSpace{})
}

func TestClosestFaces(t *testing.T) {
	t.Parallel()

	old := slab(0, 0, 0, 200, 200)
	next := slab(1000, 0, 0, 200, 200)

	t.Run("long jump", func(t *testing.T) {
		f := ClosestFaces(old, next, Category{LongJump, Forward})
		require.False(t, f.IsZero())
		assert.Equal(t, r3.Vec{X: 100, Y: 100, Z: 30}, f.OldStart)
		assert.Equal(t, r3.Vec{X: 900, Y: 100, Z: 30}, f.NewStart)
		assert.InDelta(t, 800, WallRunDistance(f), 1e-9)
		assert.InDelta(t, 0, WallRunYaw(f), 1e-9)

		loc := WallRunLocation(f, 100)
		assert.InDelta(t, 500, loc.X, 1e-9)
		assert.InDelta(t, 0, loc.Y, 1e-9)
		assert.InDelta(t, 130, loc.Z, 1e-9)
	})

	t.Run("left", func(t *testing.T) {
		side := slab(0, 1000, 0, 200, 200)
		f := ClosestFaces(old, side, Category{Below, Left})
		require.False(t, f.IsZero())
		assert.InDelta(t, 100, f.OldMid().Y, 1e-9)
		assert.InDelta(t, 900, f.NewMid().Y, 1e-9)
		assert.InDelta(t, 800, WallRunDistance(f), 1e-9)
	})

	t.Run("other kinds give the sentinel", func(t *testing.T) {
		for _, k := range []Kind{Beside, SmallJump, Above, VeryHigh} {
			f := ClosestFaces(old, next, Category{k, Forward})
			assert.True(t, f.IsZero(), "%s", k)
			assert.Equal(t, r3.Vec{}, WallRunLocation(f, 100))
			assert.Zero(t, WallRunDistance(f))
		}
	})

	t.Run("degenerate platform", func(t *testing.T) {
		flat := slab(1000, 0, 0, 0, 200)
		assert.True(t, ClosestFaces(old, flat, Category{LongJump, Forward}).IsZero())
	})
}

func TestStepCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, StepCount(300, 50, 10))
	assert.Equal(t, 6, StepCount(-300, 50, 10))
	assert.Equal(t, 1, StepCount(20, 50, 10))
	assert.Equal(t, 10, StepCount(5000, 50, 10))
	assert.Equal(t, 1, StepCount(300, 0, 10))
}

func TestObstacles_LongJump(t *testing.T) {
	t.Parallel()

	g := testGenerator(1)
	old := slab(0, 0, 0, 1000, 1000)
	next := slab(2000, 0, 0, 1000, 1000)

	got := g.obstacles(Category{LongJump, Forward}, old, next)
	require.Len(t, got, 2)

	run := got[0]
	assert.Equal(t, placement.WallRun, run.Kind)
	assert.InDelta(t, 1000, run.Transform.Position.X, 1e-9)
	assert.InDelta(t, 30+g.cfg.WallRunRaise, run.Transform.Position.Z, 1e-9)
	assert.InDelta(t, 1000*g.cfg.WallRunLength, run.Size.X, 1e-9)
	assert.Equal(t, g.cfg.ObstacleMaterial, run.Material)

	assert.Equal(t, placement.MantleWall, got[1].Kind)
}

func TestObstacles_MantleWall(t *testing.T) {
	t.Parallel()

	g := testGenerator(4)
	for _, p := range []placement.Platform{slab(0, 0, 0, 3000, 1000), slab(0, 0, 0, 1000, 3000)} {
		for i := 0; i < 20; i++ {
			w := g.mantleWall(p)
			assert.Equal(t, placement.MantleWall, w.Kind)
			assert.Equal(t, 1000.0, w.Size.Y, "spans the short side")
			assert.InDelta(t, p.Top()+g.cfg.MantleWallHeight/2, w.Transform.Position.Z, 1e-9)
			assert.True(t, gamemath.Within(
				gamemath.BoundsOf(gamemath.Flat(w.Transform.Position)), p.Footprint()))
		}
	}
}

func TestObstacles_Vaults(t *testing.T) {
	t.Parallel()

	g := testGenerator(11)
	p := slab(500, 500, 0, 4000, 1200)
	for i := 0; i < 20; i++ {
		got := g.obstacles(Category{Beside, Forward}, slab(0, 0, 0, 100, 100), p)
		require.NotEmpty(t, got)
		assert.Equal(t, placement.MantleWall, got[len(got)-1].Kind)

		vaults := got[:len(got)-1]
		assert.LessOrEqual(t, len(vaults), g.cfg.MaxVaults)
		for _, v := range vaults {
			assert.Equal(t, placement.Vault, v.Kind)
			assert.InDelta(t, 1200*g.cfg.VaultLength, v.Size.Y, 1e-9)
			assert.GreaterOrEqual(t, v.Size.X, g.cfg.VaultThickness.Min)
			assert.LessOrEqual(t, v.Size.X, g.cfg.VaultThickness.Max)
			assert.True(t, gamemath.Within(
				gamemath.BoundsOf(gamemath.Flat(v.Transform.Position)), p.Footprint()))
		}
	}
}

func TestObstacles_Staircase(t *testing.T) {
	t.Parallel()

	g := testGenerator(2)
	old := slab(0, 0, 300, 1000, 1000)
	next := slab(1500, 0, 0, 1000, 1000)

	got := g.obstacles(Category{Below, Forward}, old, next)
	require.Len(t, got, 6)

	prev := old.Top() - next.Top() + 1
	for i, b := range got {
		assert.Equal(t, placement.MantleBlock, b.Kind)
		assert.Less(t, b.Size.Z, prev, "block %d is lower than the one before", i)
		prev = b.Size.Z
		assert.InDelta(t, next.Top(), b.Transform.Position.Z-b.Size.Z/2, 1e-9, "block %d sits on the platform", i)
		assert.Greater(t, b.Transform.Position.X, 1000.0)
		assert.Less(t, b.Transform.Position.X, 2000.0)
	}
	assert.InDelta(t, 300, got[0].Size.Z, 1e-9)
}

func TestObstacles_StaircaseSkipped(t *testing.T) {
	t.Parallel()

	g := testGenerator(2)
	next := slab(1500, 0, 0, 1000, 1000)

	t.Run("single step", func(t *testing.T) {
		assert.Empty(t, g.obstacles(Category{Below, Forward}, slab(0, 0, 40, 1000, 1000), next))
	})
	t.Run("higher than old", func(t *testing.T) {
		assert.Empty(t, g.obstacles(Category{VeryLow, Forward}, slab(0, 0, -500, 1000, 1000), next))
	})
	t.Run("no room", func(t *testing.T) {
		narrow := slab(1050, 0, 0, 100, 1000)
		assert.Empty(t, g.obstacles(Category{Below, Forward}, slab(0, 0, 300, 1000, 1000), narrow))
	})
}
