package grammar

import (
	"testing"

	"github.com/automoto/parkour-gen/collision"
	"github.com/automoto/parkour-gen/config"
	"github.com/automoto/parkour-gen/rng"
	"github.com/automoto/parkour-gen/shared/gamemath"
	"github.com/automoto/parkour-gen/shared/placement"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// openSpace accepts everything and remembers what it was given.
type openSpace struct {
	occupied []placement.Platform
}

func (s *openSpace) Blocked(r2.Box) bool         { return false }
func (s *openSpace) Occupy(p placement.Platform) { s.occupied = append(s.occupied, p) }

// fullSpace rejects every candidate.
type fullSpace struct{ openSpace }

func (s *fullSpace) Blocked(r2.Box) bool { return true }

func testConfig() config.GrammarConfig {
	return config.Default().Grammar
}

func newWorld() *collision.World {
	return collision.NewWorld(r2.Box{Min: r2.Vec{X: -100000, Y: -100000}, Max: r2.Vec{X: 100000, Y: 100000}}, 1000)
}

func TestGenerate_NoOverlaps(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.PlatformCount = 25
	for seed := int64(0); seed < 20; seed++ {
		chain, err := New(cfg, DefaultRuleSet(), rng.New(seed), newWorld()).Generate(placement.Transform{})
		require.NoError(t, err)
		require.Equal(t, cfg.PlatformCount, len(chain.Platforms)+chain.Skipped, "seed %d", seed)

		ps := chain.Platforms
		for j := 1; j < len(ps); j++ {
			shrunk := gamemath.Inflate(ps[j].Footprint(), -cfg.Tolerance)
			for i := 0; i < j; i++ {
				assert.False(t, gamemath.Overlaps(shrunk, ps[i].Footprint()),
					"seed %d: %s overlaps %s", seed, ps[j].Label, ps[i].Label)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	seed := placement.Transform{Position: r3.Vec{X: 100, Y: -50, Z: 300}, Yaw: 0.5}

	a, err := New(cfg, DefaultRuleSet(), rng.New(42), newWorld()).Generate(seed)
	require.NoError(t, err)
	b, err := New(cfg, DefaultRuleSet(), rng.New(42), newWorld()).Generate(seed)
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("chains differ (-a +b):\n%s", diff)
	}
}

func TestGenerate_LabelsAndMaterials(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.PlatformCount = 6
	space := &openSpace{}
	chain, err := New(cfg, DefaultRuleSet(), rng.New(7), space).Generate(placement.Transform{})
	require.NoError(t, err)

	require.Len(t, chain.Platforms, 6)
	assert.Zero(t, chain.Skipped)
	assert.Len(t, chain.Steps, 5)
	assert.Len(t, space.occupied, 6)

	first, last := chain.Platforms[0], chain.Platforms[5]
	assert.Equal(t, "Platform: 1 : Start", first.Label)
	assert.Equal(t, cfg.StartMaterial, first.Mesh.Material)
	assert.Equal(t, cfg.FinishMaterial, last.Mesh.Material)

	for i, s := range chain.Steps {
		p := chain.Platforms[s.Platform]
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, i, s.Parent)
		assert.Contains(t, p.Label, s.Category.String())
		assert.Contains(t, cfg.PlatformMeshes, p.Mesh.Mesh)
	}
}

func TestGenerate_SeedPlatform(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	seed := placement.Transform{Position: r3.Vec{X: 500, Y: 250, Z: 80}, Yaw: 1}
	chain, err := New(cfg, DefaultRuleSet(), rng.New(1), &openSpace{}).Generate(seed)
	require.NoError(t, err)

	p := chain.Platforms[0]
	assert.Equal(t, seed.Position, p.Position)
	assert.Equal(t, seed.Yaw, p.Yaw)
	assert.Equal(t, cfg.Thickness, p.Size.Z)
	for _, d := range []float64{p.Size.X, p.Size.Y} {
		scale := d / (2 * cfg.GridUnit)
		assert.GreaterOrEqual(t, scale, cfg.ScaleMin)
		assert.LessOrEqual(t, scale, cfg.ScaleMax)
		assert.Equal(t, float64(int(scale)), scale, "scale is whole")
	}
}

func TestGenerate_SkipsAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.PlatformCount = 5
	cfg.MaxAttempts = 4
	chain, err := New(cfg, DefaultRuleSet(), rng.New(9), &fullSpace{}).Generate(placement.Transform{})
	require.NoError(t, err)

	assert.Len(t, chain.Platforms, 1)
	assert.Empty(t, chain.Steps)
	assert.Equal(t, 4, chain.Skipped)
	assert.Equal(t, 16, chain.Attempts)
}

func TestGenerate_UnknownStartRule(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.StartRule = "StartRul"
	_, err := New(cfg, DefaultRuleSet(), rng.New(1), &openSpace{}).Generate(placement.Transform{})
	require.ErrorIs(t, err, ErrUnknownRule)
	assert.Contains(t, err.Error(), `did you mean "StartRule"`)
}

func TestGenerate_UnknownFollowUpEndsChain(t *testing.T) {
	t.Parallel()

	rs := RuleSet{
		Rules: map[string][]Category{"StartRule": {{Beside, Forward}}},
		Next:  map[Kind][]string{Beside: {"Missing"}},
	}
	chain, err := New(testConfig(), rs, rng.New(1), &openSpace{}).Generate(placement.Transform{})
	require.NoError(t, err)
	assert.Len(t, chain.Platforms, 2)
}

func TestGenerate_NoBacktrack(t *testing.T) {
	t.Parallel()

	rs := RuleSet{
		Rules: map[string][]Category{"StartRule": {{Beside, Left}, {Beside, Right}}},
		Next:  map[Kind][]string{Beside: {"StartRule"}},
	}
	cfg := testConfig()
	cfg.PlatformCount = 12
	for seed := int64(0); seed < 10; seed++ {
		chain, err := New(cfg, rs, rng.New(seed), &openSpace{}).Generate(placement.Transform{})
		require.NoError(t, err)
		require.Len(t, chain.Steps, 11)
		for _, s := range chain.Steps[1:] {
			assert.Equal(t, chain.Steps[0].Category.Dir, s.Category.Dir, "seed %d", seed)
		}
	}
}

func TestGenerate_BacktrackFallback(t *testing.T) {
	t.Parallel()

	rs := RuleSet{
		Rules: map[string][]Category{
			"StartRule": {{Beside, Left}},
			"BackRule":  {{Below, Right}},
		},
		Next: map[Kind][]string{Beside: {"BackRule"}, Below: {"StartRule"}},
	}
	cfg := testConfig()
	cfg.PlatformCount = 3
	chain, err := New(cfg, rs, rng.New(2), &openSpace{}).Generate(placement.Transform{})
	require.NoError(t, err)
	require.Len(t, chain.Steps, 2)
	assert.Equal(t, Category{Below, Right}, chain.Steps[1].Category)
}

func TestGenerate_PlacementOffsets(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.PlatformCount = 2
	rs := RuleSet{
		Rules: map[string][]Category{"StartRule": {{VeryHigh, Forward}}},
	}
	chain, err := New(cfg, rs, rng.New(5), &openSpace{}).Generate(placement.Transform{})
	require.NoError(t, err)
	require.Len(t, chain.Platforms, 2)

	a, b := chain.Platforms[0], chain.Platforms[1]
	rise := b.Position.Z - a.Position.Z
	assert.GreaterOrEqual(t, rise, cfg.AboveHeight.Min*cfg.ExtremeFactor)
	assert.LessOrEqual(t, rise, cfg.AboveHeight.Max*cfg.ExtremeFactor)

	// Edge to edge along X, snapped to the grid.
	gap := b.Position.X - a.Position.X
	assert.InDelta(t, a.Size.X/2+b.Size.X/2, gap, cfg.GridUnit)
	assert.Zero(t, b.Position.Y)
}

// Below steps keep a horizontal gap on top of the drop, so the staircase
// between the two platforms has room.
func TestGenerate_BelowGap(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.PlatformCount = 2
	rs := RuleSet{
		Rules: map[string][]Category{"StartRule": {{Below, Forward}}},
	}
	chain, err := New(cfg, rs, rng.New(9), &openSpace{}).Generate(placement.Transform{})
	require.NoError(t, err)
	require.Len(t, chain.Platforms, 2)

	a, b := chain.Platforms[0], chain.Platforms[1]
	drop := a.Position.Z - b.Position.Z
	assert.GreaterOrEqual(t, drop, cfg.BelowHeight.Min)
	assert.LessOrEqual(t, drop, cfg.BelowHeight.Max)

	extra := (b.Position.X - a.Position.X) - (a.Size.X/2 + b.Size.X/2)
	assert.GreaterOrEqual(t, extra, cfg.BelowGap.Min-cfg.GridUnit)
	assert.LessOrEqual(t, extra, cfg.BelowGap.Max+cfg.GridUnit)
	assert.Zero(t, b.Position.Y)
}

func TestBaseOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    Direction
		want r3.Vec
	}{
		{Forward, r3.Vec{X: 500}},
		{Back, r3.Vec{X: -500}},
		{Left, r3.Vec{Y: 700}},
		{Right, r3.Vec{Y: -700}},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			// current 4x6 and new 6x8 grid units of 50
			assert.Equal(t, tt.want, BaseOffset(tt.d, 4, 6, 6, 8, 50))
		})
	}
}
