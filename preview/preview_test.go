package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/parkour-gen/config"
	"github.com/automoto/parkour-gen/connector"
	"github.com/automoto/parkour-gen/grammar"
	"github.com/automoto/parkour-gen/level"
	"github.com/automoto/parkour-gen/shared/placement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func twoPlatformPlan() *level.Plan {
	return &level.Plan{
		Mode: level.ModeChain,
		Seed: 1,
		Platforms: []placement.Platform{
			{Position: r3.Vec{X: 0, Y: 0, Z: 0}, Size: r3.Vec{X: 1000, Y: 1000, Z: 50}},
			{Position: r3.Vec{X: 3000, Y: 0, Z: 400}, Size: r3.Vec{X: 1000, Y: 1000, Z: 50}},
		},
		Connections: []connector.Connection{{A: 0, B: 1, Type: connector.LedgeGrab}},
		Route:       []int{0, 1},
		Reachable:   true,
	}
}

func decode(t *testing.T, buf *bytes.Buffer) image.Image {
	t.Helper()
	img, err := png.Decode(buf)
	require.NoError(t, err)
	return img
}

func TestRender(t *testing.T) {
	t.Parallel()

	cfg := config.Default().Preview
	cfg.ShowLabels = false

	var buf bytes.Buffer
	require.NoError(t, Render(twoPlatformPlan(), &buf, cfg))
	img := decode(t, &buf)

	assert.Equal(t, image.Rect(0, 0, cfg.Width, cfg.Height), img.Bounds())

	// Corner stays background, platforms are shaded low and high
	assert.Equal(t, cfg.Background, rgba(img.At(1, 1)))

	c := newCanvas(cfg, planBounds(twoPlatformPlan()))
	lx, ly := c.pixel(r2At(-300, 300))
	hx, hy := c.pixel(r2At(3300, 300))
	assert.Equal(t, cfg.LowColor, rgba(img.At(int(lx), int(ly))))
	assert.Equal(t, cfg.HighColor, rgba(img.At(int(hx), int(hy))))

	// Route runs between the centres
	mx, my := c.pixel(r2At(1500, 0))
	assert.Equal(t, cfg.Route, rgba(img.At(int(mx), int(my))))
}

func TestRender_GeneratedPlans(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	gen := level.New(cfg, grammar.DefaultRuleSet(), nil)
	for _, mode := range []level.Mode{level.ModeGrid, level.ModeChain} {
		t.Run(mode.String(), func(t *testing.T) {
			plan, err := gen.Generate(mode, 4)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Render(plan, &buf, cfg.Preview))
			img := decode(t, &buf)
			assert.Equal(t, cfg.Preview.Width, img.Bounds().Dx())
		})
	}
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	cfg := config.Default().Preview

	var buf bytes.Buffer
	assert.ErrorIs(t, Render(&level.Plan{}, &buf, cfg), ErrEmptyPlan)
	assert.ErrorIs(t, Render(nil, &buf, cfg), ErrEmptyPlan)

	cfg.Margin = cfg.Width
	assert.Error(t, Render(twoPlatformPlan(), &buf, cfg))
	assert.Zero(t, buf.Len())
}

func TestHeightProfile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profile.png")
	require.NoError(t, HeightProfile(twoPlatformPlan(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	require.NoError(t, err)

	assert.ErrorIs(t, HeightProfile(&level.Plan{}, path), ErrEmptyPlan)
}

func TestLerpColor(t *testing.T) {
	t.Parallel()

	cfg := config.Default().Preview
	assert.Equal(t, cfg.LowColor, lerpColor(cfg.LowColor, cfg.HighColor, 0))
	assert.Equal(t, cfg.HighColor, lerpColor(cfg.LowColor, cfg.HighColor, 1))
	assert.Equal(t, cfg.HighColor, lerpColor(cfg.LowColor, cfg.HighColor, 3))
}

func r2At(x, y float64) r2.Vec { return r2.Vec{X: x, Y: y} }

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
