package spacing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/designtokens/internal/color"
	"github.com/alexisbeaulieu97/designtokens/internal/config"
)

func scaled(spacing, radius float64) config.Config {
	cfg := config.Default()
	cfg.SpacingScale = spacing
	cfg.RadiusScale = radius
	return cfg
}

func TestSpacingScalesLinearly(t *testing.T) {
	unit := New(config.Default())
	for _, s := range []float64{0.5, 1.0, 2.0} {
		e := New(scaled(s, 1))
		for _, space := range Spaces() {
			assert.Equal(t, unit.Spacing(space)*s, e.Spacing(space), "%s at scale %v", space, s)
		}
	}
}

func TestRadiusScalesLinearly(t *testing.T) {
	unit := New(config.Default())
	for _, s := range []float64{0.5, 1.0, 2.0} {
		e := New(scaled(1, s))
		for _, r := range Radii() {
			if r == RadiusFull {
				continue
			}
			assert.Equal(t, unit.Radius(r)*s, e.Radius(r), "%s at scale %v", r, s)
		}
	}
}

func TestFullRadiusIsNeverScaled(t *testing.T) {
	for _, s := range []float64{0.5, 1.0, 2.0, 3.0} {
		assert.Equal(t, FullRadius, New(scaled(1, s)).Radius(RadiusFull))
	}
}

func TestDefaultValues(t *testing.T) {
	e := New(config.Default())

	assert.Equal(t, 0.0, e.Spacing(SpaceNone))
	assert.Equal(t, 2.0, e.Spacing(SpaceXXS))
	assert.Equal(t, 12.0, e.Spacing(SpaceMD))
	assert.Equal(t, 64.0, e.Spacing(Space4XL))

	assert.Equal(t, 2.0, e.Radius(RadiusSM))
	assert.Equal(t, 6.0, e.Radius(RadiusMD))
	assert.Equal(t, 24.0, e.Radius(Radius3XL))
}

func TestUnknownTokensFallBackToMedium(t *testing.T) {
	e := New(config.Default())
	assert.Equal(t, e.Spacing(SpaceMD), e.Spacing(Space(42)))
	assert.Equal(t, e.Radius(RadiusMD), e.Radius(Radius(-3)))
	assert.Equal(t, e.Radius(RadiusMD), e.Radius(Radius(42)))
	assert.Equal(t, e.Shadow(ElevationMD), e.Shadow(Elevation(9)))
	assert.Equal(t, "unknown", Space(42).String())
}

func TestBorderWidthFollowsContrast(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 1.0, New(cfg).BorderWidth())
	cfg.Contrast = config.ContrastHigh
	assert.Equal(t, 2.0, New(cfg).BorderWidth())
	cfg.Contrast = config.ContrastUltra
	assert.Equal(t, 3.0, New(cfg).BorderWidth())
}

func TestShadowByMode(t *testing.T) {
	light := New(config.Default())
	got := light.Shadow(ElevationLG)
	assert.Equal(t, Shadow{OffsetY: 10, Blur: 15, Spread: -3, Color: color.Black.WithAlpha(0.10)}, got)

	cfg := config.Default()
	cfg.DarkMode = true
	dark := New(cfg).Shadow(ElevationLG)
	assert.Equal(t, 0.50, dark.Color.A)
	assert.Equal(t, got.Blur, dark.Blur)
}

func TestShadowScalesWithSpacing(t *testing.T) {
	got := New(scaled(2, 1)).Shadow(ElevationXL)
	assert.Equal(t, 40.0, got.OffsetY)
	assert.Equal(t, 50.0, got.Blur)
	assert.Equal(t, -10.0, got.Spread)
}

func TestUltraContrastHardensShadows(t *testing.T) {
	cfg := config.Default()
	cfg.Contrast = config.ContrastUltra
	e := New(cfg)

	for _, el := range Elevations() {
		sh := e.Shadow(el)
		require.Equal(t, 0.0, sh.Blur, el.String())
		if el == ElevationNone {
			assert.Equal(t, 0.0, sh.Color.A)
			continue
		}
		assert.Equal(t, color.Black, sh.Color, el.String())
	}
}

func TestEngineTracksLiveStore(t *testing.T) {
	store := config.NewStore(config.Default())
	e := New(store)

	store.SetSpacingScale(2)
	assert.Equal(t, 24.0, e.Spacing(SpaceMD))
	store.SetRadiusScale(0.5)
	assert.Equal(t, 3.0, e.Radius(RadiusMD))
}
