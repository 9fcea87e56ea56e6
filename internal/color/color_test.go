package color

import (
	"math"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSLPrimaries(t *testing.T) {
	cases := []struct {
		name    string
		h, s, l float64
		want    string
	}{
		{"red", 0, 100, 50, "#ff0000"},
		{"yellow", 60, 100, 50, "#ffff00"},
		{"green", 120, 100, 50, "#00ff00"},
		{"cyan", 180, 100, 50, "#00ffff"},
		{"blue", 240, 100, 50, "#0000ff"},
		{"magenta", 300, 100, 50, "#ff00ff"},
		{"white", 0, 0, 100, "#ffffff"},
		{"black", 200, 100, 0, "#000000"},
		{"mid gray", 90, 0, 50, "#808080"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HSL(tc.h, tc.s, tc.l).Hex())
		})
	}
}

func TestHSLHueWrapIsBitIdentical(t *testing.T) {
	for _, s := range []float64{0, 35, 91, 100} {
		for _, l := range []float64{0, 22, 50, 77, 100} {
			require.Equal(t, HSL(0, s, l), HSL(360, s, l), "s=%v l=%v", s, l)
		}
	}
}

func TestHSLWrapsOutsideDomain(t *testing.T) {
	assert.Equal(t, HSL(30, 80, 40), HSL(390, 80, 40))
	assert.Equal(t, HSL(330, 80, 40), HSL(-30, 80, 40))
	assert.Equal(t, HSL(0, 80, 40), HSL(math.NaN(), 80, 40))
}

func TestHSLClampsSaturationAndLightness(t *testing.T) {
	assert.Equal(t, HSL(10, 100, 100), HSL(10, 150, 130))
	assert.Equal(t, HSL(10, 0, 0), HSL(10, -5, -20))
}

func TestHSLAgreesWithGoColorful(t *testing.T) {
	for h := 0.0; h < 360; h += 15 {
		for _, s := range []float64{10, 60, 91} {
			for _, l := range []float64{15, 55, 86} {
				got := HSL(h, s, l)
				want := colorful.Hsl(h, s/100, l/100)
				assert.InDelta(t, want.R, got.R, 1e-9, "h=%v s=%v l=%v", h, s, l)
				assert.InDelta(t, want.G, got.G, 1e-9, "h=%v s=%v l=%v", h, s, l)
				assert.InDelta(t, want.B, got.B, 1e-9, "h=%v s=%v l=%v", h, s, l)
			}
		}
	}
}

func TestHSLPreservesLightness(t *testing.T) {
	for _, l := range []float64{6, 50, 98} {
		assert.InDelta(t, l/100, HSL(217, 91, l).Lightness(), 1e-12)
	}
}

func TestHexIncludesAlphaWhenTranslucent(t *testing.T) {
	assert.Equal(t, "#000000", Black.Hex())
	assert.Equal(t, "#ffffff", PureWhite.Hex())
	assert.Equal(t, "#00000080", Black.WithAlpha(0.5).Hex())
	assert.Equal(t, "#00000000", Black.WithAlpha(-1).Hex())
	assert.Equal(t, "#808080", White(0.5).String())
}

func TestWhiteClampsLevel(t *testing.T) {
	assert.Equal(t, PureWhite, White(2))
	assert.Equal(t, Black, White(-1))
}

func TestLipglossDropsAlpha(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#ff0000"), RGB(1, 0, 0).WithAlpha(0.2).Lipgloss())
}

func TestContrastRatio(t *testing.T) {
	assert.InDelta(t, 21.0, ContrastRatio(Black, PureWhite), 1e-9)
	assert.InDelta(t, 21.0, ContrastRatio(PureWhite, Black), 1e-9)
	assert.InDelta(t, 1.0, ContrastRatio(White(0.3), White(0.3)), 1e-9)
	// #767676 on white is the WCAG AA reference pair at roughly 4.54:1.
	gray := RGB(118.0/255, 118.0/255, 118.0/255)
	assert.InDelta(t, 4.54, ContrastRatio(gray, PureWhite), 0.01)
}
