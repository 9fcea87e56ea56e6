// Package color holds the RGBA value type produced by the palette engine and
// the HSL conversion every ramp is computed with.
package color

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color with straight alpha. Components are in [0,1].
type Color struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

var (
	// Black is opaque pure black.
	Black = Color{R: 0, G: 0, B: 0, A: 1}
	// PureWhite is opaque pure white.
	PureWhite = Color{R: 1, G: 1, B: 1, A: 1}
)

// RGB returns an opaque color from components in [0,1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// White returns an opaque achromatic color at the given white level in [0,1].
func White(level float64) Color {
	level = clamp01(level)
	return Color{R: level, G: level, B: level, A: 1}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Hex formats c as #rrggbb, or #rrggbbaa when it is not fully opaque.
func (c Color) Hex() string {
	hex := c.toColorful().Clamped().Hex()
	if c.A >= 1 {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, uint8(math.Round(clamp01(c.A)*255)))
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

// Lipgloss converts c to a terminal color. Alpha is dropped.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.toColorful().Clamped().Hex())
}

// Lightness returns the HSL lightness of c in [0,1].
func (c Color) Lightness() float64 {
	hi := math.Max(c.R, math.Max(c.G, c.B))
	lo := math.Min(c.R, math.Min(c.G, c.B))
	return (hi + lo) / 2
}

// Luminance returns the WCAG relative luminance of c, ignoring alpha.
func (c Color) Luminance() float64 {
	r, g, b := c.toColorful().Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between a and b, in [1,21].
func ContrastRatio(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
