// Package spacing derives spacing, corner radius, border width and shadow
// tokens from the scale factors and contrast mode of a configuration.
package spacing

import (
	"github.com/alexisbeaulieu97/designtokens/internal/a11y"
	"github.com/alexisbeaulieu97/designtokens/internal/config"
)

// BaseUnit is the size, in points, every spacing and radius step multiplies.
const BaseUnit = 4.0

// FullRadius renders as a round cap at any size. It is never scaled.
const FullRadius = 9999.0

// Space is a named spacing step.
type Space int

const (
	SpaceNone Space = iota
	SpaceXXS
	SpaceXS
	SpaceSM
	SpaceMD
	SpaceLG
	SpaceXL
	Space2XL
	Space3XL
	Space4XL

	spaceCount
)

var spaceMultiplier = [spaceCount]float64{
	SpaceNone: 0,
	SpaceXXS:  0.5,
	SpaceXS:   1,
	SpaceSM:   2,
	SpaceMD:   3,
	SpaceLG:   4,
	SpaceXL:   6,
	Space2XL:  8,
	Space3XL:  12,
	Space4XL:  16,
}

var spaceNames = [spaceCount]string{
	SpaceNone: "none",
	SpaceXXS:  "xxs",
	SpaceXS:   "xs",
	SpaceSM:   "sm",
	SpaceMD:   "md",
	SpaceLG:   "lg",
	SpaceXL:   "xl",
	Space2XL:  "2xl",
	Space3XL:  "3xl",
	Space4XL:  "4xl",
}

func (s Space) String() string {
	if s < 0 || s >= spaceCount {
		return "unknown"
	}
	return spaceNames[s]
}

func (s Space) multiplier() float64 {
	if s < 0 || s >= spaceCount {
		s = SpaceMD
	}
	return spaceMultiplier[s]
}

// Spaces lists every spacing step from none to 4xl.
func Spaces() []Space {
	out := make([]Space, 0, spaceCount)
	for s := Space(0); s < spaceCount; s++ {
		out = append(out, s)
	}
	return out
}

// Radius is a named corner radius.
type Radius int

const (
	RadiusNone Radius = iota
	RadiusSM
	RadiusMD
	RadiusLG
	RadiusXL
	Radius2XL
	Radius3XL
	RadiusFull

	radiusCount
)

var radiusMultiplier = [RadiusFull]float64{
	RadiusNone: 0,
	RadiusSM:   0.5,
	RadiusMD:   1.5,
	RadiusLG:   2,
	RadiusXL:   3,
	Radius2XL:  4,
	Radius3XL:  6,
}

var radiusNames = [radiusCount]string{
	RadiusNone: "none",
	RadiusSM:   "sm",
	RadiusMD:   "md",
	RadiusLG:   "lg",
	RadiusXL:   "xl",
	Radius2XL:  "2xl",
	Radius3XL:  "3xl",
	RadiusFull: "full",
}

func (r Radius) String() string {
	if r < 0 || r >= radiusCount {
		return "unknown"
	}
	return radiusNames[r]
}

// Radii lists every radius from none to full.
func Radii() []Radius {
	out := make([]Radius, 0, radiusCount)
	for r := Radius(0); r < radiusCount; r++ {
		out = append(out, r)
	}
	return out
}

// Engine resolves spacing tokens against a configuration source.
type Engine struct {
	src config.Source
}

// New returns an Engine reading from src.
func New(src config.Source) Engine {
	return Engine{src: src}
}

// Spacing returns the scaled size of a spacing step. Unknown steps resolve
// as SpaceMD.
func (e Engine) Spacing(s Space) float64 {
	return s.multiplier() * BaseUnit * e.src.Snapshot().SpacingScale
}

// Radius returns the scaled corner radius. RadiusFull is returned as is;
// unknown radii resolve as RadiusMD.
func (e Engine) Radius(r Radius) float64 {
	if r == RadiusFull {
		return FullRadius
	}
	if r < 0 || r >= RadiusFull {
		r = RadiusMD
	}
	return radiusMultiplier[r] * BaseUnit * e.src.Snapshot().RadiusScale
}

// BorderWidth returns the hairline width, thickened by the contrast mode.
func (e Engine) BorderWidth() float64 {
	return 1 * a11y.BorderWidthMultiplier(e.src.Snapshot().Contrast)
}
