package spacing

import (
	"github.com/alexisbeaulieu97/designtokens/internal/a11y"
	"github.com/alexisbeaulieu97/designtokens/internal/color"
)

// Elevation is a named shadow depth.
type Elevation int

const (
	ElevationNone Elevation = iota
	ElevationSM
	ElevationMD
	ElevationLG
	ElevationXL

	elevationCount
)

var elevationNames = [elevationCount]string{"none", "sm", "md", "lg", "xl"}

func (el Elevation) String() string {
	if el < 0 || el >= elevationCount {
		return "unknown"
	}
	return elevationNames[el]
}

// Elevations lists every shadow depth from none to xl.
func Elevations() []Elevation {
	out := make([]Elevation, 0, elevationCount)
	for el := Elevation(0); el < elevationCount; el++ {
		out = append(out, el)
	}
	return out
}

type shadowSpec struct {
	offsetY, blur, spread float64
	lightAlpha, darkAlpha float64
}

var shadowTable = [elevationCount]shadowSpec{
	ElevationNone: {offsetY: 0, blur: 0, spread: 0, lightAlpha: 0, darkAlpha: 0},
	ElevationSM:   {offsetY: 1, blur: 2, spread: 0, lightAlpha: 0.05, darkAlpha: 0.30},
	ElevationMD:   {offsetY: 4, blur: 6, spread: -1, lightAlpha: 0.10, darkAlpha: 0.40},
	ElevationLG:   {offsetY: 10, blur: 15, spread: -3, lightAlpha: 0.10, darkAlpha: 0.50},
	ElevationXL:   {offsetY: 20, blur: 25, spread: -5, lightAlpha: 0.10, darkAlpha: 0.60},
}

// Shadow is a drop shadow in points.
type Shadow struct {
	OffsetX float64     `json:"offset_x" yaml:"offset_x"`
	OffsetY float64     `json:"offset_y" yaml:"offset_y"`
	Blur    float64     `json:"blur" yaml:"blur"`
	Spread  float64     `json:"spread" yaml:"spread"`
	Color   color.Color `json:"color" yaml:"color"`
}

// Shadow returns the drop shadow for an elevation, scaled by the spacing
// scale. Ultra contrast turns every visible shadow into a hard, opaque edge.
// Unknown elevations resolve as ElevationMD.
func (e Engine) Shadow(el Elevation) Shadow {
	if el < 0 || el >= elevationCount {
		el = ElevationMD
	}
	cfg := e.src.Snapshot()
	spec := shadowTable[el]
	scale := cfg.SpacingScale

	alpha := spec.lightAlpha
	if cfg.DarkMode {
		alpha = spec.darkAlpha
	}
	blur := spec.blur * scale
	if a11y.Resolve(cfg).Ultra() && el != ElevationNone {
		blur = 0
		alpha = 1
	}

	return Shadow{
		OffsetY: spec.offsetY * scale,
		Blur:    blur,
		Spread:  spec.spread * scale,
		Color:   color.Black.WithAlpha(alpha),
	}
}
