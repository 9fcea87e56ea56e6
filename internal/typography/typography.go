// Package typography derives font sizes, tracking and leading from the font
// scale and the accessibility presets of a configuration.
package typography

import (
	"github.com/alexisbeaulieu97/designtokens/internal/a11y"
	"github.com/alexisbeaulieu97/designtokens/internal/config"
)

// BaseFontSize is the size, in points, of the base step before any scaling.
const BaseFontSize = 16.0

// Size is a named step of the type scale.
type Size int

const (
	SizeXS Size = iota
	SizeSM
	SizeBase
	SizeLG
	SizeXL
	Size2XL
	Size3XL
	Size4XL
	Size5XL
	Size6XL

	sizeCount
)

var sizeMultiplier = [sizeCount]float64{
	SizeXS:   0.75,
	SizeSM:   0.875,
	SizeBase: 1,
	SizeLG:   1.125,
	SizeXL:   1.25,
	Size2XL:  1.5,
	Size3XL:  1.875,
	Size4XL:  2.25,
	Size5XL:  3,
	Size6XL:  3.75,
}

var sizeNames = [sizeCount]string{
	SizeXS:   "xs",
	SizeSM:   "sm",
	SizeBase: "base",
	SizeLG:   "lg",
	SizeXL:   "xl",
	Size2XL:  "2xl",
	Size3XL:  "3xl",
	Size4XL:  "4xl",
	Size5XL:  "5xl",
	Size6XL:  "6xl",
}

func (s Size) String() string {
	if s < 0 || s >= sizeCount {
		return "unknown"
	}
	return sizeNames[s]
}

// Multiplier returns the size relative to BaseFontSize. Unknown sizes
// resolve as SizeBase.
func (s Size) Multiplier() float64 {
	if s < 0 || s >= sizeCount {
		s = SizeBase
	}
	return sizeMultiplier[s]
}

// Sizes lists the type scale from smallest to largest.
func Sizes() []Size {
	sizes := make([]Size, 0, sizeCount)
	for s := Size(0); s < sizeCount; s++ {
		sizes = append(sizes, s)
	}
	return sizes
}

// headingSizes maps heading levels 1..6 onto the type scale.
var headingSizes = [...]Size{Size4XL, Size3XL, Size2XL, SizeXL, SizeLG, SizeBase}

// HeadingLevels is the number of heading levels, numbered from 1.
const HeadingLevels = len(headingSizes)

// HeadingSizeFor returns the scale step for a heading level. Levels outside
// 1..6 resolve to level 1.
func HeadingSizeFor(level int) Size {
	if level < 1 || level > HeadingLevels {
		level = 1
	}
	return headingSizes[level-1]
}

// Weight is a font weight on the 100..900 scale.
type Weight int

const (
	WeightThin     Weight = 100
	WeightLight    Weight = 300
	WeightRegular  Weight = 400
	WeightMedium   Weight = 500
	WeightSemibold Weight = 600
	WeightBold     Weight = 700
	WeightHeavy    Weight = 800
	WeightBlack    Weight = 900
)

var weights = []Weight{
	WeightThin, WeightLight, WeightRegular, WeightMedium,
	WeightSemibold, WeightBold, WeightHeavy, WeightBlack,
}

var weightNames = map[Weight]string{
	WeightThin:     "thin",
	WeightLight:    "light",
	WeightRegular:  "regular",
	WeightMedium:   "medium",
	WeightSemibold: "semibold",
	WeightBold:     "bold",
	WeightHeavy:    "heavy",
	WeightBlack:    "black",
}

func (w Weight) String() string {
	if name, ok := weightNames[w]; ok {
		return name
	}
	return "unknown"
}

// Normalize returns w if it is on the scale and WeightRegular otherwise.
func (w Weight) Normalize() Weight {
	if _, ok := weightNames[w]; ok {
		return w
	}
	return WeightRegular
}

// Weights lists the weight scale from thin to black.
func Weights() []Weight {
	return append([]Weight(nil), weights...)
}

// EffectiveFontSize composes a base size with the font scale and the font
// size preset.
func EffectiveFontSize(base, fontScale float64, preset config.FontSizePreset) float64 {
	return base * fontScale * a11y.FontSizeMultiplier(preset)
}

// TextStyle is every typographic value for one size and weight.
type TextStyle struct {
	Size          float64 `json:"size" yaml:"size"`
	Weight        Weight  `json:"weight" yaml:"weight"`
	LetterSpacing float64 `json:"letter_spacing" yaml:"letter_spacing"`
	LineHeight    float64 `json:"line_height" yaml:"line_height"`
	LineSpacing   float64 `json:"line_spacing" yaml:"line_spacing"`
}

// Engine resolves typography tokens against a configuration source.
type Engine struct {
	src config.Source
}

// New returns an Engine reading from src.
func New(src config.Source) Engine {
	return Engine{src: src}
}

// CombinedScale is the font scale multiplied by the font size preset.
func (e Engine) CombinedScale() float64 {
	return combinedScale(e.src.Snapshot())
}

// FontSize returns the rendered size of a step of the type scale.
func (e Engine) FontSize(size Size) float64 {
	return fontSize(e.src.Snapshot(), size)
}

// HeadingSize returns the rendered size for a heading level.
func (e Engine) HeadingSize(level int) float64 {
	return e.FontSize(HeadingSizeFor(level))
}

// LetterSpacing returns the tracking, in points, for text rendered at fontSize.
func (e Engine) LetterSpacing(fontSize float64) float64 {
	return letterSpacing(e.src.Snapshot(), fontSize)
}

// LineSpacing returns the leading added on top of a line of fontSize.
func (e Engine) LineSpacing(fontSize float64) float64 {
	return lineSpacing(e.src.Snapshot(), fontSize)
}

// LineHeight returns the full line box height for fontSize.
func (e Engine) LineHeight(fontSize float64) float64 {
	return fontSize * a11y.LineHeightMultiplier(e.src.Snapshot().LineHeight)
}

// Style resolves every typographic value for size and weight from a single
// snapshot. Unknown weights resolve as WeightRegular.
func (e Engine) Style(size Size, weight Weight) TextStyle {
	cfg := e.src.Snapshot()
	px := fontSize(cfg, size)
	return TextStyle{
		Size:          px,
		Weight:        weight.Normalize(),
		LetterSpacing: letterSpacing(cfg, px),
		LineHeight:    px * a11y.LineHeightMultiplier(cfg.LineHeight),
		LineSpacing:   lineSpacing(cfg, px),
	}
}

func combinedScale(cfg config.Config) float64 {
	return cfg.FontScale * a11y.FontSizeMultiplier(cfg.FontSize)
}

func fontSize(cfg config.Config, size Size) float64 {
	return size.Multiplier() * BaseFontSize * combinedScale(cfg)
}

func letterSpacing(cfg config.Config, fontSize float64) float64 {
	return fontSize * a11y.LetterSpacingEm(cfg.LetterSpacing)
}

func lineSpacing(cfg config.Config, fontSize float64) float64 {
	return (a11y.LineHeightMultiplier(cfg.LineHeight) - 1) * fontSize
}
