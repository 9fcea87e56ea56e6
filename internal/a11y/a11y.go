// Package a11y maps the discrete accessibility modes of a configuration onto
// the numeric multipliers the token engines consume.
package a11y

import "github.com/alexisbeaulieu97/designtokens/internal/config"

var letterSpacingEm = [...]float64{
	config.LetterSpacingNormal: 0,
	config.LetterSpacingWide:   0.025,
	config.LetterSpacingWider:  0.05,
	config.LetterSpacingWidest: 0.1,
}

var lineHeightMultiplier = [...]float64{
	config.LineHeightTight:   1.25,
	config.LineHeightNormal:  1.6,
	config.LineHeightRelaxed: 1.8,
	config.LineHeightLoose:   2.2,
}

var fontSizeMultiplier = [...]float64{
	config.FontSizeSmall:   0.875,
	config.FontSizeNormal:  1.0,
	config.FontSizeLarge:   1.125,
	config.FontSizeXLarge:  1.25,
	config.FontSizeXXLarge: 1.5,
}

var borderWidthMultiplier = [...]float64{
	config.ContrastNormal: 1,
	config.ContrastHigh:   2,
	config.ContrastUltra:  3,
}

// LetterSpacingEm returns the tracking, in em, for mode. Unknown modes track
// as normal.
func LetterSpacingEm(mode config.LetterSpacingMode) float64 {
	return lookup(letterSpacingEm[:], int(mode), int(config.LetterSpacingNormal))
}

// LineHeightMultiplier returns the line height as a multiple of font size.
func LineHeightMultiplier(mode config.LineHeightMode) float64 {
	return lookup(lineHeightMultiplier[:], int(mode), int(config.LineHeightNormal))
}

// FontSizeMultiplier returns the scale applied on top of FontScale.
func FontSizeMultiplier(preset config.FontSizePreset) float64 {
	return lookup(fontSizeMultiplier[:], int(preset), int(config.FontSizeNormal))
}

// BorderWidthMultiplier thickens hairlines as contrast increases.
func BorderWidthMultiplier(mode config.ContrastMode) float64 {
	return lookup(borderWidthMultiplier[:], int(mode), int(config.ContrastNormal))
}

func lookup(table []float64, idx, fallback int) float64 {
	if idx < 0 || idx >= len(table) {
		idx = fallback
	}
	return table[idx]
}

// Settings is the resolved, numeric view of a configuration's accessibility modes.
type Settings struct {
	Contrast          config.ContrastMode
	LetterSpacingEm   float64
	LineHeight        float64
	FontSize          float64
	BorderWidthFactor float64
}

// Resolve looks up every accessibility multiplier for cfg.
func Resolve(cfg config.Config) Settings {
	contrast := cfg.Contrast
	if contrast < config.ContrastNormal || contrast > config.ContrastUltra {
		contrast = config.ContrastNormal
	}
	return Settings{
		Contrast:          contrast,
		LetterSpacingEm:   LetterSpacingEm(cfg.LetterSpacing),
		LineHeight:        LineHeightMultiplier(cfg.LineHeight),
		FontSize:          FontSizeMultiplier(cfg.FontSize),
		BorderWidthFactor: BorderWidthMultiplier(cfg.Contrast),
	}
}

// Ultra reports whether colors collapse to pure black and white.
func (s Settings) Ultra() bool { return s.Contrast == config.ContrastUltra }

// High reports whether the high-contrast shade shift applies. It is false
// under ultra, which takes precedence.
func (s Settings) High() bool { return s.Contrast == config.ContrastHigh }
