package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designtokens/internal/config"
)

// flagPreset collects the parameter flags the user actually set into a
// preset, so they pass the same validation as a preset file.
func flagPreset(cmd *cobra.Command, flags *rootFlags) (*config.Preset, error) {
	fs := cmd.Flags()
	p := &config.Preset{}

	if fs.Changed("hue") {
		p.BrandHue = &flags.hue
	}
	if fs.Changed("saturation") {
		p.BrandSaturation = &flags.saturation
	}
	if fs.Changed("radius-scale") {
		p.RadiusScale = &flags.radiusScale
	}
	if fs.Changed("spacing-scale") {
		p.SpacingScale = &flags.spacingScale
	}
	if fs.Changed("font-scale") {
		p.FontScale = &flags.fontScale
	}
	if fs.Changed("dark") {
		p.DarkMode = &flags.dark
	}
	if fs.Changed("contrast") {
		p.Contrast = flags.contrast
	}
	if fs.Changed("letter-spacing") {
		p.LetterSpacing = flags.letterSpacing
	}
	if fs.Changed("line-height") {
		p.LineHeight = flags.lineHeight
	}
	if fs.Changed("font-size") {
		p.FontSize = flags.fontSize
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return p, nil
}
