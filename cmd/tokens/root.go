package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designtokens/internal/config"
)

type rootFlags struct {
	preset        string
	hue           float64
	saturation    float64
	radiusScale   float64
	spacingScale  float64
	fontScale     float64
	dark          bool
	contrast      string
	letterSpacing string
	lineHeight    string
	fontSize      string
	logLevel      string
	verbose       bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:           "tokens",
		Short:         "Derive design tokens from a handful of base parameters",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.preset, "preset", "p", "", "YAML preset of base parameters")
	pf.Float64Var(&flags.hue, "hue", defaults.BrandHue, "Brand hue in degrees [0,360)")
	pf.Float64Var(&flags.saturation, "saturation", defaults.BrandSaturation, "Brand saturation in percent [0,100]")
	pf.Float64Var(&flags.radiusScale, "radius-scale", defaults.RadiusScale, "Corner radius scale factor")
	pf.Float64Var(&flags.spacingScale, "spacing-scale", defaults.SpacingScale, "Spacing scale factor")
	pf.Float64Var(&flags.fontScale, "font-scale", defaults.FontScale, "Font scale factor")
	pf.BoolVar(&flags.dark, "dark", defaults.DarkMode, "Derive dark mode tokens")
	pf.StringVar(&flags.contrast, "contrast", defaults.Contrast.String(), "Contrast mode (normal|high|ultra)")
	pf.StringVar(&flags.letterSpacing, "letter-spacing", defaults.LetterSpacing.String(), "Letter spacing (normal|wide|wider|widest)")
	pf.StringVar(&flags.lineHeight, "line-height", defaults.LineHeight.String(), "Line height (tight|normal|relaxed|loose)")
	pf.StringVar(&flags.fontSize, "font-size", defaults.FontSize.String(), "Font size preset (small|normal|large|x-large|xx-large)")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
