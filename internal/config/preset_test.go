package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	tokenerrors "github.com/alexisbeaulieu97/designtokens/pkg/errors"
)

func TestDecodePresetAppliesPresentFields(t *testing.T) {
	t.Parallel()

	preset, err := DecodePreset([]byte(`
brand_hue: 340
dark_mode: true
contrast: high
font_size: x-large
`), "inline")
	require.NoError(t, err)

	cfg := preset.Config(Default())
	require.Equal(t, 340.0, cfg.BrandHue)
	require.True(t, cfg.DarkMode)
	require.Equal(t, ContrastHigh, cfg.Contrast)
	require.Equal(t, FontSizeXLarge, cfg.FontSize)

	// Absent keys keep the base value.
	require.Equal(t, 91.0, cfg.BrandSaturation)
	require.Equal(t, LineHeightNormal, cfg.LineHeight)
}

func TestDecodeEmptyPreset(t *testing.T) {
	t.Parallel()

	preset, err := DecodePreset(nil, "empty")
	require.NoError(t, err)
	require.Equal(t, Default(), preset.Config(Default()))
}

func TestDecodePresetRejectsOutOfDomain(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		doc   string
		field string
	}{
		"hue at wrap point": {doc: "brand_hue: 360", field: "brand_hue"},
		"negative hue":      {doc: "brand_hue: -1", field: "brand_hue"},
		"saturation":        {doc: "brand_saturation: 101", field: "brand_saturation"},
		"zero scale":        {doc: "radius_scale: 0", field: "radius_scale"},
		"contrast":          {doc: "contrast: extreme", field: "contrast"},
		"letter spacing":    {doc: "letter_spacing: huge", field: "letter_spacing"},
		"line height":       {doc: "line_height: double", field: "line_height"},
		"font size":         {doc: "font_size: tiny", field: "font_size"},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodePreset([]byte(tc.doc), "inline")
			var validationErr *tokenerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestDecodePresetValidationMessage(t *testing.T) {
	t.Parallel()

	_, err := DecodePreset([]byte("contrast: extreme"), "inline")
	require.EqualError(t, err, "validation error: contrast=extreme: must be one of normal, high, ultra")

	_, err = DecodePreset([]byte("brand_hue: 400"), "inline")
	require.EqualError(t, err, "validation error: brand_hue=400: must be less than 360")
}

func TestDecodePresetReportsParseLine(t *testing.T) {
	t.Parallel()

	_, err := DecodePreset([]byte("brand_hue: 10\nunknown_key: 1\n"), "preset.yaml")
	var parseErr *tokenerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "preset.yaml", parseErr.Source)
	require.Equal(t, 2, parseErr.Line)

	_, err = DecodePreset([]byte("brand_hue: blue\n"), "preset.yaml")
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 1, parseErr.Line)
}

func TestParsePresetFromDisk(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spacing_scale: 2\nletter_spacing: widest\n"), 0o644))

	preset, err := ParsePreset(path)
	require.NoError(t, err)

	cfg := preset.Config(Default())
	require.Equal(t, 2.0, cfg.SpacingScale)
	require.Equal(t, LetterSpacingWidest, cfg.LetterSpacing)
}

func TestParsePresetMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParsePreset(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *tokenerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestPresetApplyWritesOnlyPresentFields(t *testing.T) {
	t.Parallel()

	preset, err := DecodePreset([]byte("brand_saturation: 40\nline_height: relaxed\n"), "inline")
	require.NoError(t, err)

	store := NewStore(Default())
	var fields []Field
	store.Subscribe(func(c Change) { fields = append(fields, c.Field) })

	preset.Apply(store)
	require.Equal(t, []Field{FieldBrandSaturation, FieldLineHeight}, fields)
	require.Equal(t, 40.0, store.BrandSaturation())
	require.Equal(t, LineHeightRelaxed, store.LineHeight())
}

func TestNilPresetIsIdentity(t *testing.T) {
	t.Parallel()

	var preset *Preset
	require.Equal(t, Default(), preset.Config(Default()))
	require.NotPanics(t, func() { preset.Apply(NewStore(Default())) })
}
