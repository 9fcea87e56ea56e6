package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	tokenerrors "github.com/alexisbeaulieu97/designtokens/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Preset is a partial set of base parameters read from YAML. Absent keys
// leave the corresponding field untouched when applied.
type Preset struct {
	BrandHue        *float64 `yaml:"brand_hue,omitempty" validate:"omitempty,gte=0,lt=360"`
	BrandSaturation *float64 `yaml:"brand_saturation,omitempty" validate:"omitempty,gte=0,lte=100"`
	RadiusScale     *float64 `yaml:"radius_scale,omitempty" validate:"omitempty,gt=0,lte=10"`
	SpacingScale    *float64 `yaml:"spacing_scale,omitempty" validate:"omitempty,gt=0,lte=10"`
	FontScale       *float64 `yaml:"font_scale,omitempty" validate:"omitempty,gt=0,lte=10"`
	DarkMode        *bool    `yaml:"dark_mode,omitempty"`
	Contrast        string   `yaml:"contrast,omitempty" validate:"omitempty,contrast_mode"`
	LetterSpacing   string   `yaml:"letter_spacing,omitempty" validate:"omitempty,letter_spacing_mode"`
	LineHeight      string   `yaml:"line_height,omitempty" validate:"omitempty,line_height_mode"`
	FontSize        string   `yaml:"font_size,omitempty" validate:"omitempty,font_size_preset"`
}

// ParsePreset loads a preset file from disk and validates it.
func ParsePreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tokenerrors.NewParseError(path, 0, err)
	}
	return DecodePreset(data, path)
}

// DecodePreset decodes and validates a preset document. source labels errors.
func DecodePreset(data []byte, source string) (*Preset, error) {
	var preset Preset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&preset); err != nil && !errors.Is(err, io.EOF) {
		return nil, tokenerrors.NewParseError(source, extractLine(err), err)
	}

	if err := preset.Validate(); err != nil {
		return nil, err
	}
	return &preset, nil
}

// Validate checks every present field against its documented domain.
func (p *Preset) Validate() error {
	err := validatorInstance().Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return tokenerrors.NewValidationError("", nil, err.Error(), err)
	}

	first := fieldErrs[0]
	return tokenerrors.NewValidationError(
		yamlFieldName(first.StructField()),
		derefValue(first.Value()),
		describeRule(first),
		err,
	)
}

// Config returns base with every present preset field applied.
func (p *Preset) Config(base Config) Config {
	if p == nil {
		return base
	}
	if p.BrandHue != nil {
		base.BrandHue = *p.BrandHue
	}
	if p.BrandSaturation != nil {
		base.BrandSaturation = *p.BrandSaturation
	}
	if p.RadiusScale != nil {
		base.RadiusScale = *p.RadiusScale
	}
	if p.SpacingScale != nil {
		base.SpacingScale = *p.SpacingScale
	}
	if p.FontScale != nil {
		base.FontScale = *p.FontScale
	}
	if p.DarkMode != nil {
		base.DarkMode = *p.DarkMode
	}
	if mode, err := ParseContrastMode(p.Contrast); err == nil {
		base.Contrast = mode
	}
	if mode, err := ParseLetterSpacingMode(p.LetterSpacing); err == nil {
		base.LetterSpacing = mode
	}
	if mode, err := ParseLineHeightMode(p.LineHeight); err == nil {
		base.LineHeight = mode
	}
	if preset, err := ParseFontSizePreset(p.FontSize); err == nil {
		base.FontSize = preset
	}
	return base
}

// Apply writes the present fields into store, one setter call per field.
func (p *Preset) Apply(store *Store) {
	if p == nil || store == nil {
		return
	}
	next := p.Config(store.Snapshot())
	if p.BrandHue != nil {
		store.SetBrandHue(next.BrandHue)
	}
	if p.BrandSaturation != nil {
		store.SetBrandSaturation(next.BrandSaturation)
	}
	if p.RadiusScale != nil {
		store.SetRadiusScale(next.RadiusScale)
	}
	if p.SpacingScale != nil {
		store.SetSpacingScale(next.SpacingScale)
	}
	if p.FontScale != nil {
		store.SetFontScale(next.FontScale)
	}
	if p.DarkMode != nil {
		store.SetDarkMode(next.DarkMode)
	}
	if p.Contrast != "" {
		store.SetContrast(next.Contrast)
	}
	if p.LetterSpacing != "" {
		store.SetLetterSpacing(next.LetterSpacing)
	}
	if p.LineHeight != "" {
		store.SetLineHeight(next.LineHeight)
	}
	if p.FontSize != "" {
		store.SetFontSize(next.FontSize)
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func yamlFieldName(structField string) string {
	field, ok := reflect.TypeOf(Preset{}).FieldByName(structField)
	if !ok {
		return structField
	}
	name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
	if name == "" {
		return structField
	}
	return name
}

func derefValue(value any) any {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return rv.Elem().Interface()
	}
	return value
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "contrast_mode":
		return "must be one of " + strings.Join(ContrastNames(), ", ")
	case "letter_spacing_mode":
		return "must be one of " + strings.Join(LetterSpacingNames(), ", ")
	case "line_height_mode":
		return "must be one of " + strings.Join(LineHeightNames(), ", ")
	case "font_size_preset":
		return "must be one of " + strings.Join(FontSizeNames(), ", ")
	default:
		return fmt.Sprintf("failed %q rule", fe.Tag())
	}
}
