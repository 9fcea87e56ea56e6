// Package config holds the base parameters every design token is derived from,
// and the observable store that UI controls write to.
package config

import (
	"strings"

	tokenerrors "github.com/alexisbeaulieu97/designtokens/pkg/errors"
)

// Default base parameters restored on startup and by Store.Reset.
const (
	DefaultBrandHue        = 217.0
	DefaultBrandSaturation = 91.0
	DefaultScale           = 1.0
)

// ContrastMode selects how aggressively colors are overridden for legibility.
type ContrastMode int

const (
	ContrastNormal ContrastMode = iota
	ContrastHigh
	ContrastUltra
)

var contrastNames = [...]string{"normal", "high", "ultra"}

func (m ContrastMode) String() string { return enumName(contrastNames[:], int(m)) }

// ParseContrastMode resolves a contrast mode from its name.
func ParseContrastMode(name string) (ContrastMode, error) {
	idx, ok := enumIndex(contrastNames[:], name)
	if !ok {
		return ContrastNormal, tokenerrors.NewUnknownModeError("contrast mode", name)
	}
	return ContrastMode(idx), nil
}

// LetterSpacingMode widens tracking for readability.
type LetterSpacingMode int

const (
	LetterSpacingNormal LetterSpacingMode = iota
	LetterSpacingWide
	LetterSpacingWider
	LetterSpacingWidest
)

var letterSpacingNames = [...]string{"normal", "wide", "wider", "widest"}

func (m LetterSpacingMode) String() string { return enumName(letterSpacingNames[:], int(m)) }

// ParseLetterSpacingMode resolves a letter spacing mode from its name.
func ParseLetterSpacingMode(name string) (LetterSpacingMode, error) {
	idx, ok := enumIndex(letterSpacingNames[:], name)
	if !ok {
		return LetterSpacingNormal, tokenerrors.NewUnknownModeError("letter spacing mode", name)
	}
	return LetterSpacingMode(idx), nil
}

// LineHeightMode controls leading.
type LineHeightMode int

const (
	LineHeightTight LineHeightMode = iota
	LineHeightNormal
	LineHeightRelaxed
	LineHeightLoose
)

var lineHeightNames = [...]string{"tight", "normal", "relaxed", "loose"}

func (m LineHeightMode) String() string { return enumName(lineHeightNames[:], int(m)) }

// ParseLineHeightMode resolves a line height mode from its name.
func ParseLineHeightMode(name string) (LineHeightMode, error) {
	idx, ok := enumIndex(lineHeightNames[:], name)
	if !ok {
		return LineHeightNormal, tokenerrors.NewUnknownModeError("line height mode", name)
	}
	return LineHeightMode(idx), nil
}

// FontSizePreset is a coarse user-facing text size setting layered on FontScale.
type FontSizePreset int

const (
	FontSizeSmall FontSizePreset = iota
	FontSizeNormal
	FontSizeLarge
	FontSizeXLarge
	FontSizeXXLarge
)

var fontSizeNames = [...]string{"small", "normal", "large", "x-large", "xx-large"}

func (p FontSizePreset) String() string { return enumName(fontSizeNames[:], int(p)) }

// ParseFontSizePreset resolves a font size preset from its name.
func ParseFontSizePreset(name string) (FontSizePreset, error) {
	idx, ok := enumIndex(fontSizeNames[:], name)
	if !ok {
		return FontSizeNormal, tokenerrors.NewUnknownModeError("font size preset", name)
	}
	return FontSizePreset(idx), nil
}

// Config is one snapshot of the base parameters.
//
// Values are not range checked here. BrandHue is expected in [0,360) and
// BrandSaturation in [0,100]; scales are positive multipliers. Controls that
// write a Config are responsible for clamping.
type Config struct {
	BrandHue        float64
	BrandSaturation float64
	RadiusScale     float64
	SpacingScale    float64
	FontScale       float64
	DarkMode        bool
	Contrast        ContrastMode
	LetterSpacing   LetterSpacingMode
	LineHeight      LineHeightMode
	FontSize        FontSizePreset
}

// Default returns the documented default tuple.
func Default() Config {
	return Config{
		BrandHue:        DefaultBrandHue,
		BrandSaturation: DefaultBrandSaturation,
		RadiusScale:     DefaultScale,
		SpacingScale:    DefaultScale,
		FontScale:       DefaultScale,
		DarkMode:        false,
		Contrast:        ContrastNormal,
		LetterSpacing:   LetterSpacingNormal,
		LineHeight:      LineHeightNormal,
		FontSize:        FontSizeNormal,
	}
}

// Source yields the configuration a derivation should read. Engines call
// Snapshot on every accessor, so a live *Store and a fixed Config are
// interchangeable.
type Source interface {
	Snapshot() Config
}

// Snapshot implements Source for a fixed value.
func (c Config) Snapshot() Config { return c }

func enumName(names []string, idx int) string {
	if idx < 0 || idx >= len(names) {
		return "unknown"
	}
	return names[idx]
}

func enumIndex(names []string, name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range names {
		if candidate == name {
			return i, true
		}
	}
	return 0, false
}

// ContrastNames lists accepted contrast mode names in enum order.
func ContrastNames() []string { return append([]string(nil), contrastNames[:]...) }

// LetterSpacingNames lists accepted letter spacing mode names in enum order.
func LetterSpacingNames() []string { return append([]string(nil), letterSpacingNames[:]...) }

// LineHeightNames lists accepted line height mode names in enum order.
func LineHeightNames() []string { return append([]string(nil), lineHeightNames[:]...) }

// FontSizeNames lists accepted font size preset names in enum order.
func FontSizeNames() []string { return append([]string(nil), fontSizeNames[:]...) }
