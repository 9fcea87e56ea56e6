package tokens

import (
	"strconv"

	"github.com/alexisbeaulieu97/designtokens/internal/a11y"
	"github.com/alexisbeaulieu97/designtokens/internal/color"
	"github.com/alexisbeaulieu97/designtokens/internal/config"
	"github.com/alexisbeaulieu97/designtokens/internal/palette"
	"github.com/alexisbeaulieu97/designtokens/internal/spacing"
	"github.com/alexisbeaulieu97/designtokens/internal/typography"
)

// Snapshot is every token for one configuration, in plain exportable form.
// Colors are hex strings and sizes are points.
type Snapshot struct {
	Config     Parameters `json:"config" yaml:"config"`
	Colors     Colors     `json:"colors" yaml:"colors"`
	Typography Typography `json:"typography" yaml:"typography"`
	Spacing    Spacing    `json:"spacing" yaml:"spacing"`
}

// Parameters echoes the base parameters a snapshot was derived from.
type Parameters struct {
	BrandHue        float64 `json:"brand_hue" yaml:"brand_hue"`
	BrandSaturation float64 `json:"brand_saturation" yaml:"brand_saturation"`
	RadiusScale     float64 `json:"radius_scale" yaml:"radius_scale"`
	SpacingScale    float64 `json:"spacing_scale" yaml:"spacing_scale"`
	FontScale       float64 `json:"font_scale" yaml:"font_scale"`
	DarkMode        bool    `json:"dark_mode" yaml:"dark_mode"`
	Contrast        string  `json:"contrast" yaml:"contrast"`
	LetterSpacing   string  `json:"letter_spacing" yaml:"letter_spacing"`
	LineHeight      string  `json:"line_height" yaml:"line_height"`
	FontSize        string  `json:"font_size" yaml:"font_size"`
}

type Colors struct {
	Brand        map[string]string `json:"brand" yaml:"brand"`
	Gray         map[string]string `json:"gray" yaml:"gray"`
	Roles        map[string]string `json:"roles" yaml:"roles"`
	Panels       []string          `json:"panels" yaml:"panels"`
	Headings     []string          `json:"headings" yaml:"headings"`
	Descriptions []string          `json:"descriptions" yaml:"descriptions"`
	Values       []string          `json:"values" yaml:"values"`
}

type Typography struct {
	BaseSize        float64                         `json:"base_size" yaml:"base_size"`
	CombinedScale   float64                         `json:"combined_scale" yaml:"combined_scale"`
	LetterSpacingEm float64                         `json:"letter_spacing_em" yaml:"letter_spacing_em"`
	LineHeight      float64                         `json:"line_height" yaml:"line_height"`
	Sizes           map[string]typography.TextStyle `json:"sizes" yaml:"sizes"`
	Headings        []float64                       `json:"headings" yaml:"headings"`
	Weights         map[string]int                  `json:"weights" yaml:"weights"`
}

type Spacing struct {
	BaseUnit    float64            `json:"base_unit" yaml:"base_unit"`
	Space       map[string]float64 `json:"space" yaml:"space"`
	Radius      map[string]float64 `json:"radius" yaml:"radius"`
	BorderWidth float64            `json:"border_width" yaml:"border_width"`
	Shadows     map[string]Shadow  `json:"shadows" yaml:"shadows"`
}

// Shadow is spacing.Shadow with its color as a hex string.
type Shadow struct {
	OffsetX float64 `json:"offset_x" yaml:"offset_x"`
	OffsetY float64 `json:"offset_y" yaml:"offset_y"`
	Blur    float64 `json:"blur" yaml:"blur"`
	Spread  float64 `json:"spread" yaml:"spread"`
	Color   string  `json:"color" yaml:"color"`
}

// Snapshot derives every token from a single read of the source, so the
// result is consistent even if the source changes afterwards.
func (t *Tokens) Snapshot() Snapshot {
	cfg := t.src.Snapshot()
	fixed := New(cfg)

	return Snapshot{
		Config:     parameters(cfg),
		Colors:     fixed.colors(),
		Typography: fixed.typography(cfg),
		Spacing:    fixed.spacing(),
	}
}

func parameters(cfg config.Config) Parameters {
	return Parameters{
		BrandHue:        cfg.BrandHue,
		BrandSaturation: cfg.BrandSaturation,
		RadiusScale:     cfg.RadiusScale,
		SpacingScale:    cfg.SpacingScale,
		FontScale:       cfg.FontScale,
		DarkMode:        cfg.DarkMode,
		Contrast:        cfg.Contrast.String(),
		LetterSpacing:   cfg.LetterSpacing.String(),
		LineHeight:      cfg.LineHeight.String(),
		FontSize:        cfg.FontSize.String(),
	}
}

func (t *Tokens) colors() Colors {
	p := t.Colors.Palette()
	out := Colors{
		Brand: make(map[string]string, len(p.Brand)),
		Gray:  make(map[string]string, len(p.Gray)),
		Roles: make(map[string]string, len(p.Roles)),
	}
	for shade, c := range p.Brand {
		out.Brand[strconv.Itoa(int(shade))] = c.Hex()
	}
	for shade, c := range p.Gray {
		out.Gray[strconv.Itoa(int(shade))] = c.Hex()
	}
	for _, role := range palette.Roles() {
		out.Roles[role.String()] = p.Roles[role].Hex()
	}
	out.Panels = hexes(p.Panels[:])
	out.Headings = hexes(p.Headings[:])
	out.Descriptions = hexes(p.Descriptions[:])
	out.Values = hexes(p.Values[:])
	return out
}

func hexes(cs []color.Color) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Hex()
	}
	return out
}

func (t *Tokens) typography(cfg config.Config) Typography {
	out := Typography{
		BaseSize:        typography.BaseFontSize,
		CombinedScale:   t.Type.CombinedScale(),
		LetterSpacingEm: a11y.LetterSpacingEm(cfg.LetterSpacing),
		LineHeight:      a11y.LineHeightMultiplier(cfg.LineHeight),
		Sizes:           make(map[string]typography.TextStyle),
		Weights:         make(map[string]int),
	}
	for _, size := range typography.Sizes() {
		out.Sizes[size.String()] = t.Type.Style(size, typography.WeightRegular)
	}
	for level := 1; level <= typography.HeadingLevels; level++ {
		out.Headings = append(out.Headings, t.Type.HeadingSize(level))
	}
	for _, w := range typography.Weights() {
		out.Weights[w.String()] = int(w)
	}
	return out
}

func (t *Tokens) spacing() Spacing {
	out := Spacing{
		BaseUnit:    spacing.BaseUnit,
		Space:       make(map[string]float64),
		Radius:      make(map[string]float64),
		BorderWidth: t.Space.BorderWidth(),
		Shadows:     make(map[string]Shadow),
	}
	for _, s := range spacing.Spaces() {
		out.Space[s.String()] = t.Space.Spacing(s)
	}
	for _, r := range spacing.Radii() {
		out.Radius[r.String()] = t.Space.Radius(r)
	}
	for _, el := range spacing.Elevations() {
		sh := t.Space.Shadow(el)
		out.Shadows[el.String()] = Shadow{
			OffsetX: sh.OffsetX,
			OffsetY: sh.OffsetY,
			Blur:    sh.Blur,
			Spread:  sh.Spread,
			Color:   sh.Color.Hex(),
		}
	}
	return out
}
