// Package palette derives every color token from the base parameters: the
// brand and gray ramps, semantic and functional roles, panel tones and the
// text hierarchy.
//
// Nothing is cached. Each accessor reads a fresh snapshot from its source, so
// results always reflect the configuration at call time.
package palette

import (
	"github.com/alexisbeaulieu97/designtokens/internal/a11y"
	"github.com/alexisbeaulieu97/designtokens/internal/color"
	"github.com/alexisbeaulieu97/designtokens/internal/config"
)

// Engine resolves color tokens against a configuration source.
type Engine struct {
	src config.Source
}

// New returns an Engine reading from src.
func New(src config.Source) *Engine {
	return &Engine{src: src}
}

// scope is one snapshot plus its resolved accessibility settings.
type scope struct {
	cfg      config.Config
	settings a11y.Settings
}

func (e *Engine) scope() scope {
	cfg := e.src.Snapshot()
	return scope{cfg: cfg, settings: a11y.Resolve(cfg)}
}

func (s scope) brand(shade Shade) color.Color {
	l, ok := brandLightness[shade]
	if !ok {
		l = brandLightness[DefaultShade]
	}
	return color.HSL(s.cfg.BrandHue, s.cfg.BrandSaturation, l)
}

func (s scope) gray(shade Shade) color.Color {
	if s.cfg.DarkMode {
		w, ok := grayDarkWhite[shade]
		if !ok {
			w = grayDarkWhite[DefaultShade]
		}
		return color.White(w)
	}
	l, ok := grayLightLightness[shade]
	if !ok {
		l = grayLightLightness[DefaultShade]
	}
	return color.HSL(s.cfg.BrandHue, neutralTint, l)
}

// Brand returns a shade of the brand ramp. Unknown shades resolve to 500.
func (e *Engine) Brand(shade Shade) color.Color {
	return e.scope().brand(shade)
}

// Gray returns a neutral shade. Light mode tints the ramp with the brand hue
// at a fixed low saturation; dark mode reads a separate white-level table.
// Unknown shades resolve to 500.
func (e *Engine) Gray(shade Shade) color.Color {
	return e.scope().gray(shade)
}

// Role resolves a semantic color through its ultra → high → default chain.
// Unknown roles resolve as RoleForeground.
func (e *Engine) Role(role Role) color.Color {
	return chainFor(role).resolve(e.scope())
}

// RuleFor names the precedence rule that currently decides role.
func (e *Engine) RuleFor(role Role) string {
	s := e.scope()
	for _, r := range chainFor(role) {
		if r.applies == nil || r.applies(s.settings) {
			return r.name
		}
	}
	return ""
}

func chainFor(role Role) chain {
	if role < 0 || role >= roleCount {
		role = fallbackRole
	}
	return roleChains[role]
}

func (e *Engine) Background() color.Color          { return e.Role(RoleBackground) }
func (e *Engine) Foreground() color.Color          { return e.Role(RoleForeground) }
func (e *Engine) Card() color.Color                { return e.Role(RoleCard) }
func (e *Engine) Popover() color.Color             { return e.Role(RolePopover) }
func (e *Engine) Border() color.Color              { return e.Role(RoleBorder) }
func (e *Engine) Input() color.Color               { return e.Role(RoleInput) }
func (e *Engine) Ring() color.Color                { return e.Role(RoleRing) }
func (e *Engine) Primary() color.Color             { return e.Role(RolePrimary) }
func (e *Engine) PrimaryForeground() color.Color   { return e.Role(RolePrimaryForeground) }
func (e *Engine) Secondary() color.Color           { return e.Role(RoleSecondary) }
func (e *Engine) SecondaryForeground() color.Color { return e.Role(RoleSecondaryForeground) }
func (e *Engine) Muted() color.Color               { return e.Role(RoleMuted) }
func (e *Engine) MutedForeground() color.Color     { return e.Role(RoleMutedForeground) }
func (e *Engine) Accent() color.Color              { return e.Role(RoleAccent) }
func (e *Engine) AccentForeground() color.Color    { return e.Role(RoleAccentForeground) }
func (e *Engine) Success() color.Color             { return e.Role(RoleSuccess) }
func (e *Engine) Warning() color.Color             { return e.Role(RoleWarning) }
func (e *Engine) Danger() color.Color              { return e.Role(RoleDanger) }
func (e *Engine) Error() color.Color               { return e.Role(RoleError) }
func (e *Engine) Info() color.Color                { return e.Role(RoleInfo) }

// Panel returns the background tone for a container nested level deep.
// Higher levels sit further from the page background: darker in light mode,
// lighter in dark mode. Ultra contrast keeps every level white. Levels
// outside 0..5 resolve to level 0.
func (e *Engine) Panel(level int) color.Color {
	s := e.scope()
	if s.settings.Ultra() {
		return color.PureWhite
	}
	if level < 0 || level >= PanelLevels {
		level = 0
	}

	high := s.settings.High()
	if s.cfg.DarkMode {
		if high {
			return color.White(panelDarkHigh[level])
		}
		return color.White(panelDark[level])
	}
	if high {
		return color.HSL(s.cfg.BrandHue, neutralTint, panelLightHigh[level])
	}
	return color.HSL(s.cfg.BrandHue, neutralTint, panelLight[level])
}

// Text returns the color of a text hierarchy family at level 1..6, where 1
// is the most prominent. Levels outside the range resolve to level 1.
func (e *Engine) Text(h Hierarchy, level int) color.Color {
	s := e.scope()
	if s.settings.Ultra() {
		return color.Black
	}
	table, ok := hierarchyShades[h]
	if !ok {
		table = hierarchyShades[HierarchyHeading]
	}
	if level < 1 || level > HierarchyLevels {
		level = 1
	}

	shades := table.normal
	if s.settings.High() {
		shades = table.high
	}
	return s.gray(shades[level-1])
}

func (e *Engine) Heading(level int) color.Color     { return e.Text(HierarchyHeading, level) }
func (e *Engine) Description(level int) color.Color { return e.Text(HierarchyDescription, level) }
func (e *Engine) Value(level int) color.Color       { return e.Text(HierarchyValue, level) }

// Palette is a materialised copy of every color token for one snapshot.
type Palette struct {
	Brand        map[Shade]color.Color
	Gray         map[Shade]color.Color
	Roles        map[Role]color.Color
	Panels       [PanelLevels]color.Color
	Headings     [HierarchyLevels]color.Color
	Descriptions [HierarchyLevels]color.Color
	Values       [HierarchyLevels]color.Color
}

// Palette resolves every token against a single snapshot.
func (e *Engine) Palette() Palette {
	fixedEngine := New(e.src.Snapshot())

	p := Palette{
		Brand: make(map[Shade]color.Color, len(BrandShades)),
		Gray:  make(map[Shade]color.Color, len(GrayShades)),
		Roles: make(map[Role]color.Color, roleCount),
	}
	for _, shade := range BrandShades {
		p.Brand[shade] = fixedEngine.Brand(shade)
	}
	for _, shade := range GrayShades {
		p.Gray[shade] = fixedEngine.Gray(shade)
	}
	for _, role := range Roles() {
		p.Roles[role] = fixedEngine.Role(role)
	}
	for level := 0; level < PanelLevels; level++ {
		p.Panels[level] = fixedEngine.Panel(level)
	}
	for level := 1; level <= HierarchyLevels; level++ {
		p.Headings[level-1] = fixedEngine.Heading(level)
		p.Descriptions[level-1] = fixedEngine.Description(level)
		p.Values[level-1] = fixedEngine.Value(level)
	}
	return p
}
