package palette

import (
	"github.com/alexisbeaulieu97/designtokens/internal/a11y"
	"github.com/alexisbeaulieu97/designtokens/internal/color"
)

// Role is a semantic or functional color slot.
type Role int

const (
	RoleBackground Role = iota
	RoleForeground
	RoleCard
	RolePopover
	RoleBorder
	RoleInput
	RoleRing
	RolePrimary
	RolePrimaryForeground
	RoleSecondary
	RoleSecondaryForeground
	RoleMuted
	RoleMutedForeground
	RoleAccent
	RoleAccentForeground
	RoleSuccess
	RoleWarning
	RoleDanger
	RoleInfo

	roleCount
)

// RoleError is an alias for RoleDanger.
const RoleError = RoleDanger

// fallbackRole resolves any Role outside the table.
const fallbackRole = RoleForeground

var roleNames = [roleCount]string{
	RoleBackground:          "background",
	RoleForeground:          "foreground",
	RoleCard:                "card",
	RolePopover:             "popover",
	RoleBorder:              "border",
	RoleInput:               "input",
	RoleRing:                "ring",
	RolePrimary:             "primary",
	RolePrimaryForeground:   "primary-foreground",
	RoleSecondary:           "secondary",
	RoleSecondaryForeground: "secondary-foreground",
	RoleMuted:               "muted",
	RoleMutedForeground:     "muted-foreground",
	RoleAccent:              "accent",
	RoleAccentForeground:    "accent-foreground",
	RoleSuccess:             "success",
	RoleWarning:             "warning",
	RoleDanger:              "danger",
	RoleInfo:                "info",
}

func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return "unknown"
	}
	return roleNames[r]
}

// Roles lists every role in declaration order.
func Roles() []Role {
	roles := make([]Role, 0, roleCount)
	for r := Role(0); r < roleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

// resolver computes one color from a snapshot.
type resolver func(s scope) color.Color

// rule is one step of a precedence chain. A rule with a nil predicate is
// terminal and always applies.
type rule struct {
	name    string
	applies func(a11y.Settings) bool
	resolve resolver
}

// chain is evaluated in order; the first applicable rule wins. Every chain
// built by precedence ends in a terminal rule.
type chain []rule

func (ch chain) resolve(s scope) color.Color {
	for _, r := range ch {
		if r.applies == nil || r.applies(s.settings) {
			return r.resolve(s)
		}
	}
	return s.gray(DefaultShade)
}

// precedence builds the ultra → high → default chain every role follows.
func precedence(ultra, high, normal resolver) chain {
	return chain{
		{name: "ultra", applies: a11y.Settings.Ultra, resolve: ultra},
		{name: "high", applies: a11y.Settings.High, resolve: high},
		{name: "default", resolve: normal},
	}
}

func fixed(c color.Color) resolver {
	return func(scope) color.Color { return c }
}

// byMode picks between a light-mode and a dark-mode resolver.
func byMode(light, dark resolver) resolver {
	return func(s scope) color.Color {
		if s.cfg.DarkMode {
			return dark(s)
		}
		return light(s)
	}
}

func brand(shade Shade) resolver {
	return func(s scope) color.Color { return s.brand(shade) }
}

func gray(shade Shade) resolver {
	return func(s scope) color.Color { return s.gray(shade) }
}

func tone(st status, lightness float64) resolver {
	return func(scope) color.Color { return color.HSL(st.hue, st.saturation, lightness) }
}

func statusChain(st status) chain {
	return precedence(
		tone(st, statusUltraL),
		byMode(tone(st, statusLightHighL), tone(st, statusDarkHighL)),
		byMode(tone(st, statusLightL), tone(st, statusDarkL)),
	)
}

var (
	white = fixed(color.PureWhite)
	black = fixed(color.Black)
)

// roleChains is the single place role colors are defined.
var roleChains = [roleCount]chain{
	RoleBackground: precedence(
		white,
		byMode(white, black),
		gray(Shade50),
	),
	RoleForeground: precedence(
		black,
		gray(Shade950),
		gray(Shade900),
	),
	RoleCard: precedence(
		white,
		byMode(white, gray(Shade50)),
		byMode(white, gray(Shade100)),
	),
	RolePopover: precedence(
		white,
		byMode(white, gray(Shade50)),
		byMode(white, gray(Shade100)),
	),
	RoleBorder: precedence(
		black,
		byMode(gray(Shade500), gray(Shade400)),
		gray(Shade200),
	),
	RoleInput: precedence(
		black,
		byMode(gray(Shade600), gray(Shade500)),
		gray(Shade300),
	),
	RoleRing: precedence(
		black,
		byMode(brand(Shade700), brand(Shade300)),
		byMode(brand(Shade500), brand(Shade400)),
	),
	RolePrimary: precedence(
		black,
		byMode(brand(Shade700), brand(Shade300)),
		byMode(brand(Shade500), brand(Shade400)),
	),
	RolePrimaryForeground: precedence(
		white,
		byMode(white, black),
		byMode(white, gray(Shade50)),
	),
	RoleSecondary: precedence(
		white,
		byMode(gray(Shade200), gray(Shade300)),
		gray(Shade100),
	),
	RoleSecondaryForeground: precedence(
		black,
		gray(Shade950),
		gray(Shade900),
	),
	RoleMuted: precedence(
		white,
		gray(Shade200),
		gray(Shade100),
	),
	RoleMutedForeground: precedence(
		black,
		byMode(gray(Shade700), gray(Shade800)),
		byMode(gray(Shade500), gray(Shade600)),
	),
	RoleAccent: precedence(
		white,
		byMode(brand(Shade200), brand(Shade700)),
		byMode(brand(Shade100), brand(Shade800)),
	),
	RoleAccentForeground: precedence(
		black,
		gray(Shade950),
		byMode(brand(Shade900), brand(Shade50)),
	),
	RoleSuccess: statusChain(statusSuccess),
	RoleWarning: statusChain(statusWarning),
	RoleDanger:  statusChain(statusDanger),
	RoleInfo:    statusChain(statusInfo),
}
