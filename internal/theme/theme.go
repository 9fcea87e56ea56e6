// Package theme turns a token snapshot into lipgloss styles for terminal
// rendering: text, panels, buttons and alerts.
package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/designtokens/internal/palette"
	"github.com/alexisbeaulieu97/designtokens/internal/spacing"
	"github.com/alexisbeaulieu97/designtokens/internal/tokens"
	"github.com/alexisbeaulieu97/designtokens/internal/typography"
)

// CellWidth is how many points one terminal column stands for.
const CellWidth = 8.0

// ButtonVariant selects the role pair a button is painted with.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonAccent
	ButtonMuted
)

// AlertVariant selects the status color an alert is painted with.
type AlertVariant int

const (
	AlertSuccess AlertVariant = iota
	AlertWarning
	AlertDanger
	AlertInfo
)

var buttonRoles = map[ButtonVariant][2]palette.Role{
	ButtonPrimary:   {palette.RolePrimary, palette.RolePrimaryForeground},
	ButtonSecondary: {palette.RoleSecondary, palette.RoleSecondaryForeground},
	ButtonAccent:    {palette.RoleAccent, palette.RoleAccentForeground},
	ButtonMuted:     {palette.RoleMuted, palette.RoleMutedForeground},
}

var alertRoles = map[AlertVariant]palette.Role{
	AlertSuccess: palette.RoleSuccess,
	AlertWarning: palette.RoleWarning,
	AlertDanger:  palette.RoleDanger,
	AlertInfo:    palette.RoleInfo,
}

// Theme is every style for one snapshot of the tokens.
type Theme struct {
	Base        lipgloss.Style
	Title       lipgloss.Style
	Headings    [typography.HeadingLevels]lipgloss.Style
	Description lipgloss.Style
	Value       lipgloss.Style
	Panels      [palette.PanelLevels]lipgloss.Style
	Card        lipgloss.Style
	Border      lipgloss.Border
	Buttons     map[ButtonVariant]lipgloss.Style
	Alerts      map[AlertVariant]lipgloss.Style
}

// New derives a Theme from the current value of t. Later changes to the
// source are not reflected; build a new Theme per render.
func New(t *tokens.Tokens) Theme {
	fixed := tokens.New(t.Config())
	c := fixed.Colors
	border := BorderFor(fixed.Space.BorderWidth(), fixed.Space.Radius(spacing.RadiusMD))
	pad := Cells(fixed.Space.Spacing(spacing.SpaceSM))

	th := Theme{
		Base:        lipgloss.NewStyle().Foreground(c.Foreground().Lipgloss()).Background(c.Background().Lipgloss()),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(c.Heading(1).Lipgloss()),
		Description: lipgloss.NewStyle().Foreground(c.Description(1).Lipgloss()),
		Value:       lipgloss.NewStyle().Foreground(c.Value(1).Lipgloss()),
		Card: lipgloss.NewStyle().
			Border(border).
			BorderForeground(c.Border().Lipgloss()).
			Background(c.Card().Lipgloss()).
			Padding(0, pad),
		Border:  border,
		Buttons: make(map[ButtonVariant]lipgloss.Style, len(buttonRoles)),
		Alerts:  make(map[AlertVariant]lipgloss.Style, len(alertRoles)),
	}

	for level := 1; level <= typography.HeadingLevels; level++ {
		weight := typography.WeightRegular
		if level <= 3 {
			weight = typography.WeightBold
		}
		th.Headings[level-1] = lipgloss.NewStyle().
			Bold(weight >= typography.WeightSemibold).
			Foreground(c.Heading(level).Lipgloss())
	}

	for level := 0; level < palette.PanelLevels; level++ {
		th.Panels[level] = lipgloss.NewStyle().Background(c.Panel(level).Lipgloss()).Padding(0, pad)
	}

	for variant, roles := range buttonRoles {
		th.Buttons[variant] = lipgloss.NewStyle().
			Background(c.Role(roles[0]).Lipgloss()).
			Foreground(c.Role(roles[1]).Lipgloss()).
			Padding(0, max(pad, 1)).
			Bold(true)
	}

	for variant, role := range alertRoles {
		th.Alerts[variant] = lipgloss.NewStyle().
			Border(border, false, false, false, true).
			BorderForeground(c.Role(role).Lipgloss()).
			Foreground(c.Role(role).Lipgloss()).
			PaddingLeft(1)
	}

	return th
}

// Cells converts a size in points to whole terminal columns.
func Cells(points float64) int {
	if points <= 0 {
		return 0
	}
	return int(math.Round(points / CellWidth))
}

// BorderFor picks the terminal border closest to a border width and corner
// radius: thicker lines for higher contrast, rounded corners when the
// radius is visible.
func BorderFor(width, radius float64) lipgloss.Border {
	switch {
	case width >= 3:
		return lipgloss.DoubleBorder()
	case width >= 2:
		return lipgloss.ThickBorder()
	case radius > 0:
		return lipgloss.RoundedBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

// Button renders label as a button.
func (th Theme) Button(variant ButtonVariant, label string) string {
	style, ok := th.Buttons[variant]
	if !ok {
		style = th.Buttons[ButtonPrimary]
	}
	return style.Render(label)
}

// Alert renders a titled message with a status accent.
func (th Theme) Alert(variant AlertVariant, title, message string) string {
	style, ok := th.Alerts[variant]
	if !ok {
		style = th.Alerts[AlertInfo]
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lipgloss.NewStyle().Bold(true).Render(title), message))
}
