package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/designtokens/internal/color"
	"github.com/alexisbeaulieu97/designtokens/internal/palette"
	"github.com/alexisbeaulieu97/designtokens/internal/theme"
	"github.com/alexisbeaulieu97/designtokens/internal/typography"
)

// View renders the current tokens. Nothing is kept between renders.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	t := m.tokens
	cfg := t.Config()
	c := t.Colors

	title := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(c.PrimaryForeground().Lipgloss()).
		Background(c.Primary().Lipgloss()).
		Render("Design tokens")

	sections := []string{title}

	sections = append(sections, sectionStyle.Render("Brand"), ramp(palette.BrandShades, c.Brand))
	sections = append(sections, sectionStyle.Render("Gray"), ramp(palette.GrayShades, c.Gray))

	sections = append(sections, sectionStyle.Render("Roles"))
	for _, role := range palette.Roles() {
		value := c.Role(role)
		sections = append(sections, fmt.Sprintf("%s %s %s", labelStyle.Render(role.String()), swatch(value, 4), value.Hex()))
	}

	var panels []string
	for level := 0; level < palette.PanelLevels; level++ {
		panels = append(panels, swatch(c.Panel(level), 4))
	}
	sections = append(sections, sectionStyle.Render("Panels"), strings.Join(panels, ""))

	th := theme.New(t)
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		th.Button(theme.ButtonPrimary, "Primary"), " ",
		th.Button(theme.ButtonSecondary, "Secondary"), " ",
		th.Button(theme.ButtonAccent, "Accent"), " ",
		th.Button(theme.ButtonMuted, "Muted"))
	alerts := lipgloss.JoinHorizontal(lipgloss.Top,
		th.Alert(theme.AlertSuccess, "Success", "Saved"), "  ",
		th.Alert(theme.AlertWarning, "Warning", "Check input"), "  ",
		th.Alert(theme.AlertDanger, "Danger", "Failed"), "  ",
		th.Alert(theme.AlertInfo, "Info", "Heads up"))
	card := th.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		th.Title.Render("Card"),
		th.Description.Render("Description text"),
		th.Value.Render("42 items")))
	sections = append(sections, sectionStyle.Render("Components"), buttons, alerts, card)

	sections = append(sections, sectionStyle.Render("Type"))
	for level := 1; level <= typography.HeadingLevels; level++ {
		size := t.Type.HeadingSize(level)
		heading := th.Headings[level-1].Render(fmt.Sprintf("H%d", level))
		sections = append(sections, fmt.Sprintf("%s %5.1fpt  leading %4.1f  tracking %4.2f",
			heading, size, t.Type.LineSpacing(size), t.Type.LetterSpacing(size)))
	}

	mode := "light"
	if cfg.DarkMode {
		mode = "dark"
	}
	status := fmt.Sprintf("hue %.0f  saturation %.0f  scale %.2f/%.2f/%.2f  %s  contrast %s  font %s  spacing %s  line %s",
		cfg.BrandHue, cfg.BrandSaturation, cfg.SpacingScale, cfg.RadiusScale, cfg.FontScale, mode,
		cfg.Contrast, cfg.FontSize, cfg.LetterSpacing, cfg.LineHeight)
	if m.activity.notifications > 0 {
		status += fmt.Sprintf("  (%d changes, last %s)", m.activity.notifications, m.activity.last)
	}
	sections = append(sections, statusStyle.Render(status))
	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func ramp(shades []palette.Shade, shade func(palette.Shade) color.Color) string {
	var b strings.Builder
	for _, s := range shades {
		b.WriteString(swatch(shade(s), 3))
	}
	return b.String()
}
