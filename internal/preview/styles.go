package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/designtokens/internal/color"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	labelStyle   = lipgloss.NewStyle().Width(22)
	statusStyle  = lipgloss.NewStyle().Faint(true).MarginTop(1)
	helpStyle    = lipgloss.NewStyle().MarginTop(1)
)

// swatch renders a block filled with c.
func swatch(c color.Color, width int) string {
	return lipgloss.NewStyle().Background(c.Lipgloss()).Render(strings.Repeat(" ", width))
}
