package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designtokens/internal/color"
	"github.com/alexisbeaulieu97/designtokens/internal/palette"
	"github.com/alexisbeaulieu97/designtokens/internal/theme"
)

var nameStyle = lipgloss.NewStyle().Width(22)

func newPaletteCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show color swatches for the current parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, "command.palette")
			if err != nil {
				return err
			}
			renderPalette(cmd.OutOrStdout(), app.Tokens.Colors.Palette(), theme.New(app.Tokens))
			return nil
		},
	}

	return cmd
}

func renderPalette(w io.Writer, p palette.Palette, th theme.Theme) {
	headerStyle := th.Title.MarginTop(1)

	fmt.Fprintln(w, headerStyle.Render("Brand"))
	for _, shade := range palette.BrandShades {
		fmt.Fprintln(w, swatchLine(fmt.Sprintf("brand-%d", shade), p.Brand[shade]))
	}

	fmt.Fprintln(w, headerStyle.Render("Gray"))
	for _, shade := range palette.GrayShades {
		fmt.Fprintln(w, swatchLine(fmt.Sprintf("gray-%d", shade), p.Gray[shade]))
	}

	fmt.Fprintln(w, headerStyle.Render("Roles"))
	for _, role := range palette.Roles() {
		fmt.Fprintln(w, swatchLine(role.String(), p.Roles[role]))
	}

	fmt.Fprintln(w, headerStyle.Render("Panels"))
	for level, c := range p.Panels {
		fmt.Fprintln(w, swatchLine(fmt.Sprintf("panel-%d", level), c))
	}
}

func swatchLine(name string, c color.Color) string {
	block := lipgloss.NewStyle().Background(c.Lipgloss()).Render(strings.Repeat(" ", 6))
	return fmt.Sprintf("%s %s %s", nameStyle.Render(name), block, c.Hex())
}
