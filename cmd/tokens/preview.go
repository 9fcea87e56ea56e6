package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/designtokens/internal/preview"
)

var errNotInteractive = errors.New("preview requires an interactive terminal")

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Adjust the parameters interactively and watch the tokens change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNotInteractive
			}

			app, err := newAppContext(cmd, root, "command.preview")
			if err != nil {
				return err
			}

			m := preview.NewModel(app.Store)
			defer m.Close()

			app.Log.Info("launching preview")
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				app.Log.Error(err, "preview failed")
				return fmt.Errorf("run preview: %w", err)
			}
			return nil
		},
	}

	return cmd
}
