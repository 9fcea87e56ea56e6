package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designtokens/internal/config"
	"github.com/alexisbeaulieu97/designtokens/internal/tokens"
)

func newDiffCmd(root *rootFlags) *cobra.Command {
	var against string

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show which tokens the current parameters change",
		Long: `Compare the tokens derived from the current parameters with those of the
defaults, or of another preset given with --against.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, "command.diff")
			if err != nil {
				return err
			}

			base := config.Default()
			label := "defaults"
			if against != "" {
				preset, err := config.ParsePreset(against)
				if err != nil {
					app.Log.Error(err, "baseline preset rejected", "path", against)
					return fmt.Errorf("load baseline: %w", err)
				}
				base = preset.Config(base)
				label = against
			}

			out, err := tokens.Diff(tokens.New(base).Snapshot(), app.Tokens.Snapshot(), label, "current")
			if err != nil {
				return err
			}
			if out == "" {
				app.Log.Info("no token differs from baseline", "baseline", label)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&against, "against", "", "Baseline preset (defaults when empty)")

	return cmd
}
