package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designtokens/internal/tokens"
)

func newExportCmd(root *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print every derived token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := tokens.ParseFormat(format)
			if err != nil {
				return fmt.Errorf("--format: %w", err)
			}

			app, err := newAppContext(cmd, root, "command.export")
			if err != nil {
				return err
			}

			snap := app.Tokens.Snapshot()
			if err := snap.Encode(cmd.OutOrStdout(), f); err != nil {
				app.Log.Error(err, "export failed", "format", string(f))
				return err
			}
			app.Log.Debug("tokens exported", "format", string(f))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(tokens.FormatYAML), "Output format (yaml|json)")

	return cmd
}
