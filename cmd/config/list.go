// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Work-Fort/Ingot/pkg/config"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all configuration values",
		Long: `List all configuration values with their sources.

Output format: key = value (source)`,
		Example: `  ingot config list

  # Example output:
  # app.name =  (default)
  # install.dir = /home/me/.local/bin (default)
  # use-tui = false (from ENV: INGOT_USE_TUI)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := config.ListConfigValues()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(values) == 0 {
				fmt.Fprintln(out, "No configuration set")
				return nil
			}

			for _, cv := range values {
				fmt.Fprintf(out, "%s = %v (%s)\n", cv.Key, cv.Value, cv.Source)
			}

			fmt.Fprintln(out, "\n"+config.CurrentTheme.SubtleStyle().Render("Configuration precedence: ENV > local config > user config > defaults"))
			return nil
		},
	}
}
