// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Work-Fort/Ingot/pkg/config"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Get configuration value",
		Long: `Get a configuration value and show its source.

The source is one of, in precedence order:
  - ENV: Environment variable (INGOT_*)
  - ./ingot.yaml
  - ~/.config/ingot/config.yaml
  - default`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: keyCompletions,
		Example: `  ingot config get install.dir

  # Output shows value and source:
  # install.dir = /home/me/bin (from ./ingot.yaml)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := config.GetConfigValue(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s = %v (%s)\n", cv.Key, cv.Value, cv.Source)
			return nil
		},
	}
}
