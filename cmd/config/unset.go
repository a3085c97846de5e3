// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Work-Fort/Ingot/pkg/config"
)

func newUnsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset [key]",
		Short: "Remove configuration value",
		Long: `Remove a configuration key from a config file.

Removing a parent key such as 'install' removes all keys below it.
Environment variables and defaults still apply after removal.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: keyCompletions,
		Example: `  ingot config unset install.dir
  ingot config unset --global use-tui`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			s := scope()
			if err := config.UnsetConfigValue(key, s); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s config (%s)\n", key, s, s.ConfigPath())
			return nil
		},
	}

	addGlobalFlag(cmd)
	return cmd
}
