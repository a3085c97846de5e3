// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Work-Fort/Ingot/pkg/config"
)

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set configuration value",
		Long: `Set a configuration key to a value.

Boolean values support natural language:
  - true:  true, yes, on, enable, enabled
  - false: false, no, off, disable, disabled`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: keyCompletions,
		Example: `  ingot config set install.dir /opt/tools
  ingot config set install.receipt off
  ingot config set --global log-level info`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			s := scope()
			if err := config.SetConfigValue(key, value, s); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s (%s: %s)\n", key, value, s, s.ConfigPath())
			return nil
		},
	}

	addGlobalFlag(cmd)
	return cmd
}
