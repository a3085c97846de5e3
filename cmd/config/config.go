// SPDX-License-Identifier: Apache-2.0
package config

import (
	"github.com/spf13/cobra"

	"github.com/Work-Fort/Ingot/pkg/config"
)

var (
	// globalFlag determines whether to operate on user config vs local config
	globalFlag bool
)

// NewConfigCmd creates the config command and its subcommands
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ingot configuration",
		Long: `Manage ingot configuration settings.

Configuration precedence (highest to lowest):
  1. Environment variables (INGOT_*)
  2. Local config (./ingot.yaml)
  3. User config (~/.config/ingot/config.yaml)
  4. Defaults

set and unset operate on the local config unless --global is given.`,
		Example: `  # Always install into ~/bin from this folder
  ingot config set install.dir ~/bin

  # Prefer the plain prompt over the wizard
  ingot config set --global use-tui false

  # Show a value and where it comes from
  ingot config get install.dir

  # List all configuration
  ingot config list`,
	}

	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newUnsetCmd())

	return cmd
}

// addGlobalFlag adds the --global flag to a command
func addGlobalFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&globalFlag, "global", false, "Operate on user config instead of local config")
}

// scope returns the config scope selected by --global
func scope() config.ConfigScope {
	if globalFlag {
		return config.ScopeUser
	}
	return config.ScopeLocal
}

// keyCompletions completes registered configuration keys
func keyCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.KnownKeys(), cobra.ShellCompDirectiveNoFileComp
}
