// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// shellCompletion describes one completion subcommand
type shellCompletion struct {
	shell string
	setup string // %[1]s is the program name
	gen   func(root *cobra.Command, w io.Writer, descriptions bool) error
}

var shellCompletions = []shellCompletion{
	{
		shell: "bash",
		setup: `This script depends on the 'bash-completion' package.

To load completions in your current shell session:

	source <(%[1]s completion bash)

To load completions for every new session, execute once:

	%[1]s completion bash > /etc/bash_completion.d/%[1]s`,
		gen: func(root *cobra.Command, w io.Writer, descriptions bool) error {
			return root.GenBashCompletionV2(w, descriptions)
		},
	},
	{
		shell: "zsh",
		setup: `If shell completion is not already enabled in your environment, execute once:

	echo "autoload -U compinit; compinit" >> ~/.zshrc

To load completions for every new session, execute once:

	%[1]s completion zsh > "${fpath[1]}/_%[1]s"`,
		gen: func(root *cobra.Command, w io.Writer, descriptions bool) error {
			if !descriptions {
				return root.GenZshCompletionNoDesc(w)
			}
			return root.GenZshCompletion(w)
		},
	},
	{
		shell: "fish",
		setup: `To load completions in your current shell session:

	%[1]s completion fish | source

To load completions for every new session, execute once:

	%[1]s completion fish > ~/.config/fish/completions/%[1]s.fish`,
		gen: func(root *cobra.Command, w io.Writer, descriptions bool) error {
			return root.GenFishCompletion(w, descriptions)
		},
	},
	{
		shell: "powershell",
		setup: `To load completions in your current shell session:

	%[1]s completion powershell | Out-String | Invoke-Expression

To load completions for every new session, add the output of the above
command to your PowerShell profile.`,
		gen: func(root *cobra.Command, w io.Writer, descriptions bool) error {
			if !descriptions {
				return root.GenPowerShellCompletion(w)
			}
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// newCompletionCmd replaces cobra's default completion command.
// The installer runs on Windows too, so PowerShell is included.
func newCompletionCmd(root *cobra.Command) *cobra.Command {
	completionCmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate the autocompletion script for the specified shell",
		Long: fmt.Sprintf(`Generate the autocompletion script for %s for the specified shell.
See each sub-command's help for details on how to use the generated script.
`, root.Name()),
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
	}

	for _, sc := range shellCompletions {
		sc := sc
		var noDesc bool

		sub := &cobra.Command{
			Use:   sc.shell,
			Short: fmt.Sprintf("Generate the autocompletion script for %s", sc.shell),
			Long: fmt.Sprintf("Generate the autocompletion script for the %s shell.\n\n", sc.shell) +
				fmt.Sprintf(sc.setup, root.Name()) +
				"\n\nYou will need to start a new shell for this setup to take effect.\n",
			Args:                  cobra.NoArgs,
			DisableFlagsInUseLine: true,
			ValidArgsFunction:     cobra.NoFileCompletions,
			RunE: func(cmd *cobra.Command, args []string) error {
				return sc.gen(cmd.Root(), os.Stdout, !noDesc)
			},
		}
		sub.Flags().BoolVar(&noDesc, "no-descriptions", false, "disable completion descriptions")

		completionCmd.AddCommand(sub)
	}

	return completionCmd
}
