// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// styledHelpFunc renders help output as markdown through glamour
func styledHelpFunc(cmd *cobra.Command, args []string) {
	printMarkdown(generateHelpMarkdown(cmd))
}

// styledUsageFunc renders usage output as markdown through glamour
func styledUsageFunc(cmd *cobra.Command) error {
	printMarkdown(generateUsageMarkdown(cmd))
	return nil
}

// GenerateHelpMarkdown creates markdown for the help output (exported for man page generation)
func GenerateHelpMarkdown(cmd *cobra.Command) string {
	return generateHelpMarkdown(cmd)
}

func generateHelpMarkdown(cmd *cobra.Command) string {
	var md strings.Builder

	fmt.Fprintf(&md, "# %s\n\n", cmd.Name())

	switch {
	case cmd.Long != "":
		fmt.Fprintf(&md, "%s\n\n", cmd.Long)
	case cmd.Short != "":
		fmt.Fprintf(&md, "%s\n\n", cmd.Short)
	}

	if cmd.Runnable() {
		fmt.Fprintf(&md, "## Usage\n\n```\n%s\n```\n\n", cmd.UseLine())
	}

	if len(cmd.Aliases) > 0 {
		fmt.Fprintf(&md, "## Aliases\n\n`%s`\n\n", strings.Join(cmd.Aliases, "`, `"))
	}

	if cmd.HasExample() {
		fmt.Fprintf(&md, "## Examples\n\n```\n%s\n```\n\n", cmd.Example)
	}

	writeCommandSections(&md, cmd, "##")

	var topics []string
	for _, sub := range cmd.Commands() {
		if sub.IsAdditionalHelpTopicCommand() {
			topics = append(topics, fmt.Sprintf("- **%s** - %s", sub.CommandPath(), sub.Short))
		}
	}
	if len(topics) > 0 {
		fmt.Fprintf(&md, "## Additional Help Topics\n\n%s\n\n", strings.Join(topics, "\n"))
	}

	fmt.Fprintf(&md, "Use `%s [command] --help` for more information about a command.\n", cmd.CommandPath())

	return md.String()
}

func generateUsageMarkdown(cmd *cobra.Command) string {
	var md strings.Builder

	md.WriteString("## Usage\n\n")
	if cmd.Runnable() {
		fmt.Fprintf(&md, "```\n%s\n```\n\n", cmd.UseLine())
	}

	writeCommandSections(&md, cmd, "###")

	return md.String()
}

// writeCommandSections writes the subcommand and flag sections at the given heading level
func writeCommandSections(md *strings.Builder, cmd *cobra.Command, heading string) {
	var subs []string
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() && !sub.IsAdditionalHelpTopicCommand() {
			subs = append(subs, fmt.Sprintf("- **%s** - %s", sub.Name(), sub.Short))
		}
	}
	if len(subs) > 0 {
		fmt.Fprintf(md, "%s Available Commands\n\n%s\n\n", heading, strings.Join(subs, "\n"))
	}

	if cmd.HasAvailableLocalFlags() {
		fmt.Fprintf(md, "%s Flags\n\n```\n%s\n```\n\n", heading, cmd.LocalFlags().FlagUsages())
	}

	if cmd.HasAvailableInheritedFlags() {
		fmt.Fprintf(md, "%s Global Flags\n\n```\n%s\n```\n\n", heading, cmd.InheritedFlags().FlagUsages())
	}
}

// printMarkdown renders markdown to stdout, falling back to plain text
func printMarkdown(markdown string) {
	rendered, err := RenderMarkdownToString(markdown)
	if err != nil {
		fmt.Println(markdown)
		return
	}

	fmt.Println(strings.TrimRight(rendered, " \n"))
}

// RenderMarkdownToString renders markdown through glamour and returns the string
func RenderMarkdownToString(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(terminalWidth()),
	)
	if err != nil {
		return "", err
	}

	return r.Render(markdown)
}

// terminalWidth returns the stdout width, or 100 when stdout is not a terminal
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 100
}
