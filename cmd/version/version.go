// SPDX-License-Identifier: Apache-2.0
package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command
func NewVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the current version of ingot.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ingot version %s\n", orDev(version))
		},
	}
}

// orDev returns "dev" for builds without a version set
func orDev(version string) string {
	if version == "" {
		return "dev"
	}
	return version
}
