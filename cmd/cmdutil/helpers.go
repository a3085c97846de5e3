// SPDX-License-Identifier: Apache-2.0
package cmdutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/Work-Fort/Ingot/pkg/config"
	"github.com/Work-Fort/Ingot/pkg/payload"
)

// IsTerminal reports whether stdin is connected to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsInteractive checks if stdin is connected to a terminal AND the user wants TUI mode
func IsInteractive() bool {
	return IsTerminal() && config.GetUseTUI()
}

// PrintLog writes wizard log text to stdout, one line per entry
func PrintLog(text string) {
	for _, line := range strings.Split(strings.TrimPrefix(text, "\n"), "\n") {
		fmt.Println("  " + line)
	}
}

// DescribePayload returns a one-line summary such as "demo-app 1.2.0 (4.1 kB)"
func DescribePayload(p *payload.Payload) string {
	return fmt.Sprintf("%s %s (%s)", p.Name, p.DisplayVersion(), humanize.Bytes(uint64(p.Size())))
}
