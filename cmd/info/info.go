// SPDX-License-Identifier: Apache-2.0
package info

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Work-Fort/Ingot/pkg/config"
	"github.com/Work-Fort/Ingot/pkg/payload"
	"github.com/Work-Fort/Ingot/pkg/receipt"
	"github.com/Work-Fort/Ingot/pkg/wizard"
)

// NewInfoCmd creates the info command
func NewInfoCmd() *cobra.Command {
	var payloadPath string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show what would be installed and where",
		Long: `Show the payload, the install target and, if the application is
already installed there, the recorded install receipt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPayload(payloadPath)
			if err != nil {
				return err
			}
			return printInfo(afero.NewOsFs(), p)
		},
	}

	cmd.Flags().StringVar(&payloadPath, "payload", "", "Describe this executable instead of the bundled one")

	return cmd
}

func loadPayload(path string) (*payload.Payload, error) {
	if path != "" {
		return payload.Load(path)
	}
	return payload.Embedded()
}

// printInfo shows the payload and target; fs is where receipts are looked up
func printInfo(fs afero.Fs, p *payload.Payload) error {
	name := config.GetAppName()
	if name == "" {
		name = p.Name
	}
	w := wizard.New(p.Data, config.GetInstallDir(), name, wizard.WithFs(fs))

	fmt.Printf("Payload:   %s\n", p.Name)
	fmt.Printf("Version:   %s\n", p.DisplayVersion())
	fmt.Printf("Size:      %d bytes\n", p.Size())
	fmt.Printf("SHA256:    %s\n", p.SHA256())
	fmt.Printf("Target:    %s\n", w.TargetPath())

	fmt.Println()
	fmt.Println(installStatus(fs, w, p))
	return nil
}

// installStatus reports whether w's target is installed and what its receipt says
func installStatus(fs afero.Fs, w *wizard.Wizard, p *payload.Payload) string {
	theme := config.CurrentTheme

	installed, err := afero.Exists(fs, w.TargetPath())
	if err != nil {
		return theme.WarningMessage(fmt.Sprintf("Could not check %s: %v", w.TargetPath(), err))
	}

	receiptPath := receipt.PathFor(w.Destination(), w.AppName())
	hasReceipt, err := afero.Exists(fs, receiptPath)
	if err != nil {
		return theme.WarningMessage(fmt.Sprintf("Could not check %s: %v", receiptPath, err))
	}

	switch {
	case !installed && !hasReceipt:
		return theme.SubtleStyle().Render("Not installed in this folder")
	case !hasReceipt:
		return theme.InfoMessage(fmt.Sprintf("%s is installed here without a receipt", w.AppName()))
	}

	r, err := receipt.Read(fs, receiptPath)
	if err != nil {
		return theme.WarningMessage(fmt.Sprintf("Install receipt is unreadable: %v", err))
	}

	lines := []string{theme.InfoMessage(fmt.Sprintf("Installed %s %s on %s", r.App, r.Version, r.InstalledAt.Local().Format("2006-01-02 15:04")))}
	if !installed {
		lines = append(lines, theme.WarningMessage("Receipt found but the executable is missing"))
	} else if r.SHA256 != p.SHA256() {
		lines = append(lines, theme.WarningMessage("Installed file differs from this payload"))
	}
	return strings.Join(lines, "\n")
}
