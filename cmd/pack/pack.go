// SPDX-License-Identifier: Apache-2.0
package pack

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Work-Fort/Ingot/pkg/config"
	"github.com/Work-Fort/Ingot/pkg/payload"
)

// NewPackCmd creates the pack command
func NewPackCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "pack <executable>",
		Short: "Compress an executable for use with install --payload",
		Long: `Compress an executable with xz and record its checksum.

Writes <executable>.xz into the output folder and appends the executable's
SHA256 to SHA256SUMS there, so it can be installed with:

  ingot install --payload <out>/<executable>.xz --checksums <out>/SHA256SUMS`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dst, err := Pack(args[0], outDir)
			if err != nil {
				return err
			}
			fmt.Println(config.CurrentTheme.SuccessMessage("Packed " + dst))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", ".", "Output folder")

	return cmd
}

// Pack compresses src into outDir and appends its entry to SHA256SUMS.
// The entry hashes the uncompressed executable under its own file name.
func Pack(src, outDir string) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("failed to read executable: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("executable %s is empty", src)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output folder: %w", err)
	}

	name := filepath.Base(src)
	dst := filepath.Join(outDir, name+payload.CompressedExt)
	if _, err := payload.CompressFile(src, dst); err != nil {
		return "", err
	}

	sumsPath := filepath.Join(outDir, payload.SumsFileName)
	f, err := os.OpenFile(sumsPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", sumsPath, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, payload.SumsLine(data, name)); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", sumsPath, err)
	}

	log.Infof("Packed %s into %s", src, dst)
	return dst, nil
}
