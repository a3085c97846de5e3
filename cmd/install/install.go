// SPDX-License-Identifier: Apache-2.0
package install

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Work-Fort/Ingot/cmd/cmdutil"
	"github.com/Work-Fort/Ingot/pkg/config"
	"github.com/Work-Fort/Ingot/pkg/download"
	"github.com/Work-Fort/Ingot/pkg/payload"
	"github.com/Work-Fort/Ingot/pkg/receipt"
	"github.com/Work-Fort/Ingot/pkg/ui"
	"github.com/Work-Fort/Ingot/pkg/wizard"
)

// Options holds the install command's non-config flags
type Options struct {
	PayloadPath   string
	SHA256        string
	ChecksumsPath string
	Yes           bool

	// Only used when PayloadPath is a URL
	Headers         []string
	DownloadTimeout time.Duration
}

// NewInstallCmd creates the install command
func NewInstallCmd() *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the application",
		Long: `Install the application executable into a folder.

In a terminal the install wizard asks for the destination folder, copies the
executable and shows the result. With --use-tui=false a single confirmation
prompt is shown instead. Without a terminal, or with --yes, the install runs
straight away.

The executable is written as <dir>/<name>, with .exe appended on Windows.
An existing file is never overwritten.`,
		Example: `  # Install the bundled application with the wizard
  ingot install

  # Install into a specific folder without prompting
  ingot install --dir ~/bin --yes

  # Install a packed payload after checking it against SHA256SUMS
  ingot install --payload dist/demo-app.xz --checksums dist/SHA256SUMS`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return config.BindInstallFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringP("dir", "d", "", "Destination folder (default: platform program folder)")
	cmd.Flags().String("name", "", "Installed file name without extension (default: payload name)")
	cmd.Flags().String("app-version", "", "Version recorded for the payload")
	cmd.Flags().Bool("receipt", true, "Write an install receipt next to the executable")
	cmd.Flags().StringVar(&opts.PayloadPath, "payload", "", "Install this executable file or http(s) URL instead of the bundled one (.xz supported)")
	cmd.Flags().StringVar(&opts.SHA256, "sha256", "", "Expected SHA256 of the executable")
	cmd.Flags().StringVar(&opts.ChecksumsPath, "checksums", "", "SHA256SUMS file to verify the payload against")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Install without prompting")
	cmd.Flags().StringArrayVarP(&opts.Headers, "header", "H", nil, "HTTP header for a URL payload as 'Name: value' (repeatable)")
	cmd.Flags().DurationVar(&opts.DownloadTimeout, "download-timeout", 5*time.Minute, "Timeout for downloading a URL payload")

	return cmd
}

func runInstall(ctx context.Context, opts Options) error {
	p, err := loadPayload(ctx, opts)
	if err != nil {
		return err
	}

	w := newWizard(afero.NewOsFs(), p)
	log.Infof("Installing %s into %s", cmdutil.DescribePayload(p), w.Destination())

	switch {
	case cmdutil.IsInteractive() && !opts.Yes:
		if err := ui.RunInstallWizard(w); err != nil {
			return err
		}
	case cmdutil.IsTerminal() && !opts.Yes:
		confirmed, err := ui.Confirm(
			fmt.Sprintf("Install %s to %s?", w.AppName(), w.Destination()),
			cmdutil.DescribePayload(p),
		)
		if err != nil && !errors.Is(err, ui.ErrUserCancelled) {
			return err
		}
		if !confirmed {
			w.Cancel()
			break
		}
		runHeadless(w)
	default:
		runHeadless(w)
	}

	return report(w)
}

// loadPayload returns the bundled or --payload executable after verifying
// any checksum given on the command line
func loadPayload(ctx context.Context, opts Options) (*payload.Payload, error) {
	var (
		p   *payload.Payload
		err error
	)
	if opts.PayloadPath != "" {
		dl, dlErr := downloadOptions(opts)
		if dlErr != nil {
			return nil, dlErr
		}
		p, err = payload.LoadContext(ctx, opts.PayloadPath, dl)
	} else {
		p, err = payload.Embedded()
	}
	if err != nil {
		return nil, err
	}

	if v := config.GetAppVersion(); v != "" {
		p.Version = v
	}
	if _, err := p.SemVer(); err != nil {
		return nil, err
	}

	if opts.SHA256 != "" {
		if err := p.Verify(opts.SHA256); err != nil {
			return nil, err
		}
	}

	if opts.ChecksumsPath != "" {
		if err := p.VerifySums(opts.ChecksumsPath, sumsEntryName(opts.PayloadPath, p)); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// downloadOptions builds the HTTP settings for a URL payload
func downloadOptions(opts Options) (*download.Options, error) {
	headers, err := parseHeaders(opts.Headers)
	if err != nil {
		return nil, err
	}

	dl := &download.Options{
		Headers:          headers,
		ProgressCallback: progressLogger(opts.PayloadPath),
	}
	if opts.DownloadTimeout > 0 {
		dl.Client = &http.Client{Timeout: opts.DownloadTimeout}
	}
	return dl, nil
}

// parseHeaders turns "Name: value" flags into a header map
func parseHeaders(raw []string) (map[string]string, error) {
	headers := make(map[string]string, len(raw))
	for _, h := range raw {
		name, value, ok := strings.Cut(h, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q: expected 'Name: value'", h)
		}
		headers[name] = strings.TrimSpace(value)
	}
	return headers, nil
}

// progressLogger logs download progress in 10% steps
func progressLogger(url string) download.ProgressCallback {
	lastStep := -1
	return func(percent float64) {
		step := int(percent * 10)
		if step == lastStep {
			return
		}
		lastStep = step
		log.Debugf("Downloading %s: %d%%", url, step*10)
	}
}

// sumsEntryName is the SHA256SUMS entry for a payload: the executable's file
// name, as written by "ingot pack"
func sumsEntryName(payloadPath string, p *payload.Payload) string {
	if payloadPath == "" {
		return p.Name
	}
	return strings.TrimSuffix(path.Base(filepath.ToSlash(payloadPath)), payload.CompressedExt)
}

// newWizard builds the wizard from config and registers its hooks
func newWizard(fs afero.Fs, p *payload.Payload) *wizard.Wizard {
	name := config.GetAppName()
	if name == "" {
		name = p.Name
	}

	w := wizard.New(p.Data, config.GetInstallDir(), name, wizard.WithFs(fs))

	w.SetPreInstallHook(func() string {
		return fmt.Sprintf("\nInstalling %s", cmdutil.DescribePayload(p))
	})
	if config.GetInstallReceipt() {
		w.SetPostInstallHook(receipt.Hook(fs, w, p))
	}

	return w
}

// runHeadless drives the wizard without a UI and streams its log
func runHeadless(w *wizard.Wizard) {
	_ = w.Run() // reported by report
	cmdutil.PrintLog(w.Log())
}

// report prints the outcome and returns the install error, if any
func report(w *wizard.Wizard) error {
	theme := config.CurrentTheme

	if err := w.Result(); err != nil {
		return err
	}

	if !w.Installed() {
		fmt.Println(theme.WarningMessage("Installation cancelled"))
		return nil
	}

	fmt.Println(theme.SuccessMessage(fmt.Sprintf("Installed %s to %s", w.AppName(), w.TargetPath())))
	return nil
}
