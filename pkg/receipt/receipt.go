// SPDX-License-Identifier: Apache-2.0
package receipt

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/Work-Fort/Ingot/pkg/payload"
	"github.com/Work-Fort/Ingot/pkg/wizard"
)

// FileSuffix is appended to the application name to form the receipt file name
const FileSuffix = ".receipt.yaml"

// Receipt records what an install put on disk
type Receipt struct {
	App         string
	Version     string
	Path        string
	SHA256      string
	Size        int
	InstalledAt time.Time
}

// PathFor returns the receipt location for app installed in dir
func PathFor(dir, app string) string {
	return filepath.Join(dir, app+FileSuffix)
}

// Write stores r next to the installed executable and returns its path
func Write(fs afero.Fs, dir string, r Receipt) (string, error) {
	path := PathFor(dir, r.App)

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("yaml")

	v.Set("app.name", r.App)
	v.Set("app.version", r.Version)
	v.Set("install.path", r.Path)
	v.Set("install.sha256", r.SHA256)
	v.Set("install.size", r.Size)
	v.Set("install.time", r.InstalledAt.UTC().Format(time.RFC3339))

	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("failed to write receipt %s: %w", path, err)
	}

	log.Debugf("Wrote receipt %s", path)
	return path, nil
}

// Read loads a receipt written by Write
func Read(fs afero.Fs, path string) (Receipt, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return Receipt{}, fmt.Errorf("failed to read receipt %s: %w", path, err)
	}

	installedAt, err := time.Parse(time.RFC3339, v.GetString("install.time"))
	if err != nil {
		return Receipt{}, fmt.Errorf("invalid install time in %s: %w", path, err)
	}

	return Receipt{
		App:         v.GetString("app.name"),
		Version:     v.GetString("app.version"),
		Path:        v.GetString("install.path"),
		SHA256:      v.GetString("install.sha256"),
		Size:        v.GetInt("install.size"),
		InstalledAt: installedAt,
	}, nil
}

// Hook returns a post-install hook that writes a receipt for p into the
// wizard's destination. A write failure is reported in the returned text.
func Hook(fs afero.Fs, w *wizard.Wizard, p *payload.Payload) wizard.Hook {
	return func() string {
		path, err := Write(fs, w.Destination(), Receipt{
			App:         w.AppName(),
			Version:     p.DisplayVersion(),
			Path:        w.TargetPath(),
			SHA256:      p.SHA256(),
			Size:        p.Size(),
			InstalledAt: time.Now(),
		})
		if err != nil {
			log.Warnf("receipt: %v", err)
			return fmt.Sprintf("\nCould not write install receipt: %v", err)
		}
		return fmt.Sprintf("\nWrote install receipt:\n%s", path)
	}
}
