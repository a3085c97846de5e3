// SPDX-License-Identifier: Apache-2.0
package info

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/Work-Fort/Ingot/pkg/config"
	"github.com/Work-Fort/Ingot/pkg/payload"
	"github.com/Work-Fort/Ingot/pkg/receipt"
	"github.com/Work-Fort/Ingot/pkg/wizard"
)

func TestPrintInfo(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.InitViper()
	viper.Set("install.dir", "/opt/tools")

	fs := afero.NewMemMapFs()
	p := &payload.Payload{Name: "demo", Data: []byte("MZ")}

	if err := printInfo(fs, p); err != nil {
		t.Fatalf("printInfo() without receipt: %v", err)
	}

	if err := fs.MkdirAll("/opt/tools", 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := receipt.Write(fs, "/opt/tools", receipt.Receipt{App: "demo", SHA256: p.SHA256(), InstalledAt: time.Now()}); err != nil {
		t.Fatal(err)
	}
	if err := printInfo(fs, p); err != nil {
		t.Fatalf("printInfo() with receipt: %v", err)
	}
}

func TestLoadPayload_Embedded(t *testing.T) {
	p, err := loadPayload("")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != payload.DefaultName {
		t.Errorf("expected embedded payload, got %s", p.Name)
	}
}

func TestInstallStatus(t *testing.T) {
	p := &payload.Payload{Name: "demo", Data: []byte("MZ")}
	writeReceipt := func(fs afero.Fs, sum string) {
		if _, err := receipt.Write(fs, "/opt/tools", receipt.Receipt{App: "demo", Version: "1.0.0", SHA256: sum, InstalledAt: time.Now()}); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name  string
		setup func(fs afero.Fs)
		want  string
	}{
		{
			name:  "nothing installed",
			setup: func(fs afero.Fs) {},
			want:  "Not installed in this folder",
		},
		{
			name: "installed without receipt",
			setup: func(fs afero.Fs) {
				afero.WriteFile(fs, "/opt/tools/demo"+wizard.ExecutableExt, p.Data, 0755)
			},
			want: "demo is installed here without a receipt",
		},
		{
			name: "corrupt receipt",
			setup: func(fs afero.Fs) {
				afero.WriteFile(fs, "/opt/tools/demo"+wizard.ExecutableExt, p.Data, 0755)
				afero.WriteFile(fs, receipt.PathFor("/opt/tools", "demo"), []byte("app: [unclosed"), 0644)
			},
			want: "Install receipt is unreadable",
		},
		{
			name: "matching install",
			setup: func(fs afero.Fs) {
				afero.WriteFile(fs, "/opt/tools/demo"+wizard.ExecutableExt, p.Data, 0755)
				writeReceipt(fs, p.SHA256())
			},
			want: "Installed demo 1.0.0",
		},
		{
			name: "different payload",
			setup: func(fs afero.Fs) {
				afero.WriteFile(fs, "/opt/tools/demo"+wizard.ExecutableExt, []byte("old"), 0755)
				writeReceipt(fs, "0000")
			},
			want: "Installed file differs from this payload",
		},
		{
			name: "receipt without executable",
			setup: func(fs afero.Fs) {
				fs.MkdirAll("/opt/tools", 0755)
				writeReceipt(fs, p.SHA256())
			},
			want: "the executable is missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			tt.setup(fs)
			w := wizard.New(p.Data, "/opt/tools", "demo", wizard.WithFs(fs))

			if got := installStatus(fs, w, p); !strings.Contains(got, tt.want) {
				t.Errorf("installStatus() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
