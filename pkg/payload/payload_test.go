// SPDX-License-Identifier: Apache-2.0
package payload

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Work-Fort/Ingot/pkg/download"
)

func TestEmbedded(t *testing.T) {
	p, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded() error: %v", err)
	}
	if p.Name != DefaultName {
		t.Errorf("expected name %s, got %s", DefaultName, p.Name)
	}
	if p.Size() == 0 {
		t.Error("expected embedded payload to be non-empty")
	}
	if p.DisplayVersion() != DefaultVersion {
		t.Errorf("expected version %s, got %s", DefaultVersion, p.DisplayVersion())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	data := []byte("MZ fake executable")

	plain := filepath.Join(dir, "tool.exe")
	if err := os.WriteFile(plain, data, 0644); err != nil {
		t.Fatal(err)
	}

	compressed, err := Compress(data)
	if err != nil {
		t.Fatal(err)
	}
	packed := filepath.Join(dir, "tool.exe.xz")
	if err := os.WriteFile(packed, compressed, 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{plain, packed} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			p, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if p.Name != "tool" {
				t.Errorf("expected name tool, got %s", p.Name)
			}
			if !bytes.Equal(p.Data, data) {
				t.Errorf("expected original bytes, got %q", p.Data)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	corrupt := filepath.Join(dir, "broken.xz")
	if err := os.WriteFile(corrupt, []byte("not xz"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "missing", path: filepath.Join(dir, "nope")},
		{name: "empty", path: empty},
		{name: "corrupt xz", path: corrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSemVer(t *testing.T) {
	tests := []struct {
		version string
		display string
		wantErr bool
	}{
		{version: "", display: "unversioned"},
		{version: "v1.2", display: "1.2.0"},
		{version: "2.0.0-rc1", display: "2.0.0-rc1"},
		{version: "banana", display: "unversioned", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			p := &Payload{Name: "demo", Version: tt.version}
			_, err := p.SemVer()
			if (err != nil) != tt.wantErr {
				t.Errorf("SemVer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := p.DisplayVersion(); got != tt.display {
				t.Errorf("DisplayVersion() = %s, want %s", got, tt.display)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	p := &Payload{Name: "demo", Data: []byte("abc")}
	// sha256("abc")
	const abc = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

	if got := p.SHA256(); got != abc {
		t.Fatalf("SHA256() = %s", got)
	}
	if err := p.Verify(strings.ToUpper(abc)); err != nil {
		t.Errorf("expected case-insensitive match, got %v", err)
	}
	if err := p.Verify(strings.Repeat("0", 64)); err == nil {
		t.Error("expected mismatch error")
	}
}

func TestVerifySums(t *testing.T) {
	p := &Payload{Name: "demo", Data: []byte("abc")}
	sums := filepath.Join(t.TempDir(), SumsFileName)
	content := "# release sums\n" + SumsLine(p.Data, "demo") + "\n" + SumsLine([]byte("x"), "*other") + "\n"
	if err := os.WriteFile(sums, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := p.VerifySums(sums, "demo"); err != nil {
		t.Errorf("expected demo to verify, got %v", err)
	}
	if err := p.VerifySums(sums, "other"); err == nil {
		t.Error("expected mismatch for other")
	}
	if err := p.VerifySums(sums, "missing"); err == nil {
		t.Error("expected error for missing entry")
	}
}

func TestParseSHA256SUMS(t *testing.T) {
	input := "aaa  plain\nbbb *binary\nmalformed\n\n"
	got, err := ParseSHA256SUMS(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got["plain"] != "aaa" || got["binary"] != "bbb" {
		t.Errorf("unexpected parse result: %v", got)
	}
}

func TestLoad_URL(t *testing.T) {
	data := []byte("remote-binary")
	packed, err := Compress(data)
	if err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/releases/tool.xz" {
			http.NotFound(w, r)
			return
		}
		w.Write(packed)
	}))
	defer srv.Close()

	p, err := Load(srv.URL + "/releases/tool.xz")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Name != "tool" || !bytes.Equal(p.Data, data) {
		t.Errorf("unexpected payload %s %q", p.Name, p.Data)
	}

	if _, err := Load(srv.URL + "/missing.xz"); err == nil {
		t.Error("expected error for 404")
	}
}

func TestLoadContext_DownloadOptions(t *testing.T) {
	data := []byte("authorized-binary")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	var last float64
	p, err := LoadContext(context.Background(), srv.URL+"/tool", &download.Options{
		Headers:          map[string]string{"Authorization": "Bearer token"},
		ProgressCallback: func(f float64) { last = f },
	})
	if err != nil {
		t.Fatalf("LoadContext() error: %v", err)
	}
	if !bytes.Equal(p.Data, data) {
		t.Errorf("unexpected data %q", p.Data)
	}
	if last != 1 {
		t.Errorf("expected progress to reach 1, got %v", last)
	}

	if _, err := LoadContext(context.Background(), srv.URL+"/tool", nil); err == nil {
		t.Error("expected error without the authorization header")
	}
}

func TestDecompress_SizeLimit(t *testing.T) {
	old := maxDecompressedSize
	maxDecompressedSize = 16
	t.Cleanup(func() { maxDecompressedSize = old })

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "under limit", size: 8},
		{name: "at limit", size: 16},
		{name: "over limit", size: 17, wantErr: true},
		{name: "far over limit", size: 4096, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed, err := Compress(bytes.Repeat([]byte{0}, tt.size))
			if err != nil {
				t.Fatal(err)
			}
			out, err := Decompress(packed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decompress() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(out) != tt.size {
				t.Errorf("expected %d bytes, got %d", tt.size, len(out))
			}
		})
	}
}
