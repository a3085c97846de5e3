// SPDX-License-Identifier: Apache-2.0
package payload

import (
	"context"
	_ "embed"
	"fmt"
	"net/url"
	"os"
	pathpkg "path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-version"

	"github.com/Work-Fort/Ingot/pkg/download"
)

// DefaultName is the application name of the embedded payload
const DefaultName = "demo-app"

// DefaultVersion is the version of the embedded payload
const DefaultVersion = "0.1.0"

// embeddedApp contains the program installed when no payload file is given.
// Release builds replace embedded/demo-app before compiling.
//
//go:embed embedded/demo-app
var embeddedApp []byte

// Payload is an executable to install together with its metadata
type Payload struct {
	Name    string
	Version string
	Data    []byte
}

// Embedded returns the payload compiled into the installer
func Embedded() (*Payload, error) {
	if len(embeddedApp) == 0 {
		return nil, fmt.Errorf("no payload embedded in this installer")
	}
	return &Payload{
		Name:    DefaultName,
		Version: DefaultVersion,
		Data:    embeddedApp,
	}, nil
}

// Load reads a payload from disk or an http(s) URL. Files ending in .xz
// are decompressed. The name is the file name without its .xz and
// executable extensions.
func Load(path string) (*Payload, error) {
	return LoadContext(context.Background(), path, nil)
}

// LoadContext is Load with a context and options for URL downloads.
// dl may be nil.
func LoadContext(ctx context.Context, path string, dl *download.Options) (*Payload, error) {
	log.Debugf("Loading payload from %s", path)

	data, err := readSource(ctx, path, dl)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	if strings.HasSuffix(path, CompressedExt) {
		data, err = Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress payload %s: %w", path, err)
		}
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("payload %s is empty", path)
	}

	return &Payload{
		Name: NameFromPath(path),
		Data: data,
	}, nil
}

func readSource(ctx context.Context, path string, dl *download.Options) ([]byte, error) {
	if download.IsURL(path) {
		return download.Bytes(ctx, path, dl)
	}
	return os.ReadFile(path)
}

// NameFromPath derives an application name from a payload file name or URL
func NameFromPath(path string) string {
	name := filepath.Base(path)
	if download.IsURL(path) {
		if u, err := url.Parse(path); err == nil {
			name = pathpkg.Base(u.Path)
		}
	}
	name = strings.TrimSuffix(name, CompressedExt)
	name = strings.TrimSuffix(name, ".exe")
	return name
}

// Size returns the payload size in bytes
func (p *Payload) Size() int {
	return len(p.Data)
}

// SemVer parses the payload version. An empty version is not an error and
// returns nil.
func (p *Payload) SemVer() (*version.Version, error) {
	if p.Version == "" {
		return nil, nil
	}
	v, err := version.NewVersion(p.Version)
	if err != nil {
		return nil, fmt.Errorf("invalid payload version %q: %w", p.Version, err)
	}
	return v, nil
}

// DisplayVersion returns the canonical version string, or "unversioned"
func (p *Payload) DisplayVersion() string {
	v, err := p.SemVer()
	if err != nil || v == nil {
		return "unversioned"
	}
	return v.String()
}
