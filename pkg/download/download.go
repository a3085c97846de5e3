// SPDX-License-Identifier: Apache-2.0
package download

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// MaxSize caps how much a payload download may read
const MaxSize = 512 << 20

// ProgressCallback is called periodically during download with current progress
// percent is a float between 0 and 1 representing completion percentage
type ProgressCallback func(percent float64)

// Options configures the download
type Options struct {
	ProgressCallback ProgressCallback
	Headers          map[string]string
	Client           *http.Client // http.DefaultClient with a timeout when nil
}

// IsURL reports whether s names an http or https resource
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Bytes downloads url into memory
func Bytes(ctx context.Context, url string, opts *Options) ([]byte, error) {
	log.Debugf("Downloading %s", url)

	if opts == nil {
		opts = &Options{}
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Minute}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}
	if resp.ContentLength > MaxSize {
		return nil, fmt.Errorf("download too large: %d bytes", resp.ContentLength)
	}

	var body io.Reader = io.LimitReader(resp.Body, MaxSize+1)
	if opts.ProgressCallback != nil && resp.ContentLength > 0 {
		body = &progressReader{r: body, total: resp.ContentLength, callback: opts.ProgressCallback}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return nil, fmt.Errorf("failed to read: %w", err)
	}
	if buf.Len() > MaxSize {
		return nil, fmt.Errorf("download too large: more than %d bytes", MaxSize)
	}

	log.Debugf("Download complete: %s (%d bytes)", url, buf.Len())
	return buf.Bytes(), nil
}

// progressReader reports the fraction of total read so far
type progressReader struct {
	r        io.Reader
	total    int64
	read     int64
	callback ProgressCallback
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	if n > 0 {
		pr.read += int64(n)
		pr.callback(float64(pr.read) / float64(pr.total))
	}
	return n, err
}
