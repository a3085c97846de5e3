// SPDX-License-Identifier: Apache-2.0
package payload

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/ulikunitz/xz"

	"github.com/Work-Fort/Ingot/pkg/download"
)

// CompressedExt marks xz-compressed payload files
const CompressedExt = ".xz"

// maxDecompressedSize caps the unpacked size of a compressed payload
var maxDecompressedSize int64 = download.MaxSize

// Compress returns data xz-compressed
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	xzWriter, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz writer: %w", err)
	}

	if _, err := xzWriter.Write(data); err != nil {
		xzWriter.Close()
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	if err := xzWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush compressed data: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress returns the xz-decompressed contents of data
func Decompress(data []byte) ([]byte, error) {
	xzReader, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}

	out, err := io.ReadAll(io.LimitReader(xzReader, maxDecompressedSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	if int64(len(out)) > maxDecompressedSize {
		return nil, fmt.Errorf("decompressed payload exceeds %d bytes", maxDecompressedSize)
	}
	return out, nil
}

// CompressFile writes src xz-compressed to dst and returns the compressed bytes
func CompressFile(src, dst string) ([]byte, error) {
	log.Debugf("Compressing %s to %s", src, dst)

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}

	compressed, err := Compress(data)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(dst, compressed, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", dst, err)
	}

	log.Debugf("Compressed %s: %d -> %d bytes", src, len(data), len(compressed))
	return compressed, nil
}
