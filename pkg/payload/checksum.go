// SPDX-License-Identifier: Apache-2.0
package payload

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// SumsFileName is the conventional name of a checksums file
const SumsFileName = "SHA256SUMS"

// SHA256 returns the hex-encoded SHA256 of the payload bytes
func (p *Payload) SHA256() string {
	sum := sha256.Sum256(p.Data)
	return hex.EncodeToString(sum[:])
}

// Verify compares the payload hash against an expected hex digest
func (p *Payload) Verify(expected string) error {
	got := p.SHA256()
	if !strings.EqualFold(got, strings.TrimSpace(expected)) {
		return fmt.Errorf("checksum mismatch for %s: expected %s, got %s", p.Name, expected, got)
	}
	log.Debugf("Checksum verified for %s", p.Name)
	return nil
}

// VerifySums looks up filename in a SHA256SUMS file and verifies the payload against it
func (p *Payload) VerifySums(sumsPath, filename string) error {
	checksums, err := ParseSHA256SUMSFile(sumsPath)
	if err != nil {
		return fmt.Errorf("failed to read checksums file: %w", err)
	}

	expected, found := checksums[filename]
	if !found {
		return fmt.Errorf("file %s not found in checksums", filename)
	}
	return p.Verify(expected)
}

// ParseSHA256SUMSFile parses a SHA256SUMS file and returns a map of filename -> hash
func ParseSHA256SUMSFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open checksums file: %w", err)
	}
	defer file.Close()

	return ParseSHA256SUMS(file)
}

// ParseSHA256SUMS parses "hash  filename" or "hash *filename" lines
func ParseSHA256SUMS(r io.Reader) (map[string]string, error) {
	checksums := make(map[string]string)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}

		// Leading * marks binary mode
		checksums[strings.TrimPrefix(parts[1], "*")] = parts[0]
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read checksums: %w", err)
	}

	return checksums, nil
}

// SumsLine formats a SHA256SUMS entry for data stored under filename
func SumsLine(data []byte, filename string) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]) + "  " + filename
}
