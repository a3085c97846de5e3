// SPDX-License-Identifier: Apache-2.0
package wizard

import (
	"errors"
	"fmt"
)

// ErrAlreadyInstalled is returned when the target file already exists
var ErrAlreadyInstalled = errors.New("app already installed")

// errEmptyDestination is wrapped in an IOError when no directory was chosen
var errEmptyDestination = errors.New("destination directory is empty")

// Operations reported by IOError
const (
	OpCreateDir = "create directory"
	OpWrite     = "write"
)

// IOError reports a filesystem failure while installing
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
