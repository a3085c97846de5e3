// SPDX-License-Identifier: Apache-2.0
package wizard

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Install copies the payload to TargetPath.
//
// The existence check is not atomic; the file is opened with O_EXCL so a
// file created in between is reported as an IOError rather than replaced.
// Nothing is rolled back on failure: a directory created before a failed
// write stays in place.
func (w *Wizard) Install() error {
	if strings.TrimSpace(w.destination) == "" {
		return &IOError{Op: OpCreateDir, Err: errEmptyDestination}
	}

	target := w.TargetPath()
	if info, err := w.fs.Stat(target); err == nil && !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrAlreadyInstalled, target)
	}

	if err := w.fs.MkdirAll(w.destination, 0755); err != nil {
		return &IOError{Op: OpCreateDir, Path: w.destination, Err: err}
	}
	w.log += fmt.Sprintf("\nCreating app folder:\n%s", w.destination)
	log.Debugf("Created install directory %s", w.destination)

	if err := w.writePayload(target); err != nil {
		return &IOError{Op: OpWrite, Path: target, Err: err}
	}
	w.log += "\nCopying executable to folder"
	log.Infof("Installed %s (%d bytes) to %s", w.appName, len(w.payload), target)

	return nil
}

func (w *Wizard) writePayload(target string) error {
	f, err := w.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0755)
	if err != nil {
		return err
	}

	if _, err := f.Write(w.payload); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
