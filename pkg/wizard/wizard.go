// SPDX-License-Identifier: Apache-2.0
package wizard

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Hook is a caller-supplied step run at a fixed point of the install.
// The returned text is appended to the wizard log.
type Hook func() string

// Wizard drives a single install through its phases.
// It is not safe for concurrent use; the host calls it from its UI loop.
type Wizard struct {
	fs          afero.Fs
	payload     []byte
	destination string
	appName     string
	log         string

	preInstall  Hook
	postInstall Hook

	phase   Phase
	started bool // installation entry has run
	ready   bool // proceed is enabled this frame

	installErr error
}

// Option configures a Wizard
type Option func(*Wizard)

// WithFs installs onto the given filesystem instead of the OS one
func WithFs(fs afero.Fs) Option {
	return func(w *Wizard) {
		w.fs = fs
	}
}

// New creates a wizard for payload. An empty destination falls back to
// DefaultInstallDir.
func New(payload []byte, destination, appName string, opts ...Option) *Wizard {
	if destination == "" {
		destination = DefaultInstallDir()
	}

	w := &Wizard{
		fs:          afero.NewOsFs(),
		payload:     payload,
		destination: destination,
		appName:     appName,
		phase:       StartPhase{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// SetPreInstallHook registers the hook run right before the file is copied
func (w *Wizard) SetPreInstallHook(h Hook) {
	w.preInstall = h
}

// SetPostInstallHook registers the hook run after a successful copy
func (w *Wizard) SetPostInstallHook(h Hook) {
	w.postInstall = h
}

// AppName returns the application name
func (w *Wizard) AppName() string {
	return w.appName
}

// Destination returns the chosen install directory
func (w *Wizard) Destination() string {
	return w.destination
}

// SetDestination replaces the install directory verbatim.
// It reports false once installation has begun.
func (w *Wizard) SetDestination(dir string) bool {
	if _, ok := w.phase.(StartPhase); !ok {
		return false
	}
	w.destination = dir
	return true
}

// TargetPath returns the full path of the file the install writes
func (w *Wizard) TargetPath() string {
	return filepath.Join(w.destination, w.appName+ExecutableExt)
}

// Log returns the installation transcript
func (w *Wizard) Log() string {
	return w.log
}

// Phase returns the current phase
func (w *Wizard) Phase() Phase {
	return w.phase
}

// Ready reports whether the proceed control is enabled
func (w *Wizard) Ready() bool {
	return w.ready
}

// Done reports whether the wizard reached FinishPhase
func (w *Wizard) Done() bool {
	_, ok := w.phase.(FinishPhase)
	return ok
}

// Installed reports whether the payload was written successfully
func (w *Wizard) Installed() bool {
	return w.started && w.installErr == nil
}

// Result returns the install error, or nil when the install succeeded or
// never ran.
func (w *Wizard) Result() error {
	return w.installErr
}

// ProceedLabel returns the caption of the proceed control
func (w *Wizard) ProceedLabel() string {
	switch w.phase.(type) {
	case StartPhase:
		return "Install"
	case InstallationPhase:
		return "Next"
	default:
		return "Finish"
	}
}

// Frame runs one host update. Entering InstallationPhase for the first
// time performs the install synchronously.
func (w *Wizard) Frame() {
	w.ready = true

	if _, ok := w.phase.(InstallationPhase); ok && !w.started {
		w.enterInstallation()
	}
}

// Proceed advances to the next phase. It does nothing and returns false
// when proceed is disabled; the flag is re-armed by the next Frame.
func (w *Wizard) Proceed() bool {
	if !w.ready {
		return false
	}

	from := w.phase
	w.phase = Next(from)
	w.ready = false
	log.Debugf("wizard: %s -> %s", from, w.phase)
	return true
}

// Cancel jumps straight to FinishPhase
func (w *Wizard) Cancel() {
	log.Debugf("wizard: cancelled in %s", w.phase)
	w.phase = FinishPhase{}
}

// Run drives the wizard to FinishPhase without a UI, proceeding whenever
// allowed, and returns the install error.
func (w *Wizard) Run() error {
	for !w.Done() {
		w.Frame()
		w.Proceed()
	}
	return w.installErr
}

func (w *Wizard) enterInstallation() {
	w.started = true
	w.ready = false
	defer func() { w.ready = true }()

	if h := w.takeHook(&w.preInstall); h != nil {
		w.log += h()
	}

	if err := w.Install(); err != nil {
		log.Errorf("install of %s failed: %v", w.appName, err)
		w.installErr = err
		w.phase = ErrorPhase{Err: err}
		return
	}

	if h := w.takeHook(&w.postInstall); h != nil {
		w.log += h()
	}
}

// takeHook returns the hook in slot and clears it
func (w *Wizard) takeHook(slot *Hook) Hook {
	h := *slot
	*slot = nil
	return h
}
