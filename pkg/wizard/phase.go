// SPDX-License-Identifier: Apache-2.0
package wizard

// Phase is one state of the installer. The set is closed: only the types in
// this file implement it.
type Phase interface {
	String() string
	isPhase()
}

// StartPhase is where the user chooses the destination directory
type StartPhase struct{}

// InstallationPhase runs the install the first time it is rendered
type InstallationPhase struct{}

// SuccessPhase is reached after a successful install
type SuccessPhase struct{}

// ErrorPhase carries the reason the install failed
type ErrorPhase struct {
	Err error
}

// FinishPhase is terminal; the host closes once it sees it
type FinishPhase struct{}

func (StartPhase) isPhase()        {}
func (InstallationPhase) isPhase() {}
func (SuccessPhase) isPhase()      {}
func (ErrorPhase) isPhase()        {}
func (FinishPhase) isPhase()       {}

func (StartPhase) String() string        { return "start" }
func (InstallationPhase) String() string { return "installation" }
func (SuccessPhase) String() string      { return "success" }
func (ErrorPhase) String() string        { return "error" }
func (FinishPhase) String() string       { return "finish" }

// Detail returns the human-readable failure message
func (p ErrorPhase) Detail() string {
	if p.Err == nil {
		return ""
	}
	return p.Err.Error()
}

// Next returns the phase reached by the proceed action.
// Installation always leads to Success here: a failed install has already
// replaced the phase with ErrorPhase before the user can proceed.
// Calling Next on FinishPhase panics.
func Next(p Phase) Phase {
	switch p.(type) {
	case StartPhase:
		return InstallationPhase{}
	case InstallationPhase:
		return SuccessPhase{}
	case SuccessPhase, ErrorPhase:
		return FinishPhase{}
	case FinishPhase:
		panic("wizard: no phase after finish")
	default:
		panic("wizard: unknown phase")
	}
}
