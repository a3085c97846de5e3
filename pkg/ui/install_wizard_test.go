// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/Work-Fort/Ingot/pkg/wizard"
)

func newTestWizard(t *testing.T) (*wizard.Wizard, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return wizard.New([]byte("MZ-payload"), "/opt/demo", "demo", wizard.WithFs(fs)), fs
}

// update feeds msg to the model and returns the message produced by the
// resulting command, if it is a single command
func update(t *testing.T, m *InstallWizard, msg tea.Msg) tea.Msg {
	t.Helper()
	_, cmd := m.Update(msg)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestInstallWizard_HappyPath(t *testing.T) {
	w, fs := newTestWizard(t)
	m := NewInstallWizard(w)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if msg := update(t, m, tea.KeyMsg{Type: tea.KeyEnter}); msg != (frameMsg{}) {
		t.Fatalf("expected a frame request after proceed, got %#v", msg)
	}
	if _, ok := w.Phase().(wizard.InstallationPhase); !ok {
		t.Fatalf("expected installation phase, got %s", w.Phase())
	}
	if w.Installed() {
		t.Fatal("install must not run before the installation frame")
	}

	update(t, m, frameMsg{})
	if !w.Installed() {
		t.Fatal("expected install to run on the installation frame")
	}
	if _, err := afero.ReadFile(fs, w.TargetPath()); err != nil {
		t.Fatalf("expected installed file: %v", err)
	}
	if !strings.Contains(m.View(), "Installation log") {
		t.Error("expected installation log view")
	}

	update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := w.Phase().(wizard.SuccessPhase); !ok {
		t.Fatalf("expected success phase, got %s", w.Phase())
	}
	if !strings.Contains(m.View(), "installed successfully") {
		t.Error("expected success message in view")
	}

	update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if msg := update(t, m, frameMsg{}); msg != (tea.QuitMsg{}) {
		t.Fatalf("expected quit after finish, got %#v", msg)
	}
	if m.View() != "" {
		t.Error("expected empty view after quitting")
	}
}

func TestInstallWizard_CancelQuits(t *testing.T) {
	w, fs := newTestWizard(t)
	m := NewInstallWizard(w)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if !w.Done() {
		t.Fatal("expected wizard to reach finish on esc")
	}
	if msg := update(t, m, frameMsg{}); msg != (tea.QuitMsg{}) {
		t.Fatalf("expected quit, got %#v", msg)
	}
	if exists, _ := afero.Exists(fs, w.TargetPath()); exists {
		t.Error("cancel at start must not install")
	}
}

func TestInstallWizard_ErrorPhase(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := wizard.New([]byte("MZ"), "/opt/demo", "demo", wizard.WithFs(fs))
	if err := afero.WriteFile(fs, w.TargetPath(), []byte("old"), 0755); err != nil {
		t.Fatal(err)
	}
	m := NewInstallWizard(w)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	update(t, m, frameMsg{})

	if _, ok := w.Phase().(wizard.ErrorPhase); !ok {
		t.Fatalf("expected error phase, got %s", w.Phase())
	}
	if m.tabs[tabInstall].State != TabError {
		t.Error("expected install tab in error state")
	}
	view := m.View()
	if !strings.Contains(view, "could not be installed") || !strings.Contains(view, "already installed") {
		t.Errorf("expected error detail in view:\n%s", view)
	}
}

func TestInstallWizard_TypingUpdatesDestination(t *testing.T) {
	w, _ := newTestWizard(t)
	m := NewInstallWizard(w)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/x")})

	if w.Destination() != "/opt/demo/x" {
		t.Errorf("expected destination to follow the path field, got %q", w.Destination())
	}
	if !strings.Contains(m.View(), "Install demo to:") {
		t.Error("expected directory prompt in view")
	}
}

func TestInstallWizard_FolderPicked(t *testing.T) {
	w, _ := newTestWizard(t)
	m := NewInstallWizard(w)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	update(t, m, FolderPickedMsg{Path: "/srv/apps"})

	if w.Destination() != "/srv/apps" || m.pathInput.Value() != "/srv/apps" {
		t.Errorf("expected picked folder as destination, got %q / %q", w.Destination(), m.pathInput.Value())
	}
}

func TestInstallWizard_InitializingView(t *testing.T) {
	w, _ := newTestWizard(t)
	m := NewInstallWizard(w)

	if m.View() != "Initializing..." {
		t.Errorf("expected initializing view before the first size, got %q", m.View())
	}
}

func TestInstallWizard_CtrlCInFolderPicker(t *testing.T) {
	w, fs := newTestWizard(t)
	m := NewInstallWizard(w)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.picker == nil {
		t.Fatal("expected ctrl+o to open the folder picker")
	}

	msg := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if msg != (FolderPickerQuitMsg{}) {
		t.Fatalf("expected the picker to report a quit, got %#v", msg)
	}
	if msg := update(t, m, msg); msg != (frameMsg{}) {
		t.Fatalf("expected a frame request after cancel, got %#v", msg)
	}
	if m.picker != nil || !w.Done() {
		t.Fatalf("expected picker closed and wizard finished, picker=%v phase=%s", m.picker != nil, w.Phase())
	}
	if msg := update(t, m, frameMsg{}); msg != (tea.QuitMsg{}) {
		t.Fatalf("expected quit, got %#v", msg)
	}
	if exists, _ := afero.Exists(fs, w.TargetPath()); exists {
		t.Error("cancel from the picker must not install")
	}
}

func TestFolderPicker_EscClosesWithoutCancelling(t *testing.T) {
	p := NewFolderPicker(t.TempDir())
	if msg := p.Update(tea.KeyMsg{Type: tea.KeyEsc})(); msg != (FolderPickerClosedMsg{}) {
		t.Errorf("expected close message, got %#v", msg)
	}
}
