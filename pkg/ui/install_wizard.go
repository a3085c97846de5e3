// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Work-Fort/Ingot/pkg/config"
	"github.com/Work-Fort/Ingot/pkg/wizard"
)

// Tab indexes, one per screen the user steps through
const (
	tabDirectory = iota
	tabInstall
	tabResult
)

// frameMsg asks for another frame without user input
type frameMsg struct{}

func nextFrame() tea.Msg {
	return frameMsg{}
}

// InstallWizard hosts a wizard.Wizard in a Bubble Tea program.
// Every Update is one frame of the wizard.
type InstallWizard struct {
	width  int
	height int

	wizard *wizard.Wizard
	tabs   []Tab

	pathInput textinput.Model
	logView   viewport.Model
	picker    *FolderPicker

	quitting bool
}

// NewInstallWizard creates the host model for w
func NewInstallWizard(w *wizard.Wizard) *InstallWizard {
	theme := config.CurrentTheme

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.GetSecondaryColor())

	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = wizard.DefaultInstallDir()
	ti.SetValue(w.Destination())
	ti.CursorEnd()
	ti.CharLimit = 4096
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.GetPrimaryColor())
	ti.Focus()

	m := &InstallWizard{
		wizard: w,
		tabs: []Tab{
			{Title: "Directory", State: TabActive},
			{Title: "Install", State: TabPending, Spinner: s, Busy: true},
			{Title: "Result", State: TabPending},
		},
		pathInput: ti,
		logView:   viewport.New(0, 0),
	}
	m.syncTabs()
	return m
}

// Init starts the cursor blink, the tab spinner and the first frame
func (m *InstallWizard) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tabs[tabInstall].Spinner.Tick, nextFrame)
}

// Update runs one wizard frame and then handles msg
func (m *InstallWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.wizard.Frame()
	if m.wizard.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	m.syncTabs()
	m.syncLog()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentWidth, contentHeight := contentSize(m.width, m.height)
		// pane padding takes 4 columns and 2 rows, the log title 2 more rows
		m.logView.Width = contentWidth - 4
		m.logView.Height = max(contentHeight-4, 1)
		m.pathInput.Width = contentWidth - 8

		log.Debugf("InstallWizard WindowSize: %dx%d, log view %dx%d", m.width, m.height, m.logView.Width, m.logView.Height)
		if m.picker != nil {
			return m, m.picker.Update(msg)
		}
		return m, nil

	case FolderPickedMsg:
		m.picker = nil
		if m.wizard.SetDestination(msg.Path) {
			m.pathInput.SetValue(msg.Path)
			m.pathInput.CursorEnd()
			log.Debugf("Destination picked: %s", msg.Path)
		}
		return m, m.pathInput.Focus()

	case FolderPickerClosedMsg:
		m.picker = nil
		return m, m.pathInput.Focus()

	case FolderPickerQuitMsg:
		m.picker = nil
		log.Debugf("InstallWizard cancelled from the folder picker")
		m.wizard.Cancel()
		return m, nextFrame

	case frameMsg:
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.tabs[tabInstall].Spinner, cmd = m.tabs[tabInstall].Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.picker != nil {
			return m, m.picker.Update(msg)
		}
		return m.handleKey(msg)
	}

	// Directory listings and other async picker results
	if m.picker != nil {
		return m, m.picker.Update(msg)
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

// handleKey dispatches a key press outside the folder picker
func (m *InstallWizard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bindings := WizardKeyBindings(m.wizard.Phase(), m.wizard.ProceedLabel())

	if binding := bindings.Contains(msg.String()); binding != nil {
		switch binding.Key {
		case KeyCancel:
			log.Debugf("InstallWizard cancelled in phase %s", m.wizard.Phase())
			m.wizard.Cancel()
			return m, nextFrame

		case KeyProceed:
			if !m.wizard.Proceed() {
				return m, nil
			}
			m.pathInput.Blur()
			return m, nextFrame

		case KeyBrowse:
			m.picker = NewFolderPicker(m.wizard.Destination())
			m.pathInput.Blur()
			cmds := []tea.Cmd{m.picker.Init()}
			if m.width > 0 {
				cmds = append(cmds, m.picker.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height}))
			}
			return m, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	switch m.wizard.Phase().(type) {
	case wizard.StartPhase:
		m.pathInput, cmd = m.pathInput.Update(msg)
		m.wizard.SetDestination(m.pathInput.Value())
	case wizard.InstallationPhase:
		m.logView, cmd = m.logView.Update(msg)
	}
	return m, cmd
}

// syncTabs mirrors the wizard phase onto the tab row
func (m *InstallWizard) syncTabs() {
	dir, inst, result := &m.tabs[tabDirectory], &m.tabs[tabInstall], &m.tabs[tabResult]

	switch m.wizard.Phase().(type) {
	case wizard.StartPhase:
		dir.State, inst.State, result.State = TabActive, TabPending, TabPending
	case wizard.InstallationPhase:
		dir.State, inst.State, result.State = TabComplete, TabActive, TabPending
	case wizard.SuccessPhase:
		dir.State, inst.State, result.State = TabComplete, TabComplete, TabComplete
	case wizard.ErrorPhase:
		dir.State, inst.State, result.State = TabComplete, TabError, TabError
	}
}

// syncLog copies the wizard log into the viewport, following the tail
func (m *InstallWizard) syncLog() {
	content := strings.TrimPrefix(m.wizard.Log(), "\n")
	if m.logView.Width > 0 {
		content = lipgloss.NewStyle().Width(m.logView.Width).Render(content)
	}
	m.logView.SetContent(content)
	m.logView.GotoBottom()
}

// activeTab returns the tab index shown for the current phase
func (m *InstallWizard) activeTab() int {
	switch m.wizard.Phase().(type) {
	case wizard.StartPhase:
		return tabDirectory
	case wizard.InstallationPhase:
		return tabInstall
	default:
		return tabResult
	}
}

// View renders the wizard
func (m *InstallWizard) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.picker != nil {
		return m.picker.View(m.width, m.height)
	}

	theme := config.CurrentTheme

	header := theme.RenderHeader(m.width, strings.ToUpper(m.wizard.AppName())+" INSTALLER", m.wizard.Phase().String())

	contentWidth, contentHeight := contentSize(m.width, m.height)
	contentPane := RenderTabContent(m.phaseContent(), contentWidth, contentHeight)

	tabsRow := RenderTabs(m.tabs, TabsConfig{
		ActiveIndex: m.activeTab(),
		Width:       lipgloss.Width(contentPane),
	})

	footer := theme.RenderFooter(m.width, m.controls())

	return FillTerminal(lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		tabsRow,
		contentPane,
		"",
		footer,
	), m.width, m.height)
}

// phaseContent renders the body of the content pane
func (m *InstallWizard) phaseContent() string {
	theme := config.CurrentTheme
	title := lipgloss.NewStyle().Foreground(theme.GetPrimaryColor()).Bold(true)

	switch phase := m.wizard.Phase().(type) {
	case wizard.StartPhase:
		return lipgloss.JoinVertical(lipgloss.Left,
			title.Render(fmt.Sprintf("Install %s to:", m.wizard.AppName())),
			"",
			m.pathInput.View(),
			"",
			theme.SubtleStyle().Render("Target file: "+m.wizard.TargetPath()),
			theme.SubtleStyle().Render("Press ctrl+o to browse for a folder."),
		)

	case wizard.InstallationPhase:
		return lipgloss.JoinVertical(lipgloss.Left,
			title.Render("Installation log"),
			"",
			m.logView.View(),
		)

	case wizard.SuccessPhase:
		return lipgloss.JoinVertical(lipgloss.Left,
			theme.SuccessMessage(fmt.Sprintf("%s was installed successfully.", m.wizard.AppName())),
			"",
			theme.SubtleStyle().Render(m.wizard.TargetPath()),
		)

	case wizard.ErrorPhase:
		return lipgloss.JoinVertical(lipgloss.Left,
			theme.ErrorMessage(fmt.Sprintf("%s could not be installed.", m.wizard.AppName())),
			"",
			phase.Detail(),
		)
	}

	return ""
}

// controls renders the footer bindings; proceed is muted until the wizard is ready
func (m *InstallWizard) controls() string {
	theme := config.CurrentTheme
	bindings := WizardKeyBindings(m.wizard.Phase(), m.wizard.ProceedLabel())
	ready := m.wizard.Ready()

	return bindings.RenderStyled(func(b KeyBinding) lipgloss.Style {
		if b.Key != KeyProceed {
			return theme.SubtleStyle()
		}
		if !ready {
			return theme.SubtleStyle().Faint(true)
		}
		return lipgloss.NewStyle().Foreground(theme.GetSecondaryColor()).Bold(true)
	})
}

// RunInstallWizard runs the wizard in an alternate screen and blocks
// until the user finishes or cancels. The install outcome is read from w.
func RunInstallWizard(w *wizard.Wizard) error {
	m := NewInstallWizard(w)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("install wizard: %w", err)
	}
	return nil
}
