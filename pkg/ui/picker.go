// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Work-Fort/Ingot/pkg/config"
)

// FolderPickedMsg is sent when the user chooses a folder in the picker
type FolderPickedMsg struct {
	Path string
}

// FolderPickerClosedMsg is sent when the picker is dismissed without a choice
type FolderPickerClosedMsg struct{}

// FolderPickerQuitMsg is sent when the user cancels the install from the picker
type FolderPickerQuitMsg struct{}

// pickerWidth is the inner width of the picker modal
const pickerWidth = 60

// FolderPicker browses directories with bubbles/filepicker.
// Files are listed but cannot be chosen.
type FolderPicker struct {
	picker filepicker.Model
}

// NewFolderPicker opens at start, or its nearest existing parent
func NewFolderPicker(start string) *FolderPicker {
	fp := filepicker.New()
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowPermissions = false
	fp.ShowSize = false
	fp.AutoHeight = true
	fp.CurrentDirectory = nearestExistingDir(start)

	theme := config.CurrentTheme
	fp.Styles.Cursor = fp.Styles.Cursor.Foreground(theme.GetPrimaryColor())
	fp.Styles.Directory = fp.Styles.Directory.Foreground(theme.GetSecondaryColor())
	fp.Styles.Selected = fp.Styles.Selected.Foreground(theme.GetPrimaryColor()).Bold(true)

	return &FolderPicker{picker: fp}
}

// Init reads the starting directory
func (p *FolderPicker) Init() tea.Cmd {
	return p.picker.Init()
}

// Dir returns the directory currently being browsed
func (p *FolderPicker) Dir() string {
	return p.picker.CurrentDirectory
}

// Update handles picker input. Choosing or closing is reported as a message.
func (p *FolderPicker) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// esc is also the filepicker's Back key; here it closes the picker
		if binding := FolderPickerKeyBindings().Contains(msg.String()); binding != nil {
			switch binding.Key {
			case KeyCancel:
				return func() tea.Msg { return FolderPickerClosedMsg{} }
			case KeyQuit:
				return func() tea.Msg { return FolderPickerQuitMsg{} }
			case KeyChoose:
				dir := p.picker.CurrentDirectory
				return func() tea.Msg { return FolderPickedMsg{Path: dir} }
			}
		}
	case tea.WindowSizeMsg:
		// leave room for the modal border, title and help line
		msg.Height -= 10
		var cmd tea.Cmd
		p.picker, cmd = p.picker.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	p.picker, cmd = p.picker.Update(msg)
	return cmd
}

// View renders the picker as a centered modal
func (p *FolderPicker) View(width, height int) string {
	theme := config.CurrentTheme

	title := lipgloss.NewStyle().
		Foreground(theme.GetPrimaryColor()).
		Bold(true).
		Render("Choose install folder")
	current := theme.SubtleStyle().Render(p.picker.CurrentDirectory)
	help := FolderPickerKeyBindings().RenderInline(theme.SubtleStyle())

	content := lipgloss.JoinVertical(lipgloss.Left, title, current, "", p.picker.View(), "", help)
	return RenderCenteredModal(content, width, height, theme.GetSecondaryColor(), pickerWidth)
}

// nearestExistingDir walks up from path until it finds a directory.
// The destination field may name a folder that does not exist yet.
func nearestExistingDir(path string) string {
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
		return "."
	}

	dir := filepath.Clean(path)
	for {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
