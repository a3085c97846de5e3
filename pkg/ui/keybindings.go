// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Work-Fort/Ingot/pkg/wizard"
)

// KeyBinding represents a single key action
type KeyBinding struct {
	Key         string   // Display name: "ENTER", "TAB", "DEL"
	Keys        []string // Actual keys to match: ["enter"], ["tab"], ["delete", "backspace"]
	Description string   // What it does
}

// KeyBindingSet is a collection of related key bindings
type KeyBindingSet struct {
	Bindings []KeyBinding
}

// Contains checks if a key press matches any binding in the set
func (kbs KeyBindingSet) Contains(key string) *KeyBinding {
	for i := range kbs.Bindings {
		for _, k := range kbs.Bindings[i].Keys {
			if k == key {
				return &kbs.Bindings[i]
			}
		}
	}
	return nil
}

// Render formats key bindings for display
// Format: "[KEY] Action  •  [KEY] Action"
func (kbs KeyBindingSet) Render(style lipgloss.Style) string {
	if len(kbs.Bindings) == 0 {
		return ""
	}

	parts := make([]string, len(kbs.Bindings))
	for i, binding := range kbs.Bindings {
		parts[i] = fmt.Sprintf("[%s] %s", binding.Key, binding.Description)
	}

	return style.Render(strings.Join(parts, "  •  "))
}

// RenderStyled is Render with a style chosen per binding
func (kbs KeyBindingSet) RenderStyled(styleFor func(KeyBinding) lipgloss.Style) string {
	parts := make([]string, len(kbs.Bindings))
	for i, binding := range kbs.Bindings {
		parts[i] = styleFor(binding).Render(fmt.Sprintf("[%s] %s", binding.Key, binding.Description))
	}
	return strings.Join(parts, "  •  ")
}

// RenderInline formats key bindings for inline display (more compact)
// Format: "Key: action | Key: action"
func (kbs KeyBindingSet) RenderInline(style lipgloss.Style) string {
	if len(kbs.Bindings) == 0 {
		return ""
	}

	parts := make([]string, len(kbs.Bindings))
	caser := cases.Title(language.Und, cases.NoLower)
	for i, binding := range kbs.Bindings {
		// Use first key alias for display (e.g., "enter" instead of showing all)
		keyName := caser.String(binding.Keys[0])
		parts[i] = fmt.Sprintf("%s: %s", keyName, strings.ToLower(binding.Description))
	}

	return style.Render(strings.Join(parts, " | "))
}

// Key names used by the install wizard
const (
	KeyCancel  = "ESC"
	KeyProceed = "ENTER"
	KeyBrowse  = "CTRL+O"
	KeyScroll  = "↑↓"
	KeyChoose  = "S"
	KeyUp      = "←"
	KeyOpen    = "→"
	KeyQuit    = "CTRL+C"
)

// WizardKeyBindings returns the controls available in phase.
// proceedLabel is the caption of the proceed control.
func WizardKeyBindings(phase wizard.Phase, proceedLabel string) KeyBindingSet {
	bindings := []KeyBinding{
		{Key: KeyCancel, Keys: []string{"esc", "ctrl+c"}, Description: "Cancel"},
	}

	switch phase.(type) {
	case wizard.StartPhase:
		bindings = append(bindings, KeyBinding{Key: KeyBrowse, Keys: []string{"ctrl+o"}, Description: "Browse"})
	case wizard.InstallationPhase:
		bindings = append(bindings, KeyBinding{Key: KeyScroll, Keys: []string{"up", "down", "pgup", "pgdown"}, Description: "Scroll"})
	}

	bindings = append(bindings, KeyBinding{Key: KeyProceed, Keys: []string{"enter"}, Description: proceedLabel})

	return KeyBindingSet{Bindings: bindings}
}

// FolderPickerKeyBindings returns the folder picker controls
func FolderPickerKeyBindings() KeyBindingSet {
	return KeyBindingSet{
		Bindings: []KeyBinding{
			{Key: KeyOpen, Keys: []string{"enter", "right", "l"}, Description: "Open"},
			{Key: KeyUp, Keys: []string{"left", "backspace", "h"}, Description: "Up"},
			{Key: KeyChoose, Keys: []string{"s"}, Description: "Use this folder"},
			{Key: KeyCancel, Keys: []string{"esc"}, Description: "Close"},
			{Key: KeyQuit, Keys: []string{"ctrl+c"}, Description: "Cancel install"},
		},
	}
}
