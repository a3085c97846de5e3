// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Rows taken by everything around the tab content pane:
// header (1) + blank (1) + tabs (3) + pane border (1) + pane padding (2) + footer (2)
const chromeHeight = 10

// Minimum size the content pane shrinks to on small terminals
const (
	minContentWidth  = 20
	minContentHeight = 3
)

// contentSize returns the inner width and height of the tab content pane
// for a terminal of the given size. Lipgloss renders borders outside
// Style.Width, so the 2 border columns and 4 padding columns come off here.
func contentSize(width, height int) (int, int) {
	w := width - 2
	h := height - chromeHeight
	if w < minContentWidth {
		w = minContentWidth
	}
	if h < minContentHeight {
		h = minContentHeight
	}
	return w, h
}

// RenderCenteredModal renders content in a bordered box centered in the terminal
func RenderCenteredModal(content string, width, height int, borderColor lipgloss.Color, modalWidth int) string {
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Width(modalWidth).
		Render(content)

	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
	)
}

// FillTerminal uses lipgloss.Place to fill terminal dimensions and eliminate gaps
func FillTerminal(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, content)
}
