// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/Work-Fort/Ingot/pkg/config"
)

// TabState represents the state of a tab
type TabState int

const (
	TabPending TabState = iota
	TabActive
	TabComplete
	TabError
)

// Tab is one step shown in the tab row
type Tab struct {
	Title   string
	State   TabState
	Spinner spinner.Model
	Busy    bool // show the spinner instead of a dot while active
}

// TabsConfig holds configuration for tab rendering
type TabsConfig struct {
	ActiveIndex int
	Width       int // Total width available for all tabs
}

// label returns the tab title prefixed with its state indicator
func (t Tab) label() string {
	theme := config.CurrentTheme

	var indicator string
	switch t.State {
	case TabActive:
		indicator = theme.ActiveIndicator()
		if t.Busy {
			indicator = t.Spinner.View()
		}
	case TabComplete:
		indicator = theme.CompleteIndicator()
	case TabError:
		indicator = theme.ErrorIndicator()
	default:
		indicator = theme.PendingIndicator()
	}
	return indicator + " " + t.Title
}

// tabColor maps a tab state to its border color
func tabColor(state TabState) lipgloss.Color {
	theme := config.CurrentTheme

	switch state {
	case TabActive:
		return theme.GetSecondaryColor()
	case TabComplete:
		return theme.GetSuccessColor()
	case TabError:
		return theme.GetErrorColor()
	default:
		return theme.GetMutedColor()
	}
}

// RenderTabs renders a row of tabs joined to the content pane below.
// The viewed tab is open at the bottom; the row is extended with a rule
// up to cfg.Width that ends in the pane's right corner.
func RenderTabs(tabs []Tab, cfg TabsConfig) string {
	theme := config.CurrentTheme

	rendered := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		border := tabBorderWithBottom("┴", "─", "┴")

		switch {
		case i == cfg.ActiveIndex:
			border.BottomLeft = "┘"
			border.Bottom = " "
			border.BottomRight = "└"
			if i == 0 {
				border.BottomLeft = "│"
			}
		case i == 0:
			border.BottomLeft = "├"
		}

		style := lipgloss.NewStyle().
			Border(border, true).
			BorderForeground(tabColor(tab.State)).
			Padding(0, 1)

		rendered = append(rendered, style.Render(tab.label()))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	remaining := cfg.Width - lipgloss.Width(row)
	if remaining <= 0 {
		return row
	}

	blank := strings.Repeat(" ", remaining)
	rule := lipgloss.NewStyle().
		Foreground(theme.GetPrimaryColor()).
		Render(strings.Repeat("─", remaining-1) + "┐")

	return lipgloss.JoinHorizontal(lipgloss.Top, row, lipgloss.JoinVertical(lipgloss.Left, blank, blank, rule))
}

// RenderTabContent renders the content pane for the active tab
func RenderTabContent(content string, width, height int) string {
	theme := config.CurrentTheme

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.GetPrimaryColor()).
		BorderTop(false). // joined to the tab row
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(content)
}

// tabBorderWithBottom creates a rounded border with the given bottom characters
func tabBorderWithBottom(left, middle, right string) lipgloss.Border {
	border := lipgloss.RoundedBorder()
	border.BottomLeft = left
	border.Bottom = middle
	border.BottomRight = right
	return border
}
