// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the application color scheme
type Theme struct {
	Primary   string
	Secondary string
	Muted     string
	Success   string
	Info      string
	Warning   string
	Error     string
}

// CurrentTheme is the active theme used throughout the application
var CurrentTheme = Theme{
	Primary:   "#F5A524", // molten gold
	Secondary: "#7DD3FC", // steel blue
	Muted:     "#71717A",
	Success:   "#86EFAC",
	Info:      "#7DD3FC",
	Warning:   "#FDE047",
	Error:     "#F87171",
}

func (t Theme) GetPrimaryColor() lipgloss.Color   { return lipgloss.Color(t.Primary) }
func (t Theme) GetSecondaryColor() lipgloss.Color { return lipgloss.Color(t.Secondary) }
func (t Theme) GetMutedColor() lipgloss.Color     { return lipgloss.Color(t.Muted) }
func (t Theme) GetSuccessColor() lipgloss.Color   { return lipgloss.Color(t.Success) }
func (t Theme) GetInfoColor() lipgloss.Color      { return lipgloss.Color(t.Info) }
func (t Theme) GetWarningColor() lipgloss.Color   { return lipgloss.Color(t.Warning) }
func (t Theme) GetErrorColor() lipgloss.Color     { return lipgloss.Color(t.Error) }

func (t Theme) SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.GetSuccessColor()).Bold(true)
}

func (t Theme) InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.GetInfoColor())
}

func (t Theme) WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.GetWarningColor())
}

func (t Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.GetErrorColor())
}

func (t Theme) SubtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.GetMutedColor())
}

// Messages carry the same symbols as the tab indicators

func (t Theme) SuccessMessage(text string) string {
	return t.SuccessStyle().Render("✓ " + text)
}

func (t Theme) InfoMessage(text string) string {
	return t.InfoStyle().Render("ℹ " + text)
}

func (t Theme) WarningMessage(text string) string {
	return t.WarningStyle().Render("⚠ " + text)
}

func (t Theme) ErrorMessage(text string) string {
	return t.ErrorStyle().Render("✗ " + text)
}

// ActiveIndicator marks the step being shown
func (t Theme) ActiveIndicator() string {
	return t.SuccessStyle().Render("●")
}

// PendingIndicator marks a step not reached yet
func (t Theme) PendingIndicator() string {
	return t.SubtleStyle().Render("○")
}

// CompleteIndicator marks a finished step
func (t Theme) CompleteIndicator() string {
	return t.SuccessStyle().Render("✓")
}

// ErrorIndicator marks a failed step
func (t Theme) ErrorIndicator() string {
	return t.ErrorStyle().Render("✗")
}

// RenderHeader renders the banner shown above the wizard
// Format: "  INGOT  ▸  SECTION  ▸  [CONTEXT]  "
func (t Theme) RenderHeader(width int, section, context string) string {
	headerText := fmt.Sprintf("  INGOT  ▸  %s  ▸  [%s]  ", section, context)
	return lipgloss.NewStyle().
		Foreground(t.GetPrimaryColor()).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Render(headerText)
}

// RenderFooter renders the key help line
// Format: "╰─ [content] ─╯"
func (t Theme) RenderFooter(width int, content string) string {
	return lipgloss.NewStyle().
		Foreground(t.GetMutedColor()).
		Width(width).
		Align(lipgloss.Center).
		Render("╰─ " + content + " ─╯")
}
