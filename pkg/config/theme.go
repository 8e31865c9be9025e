// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the application color scheme
type Theme struct {
	Primary   string // Headline green
	Secondary string // Key-hint cyan
	Muted     string // De-emphasized gray
	Success   string // Passing checks, completed steps
	Info      string // Info/neutral color
	Warning   string // Non-critical check failures
	Error     string // Critical failures, wipe warnings
}

// CurrentTheme is the active theme used throughout the application
var CurrentTheme = Theme{
	Primary:   "#5AF78E", // Bright green, the installer accent
	Secondary: "#57C7FF", // Cyan for key hints
	Muted:     "#686868", // Gray for secondary text
	Success:   "#5AF78E",
	Info:      "#57C7FF",
	Warning:   "#F3F99D", // Yellow for warnings
	Error:     "#FF5C57", // Red for destructive/critical
}

// Color getters return lipgloss.Color for easy styling

func (t Theme) GetPrimaryColor() lipgloss.Color {
	return lipgloss.Color(t.Primary)
}

func (t Theme) GetSecondaryColor() lipgloss.Color {
	return lipgloss.Color(t.Secondary)
}

func (t Theme) GetMutedColor() lipgloss.Color {
	return lipgloss.Color(t.Muted)
}

func (t Theme) GetSuccessColor() lipgloss.Color {
	return lipgloss.Color(t.Success)
}

func (t Theme) GetInfoColor() lipgloss.Color {
	return lipgloss.Color(t.Info)
}

func (t Theme) GetWarningColor() lipgloss.Color {
	return lipgloss.Color(t.Warning)
}

func (t Theme) GetErrorColor() lipgloss.Color {
	return lipgloss.Color(t.Error)
}

// Common style builders for consistent UI

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
	return lipgloss.NewStyle().Foreground(t.GetErrorColor()).Bold(true)
}

func (t Theme) SubtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.GetMutedColor())
}

func (t Theme) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.GetPrimaryColor()).Bold(true)
}

// Message formatters with theme-appropriate icons

func (t Theme) SuccessMessage(text string) string {
	return t.SuccessStyle().Render("✓ " + text)
}

func (t Theme) WarningMessage(text string) string {
	return t.WarningStyle().Render("⚠ " + text)
}

func (t Theme) ErrorMessage(text string) string {
	return t.ErrorStyle().Render("✗ " + text)
}

// Indicator helpers for consistent symbols across screens

// PassIndicator returns a checkmark for passing checks and finished steps
func (t Theme) PassIndicator() string {
	return t.SuccessStyle().Render("✓")
}

// FailIndicator returns an X, red for critical checks and yellow otherwise
func (t Theme) FailIndicator(critical bool) string {
	if critical {
		return t.ErrorStyle().Render("✗")
	}
	return t.WarningStyle().Render("✗")
}

// PendingIndicator returns an empty circle for steps not yet started
func (t Theme) PendingIndicator() string {
	return t.SubtleStyle().Render("○")
}

// CursorIndicator returns the selection marker for list rows
func (t Theme) CursorIndicator() string {
	return t.InfoStyle().Render("►")
}

// RenderHeader renders a consistent header banner across all screens
// Format: "  POOLFORGE  ▸  SECTION  "
func (t Theme) RenderHeader(width int, section string) string {
	headerText := fmt.Sprintf("  POOLFORGE  ▸  %s  ", section)
	return lipgloss.NewStyle().
		Foreground(t.GetPrimaryColor()).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Render(headerText)
}

// RenderFooter renders the key-hint footer line
func (t Theme) RenderFooter(width int, content string) string {
	return lipgloss.NewStyle().
		Foreground(t.GetSecondaryColor()).
		Width(width).
		Align(lipgloss.Center).
		Render(content)
}
