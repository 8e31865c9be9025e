// SPDX-License-Identifier: Apache-2.0
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Centered returns content centered within the given width.
func Centered(width int, content string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content)
}

// Rule returns a horizontal divider sized to the content column.
func Rule(width int, style lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	line := make([]rune, width)
	for i := range line {
		line[i] = '─'
	}
	return style.Render(string(line))
}

// FillTerminal uses lipgloss.Place to fill terminal dimensions and eliminate gaps
func FillTerminal(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, content)
}

// ConfirmationForm wraps a huh.Form for reusable Yes/No confirmations
type ConfirmationForm struct {
	form *huh.Form
	key  string
}

// NewConfirmationForm creates a new confirmation form with Y/N quick keys
// key: the field key to retrieve the result
// title: the main question text
// description: optional explanation text
// affirmative: text for "Yes" option
// negative: text for "No" option
func NewConfirmationForm(key, title, description, affirmative, negative string) *ConfirmationForm {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key(key).
				Title(title).
				Description(description).
				Affirmative(affirmative).
				Negative(negative),
		),
	)

	return &ConfirmationForm{
		form: form,
		key:  key,
	}
}

// Init initializes the form and returns the initial command
func (cf *ConfirmationForm) Init() tea.Cmd {
	return cf.form.Init()
}

// Update handles form updates with Y/N/ESC quick key support
// Returns: (confirmed bool, shouldProceed bool, cmd)
// - If Y pressed: (true, true, ...)
// - If N pressed: (false, true, ...)
// - If ESC pressed: (false, false, ...) - cancelled
// - If form completed: (result, true, ...)
// - Otherwise: (false, false, ...) - still collecting input
func (cf *ConfirmationForm) Update(msg tea.Msg) (bool, bool, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			return true, true, nil
		case "n", "N":
			return false, true, nil
		case "esc":
			return false, false, nil
		}
	}

	form, cmd := cf.form.Update(msg)
	cf.form = form.(*huh.Form)

	// Check if form is complete (arrow keys + enter)
	if cf.form.State == huh.StateCompleted {
		confirmed := cf.form.GetBool(cf.key)
		return confirmed, true, cmd
	}

	return false, false, cmd
}

// View renders the form
func (cf *ConfirmationForm) View() string {
	return cf.form.View()
}
