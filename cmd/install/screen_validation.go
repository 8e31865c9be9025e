// SPDX-License-Identifier: Apache-2.0
package install

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/poolforge/poolforge/pkg/config"
	"github.com/poolforge/poolforge/pkg/installer"
	"github.com/poolforge/poolforge/pkg/sysinfo"
	"github.com/poolforge/poolforge/pkg/ui"
)

// validationScreen shows the checks for the settings as they stood on
// entry. Edits require going back and returning for a fresh evaluation.
type validationScreen struct {
	results []installer.CheckResult
	passed  bool
	width   int
	notice  string
}

func newValidationScreen(settings *installer.Settings, facts sysinfo.Facts, width int) *validationScreen {
	results := installer.Evaluate(settings, facts)
	return &validationScreen{
		results: results,
		passed:  installer.AllCriticalPassed(results),
		width:   width,
	}
}

func (s *validationScreen) Init() tea.Cmd { return nil }

func (s *validationScreen) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			if !s.passed {
				s.notice = "Fix the failing checks before continuing"
				return s, nil
			}
			return s, func() tea.Msg { return validationPassedMsg{} }
		case "esc":
			return s, retreat
		case "q":
			return s, quit
		}
	}
	return s, nil
}

func (s *validationScreen) View() string {
	theme := config.CurrentTheme

	var b strings.Builder
	b.WriteString(theme.RenderHeader(s.width, "Validation"))
	b.WriteString("\n\n")

	for _, r := range s.results {
		indicator := theme.PassIndicator()
		msgStyle := theme.InfoStyle()
		if !r.Passed {
			indicator = theme.FailIndicator(r.Critical)
			if r.Critical {
				msgStyle = theme.ErrorStyle()
			} else {
				msgStyle = theme.WarningStyle()
			}
		}
		b.WriteString(fmt.Sprintf("  %s %-18s %s\n", indicator, r.Name, msgStyle.Render(r.Message)))
	}

	b.WriteString("\n")
	if s.passed {
		b.WriteString(theme.SuccessStyle().Render("  All critical checks passed."))
	} else {
		b.WriteString(theme.ErrorStyle().Render("  Critical checks failed. Press esc to adjust settings."))
	}
	b.WriteString("\n")
	if s.notice != "" {
		b.WriteString(theme.ErrorStyle().Render("  " + s.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.RenderFooter(s.width, ui.ContinueBackQuitKeys().Render(theme.SubtleStyle())))
	return b.String()
}
