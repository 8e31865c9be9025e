// SPDX-License-Identifier: Apache-2.0
package install

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/poolforge/poolforge/pkg/installer"
)

// advanceMsg asks the wizard for the current screen's natural successor
type advanceMsg struct{}

// retreatMsg asks the wizard to pop back to the previous screen
type retreatMsg struct{}

// quitMsg asks the wizard to end the session
type quitMsg struct{}

// modeChosenMsg carries the selected installation mode
type modeChosenMsg struct {
	Mode installer.Mode
}

// drivesConfirmedMsg signals the device screen accepted a non-empty selection
type drivesConfirmedMsg struct{}

// settingsContinueMsg signals the settings screen wants validation
type settingsContinueMsg struct{}

// validationPassedMsg signals every critical check passed on this entry
type validationPassedMsg struct{}

// proceedMsg signals the operator confirmed the destructive plan
type proceedMsg struct{}

// stepEventMsg delivers one backend progress event to the install screen.
// ok is false when the event channel closed.
type stepEventMsg struct {
	Event installer.StepEvent
	OK    bool
}

// installDoneMsg signals the backend completed every step
type installDoneMsg struct{}

// installFailedMsg signals a step failed; the wizard returns to settings
type installFailedMsg struct {
	StepIndex int
	Reason    string
}

func advance() tea.Msg          { return advanceMsg{} }
func retreat() tea.Msg          { return retreatMsg{} }
func quit() tea.Msg             { return quitMsg{} }
func settingsContinue() tea.Msg { return settingsContinueMsg{} }
