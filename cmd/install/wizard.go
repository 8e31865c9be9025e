// SPDX-License-Identifier: Apache-2.0
package install

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/poolforge/poolforge/pkg/config"
	"github.com/poolforge/poolforge/pkg/installer"
	"github.com/poolforge/poolforge/pkg/sysinfo"
	"github.com/poolforge/poolforge/pkg/ui"
)

type screenID int

const (
	screenWelcome screenID = iota
	screenModeSelect
	screenDeviceSelect
	screenSettings
	screenValidation
	screenConfirmation
	screenInstall
	screenCompletion
)

func (s screenID) String() string {
	switch s {
	case screenWelcome:
		return "welcome"
	case screenModeSelect:
		return "mode-select"
	case screenDeviceSelect:
		return "device-select"
	case screenSettings:
		return "settings"
	case screenValidation:
		return "validation"
	case screenConfirmation:
		return "confirmation"
	case screenInstall:
		return "install"
	case screenCompletion:
		return "completion"
	}
	return "unknown"
}

// screenModel is the contract every wizard screen satisfies. Screens never
// navigate themselves; they emit messages and the wizard moves the stack.
type screenModel interface {
	Init() tea.Cmd
	Update(tea.Msg) (screenModel, tea.Cmd)
	View() string
}

// WizardModel drives the whole session: it owns the shared configuration,
// the probed system facts, the active screen, and the navigation history.
type WizardModel struct {
	settings *installer.Settings
	facts    sysinfo.Facts
	devices  sysinfo.Devices
	backend  installer.Backend

	current screenID
	screen  screenModel
	history []screenID

	width    int
	height   int
	quitting bool
}

// seededSettings overlays configured defaults onto the built-in ones, so
// `poolforge config set pool-name tank` changes what the wizard offers.
func seededSettings() *installer.Settings {
	s := installer.NewSettings()
	if v := config.GetPoolName(); v != "" {
		s.PoolName = v
	}
	if v := config.GetEFISize(); v != "" {
		s.EFISize = v
	}
	if v := config.GetSwapSize(); v != "" {
		s.SwapSize = v
	}
	s.Compression = installer.ParseCompression(config.GetCompression())
	s.Bootloader = installer.ParseBootloader(config.GetBootloader())
	return s
}

// NewWizard builds the model on the welcome screen with default settings.
func NewWizard(facts sysinfo.Facts, devices sysinfo.Devices, backend installer.Backend) *WizardModel {
	m := &WizardModel{
		settings: seededSettings(),
		facts:    facts,
		devices:  devices,
		backend:  backend,
		current:  screenWelcome,
	}
	m.screen = m.newScreen(screenWelcome)
	return m
}

func (m *WizardModel) Init() tea.Cmd {
	return m.screen.Init()
}

// newScreen constructs a fresh screen for id. Screens carry no state across
// visits except what lives in the shared settings record.
func (m *WizardModel) newScreen(id screenID) screenModel {
	switch id {
	case screenWelcome:
		return newWelcomeScreen(m.facts, m.width)
	case screenModeSelect:
		return newModeScreen(m.settings, m.width)
	case screenDeviceSelect:
		return newDeviceScreen(m.settings, m.devices, m.width)
	case screenSettings:
		return newSettingsScreen(m.settings, m.width)
	case screenValidation:
		return newValidationScreen(m.settings, m.facts, m.width)
	case screenConfirmation:
		return newConfirmationScreen(m.settings, m.devices, m.width)
	case screenInstall:
		return newInstallScreen(m.settings, m.backend, m.width)
	case screenCompletion:
		return newCompletionScreen(m.settings, m.width)
	}
	return newWelcomeScreen(m.facts, m.width)
}

// goTo pushes the current screen onto the history stack and activates id.
func (m *WizardModel) goTo(id screenID) tea.Cmd {
	m.history = append(m.history, m.current)
	m.current = id
	m.screen = m.newScreen(id)
	log.Debug("screen transition", "to", id.String())
	return m.screen.Init()
}

// goBack pops the history stack. On an empty stack it stays put.
func (m *WizardModel) goBack() tea.Cmd {
	if len(m.history) == 0 {
		return nil
	}
	id := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	m.current = id
	m.screen = m.newScreen(id)
	log.Debug("screen retreat", "to", id.String())
	return m.screen.Init()
}

// teardown releases resources held by the active screen before the program
// exits or the screen is abandoned.
func (m *WizardModel) teardown() {
	if is, ok := m.screen.(*installScreen); ok {
		is.cancel()
	}
}

func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.teardown()
			m.quitting = true
			return m, tea.Quit
		}

	case quitMsg:
		m.teardown()
		m.quitting = true
		return m, tea.Quit

	case advanceMsg:
		switch m.current {
		case screenWelcome:
			return m, m.goTo(screenModeSelect)
		case screenCompletion:
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case retreatMsg:
		return m, m.goBack()

	case modeChosenMsg:
		m.settings.Mode = msg.Mode
		return m, m.goTo(screenDeviceSelect)

	case drivesConfirmedMsg:
		return m, m.goTo(screenSettings)

	case settingsContinueMsg:
		return m, m.goTo(screenValidation)

	case validationPassedMsg:
		return m, m.goTo(screenConfirmation)

	case proceedMsg:
		return m, m.goTo(screenInstall)

	case installDoneMsg:
		return m, m.goTo(screenCompletion)

	case installFailedMsg:
		log.Error("installation step failed", "step", msg.StepIndex, "reason", msg.Reason)
		m.teardown()
		// rewind the stack so back from settings walks the normal path
		m.history = []screenID{screenWelcome, screenModeSelect, screenDeviceSelect}
		m.current = screenSettings
		m.screen = m.newScreen(screenSettings)
		return m, m.screen.Init()
	}

	screen, cmd := m.screen.Update(msg)
	m.screen = screen
	return m, cmd
}

func (m *WizardModel) View() string {
	if m.quitting {
		return ""
	}
	view := m.screen.View()
	if m.width > 0 && m.height > 0 {
		return ui.FillTerminal(view, m.width, m.height)
	}
	return view
}
