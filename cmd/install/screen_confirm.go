// SPDX-License-Identifier: Apache-2.0
package install

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/poolforge/poolforge/pkg/config"
	"github.com/poolforge/poolforge/pkg/installer"
	"github.com/poolforge/poolforge/pkg/sysinfo"
	"github.com/poolforge/poolforge/pkg/ui"
)

// confirmationScreen is the last read-only stop before the backend runs.
type confirmationScreen struct {
	settings *installer.Settings
	devices  sysinfo.Devices
	form     *ui.ConfirmationForm
	width    int
}

func newConfirmationScreen(settings *installer.Settings, devices sysinfo.Devices, width int) *confirmationScreen {
	return &confirmationScreen{
		settings: settings,
		devices:  devices,
		form: ui.NewConfirmationForm(
			"proceed",
			"Erase the selected drives and install?",
			"This is the point of no return.",
			"Install",
			"Go back",
		),
		width: width,
	}
}

func (s *confirmationScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *confirmationScreen) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	if resize, ok := msg.(tea.WindowSizeMsg); ok {
		s.width = resize.Width
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return s, retreat
		case "q":
			return s, quit
		}
	}

	confirmed, done, cmd := s.form.Update(msg)
	if done {
		if confirmed {
			return s, func() tea.Msg { return proceedMsg{} }
		}
		return s, retreat
	}
	return s, cmd
}

func (s *confirmationScreen) View() string {
	theme := config.CurrentTheme
	set := s.settings

	var b strings.Builder
	b.WriteString(theme.RenderHeader(s.width, "Confirmation"))
	b.WriteString("\n\n")
	b.WriteString(theme.TitleStyle().Render("  Review the plan"))
	b.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"Mode", set.Mode.Title()},
		{"Pool", set.PoolName},
		{"RAID Level", set.RaidLevel.Description()},
		{"Compression", set.Compression.String()},
		{"Ashift", set.Ashift.String()},
		{"Bootloader", set.Bootloader.Description()},
		{"EFI Size", set.EFISize},
		{"Swap Size", set.SwapSize},
	}
	if set.Mode == installer.ModeMigrate {
		rows = append(rows,
			struct{ label, value string }{"Hostname", set.Hostname},
			struct{ label, value string }{"Source Root", set.SourceRoot},
		)
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			theme.SubtleStyle().Render(fmt.Sprintf("%-14s", r.label)), r.value))
	}

	b.WriteString("\n")
	b.WriteString(theme.WarningStyle().Render("  Drives to be erased:"))
	b.WriteString("\n")
	for _, name := range set.Drives {
		dev := s.devices[name]
		b.WriteString(fmt.Sprintf("    %s  %s  %s\n", name, humanize.IBytes(dev.SizeBytes), dev.Model))
	}

	b.WriteString("\n")
	b.WriteString(s.form.View())
	return b.String()
}
