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

type deviceScreen struct {
	settings *installer.Settings
	devices  sysinfo.Devices
	names    []string
	cursor   int
	width    int
	notice   string
}

func newDeviceScreen(settings *installer.Settings, devices sysinfo.Devices, width int) *deviceScreen {
	return &deviceScreen{
		settings: settings,
		devices:  devices,
		names:    devices.Names(),
		width:    width,
	}
}

func (s *deviceScreen) Init() tea.Cmd { return nil }

func (s *deviceScreen) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.names)-1 {
				s.cursor++
			}
		case " ":
			if len(s.names) > 0 {
				s.settings.ToggleDrive(s.names[s.cursor])
				s.notice = ""
			}
		case "enter":
			if len(s.settings.Drives) == 0 {
				s.notice = "Select at least one drive"
				return s, nil
			}
			return s, func() tea.Msg { return drivesConfirmedMsg{} }
		case "esc":
			return s, retreat
		case "q":
			return s, quit
		}
	}
	return s, nil
}

func (s *deviceScreen) View() string {
	theme := config.CurrentTheme
	minSize := s.settings.MinDeviceSizeBytes()

	var b strings.Builder
	b.WriteString(theme.RenderHeader(s.width, "Target Drives"))
	b.WriteString("\n\n")
	b.WriteString(theme.WarningStyle().Render("  Selected drives will be completely erased."))
	b.WriteString("\n\n")

	if len(s.names) == 0 {
		b.WriteString(theme.ErrorStyle().Render("  No usable block devices found."))
		b.WriteString("\n")
	}

	for i, name := range s.names {
		dev := s.devices[name]
		cursor := "  "
		if i == s.cursor {
			cursor = theme.CursorIndicator() + " "
		}
		mark := "[ ]"
		if s.settings.HasDrive(name) {
			mark = theme.SuccessStyle().Render("[x]")
		}
		line := fmt.Sprintf("%s%s %-12s %-8s %9s  %s",
			cursor, mark, name, dev.Media, humanize.IBytes(dev.SizeBytes), dev.Model)
		if dev.SizeBytes < minSize {
			line += theme.WarningStyle().Render("  (too small)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.InfoStyle().Render(fmt.Sprintf("  %d drive(s) selected", len(s.settings.Drives))))
	b.WriteString("\n")
	if s.notice != "" {
		b.WriteString(theme.ErrorStyle().Render("  " + s.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.RenderFooter(s.width, ui.NavigateKeys().Render(theme.SubtleStyle())))
	return b.String()
}
