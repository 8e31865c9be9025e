// SPDX-License-Identifier: Apache-2.0
package install

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/poolforge/poolforge/pkg/config"
	"github.com/poolforge/poolforge/pkg/sysinfo"
	"github.com/poolforge/poolforge/pkg/ui"
)

type welcomeScreen struct {
	facts sysinfo.Facts
	width int
}

func newWelcomeScreen(facts sysinfo.Facts, width int) *welcomeScreen {
	return &welcomeScreen{facts: facts, width: width}
}

func (s *welcomeScreen) Init() tea.Cmd { return nil }

func (s *welcomeScreen) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			return s, advance
		case "q":
			return s, quit
		}
	}
	return s, nil
}

func (s *welcomeScreen) View() string {
	theme := config.CurrentTheme

	var b strings.Builder
	b.WriteString(theme.RenderHeader(s.width, "Welcome"))
	b.WriteString("\n\n")

	b.WriteString(theme.TitleStyle().Render("ZFS Installation Wizard"))
	b.WriteString("\n\n")
	b.WriteString(theme.InfoStyle().Render("Install a fresh system onto ZFS, or migrate an existing one."))
	b.WriteString("\n\n")

	firmware := "EFI"
	firmwareStyle := theme.SuccessStyle()
	if !s.facts.IsEFI {
		firmware = "Legacy BIOS (unsupported)"
		firmwareStyle = theme.ErrorStyle()
	}

	rows := []struct{ label, value string }{
		{"Firmware", firmwareStyle.Render(firmware)},
		{"Memory", fmt.Sprintf("%d GB", s.facts.RAMGB)},
		{"CPUs", fmt.Sprintf("%d", s.facts.CPUCount)},
		{"Distribution", strings.TrimSpace(s.facts.Distro + " " + s.facts.DistroVersion)},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			theme.SubtleStyle().Render(fmt.Sprintf("%-14s", r.label)),
			r.value))
	}
	if !sysinfo.SupportedDistro(s.facts) {
		b.WriteString("\n")
		b.WriteString(theme.WarningStyle().Render("  This distribution release is older than what we test against."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.RenderFooter(s.width, ui.ContinueQuitKeys().Render(theme.SubtleStyle())))
	return b.String()
}
