// SPDX-License-Identifier: Apache-2.0
package install

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/poolforge/poolforge/pkg/config"
	"github.com/poolforge/poolforge/pkg/installer"
	"github.com/poolforge/poolforge/pkg/ui"
)

type modeOption struct {
	mode        installer.Mode
	description string
}

type modeScreen struct {
	settings *installer.Settings
	options  []modeOption
	cursor   int
	width    int
}

func newModeScreen(settings *installer.Settings, width int) *modeScreen {
	s := &modeScreen{
		settings: settings,
		options: []modeOption{
			{installer.ModeNewInstall, "Wipe the selected drives and install a fresh system"},
			{installer.ModeMigrate, "Copy the running system onto a new ZFS pool"},
		},
		width: width,
	}
	// land the cursor on the previously chosen mode when revisiting
	for i, o := range s.options {
		if o.mode == settings.Mode {
			s.cursor = i
		}
	}
	return s
}

func (s *modeScreen) Init() tea.Cmd { return nil }

func (s *modeScreen) Update(msg tea.Msg) (screenModel, tea.Cmd) {
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
			if s.cursor < len(s.options)-1 {
				s.cursor++
			}
		case "enter", " ":
			mode := s.options[s.cursor].mode
			return s, func() tea.Msg { return modeChosenMsg{Mode: mode} }
		case "esc":
			return s, retreat
		case "q":
			return s, quit
		}
	}
	return s, nil
}

func (s *modeScreen) View() string {
	theme := config.CurrentTheme

	var b strings.Builder
	b.WriteString(theme.RenderHeader(s.width, "Installation Mode"))
	b.WriteString("\n\n")

	for i, o := range s.options {
		cursor := "  "
		title := o.mode.Title()
		if i == s.cursor {
			cursor = theme.CursorIndicator() + " "
			title = theme.TitleStyle().Render(title)
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, title))
		b.WriteString(fmt.Sprintf("    %s\n\n", theme.SubtleStyle().Render(o.description)))
	}

	b.WriteString(theme.RenderFooter(s.width, ui.NavigateKeys().Render(theme.SubtleStyle())))
	return b.String()
}
