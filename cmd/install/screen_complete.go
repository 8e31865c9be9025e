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

type completionScreen struct {
	settings *installer.Settings
	width    int
}

func newCompletionScreen(settings *installer.Settings, width int) *completionScreen {
	return &completionScreen{settings: settings, width: width}
}

func (s *completionScreen) Init() tea.Cmd { return nil }

func (s *completionScreen) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "q":
			return s, advance
		}
	}
	return s, nil
}

func (s *completionScreen) View() string {
	theme := config.CurrentTheme

	var b strings.Builder
	b.WriteString(theme.RenderHeader(s.width, "Complete"))
	b.WriteString("\n\n")
	b.WriteString(ui.Centered(s.width, theme.SuccessStyle().Render("Installation finished.")))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Pool %s is ready. Reboot into the new system when convenient.\n",
		theme.TitleStyle().Render(s.settings.PoolName)))
	b.WriteString("\n")
	b.WriteString(theme.RenderFooter(s.width, ui.QuitOnlyKeys().Render(theme.SubtleStyle())))
	return b.String()
}
