// SPDX-License-Identifier: Apache-2.0
package install

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/poolforge/poolforge/pkg/config"
	"github.com/poolforge/poolforge/pkg/installer"
	"github.com/poolforge/poolforge/pkg/ui"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldChoice
	fieldBool
)

// fieldDef describes one editable setting. Choice fields cycle through
// options, text fields open an inline editor, bool fields toggle.
type fieldDef struct {
	label   string
	kind    fieldKind
	options []string
	get     func(*installer.Settings) string
	set     func(*installer.Settings, string)
	toggle  func(*installer.Settings)
}

func settingsFields(mode installer.Mode) []fieldDef {
	fields := []fieldDef{
		{
			label: "Pool Name", kind: fieldText,
			get: func(s *installer.Settings) string { return s.PoolName },
			set: func(s *installer.Settings, v string) { s.PoolName = v },
		},
		{
			label: "RAID Level", kind: fieldChoice,
			options: []string{"none", "mirror", "raidz1", "raidz2", "raidz3"},
			get:     func(s *installer.Settings) string { return s.RaidLevel.String() },
			set:     func(s *installer.Settings, v string) { s.RaidLevel = installer.ParseRaidLevel(v) },
		},
		{
			label: "Compression", kind: fieldChoice,
			options: []string{"zstd", "lz4", "gzip-9", "off"},
			get:     func(s *installer.Settings) string { return s.Compression.String() },
			set:     func(s *installer.Settings, v string) { s.Compression = installer.ParseCompression(v) },
		},
		{
			label: "Ashift", kind: fieldChoice,
			options: []string{"auto", "9", "12", "13"},
			get:     func(s *installer.Settings) string { return s.Ashift.String() },
			set:     func(s *installer.Settings, v string) { s.Ashift = installer.ParseAshift(v) },
		},
		{
			label: "Bootloader", kind: fieldChoice,
			options: []string{"zbm", "systemd-boot", "refind"},
			get:     func(s *installer.Settings) string { return s.Bootloader.String() },
			set:     func(s *installer.Settings, v string) { s.Bootloader = installer.ParseBootloader(v) },
		},
		{
			label: "EFI Size", kind: fieldText,
			get: func(s *installer.Settings) string { return s.EFISize },
			set: func(s *installer.Settings, v string) { s.EFISize = v },
		},
		{
			label: "Swap Size", kind: fieldText,
			get: func(s *installer.Settings) string { return s.SwapSize },
			set: func(s *installer.Settings, v string) { s.SwapSize = v },
		},
	}
	if mode == installer.ModeMigrate {
		fields = append(fields,
			fieldDef{
				label: "Hostname", kind: fieldText,
				get: func(s *installer.Settings) string { return s.Hostname },
				set: func(s *installer.Settings, v string) { s.Hostname = v },
			},
			fieldDef{
				label: "Source Root", kind: fieldText,
				get: func(s *installer.Settings) string { return s.SourceRoot },
				set: func(s *installer.Settings, v string) { s.SourceRoot = v },
			},
			fieldDef{
				label: "Copy /home", kind: fieldBool,
				get: func(s *installer.Settings) string {
					if s.CopyHome {
						return "yes"
					}
					return "no"
				},
				toggle: func(s *installer.Settings) { s.CopyHome = !s.CopyHome },
			},
			fieldDef{
				label: "Exclude Paths", kind: fieldText,
				get: func(s *installer.Settings) string { return strings.Join(s.ExcludePaths, ",") },
				set: func(s *installer.Settings, v string) {
					s.ExcludePaths = nil
					for _, p := range strings.Split(v, ",") {
						if p = strings.TrimSpace(p); p != "" {
							s.ExcludePaths = append(s.ExcludePaths, p)
						}
					}
				},
			},
		)
	}
	return fields
}

type settingsScreen struct {
	settings *installer.Settings
	fields   []fieldDef
	cursor   int
	width    int

	editing   bool
	editValue string
	editForm  *huh.Form
}

func newSettingsScreen(settings *installer.Settings, width int) *settingsScreen {
	return &settingsScreen{
		settings: settings,
		fields:   settingsFields(settings.Mode),
		width:    width,
	}
}

func (s *settingsScreen) Init() tea.Cmd { return nil }

// cycleChoice advances a choice field to its next option, wrapping at the
// end. A current value missing from the option list resets to the first.
func cycleChoice(f fieldDef, settings *installer.Settings) {
	current := f.get(settings)
	next := f.options[0]
	for i, opt := range f.options {
		if opt == current {
			next = f.options[(i+1)%len(f.options)]
			break
		}
	}
	f.set(settings, next)
}

func (s *settingsScreen) beginEdit() tea.Cmd {
	f := s.fields[s.cursor]
	s.editValue = f.get(s.settings)
	s.editForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(f.label).
				Value(&s.editValue),
		),
	).WithShowHelp(false)
	s.editing = true
	return s.editForm.Init()
}

func (s *settingsScreen) updateEdit(msg tea.Msg) (screenModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		// abandon the edit, keep the stored value
		s.editing = false
		s.editForm = nil
		return s, nil
	}

	form, cmd := s.editForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.editForm = f
	}
	if s.editForm.State == huh.StateCompleted {
		s.fields[s.cursor].set(s.settings, strings.TrimSpace(s.editValue))
		s.editing = false
		s.editForm = nil
	}
	return s, cmd
}

func (s *settingsScreen) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	if resize, ok := msg.(tea.WindowSizeMsg); ok {
		s.width = resize.Width
	}
	if s.editing {
		return s.updateEdit(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.fields)-1 {
				s.cursor++
			}
		case "enter", " ":
			f := s.fields[s.cursor]
			switch f.kind {
			case fieldChoice:
				cycleChoice(f, s.settings)
			case fieldBool:
				f.toggle(s.settings)
			case fieldText:
				return s, s.beginEdit()
			}
		case "c":
			return s, settingsContinue
		case "esc":
			return s, retreat
		case "q":
			return s, quit
		}
	}
	return s, nil
}

func (s *settingsScreen) View() string {
	theme := config.CurrentTheme

	var b strings.Builder
	b.WriteString(theme.RenderHeader(s.width, "Pool Settings"))
	b.WriteString("\n\n")
	b.WriteString(theme.SubtleStyle().Render("  Mode: " + s.settings.Mode.Title()))
	b.WriteString("\n\n")

	for i, f := range s.fields {
		cursor := "  "
		label := f.label
		if i == s.cursor {
			cursor = theme.CursorIndicator() + " "
			label = theme.TitleStyle().Render(fmt.Sprintf("%-14s", f.label))
		} else {
			label = fmt.Sprintf("%-14s", label)
		}
		value := f.get(s.settings)
		if value == "" {
			value = theme.SubtleStyle().Render("(unset)")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, label, value))
	}

	if s.editing && s.editForm != nil {
		b.WriteString("\n")
		b.WriteString(s.editForm.View())
		b.WriteString("\n")
		b.WriteString("  " + ui.EditKeys().RenderInline(theme.SubtleStyle()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(theme.InfoStyle().Render("  Press c to continue to validation"))
	b.WriteString("\n\n")
	b.WriteString(theme.RenderFooter(s.width, ui.NavigateKeys().Render(theme.SubtleStyle())))
	return b.String()
}
