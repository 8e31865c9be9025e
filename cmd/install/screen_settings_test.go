// SPDX-License-Identifier: Apache-2.0
package install

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/poolforge/poolforge/pkg/installer"
)

func fieldLabels(fields []fieldDef) []string {
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = f.label
	}
	return labels
}

func TestSettingsFields_NewInstall(t *testing.T) {
	fields := settingsFields(installer.ModeNewInstall)
	if len(fields) != 7 {
		t.Fatalf("new install exposes %d fields, want 7: %v", len(fields), fieldLabels(fields))
	}
	for _, f := range fields {
		for _, migrationOnly := range []string{"Hostname", "Source Root", "Copy /home", "Exclude Paths"} {
			if f.label == migrationOnly {
				t.Errorf("field %q must not appear in new install mode", f.label)
			}
		}
	}
}

func TestSettingsFields_MigrationExtras(t *testing.T) {
	fields := settingsFields(installer.ModeMigrate)
	if len(fields) != 11 {
		t.Fatalf("migration exposes %d fields, want 11: %v", len(fields), fieldLabels(fields))
	}
	labels := fieldLabels(fields)
	for _, want := range []string{"Hostname", "Source Root", "Copy /home", "Exclude Paths"} {
		found := false
		for _, l := range labels {
			if l == want {
				found = true
			}
		}
		if !found {
			t.Errorf("migration mode missing field %q", want)
		}
	}
}

func TestCycleChoice_WrapsAround(t *testing.T) {
	settings := installer.NewSettings()
	var compression fieldDef
	for _, f := range settingsFields(installer.ModeNewInstall) {
		if f.label == "Compression" {
			compression = f
		}
	}

	want := []installer.Compression{
		installer.CompLZ4, installer.CompGzip9, installer.CompOff, installer.CompZSTD,
	}
	for i, c := range want {
		cycleChoice(compression, settings)
		if settings.Compression != c {
			t.Fatalf("cycle %d: compression = %s, want %s", i+1, settings.Compression, c)
		}
	}
}

func TestCycleChoice_UnknownValueResetsToFirst(t *testing.T) {
	settings := installer.NewSettings()
	var got string
	f := fieldDef{
		kind:    fieldChoice,
		options: []string{"alpha", "beta"},
		get:     func(*installer.Settings) string { return "stray" },
		set:     func(_ *installer.Settings, v string) { got = v },
	}

	cycleChoice(f, settings)
	if got != "alpha" {
		t.Errorf("unknown current value cycled to %q, want first option %q", got, "alpha")
	}
}

func TestSettingsScreen_CanceledEditKeepsValue(t *testing.T) {
	settings := installer.NewSettings()
	s := newSettingsScreen(settings, 80)

	// cursor 0 is Pool Name, a text field
	drive2(t, s, key("enter"))
	if !s.editing {
		t.Fatal("enter on a text field did not open the editor")
	}
	if s.editValue != settings.PoolName {
		t.Errorf("editor seeded with %q, want current value %q", s.editValue, settings.PoolName)
	}

	drive2(t, s, key("esc"))
	if s.editing {
		t.Error("esc did not close the editor")
	}
	if settings.PoolName != "zroot" {
		t.Errorf("canceled edit changed pool name to %q", settings.PoolName)
	}
}

func TestSettingsScreen_BoolToggle(t *testing.T) {
	settings := installer.NewSettings()
	settings.Mode = installer.ModeMigrate
	s := newSettingsScreen(settings, 80)

	for i, f := range s.fields {
		if f.label == "Copy /home" {
			s.cursor = i
		}
	}

	drive2(t, s, key("enter"))
	if settings.CopyHome {
		t.Error("toggle did not flip CopyHome off")
	}
	drive2(t, s, key("enter"))
	if !settings.CopyHome {
		t.Error("toggle did not flip CopyHome back on")
	}
}

// drive2 feeds key messages straight into a screen, dropping the commands
// that only matter to the wizard.
func drive2(t *testing.T, s screenModel, msgs ...tea.Msg) {
	t.Helper()
	for _, msg := range msgs {
		s.Update(msg)
	}
}
