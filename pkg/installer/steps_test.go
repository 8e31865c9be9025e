// SPDX-License-Identifier: Apache-2.0
package installer

import "testing"

func TestSteps_NewInstall(t *testing.T) {
	steps := Steps(ModeNewInstall)
	if len(steps) != 7 {
		t.Fatalf("expected 7 steps for new install, got %d", len(steps))
	}
	if steps[0] != "Checking device fitness" {
		t.Errorf("first step = %q", steps[0])
	}
	if steps[len(steps)-1] != "Finalizing installation" {
		t.Errorf("last step = %q", steps[len(steps)-1])
	}
}

func TestSteps_Migration(t *testing.T) {
	steps := Steps(ModeMigrate)
	if len(steps) != 9 {
		t.Fatalf("expected 9 steps for migration, got %d", len(steps))
	}
	if steps[0] != "Checking device fitness" {
		t.Errorf("first step = %q", steps[0])
	}
	if steps[len(steps)-1] != "Finalizing installation" {
		t.Errorf("last step = %q", steps[len(steps)-1])
	}

	// Migration-only work appears between pool setup and bootloader
	found := map[string]bool{}
	for _, s := range steps {
		found[s] = true
	}
	for _, want := range []string{"Mounting filesystems", "Copying system files", "Zapping network configuration"} {
		if !found[want] {
			t.Errorf("migration steps missing %q", want)
		}
	}
}
