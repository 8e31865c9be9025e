// SPDX-License-Identifier: Apache-2.0
package installer

import (
	"testing"
)

func TestNewSettings_Defaults(t *testing.T) {
	s := NewSettings()

	if s.Mode != ModeUnset {
		t.Errorf("Mode = %v, want unset", s.Mode)
	}
	if len(s.Drives) != 0 {
		t.Errorf("Drives = %v, want empty", s.Drives)
	}
	if s.PoolName != "zroot" {
		t.Errorf("PoolName = %q, want zroot", s.PoolName)
	}
	if s.RaidLevel != RaidNone {
		t.Errorf("RaidLevel = %v, want none", s.RaidLevel)
	}
	if s.Compression != CompZSTD {
		t.Errorf("Compression = %v, want zstd", s.Compression)
	}
	if s.Ashift != AshiftAuto {
		t.Errorf("Ashift = %v, want auto", s.Ashift)
	}
	if s.Bootloader != BootZBM {
		t.Errorf("Bootloader = %v, want zbm", s.Bootloader)
	}
	if s.EFISize != "1G" || s.SwapSize != "8G" {
		t.Errorf("sizes = %q/%q, want 1G/8G", s.EFISize, s.SwapSize)
	}
	if s.SourceRoot != "/" {
		t.Errorf("SourceRoot = %q, want /", s.SourceRoot)
	}
	if !s.CopyHome {
		t.Error("CopyHome should default to true")
	}
}

func TestSettings_ToggleDrive(t *testing.T) {
	s := NewSettings()

	s.ToggleDrive("sda")
	s.ToggleDrive("sdb")
	if !s.HasDrive("sda") || !s.HasDrive("sdb") {
		t.Errorf("Drives = %v, want sda and sdb", s.Drives)
	}

	// Toggling again removes; no duplicates ever
	s.ToggleDrive("sda")
	if s.HasDrive("sda") {
		t.Error("sda should have been removed")
	}
	s.ToggleDrive("sdb")
	s.ToggleDrive("sdb")
	count := 0
	for _, d := range s.Drives {
		if d == "sdb" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("sdb appears %d times, want 1", count)
	}
}

func TestSettings_CloneIsIndependent(t *testing.T) {
	s := NewSettings()
	s.Drives = []string{"sda", "sdb"}
	s.ExcludePaths = []string{"/tmp"}

	clone := s.Clone()
	clone.Drives[0] = "nvme0n1"
	clone.ExcludePaths[0] = "/var/tmp"
	clone.PoolName = "tank"

	if s.Drives[0] != "sda" {
		t.Errorf("clone shares Drives backing array: %v", s.Drives)
	}
	if s.ExcludePaths[0] != "/tmp" {
		t.Errorf("clone shares ExcludePaths backing array: %v", s.ExcludePaths)
	}
	if s.PoolName != "zroot" {
		t.Errorf("clone mutation leaked: %q", s.PoolName)
	}
}

func TestRaidLevel_MinDrives(t *testing.T) {
	tests := []struct {
		level RaidLevel
		want  int
	}{
		{RaidNone, 0},
		{RaidMirror, 2},
		{RaidZ1, 3},
		{RaidZ2, 4},
		{RaidZ3, 5},
	}
	for _, tt := range tests {
		if got := tt.level.MinDrives(); got != tt.want {
			t.Errorf("%s.MinDrives() = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestEnumParseRoundTrips(t *testing.T) {
	for _, r := range []RaidLevel{RaidNone, RaidMirror, RaidZ1, RaidZ2, RaidZ3} {
		if ParseRaidLevel(r.String()) != r {
			t.Errorf("raid level %s does not round-trip", r)
		}
	}
	for _, b := range []Bootloader{BootZBM, BootSystemdBoot, BootRefindZBM} {
		if ParseBootloader(b.String()) != b {
			t.Errorf("bootloader %s does not round-trip", b)
		}
	}
	for _, c := range []Compression{CompZSTD, CompLZ4, CompGzip9, CompOff} {
		if ParseCompression(c.String()) != c {
			t.Errorf("compression %s does not round-trip", c)
		}
	}
	for _, a := range []Ashift{AshiftAuto, Ashift9, Ashift12, Ashift13} {
		if ParseAshift(a.String()) != a {
			t.Errorf("ashift %s does not round-trip", a)
		}
	}

	// Unknown strings fall back to the safe default
	if ParseRaidLevel("raid60") != RaidNone {
		t.Error("unknown raid level should parse as none")
	}
	if ParseBootloader("grub") != BootZBM {
		t.Error("unknown bootloader should parse as zbm")
	}
}

func TestSettings_MinDeviceSizeBytes(t *testing.T) {
	s := NewSettings() // 1G EFI + 8G swap + 10GiB floor
	want := uint64(1_000_000_000) + uint64(8_000_000_000) + (10 << 30)
	if got := s.MinDeviceSizeBytes(); got != want {
		t.Errorf("MinDeviceSizeBytes() = %d, want %d", got, want)
	}

	// Unparseable sizes count as zero rather than failing
	s.EFISize = "lots"
	s.SwapSize = ""
	if got := s.MinDeviceSizeBytes(); got != 10<<30 {
		t.Errorf("MinDeviceSizeBytes() with bad sizes = %d, want %d", got, uint64(10<<30))
	}
}
