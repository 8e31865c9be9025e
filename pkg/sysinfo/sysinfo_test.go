// SPDX-License-Identifier: Apache-2.0
package sysinfo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFixture creates path (and parents) under root with the given content.
func writeFixture(t *testing.T, root, path, content string) {
	t.Helper()
	full := filepath.Join(root, path)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", full, err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", full, err)
	}
}

func TestProbe_FullFixture(t *testing.T) {
	root := t.TempDir()

	if err := os.MkdirAll(filepath.Join(root, "sys/firmware/efi"), 0755); err != nil {
		t.Fatalf("mkdir efi: %v", err)
	}
	writeFixture(t, root, "proc/meminfo", "MemTotal:       16384000 kB\nMemFree:        1024 kB\n")
	writeFixture(t, root, "proc/cpuinfo", "processor\t: 0\nmodel name\t: x\nprocessor\t: 1\nprocessor\t: 2\nprocessor\t: 3\n")
	writeFixture(t, root, "etc/os-release", "NAME=\"Ubuntu\"\nID=ubuntu\nVERSION_ID=\"24.04\"\n")

	facts := Inspector{Root: root}.Probe()

	if !facts.IsEFI {
		t.Error("expected IsEFI true with /sys/firmware/efi present")
	}
	if facts.RAMGB != 15 {
		t.Errorf("expected 15 GB RAM, got %d", facts.RAMGB)
	}
	if facts.CPUCount != 4 {
		t.Errorf("expected 4 CPUs, got %d", facts.CPUCount)
	}
	if facts.Distro != "ubuntu" {
		t.Errorf("expected distro ubuntu, got %q", facts.Distro)
	}
	if facts.DistroVersion != "24.04" {
		t.Errorf("expected version 24.04, got %q", facts.DistroVersion)
	}
}

func TestProbe_EmptyRootDegradesToDefaults(t *testing.T) {
	facts := Inspector{Root: t.TempDir()}.Probe()

	if facts.IsEFI {
		t.Error("expected IsEFI false without /sys/firmware/efi")
	}
	if facts.RAMGB != 0 {
		t.Errorf("expected 0 GB RAM, got %d", facts.RAMGB)
	}
	if facts.CPUCount != 0 {
		t.Errorf("expected 0 CPUs, got %d", facts.CPUCount)
	}
	if facts.Distro != "Unknown" {
		t.Errorf("expected distro Unknown, got %q", facts.Distro)
	}
}

func TestEnumerateDevices(t *testing.T) {
	root := t.TempDir()

	// Real disks
	writeFixture(t, root, "sys/block/sda/size", "1953525168\n")
	writeFixture(t, root, "sys/block/sda/device/model", "WDC WD10EZEX\n")
	writeFixture(t, root, "sys/block/sda/queue/rotational", "1\n")

	writeFixture(t, root, "sys/block/sdb/size", "234441648\n")
	writeFixture(t, root, "sys/block/sdb/device/model", "Samsung SSD 870\n")
	writeFixture(t, root, "sys/block/sdb/queue/rotational", "0\n")

	writeFixture(t, root, "sys/block/nvme0n1/size", "2000409264\n")
	writeFixture(t, root, "sys/block/nvme0n1/device/model", "WD_BLACK SN850X\n")
	writeFixture(t, root, "sys/block/nvme0n1/queue/rotational", "0\n")

	// Virtual devices that must be skipped
	writeFixture(t, root, "sys/block/loop0/size", "8\n")
	writeFixture(t, root, "sys/block/ram0/size", "8\n")
	writeFixture(t, root, "sys/block/dm-0/size", "8\n")

	devices := Inspector{Root: root}.EnumerateDevices()

	if len(devices) != 3 {
		t.Fatalf("expected 3 devices, got %d: %v", len(devices), devices.Names())
	}

	sda := devices["sda"]
	if sda.SizeBytes != 1953525168*512 {
		t.Errorf("sda size: expected %d, got %d", uint64(1953525168)*512, sda.SizeBytes)
	}
	if sda.Media != MediaHDD {
		t.Errorf("sda media: expected HDD, got %s", sda.Media)
	}
	if devices["sdb"].Media != MediaSSD {
		t.Errorf("sdb media: expected SSD, got %s", devices["sdb"].Media)
	}
	if devices["nvme0n1"].Media != MediaNVMe {
		t.Errorf("nvme0n1 media: expected NVMe, got %s", devices["nvme0n1"].Media)
	}
	if devices["sdb"].Model != "Samsung SSD 870" {
		t.Errorf("sdb model: got %q", devices["sdb"].Model)
	}

	names := devices.Names()
	want := []string{"nvme0n1", "sda", "sdb"}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("Names()[%d]: expected %s, got %s", i, n, names[i])
		}
	}
}

func TestEnumerateDevices_MissingAttributesDegrade(t *testing.T) {
	root := t.TempDir()
	// Device directory exists but has no readable attributes
	if err := os.MkdirAll(filepath.Join(root, "sys/block/sdc"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	devices := Inspector{Root: root}.EnumerateDevices()
	dev, ok := devices["sdc"]
	if !ok {
		t.Fatal("expected sdc to be enumerated")
	}
	if dev.SizeBytes != 0 {
		t.Errorf("expected size 0, got %d", dev.SizeBytes)
	}
	if dev.Model != "Unknown" {
		t.Errorf("expected model Unknown, got %q", dev.Model)
	}
	if dev.Media != MediaSSD {
		t.Errorf("expected SSD default, got %s", dev.Media)
	}
}

func TestLoad_ValidPayload(t *testing.T) {
	payload := `{"system_info":{"is_efi":true,"ram_gb":32,"cpu_count":16,"distro":"debian","distro_version":"12"},"devices":{"vda":{"size_bytes":107374182400,"model":"Virtio Block","type":"SSD"}}}` + "\n"

	facts, devices := Inspector{Root: t.TempDir()}.Load(strings.NewReader(payload))

	if !facts.IsEFI || facts.RAMGB != 32 || facts.CPUCount != 16 {
		t.Errorf("facts not taken from payload: %+v", facts)
	}
	if facts.Distro != "debian" {
		t.Errorf("expected distro debian, got %q", facts.Distro)
	}
	if len(devices) != 1 || devices["vda"].Model != "Virtio Block" {
		t.Errorf("devices not taken from payload: %v", devices)
	}
}

func TestLoad_MalformedPayloadFallsBack(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "proc/meminfo", "MemTotal:       4194304 kB\n")

	facts, _ := Inspector{Root: root}.Load(strings.NewReader("{not json\n"))

	if facts.RAMGB != 4 {
		t.Errorf("expected fallback probe to report 4 GB, got %d", facts.RAMGB)
	}
	if facts.Distro != "Unknown" {
		t.Errorf("expected distro Unknown after fallback, got %q", facts.Distro)
	}
}

func TestLoad_NilReaderProbes(t *testing.T) {
	facts, devices := Inspector{Root: t.TempDir()}.Load(nil)
	if facts.IsEFI {
		t.Error("expected zero-value facts")
	}
	if len(devices) != 0 {
		t.Errorf("expected no devices, got %d", len(devices))
	}
}

func TestSupportedDistro(t *testing.T) {
	tests := []struct {
		name    string
		distro  string
		version string
		want    bool
	}{
		{"recent ubuntu", "ubuntu", "24.04", true},
		{"minimum ubuntu", "ubuntu", "20.04", true},
		{"old ubuntu", "ubuntu", "18.04", false},
		{"old debian", "debian", "10", false},
		{"current debian", "debian", "12", true},
		{"unknown distro passes", "voidlinux", "anything", true},
		{"unparseable version passes", "ubuntu", "rolling", true},
		{"empty facts pass", "Unknown", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SupportedDistro(Facts{Distro: tt.distro, DistroVersion: tt.version})
			if got != tt.want {
				t.Errorf("SupportedDistro(%s %s) = %v, want %v", tt.distro, tt.version, got, tt.want)
			}
		})
	}
}
