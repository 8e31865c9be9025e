// SPDX-License-Identifier: Apache-2.0
package sysinfo

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// MediaType classifies a block device by its storage medium.
type MediaType string

const (
	MediaHDD  MediaType = "HDD"
	MediaSSD  MediaType = "SSD"
	MediaNVMe MediaType = "NVMe"
)

// Device describes one candidate target block device.
type Device struct {
	SizeBytes uint64    `json:"size_bytes"`
	Model     string    `json:"model"`
	Media     MediaType `json:"type"`
}

// Devices maps device names (sda, nvme0n1, ...) to their descriptions.
type Devices map[string]Device

// EnumerateDevices walks /sys/block and describes every whole-disk device.
// Virtual devices (loop, ram, device-mapper) are skipped. Unreadable
// attributes degrade to 0 / "Unknown" so one broken sysfs entry never hides
// the rest of the machine.
func (in Inspector) EnumerateDevices() Devices {
	devices := Devices{}

	entries, err := os.ReadDir(in.path("/sys/block"))
	if err != nil {
		log.Debugf("sysinfo: read /sys/block: %v", err)
		return devices
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, "loop") ||
			strings.HasPrefix(name, "ram") ||
			strings.HasPrefix(name, "dm-") {
			continue
		}
		devices[name] = in.describeDevice(name)
	}

	log.Debugf("sysinfo.EnumerateDevices: found %d device(s)", len(devices))
	return devices
}

func (in Inspector) describeDevice(name string) Device {
	base := "/sys/block/" + name
	dev := Device{Model: "Unknown"}

	// Sector count; /sys/block/*/size is always in 512-byte units.
	if raw, err := os.ReadFile(in.path(base + "/size")); err == nil {
		if sectors, err := strconv.ParseUint(strings.TrimSpace(string(raw)), 10, 64); err == nil {
			dev.SizeBytes = sectors * 512
		}
	}

	if raw, err := os.ReadFile(in.path(base + "/device/model")); err == nil {
		if model := strings.TrimSpace(string(raw)); model != "" {
			dev.Model = model
		}
	}

	rotational := false
	if raw, err := os.ReadFile(in.path(base + "/queue/rotational")); err == nil {
		rotational = strings.TrimSpace(string(raw)) == "1"
	}

	switch {
	case strings.HasPrefix(name, "nvme"):
		dev.Media = MediaNVMe
	case rotational:
		dev.Media = MediaHDD
	default:
		dev.Media = MediaSSD
	}

	return dev
}

// Names returns device names sorted for stable display order.
func (d Devices) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
