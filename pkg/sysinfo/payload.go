// SPDX-License-Identifier: Apache-2.0
package sysinfo

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Payload is the structured snapshot an outer process may feed the wizard
// on standard input: one line of JSON carrying system facts and devices.
type Payload struct {
	SystemInfo Facts   `json:"system_info"`
	Devices    Devices `json:"devices"`
}

// Load reads a snapshot using the zero-value Inspector, so probes hit
// the real host.
func Load(r io.Reader) (Facts, Devices) {
	return Inspector{}.Load(r)
}

// Load reads a single-line JSON payload from r. An empty, missing, or
// malformed payload falls back to probing the host directly; a payload
// without devices still triggers local device enumeration. Load never
// fails: the worst case is a snapshot of zero values.
func (in Inspector) Load(r io.Reader) (Facts, Devices) {
	line := readFirstLine(r)
	if strings.TrimSpace(line) == "" {
		log.Debug("sysinfo.Load: no stdin payload, probing directly")
		return in.Probe(), in.EnumerateDevices()
	}

	var payload Payload
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		log.Debugf("sysinfo.Load: malformed payload, probing directly: %v", err)
		return in.Probe(), in.EnumerateDevices()
	}

	facts := payload.SystemInfo
	if facts.Distro == "" {
		facts.Distro = "Unknown"
	}

	devices := payload.Devices
	if len(devices) == 0 {
		devices = in.EnumerateDevices()
	}

	log.Debugf("sysinfo.Load: payload accepted, %d device(s)", len(devices))
	return facts, devices
}

func readFirstLine(r io.Reader) string {
	if r == nil {
		return ""
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if scanner.Scan() {
		return scanner.Text()
	}
	return ""
}
