// SPDX-License-Identifier: Apache-2.0

// Package sysinfo gathers the immutable host snapshot the wizard is seeded
// with: firmware mode, memory, CPU count, distro identity, and the block
// devices available as installation targets. Every probe degrades to a
// zero or "Unknown" value on failure; nothing here returns an error to
// the caller.
package sysinfo

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"
)

// Facts is the read-only host snapshot taken once before the wizard starts.
type Facts struct {
	IsEFI         bool   `json:"is_efi"`
	RAMGB         int    `json:"ram_gb"`
	CPUCount      int    `json:"cpu_count"`
	Distro        string `json:"distro"`
	DistroVersion string `json:"distro_version"`
	Kernel        string `json:"kernel,omitempty"`
	Arch          string `json:"arch,omitempty"`
}

// Inspector probes the local system. Root is prepended to every path so
// tests can point it at a fixture tree; the zero value probes the real host.
type Inspector struct {
	Root string
}

func (in Inspector) path(p string) string {
	if in.Root == "" {
		return p
	}
	return filepath.Join(in.Root, p)
}

// Probe gathers system facts from /sys, /proc, and /etc. Individual probe
// failures are logged at debug level and leave the corresponding field at
// its zero or "Unknown" default.
func (in Inspector) Probe() Facts {
	facts := Facts{
		Distro: "Unknown",
	}

	if fi, err := os.Stat(in.path("/sys/firmware/efi")); err == nil && fi.IsDir() {
		facts.IsEFI = true
	}

	facts.RAMGB = in.probeRAMGB()
	facts.CPUCount = in.probeCPUCount()
	in.probeOSRelease(&facts)
	in.probeUname(&facts)

	log.Debugf("sysinfo.Probe: efi=%v ram=%dGB cpus=%d distro=%s %s",
		facts.IsEFI, facts.RAMGB, facts.CPUCount, facts.Distro, facts.DistroVersion)
	return facts
}

// probeRAMGB reads MemTotal from /proc/meminfo and converts to whole GB.
func (in Inspector) probeRAMGB() int {
	f, err := os.Open(in.path("/proc/meminfo"))
	if err != nil {
		log.Debugf("sysinfo: read meminfo: %v", err)
		return 0
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0
		}
		kb, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return 0
		}
		return int(kb / (1024 * 1024))
	}
	return 0
}

// probeCPUCount counts processor entries in /proc/cpuinfo.
func (in Inspector) probeCPUCount() int {
	f, err := os.Open(in.path("/proc/cpuinfo"))
	if err != nil {
		log.Debugf("sysinfo: read cpuinfo: %v", err)
		return 0
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "processor") {
			count++
		}
	}
	return count
}

// probeOSRelease reads ID and VERSION_ID from /etc/os-release.
func (in Inspector) probeOSRelease(facts *Facts) {
	f, err := os.Open(in.path("/etc/os-release"))
	if err != nil {
		log.Debugf("sysinfo: read os-release: %v", err)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "ID="):
			facts.Distro = strings.Trim(strings.TrimPrefix(line, "ID="), `"`)
		case strings.HasPrefix(line, "VERSION_ID="):
			facts.DistroVersion = strings.Trim(strings.TrimPrefix(line, "VERSION_ID="), `"`)
		}
	}
}

// probeUname fills kernel release and machine architecture. Skipped when
// probing a fixture tree since uname is not path-scoped.
func (in Inspector) probeUname(facts *Facts) {
	if in.Root != "" {
		return
	}
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		log.Debugf("sysinfo: uname: %v", err)
		return
	}
	facts.Kernel = unix.ByteSliceToString(uts.Release[:])
	facts.Arch = unix.ByteSliceToString(uts.Machine[:])
}
