// SPDX-License-Identifier: Apache-2.0
package installer

import (
	"fmt"

	"github.com/poolforge/poolforge/pkg/sysinfo"
)

// CheckResult is one named validation outcome. Failure is data, not an
// error: critical failures block forward navigation, non-critical ones are
// only surfaced.
type CheckResult struct {
	Name     string
	Passed   bool
	Message  string
	Critical bool
}

// Evaluate runs every check against the current settings and host facts and
// returns them in fixed order. It is pure and total: results are recomputed
// from scratch on every call, never cached, and unknown or default values
// simply fail their check with an explanatory message.
func Evaluate(s *Settings, facts sysinfo.Facts) []CheckResult {
	results := make([]CheckResult, 0, 6)

	// 1. Firmware mode
	efiMsg := "System is EFI"
	if !facts.IsEFI {
		efiMsg = "BIOS not supported"
	}
	results = append(results, CheckResult{
		Name:     "EFI System Check",
		Passed:   facts.IsEFI,
		Message:  efiMsg,
		Critical: true,
	})

	// 2. Memory floor for ZFS
	ramOK := facts.RAMGB >= 2
	ramMsg := fmt.Sprintf("%dGB RAM available", facts.RAMGB)
	if !ramOK {
		ramMsg = fmt.Sprintf("Only %dGB RAM (need 2GB+)", facts.RAMGB)
	}
	results = append(results, CheckResult{
		Name:     "RAM Check",
		Passed:   ramOK,
		Message:  ramMsg,
		Critical: true,
	})

	// 3. Target drives
	drivesOK := len(s.Drives) > 0
	drivesMsg := fmt.Sprintf("%d drive(s) selected", len(s.Drives))
	if !drivesOK {
		drivesMsg = "No drives selected"
	}
	results = append(results, CheckResult{
		Name:     "Drive Selection",
		Passed:   drivesOK,
		Message:  drivesMsg,
		Critical: true,
	})

	// 4. RAID level vs drive count
	results = append(results, raidCheck(s))

	// 5. Pool name syntax
	poolOK := validPoolName(s.PoolName)
	poolMsg := fmt.Sprintf("Pool name: %s", s.PoolName)
	if !poolOK {
		poolMsg = "Invalid pool name"
	}
	results = append(results, CheckResult{
		Name:     "Pool Name",
		Passed:   poolOK,
		Message:  poolMsg,
		Critical: true,
	})

	// 6. Hostname, migration mode only
	if s.Mode == ModeMigrate {
		hostOK := s.Hostname != ""
		hostMsg := fmt.Sprintf("Hostname: %s", s.Hostname)
		if !hostOK {
			hostMsg = "Hostname not set"
		}
		results = append(results, CheckResult{
			Name:     "Hostname",
			Passed:   hostOK,
			Message:  hostMsg,
			Critical: false,
		})
	}

	return results
}

// raidCheck verifies the drive count satisfies the RAID level's minimum.
// The failure message always names the exact minimum.
func raidCheck(s *Settings) CheckResult {
	min := s.RaidLevel.MinDrives()
	passed := len(s.Drives) >= min
	msg := fmt.Sprintf("RAID level: %s", s.RaidLevel)
	if !passed {
		name := s.RaidLevel.String()
		if s.RaidLevel == RaidMirror {
			name = "Mirror"
		}
		msg = fmt.Sprintf("%s requires %d+ drives", name, min)
	}
	return CheckResult{
		Name:     "RAID Configuration",
		Passed:   passed,
		Message:  msg,
		Critical: true,
	}
}

// validPoolName accepts non-empty names built from [A-Za-z0-9_-].
func validPoolName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

// AllCriticalPassed reports whether every critical check passed.
// Non-critical failures never block progress.
func AllCriticalPassed(results []CheckResult) bool {
	for _, r := range results {
		if r.Critical && !r.Passed {
			return false
		}
	}
	return true
}
