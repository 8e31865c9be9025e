// SPDX-License-Identifier: Apache-2.0

// Package installer holds the wizard's domain core: the mutable settings
// record shared by every screen, the validation engine that gates forward
// progress, the per-mode installation step lists, and the backend contract
// that reports step progress.
package installer

import (
	"github.com/dustin/go-humanize"
)

// Mode selects what the installer will do.
type Mode int

const (
	ModeUnset Mode = iota
	ModeNewInstall
	ModeMigrate
)

func (m Mode) String() string {
	switch m {
	case ModeNewInstall:
		return "new"
	case ModeMigrate:
		return "existing"
	default:
		return "unset"
	}
}

// Title returns the operator-facing mode label.
func (m Mode) Title() string {
	switch m {
	case ModeNewInstall:
		return "New Installation"
	case ModeMigrate:
		return "System Migration"
	default:
		return "Not Selected"
	}
}

// RaidLevel is the ZFS pool topology.
type RaidLevel int

const (
	RaidNone RaidLevel = iota
	RaidMirror
	RaidZ1
	RaidZ2
	RaidZ3
)

func (r RaidLevel) String() string {
	switch r {
	case RaidMirror:
		return "mirror"
	case RaidZ1:
		return "raidz1"
	case RaidZ2:
		return "raidz2"
	case RaidZ3:
		return "raidz3"
	default:
		return "none"
	}
}

// MinDrives returns the smallest drive count the level can operate on.
// RaidNone reports 0: the drive-selection check owns the non-empty rule.
func (r RaidLevel) MinDrives() int {
	switch r {
	case RaidMirror:
		return 2
	case RaidZ1:
		return 3
	case RaidZ2:
		return 4
	case RaidZ3:
		return 5
	default:
		return 0
	}
}

// VdevType returns the zpool-create vdev keyword, or "" for a plain stripe.
func (r RaidLevel) VdevType() string {
	if r == RaidNone {
		return ""
	}
	return r.String()
}

// Description returns the operator-facing redundancy summary.
func (r RaidLevel) Description() string {
	switch r {
	case RaidMirror:
		return "RAID1 - can lose N-1 drives"
	case RaidZ1:
		return "RAID5 equivalent - can lose 1 drive"
	case RaidZ2:
		return "RAID6 equivalent - can lose 2 drives"
	case RaidZ3:
		return "Can lose 3 drives"
	default:
		return "No redundancy"
	}
}

// ParseRaidLevel maps a config/display string back to a level.
// Unknown strings fall back to RaidNone.
func ParseRaidLevel(s string) RaidLevel {
	switch s {
	case "mirror":
		return RaidMirror
	case "raidz1":
		return RaidZ1
	case "raidz2":
		return RaidZ2
	case "raidz3":
		return RaidZ3
	default:
		return RaidNone
	}
}

// Bootloader selects the boot chain written during install.
type Bootloader int

const (
	BootZBM Bootloader = iota
	BootSystemdBoot
	BootRefindZBM
)

func (b Bootloader) String() string {
	switch b {
	case BootSystemdBoot:
		return "systemd-boot"
	case BootRefindZBM:
		return "refind"
	default:
		return "zbm"
	}
}

// Description returns the operator-facing boot chain summary.
func (b Bootloader) Description() string {
	switch b {
	case BootSystemdBoot:
		return "systemd-boot + ZBM"
	case BootRefindZBM:
		return "rEFInd + ZBM"
	default:
		return "ZFSBootMenu (standalone)"
	}
}

// ParseBootloader maps a config string to a bootloader, defaulting to ZBM.
func ParseBootloader(s string) Bootloader {
	switch s {
	case "systemd-boot":
		return BootSystemdBoot
	case "refind":
		return BootRefindZBM
	default:
		return BootZBM
	}
}

// Compression is the pool-wide ZFS compression property.
type Compression int

const (
	CompZSTD Compression = iota
	CompLZ4
	CompGzip9
	CompOff
)

func (c Compression) String() string {
	switch c {
	case CompLZ4:
		return "lz4"
	case CompGzip9:
		return "gzip-9"
	case CompOff:
		return "off"
	default:
		return "zstd"
	}
}

// ParseCompression maps a config string to a compression, defaulting to zstd.
func ParseCompression(s string) Compression {
	switch s {
	case "lz4":
		return CompLZ4
	case "gzip-9":
		return CompGzip9
	case "off":
		return CompOff
	default:
		return CompZSTD
	}
}

// Ashift is the pool block-alignment exponent (2^ashift = sector size).
type Ashift int

const (
	AshiftAuto Ashift = 0
	Ashift9    Ashift = 9
	Ashift12   Ashift = 12
	Ashift13   Ashift = 13
)

func (a Ashift) String() string {
	switch a {
	case Ashift9:
		return "9"
	case Ashift12:
		return "12"
	case Ashift13:
		return "13"
	default:
		return "auto"
	}
}

// ParseAshift maps a config string to an ashift, defaulting to auto.
func ParseAshift(s string) Ashift {
	switch s {
	case "9":
		return Ashift9
	case "12":
		return Ashift12
	case "13":
		return Ashift13
	default:
		return AshiftAuto
	}
}

// Settings is the single mutable configuration record for a wizard session.
// The wizard owns the only instance; screens receive it by pointer and
// write only the fields their step covers. Format rules for the string
// fields live in the validation engine, not here.
type Settings struct {
	Mode   Mode
	Drives []string

	PoolName    string
	RaidLevel   RaidLevel
	Compression Compression
	Ashift      Ashift
	Bootloader  Bootloader
	EFISize     string
	SwapSize    string
	Hostname    string

	// Migration-mode fields. Ignored, never required to be zero, when
	// Mode is ModeNewInstall.
	SourceRoot   string
	CopyHome     bool
	ExcludePaths []string
}

// NewSettings returns the session defaults.
func NewSettings() *Settings {
	return &Settings{
		Mode:        ModeUnset,
		Drives:      nil,
		PoolName:    "zroot",
		RaidLevel:   RaidNone,
		Compression: CompZSTD,
		Ashift:      AshiftAuto,
		Bootloader:  BootZBM,
		EFISize:     "1G",
		SwapSize:    "8G",
		SourceRoot:  "/",
		CopyHome:    true,
	}
}

// Clone returns a deep copy. The installation backend receives a clone so
// an operator edit after a failure can never race a running step.
func (s *Settings) Clone() Settings {
	out := *s
	out.Drives = append([]string(nil), s.Drives...)
	out.ExcludePaths = append([]string(nil), s.ExcludePaths...)
	return out
}

// ToggleDrive adds name to the drive set, or removes it when present.
func (s *Settings) ToggleDrive(name string) {
	for i, d := range s.Drives {
		if d == name {
			s.Drives = append(s.Drives[:i], s.Drives[i+1:]...)
			return
		}
	}
	s.Drives = append(s.Drives, name)
}

// HasDrive reports drive set membership.
func (s *Settings) HasDrive(name string) bool {
	for _, d := range s.Drives {
		if d == name {
			return true
		}
	}
	return false
}

// MinDeviceSizeBytes is the smallest device the configuration fits on:
// EFI partition + swap + 10 GiB floor for the pool itself.
func (s *Settings) MinDeviceSizeBytes() uint64 {
	const poolFloor = 10 << 30
	return parseSize(s.EFISize) + parseSize(s.SwapSize) + poolFloor
}

// parseSize reads operator-entered sizes ("1G", "512M", "8GiB"). Humanize
// accepts both SI and IEC suffixes; unparseable input counts as zero since
// the validation engine reports it separately.
func parseSize(s string) uint64 {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0
	}
	return n
}
