// SPDX-License-Identifier: Apache-2.0

// Package zfs builds the zpool and zfs command plans an installation run
// would execute. Everything here is pure argument construction so the
// plan can be rendered, reviewed, and tested without touching a disk.
package zfs

import (
	"fmt"

	"github.com/poolforge/poolforge/pkg/installer"
)

// PoolCreateArgs returns the full zpool invocation for the configured pool:
// forced creation, no automount, alignment and the standard root-on-ZFS
// property set, then the vdev topology and member devices.
func PoolCreateArgs(s installer.Settings) []string {
	args := []string{"zpool", "create", "-f", "-m", "none"}

	if s.Ashift != installer.AshiftAuto {
		args = append(args, "-o", fmt.Sprintf("ashift=%d", int(s.Ashift)))
	}

	args = append(args,
		"-O", "acltype=posixacl",
		"-O", "xattr=sa",
		"-O", "dnodesize=auto",
		"-O", fmt.Sprintf("compression=%s", s.Compression),
		"-O", "normalization=formD",
		"-O", "relatime=on",
	)

	args = append(args, s.PoolName)

	if vdev := s.RaidLevel.VdevType(); vdev != "" {
		args = append(args, vdev)
	}

	for _, drive := range s.Drives {
		args = append(args, "/dev/"+drive)
	}

	return args
}
