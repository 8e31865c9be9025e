// SPDX-License-Identifier: Apache-2.0
package sysinfo

import (
	goversion "github.com/hashicorp/go-version"
)

// minDistroVersion maps distro IDs to the oldest release with usable ZFS
// packaging. Distros not listed here are assumed fine; this gate exists to
// warn, not to block.
var minDistroVersion = map[string]string{
	"ubuntu": "20.04",
	"debian": "11",
	"fedora": "34",
}

// SupportedDistro reports whether the detected distro release meets the
// minimum for ZFS support. Unknown distros and unparseable versions return
// true; only a confirmed too-old release returns false.
func SupportedDistro(facts Facts) bool {
	minimum, ok := minDistroVersion[facts.Distro]
	if !ok {
		return true
	}

	have, err := goversion.NewVersion(facts.DistroVersion)
	if err != nil {
		return true
	}
	want, err := goversion.NewVersion(minimum)
	if err != nil {
		return true
	}
	return have.GreaterThanOrEqual(want)
}
