// SPDX-License-Identifier: Apache-2.0
package installer

// Steps returns the ordered installation step names for a mode. Both lists
// begin with device fitness checking and end with finalization; migration
// adds the filesystem mount, system copy, and network-zap steps.
func Steps(mode Mode) []string {
	if mode == ModeMigrate {
		return []string{
			"Checking device fitness",
			"Preparing target drives",
			"Creating partitions",
			"Setting up ZFS pool",
			"Mounting filesystems",
			"Copying system files",
			"Zapping network configuration",
			"Installing bootloader",
			"Finalizing installation",
		}
	}
	return []string{
		"Checking device fitness",
		"Preparing target drives",
		"Creating partitions",
		"Setting up ZFS pool",
		"Installing base system",
		"Installing bootloader",
		"Finalizing installation",
	}
}
