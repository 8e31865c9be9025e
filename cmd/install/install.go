// SPDX-License-Identifier: Apache-2.0
package install

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/poolforge/poolforge/pkg/config"
	"github.com/poolforge/poolforge/pkg/installer"
	"github.com/poolforge/poolforge/pkg/sysinfo"
)

// GetInstallCmd returns the cobra command for the install subcommand.
// This is the exported entry point used by cmd/root.go.
func GetInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Launch the interactive ZFS installation wizard",
		Long: `Launches a full-screen wizard that walks through installing a fresh
system onto ZFS or migrating the running system onto a new pool.

System facts and the block device inventory are probed from /proc and
/sys. A launcher may instead pipe a single-line JSON payload on stdin:

  {"system_info": {...}, "devices": {...}}

A malformed or empty payload falls back to local probing.`,
		Example: `  # Probe the local system and run the wizard
  poolforge install

  # Run with a pre-collected payload from a launcher script
  collect-facts | poolforge install`,
		RunE: runInstall,
	}
	return cmd
}

// runInstall is the cobra RunE handler
func runInstall(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("install requires a terminal on stdout")
	}

	var opts []tea.ProgramOption
	opts = append(opts, tea.WithAltScreen())

	if term.IsTerminal(int(os.Stdin.Fd())) {
		// no payload on stdin, probe locally
		facts, devices := sysinfo.Load(nil)
		return runWizard(facts, devices, opts)
	}

	// stdin carries the launcher payload; the keyboard lives on /dev/tty
	facts, devices := sysinfo.Load(os.Stdin)
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return fmt.Errorf("stdin is piped and /dev/tty is unavailable: %w", err)
	}
	defer tty.Close()
	opts = append(opts, tea.WithInput(tty))

	return runWizard(facts, devices, opts)
}

func runWizard(facts sysinfo.Facts, devices sysinfo.Devices, opts []tea.ProgramOption) error {
	log.Info("starting wizard",
		"efi", facts.IsEFI,
		"ram_gb", facts.RAMGB,
		"devices", len(devices))

	backend := installer.SimulatedBackend{Delay: config.GetSimulateDelay()}
	p := tea.NewProgram(NewWizard(facts, devices, backend), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}
