// SPDX-License-Identifier: Apache-2.0
package probe

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/poolforge/poolforge/pkg/sysinfo"
)

var flagPretty bool

// NewProbeCmd creates the probe command
func NewProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Print probed system facts and block devices as JSON",
		Long: `Probes /proc and /sys for system facts and usable block devices and
prints the result as a single JSON payload.

The output is the same shape the install wizard accepts on stdin, so a
launcher can capture it on one machine and replay it on another:

  poolforge probe | poolforge install`,
		RunE: runProbe,
	}
	cmd.Flags().BoolVar(&flagPretty, "pretty", false, "Indent the JSON output")
	return cmd
}

func runProbe(cmd *cobra.Command, args []string) error {
	facts, devices := sysinfo.Load(nil)
	payload := sysinfo.Payload{SystemInfo: facts, Devices: devices}

	enc := json.NewEncoder(os.Stdout)
	if flagPretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	return nil
}
