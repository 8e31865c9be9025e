// SPDX-License-Identifier: Apache-2.0
package plan

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/poolforge/poolforge/pkg/config"
	"github.com/poolforge/poolforge/pkg/installer"
	"github.com/poolforge/poolforge/pkg/zfs"
)

var (
	flagDrives      []string
	flagPool        string
	flagRaid        string
	flagCompression string
	flagAshift      string
	flagRaw         bool
)

// NewPlanCmd creates the plan command
func NewPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the pool and dataset commands for a given layout",
		Long: `Renders the zpool and zfs commands the installer would run for the
given drives and pool layout, without touching anything.

Defaults come from the config file and POOLFORGE_* environment
variables; flags override both.`,
		Example: `  # Mirrored pool on two drives
  poolforge plan --drives sda,sdb --raid mirror

  # Pipe-friendly output
  poolforge plan --drives nvme0n1 --raw`,
		RunE: runPlan,
	}

	cmd.Flags().StringSliceVar(&flagDrives, "drives", nil, "Target drives, e.g. sda,sdb (required)")
	cmd.Flags().StringVar(&flagPool, "pool", "", "Pool name (default from config)")
	cmd.Flags().StringVar(&flagRaid, "raid", "none", "RAID level: none, mirror, raidz1, raidz2, raidz3")
	cmd.Flags().StringVar(&flagCompression, "compression", "", "Compression: zstd, lz4, gzip-9, off (default from config)")
	cmd.Flags().StringVar(&flagAshift, "ashift", "auto", "Ashift: auto, 9, 12, 13")
	cmd.Flags().BoolVar(&flagRaw, "raw", false, "Plain text output without markdown rendering")
	_ = cmd.MarkFlagRequired("drives")

	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	settings := installer.NewSettings()
	settings.Drives = flagDrives
	settings.RaidLevel = installer.ParseRaidLevel(flagRaid)
	settings.Ashift = installer.ParseAshift(flagAshift)
	settings.PoolName = config.GetPoolName()
	settings.Compression = installer.ParseCompression(config.GetCompression())
	if flagPool != "" {
		settings.PoolName = flagPool
	}
	if flagCompression != "" {
		settings.Compression = installer.ParseCompression(flagCompression)
	}

	if min := settings.RaidLevel.MinDrives(); len(settings.Drives) < min {
		return fmt.Errorf("%s requires at least %d drives, got %d",
			settings.RaidLevel, min, len(settings.Drives))
	}

	md := renderPlanMarkdown(settings)
	if flagRaw {
		fmt.Print(md)
		return nil
	}
	return renderMarkdown(md)
}

func renderPlanMarkdown(settings *installer.Settings) string {
	var md strings.Builder

	md.WriteString("# Pool Plan\n\n")
	md.WriteString(fmt.Sprintf("Pool **%s**: %s across %d drive(s), compression %s.\n\n",
		settings.PoolName, settings.RaidLevel.Description(), len(settings.Drives), settings.Compression))

	md.WriteString("## Pool\n\n```\n")
	md.WriteString(strings.Join(zfs.PoolCreateArgs(*settings), " "))
	md.WriteString("\n```\n\n")

	md.WriteString("## Datasets\n\n```\n")
	for _, d := range zfs.DefaultLayout() {
		md.WriteString(strings.Join(zfs.DatasetCreateArgs(settings.PoolName, d), " "))
		md.WriteString("\n")
	}
	md.WriteString("```\n")

	return md.String()
}

func renderMarkdown(markdown string) error {
	width := 100
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		fmt.Print(markdown)
		return nil
	}
	rendered, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return nil
	}
	fmt.Println(strings.TrimRight(rendered, "\n"))
	return nil
}
