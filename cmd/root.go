// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	configCmd "github.com/poolforge/poolforge/cmd/config"
	"github.com/poolforge/poolforge/cmd/install"
	"github.com/poolforge/poolforge/cmd/plan"
	"github.com/poolforge/poolforge/cmd/probe"
	"github.com/poolforge/poolforge/cmd/version"
	"github.com/poolforge/poolforge/pkg/config"
)

var (
	// Version is set at build time via ldflags
	// -ldflags "-X github.com/poolforge/poolforge/cmd.Version=x.y.z"
	Version string

	logLevel    string
	debugLogger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "poolforge",
	Short: "ZFS installation and migration wizard",
	Long: `PoolForge - ZFS installation and migration wizard

Installs a fresh system onto a new ZFS pool or migrates the running
system onto one, through a full-screen terminal wizard. Pool layout,
datasets, and the bootloader follow the ZFSBootMenu conventions.
Implements XDG Base Directory specification for config and log storage.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize directories before any command runs
		if err := config.InitDirs(); err != nil {
			return err
		}

		// Load config files now that directories exist
		if err := config.LoadConfig(); err != nil {
			return err
		}

		if !config.GetUseColor() {
			lipgloss.SetColorProfile(termenv.Ascii)
		}

		if logLevel == "" {
			logLevel = config.GetLogLevel()
		}
		if logLevel == "disabled" {
			log.SetOutput(io.Discard)
			return nil
		}

		var level log.Level
		switch logLevel {
		case "debug":
			level = log.DebugLevel
		case "info":
			level = log.InfoLevel
		case "warn":
			level = log.WarnLevel
		case "error":
			level = log.ErrorLevel
		default:
			level = log.InfoLevel
		}

		// The wizard owns the terminal, so logs always go to a file
		logFile := filepath.Join(config.GlobalPaths.LogDir, "poolforge.log")
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		debugLogger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "2006-01-02T15:04:05.000Z07:00",
			Level:           level,
			ReportCaller:    true,
			Formatter:       log.JSONFormatter,
		})
		log.SetDefault(debugLogger)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		theme := config.CurrentTheme
		errorStyle := theme.ErrorStyle()
		fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("Error:"), err.Error())
		os.Exit(1)
	}
}

func init() {
	// Configure logging - will be redirected to file in PersistentPreRunE
	log.SetReportTimestamp(false)
	log.SetLevel(log.InfoLevel)

	config.InitViper()

	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "Log level: disabled, debug, info, warn, error")
	config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(configCmd.NewConfigCmd())
	rootCmd.AddCommand(install.GetInstallCmd())
	rootCmd.AddCommand(plan.NewPlanCmd())
	rootCmd.AddCommand(probe.NewProbeCmd())
	rootCmd.AddCommand(version.NewVersionCmd(Version))

	rootCmd.SetHelpFunc(styledHelpFunc)
	rootCmd.SetUsageFunc(styledUsageFunc)
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

// styledHelpFunc renders help output as markdown through glamour
func styledHelpFunc(cmd *cobra.Command, args []string) {
	renderMarkdown(generateHelpMarkdown(cmd))
}

// styledUsageFunc renders usage output as markdown through glamour
func styledUsageFunc(cmd *cobra.Command) error {
	renderMarkdown(generateUsageMarkdown(cmd))
	return nil
}

// generateHelpMarkdown creates markdown for the help output
func generateHelpMarkdown(cmd *cobra.Command) string {
	var md strings.Builder

	md.WriteString(fmt.Sprintf("# %s\n\n", cmd.Name()))

	if cmd.Long != "" {
		md.WriteString(fmt.Sprintf("%s\n\n", cmd.Long))
	} else if cmd.Short != "" {
		md.WriteString(fmt.Sprintf("%s\n\n", cmd.Short))
	}

	if cmd.Runnable() {
		md.WriteString("## Usage\n\n")
		md.WriteString(fmt.Sprintf("```\n%s\n```\n\n", cmd.UseLine()))
	}

	if hasSubCommands(cmd) {
		md.WriteString("## Available Commands\n\n")
		for _, subCmd := range cmd.Commands() {
			if !subCmd.IsAvailableCommand() || subCmd.IsAdditionalHelpTopicCommand() {
				continue
			}
			md.WriteString(fmt.Sprintf("- **%s** - %s\n", subCmd.Name(), subCmd.Short))
		}
		md.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() {
		md.WriteString("## Flags\n\n")
		md.WriteString(fmt.Sprintf("```\n%s\n```\n\n", cmd.LocalFlags().FlagUsages()))
	}

	if cmd.HasAvailableInheritedFlags() {
		md.WriteString("## Global Flags\n\n")
		md.WriteString(fmt.Sprintf("```\n%s\n```\n\n", cmd.InheritedFlags().FlagUsages()))
	}

	md.WriteString(fmt.Sprintf("Use `%s [command] --help` for more information about a command.\n", cmd.CommandPath()))

	return md.String()
}

// generateUsageMarkdown creates markdown for the usage output
func generateUsageMarkdown(cmd *cobra.Command) string {
	var md strings.Builder

	md.WriteString("## Usage\n\n")

	if cmd.Runnable() {
		md.WriteString(fmt.Sprintf("```\n%s\n```\n\n", cmd.UseLine()))
	}

	if hasSubCommands(cmd) {
		md.WriteString("### Available Commands\n\n")
		for _, subCmd := range cmd.Commands() {
			if !subCmd.IsAvailableCommand() || subCmd.IsAdditionalHelpTopicCommand() {
				continue
			}
			md.WriteString(fmt.Sprintf("- **%s** - %s\n", subCmd.Name(), subCmd.Short))
		}
		md.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() {
		md.WriteString("### Flags\n\n")
		md.WriteString(fmt.Sprintf("```\n%s\n```\n\n", cmd.LocalFlags().FlagUsages()))
	}

	if cmd.HasAvailableInheritedFlags() {
		md.WriteString("### Global Flags\n\n")
		md.WriteString(fmt.Sprintf("```\n%s\n```\n\n", cmd.InheritedFlags().FlagUsages()))
	}

	return md.String()
}

// renderMarkdown renders markdown through glamour, falling back to plain
// text when the renderer cannot be built.
func renderMarkdown(markdown string) {
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
		fmt.Println(markdown)
		return
	}

	rendered, err := r.Render(markdown)
	if err != nil {
		fmt.Println(markdown)
		return
	}

	fmt.Println(strings.TrimRight(rendered, "\n"))
}

func hasSubCommands(cmd *cobra.Command) bool {
	for _, subCmd := range cmd.Commands() {
		if subCmd.IsAvailableCommand() && !subCmd.IsAdditionalHelpTopicCommand() {
			return true
		}
	}
	return false
}
