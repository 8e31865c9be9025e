// SPDX-License-Identifier: Apache-2.0
package config

import (
	"github.com/spf13/cobra"
)

var (
	// globalFlag determines whether to operate on user config vs local config
	globalFlag bool
)

// NewConfigCmd creates the config command and its subcommands
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage poolforge configuration",
		Long: `Manage poolforge configuration settings.

Configuration precedence (highest to lowest):
  1. Environment variables (POOLFORGE_*)
  2. Local config (./poolforge.yaml)
  3. User config (~/.config/poolforge/config.yaml)
  4. Defaults

By default, config commands operate on local config (./poolforge.yaml).
Use --global to operate on user config instead.`,
		Example: `  # Set local config (shared install profile)
  poolforge config set pool-name tank
  poolforge config set compression lz4

  # Set global config (user preferences)
  poolforge config set --global log-level debug

  # Get configuration value
  poolforge config get pool-name

  # Remove configuration value
  poolforge config unset compression
  poolforge config unset --global log-level

  # List all configuration
  poolforge config list`,
	}

	// Add subcommands
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newUnsetCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newSchemaCmd())

	return cmd
}

// addGlobalFlag adds the --global flag to a command
func addGlobalFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&globalFlag, "global", false, "Operate on user config instead of local config")
}
