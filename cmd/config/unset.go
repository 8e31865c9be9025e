// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poolforge/poolforge/pkg/config"
)

func newUnsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset [key]",
		Short: "Remove configuration value",
		Long: `Remove a configuration key from a config file.

Environment variables and defaults still apply after removal.`,
		Args: cobra.ExactArgs(1),
		Example: `  # Remove from local config
  poolforge config unset pool-name
  poolforge config unset compression

  # Remove from user config
  poolforge config unset --global log-level`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			scope := config.ScopeLocal
			if globalFlag {
				scope = config.ScopeUser
			}

			if err := config.UnsetConfigValue(key, scope); err != nil {
				return err
			}

			scopeName := "local"
			configFile := config.LocalConfigFile + config.DefaultConfigExt
			if globalFlag {
				scopeName = "global"
				configFile = "~/.config/poolforge/" + config.ConfigFileName + config.DefaultConfigExt
			}
			fmt.Printf("Removed %s from %s config (%s)\n", key, scopeName, configFile)

			return nil
		},
	}

	addGlobalFlag(cmd)
	return cmd
}
