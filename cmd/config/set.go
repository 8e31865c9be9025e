// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poolforge/poolforge/pkg/config"
)

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set configuration value",
		Long: `Set a configuration key to a value.

Boolean values support natural language:
  - true:  true, yes, on, enable, enabled
  - false: false, no, off, disable, disabled

Numeric values are automatically detected and typed.`,
		Args: cobra.ExactArgs(2),
		Example: `  # Set the defaults the wizard offers
  poolforge config set pool-name tank
  poolforge config set compression lz4
  poolforge config set swap-size 16G

  # Set in user config instead of local
  poolforge config set --global log-level debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			scope := config.ScopeLocal
			if globalFlag {
				scope = config.ScopeUser
			}

			if err := config.SetConfigValue(key, value, scope); err != nil {
				return err
			}

			scopeName := "local"
			configFile := config.LocalConfigFile + config.DefaultConfigExt
			if globalFlag {
				scopeName = "global"
				configFile = "~/.config/poolforge/" + config.ConfigFileName + config.DefaultConfigExt
			}
			fmt.Printf("Set %s = %s (%s: %s)\n", key, value, scopeName, configFile)

			return nil
		},
	}

	addGlobalFlag(cmd)
	return cmd
}
