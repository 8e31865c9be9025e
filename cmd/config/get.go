// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poolforge/poolforge/pkg/config"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Get configuration value",
		Long: `Get a configuration value and show its source.

The source indicates where the value comes from in precedence order:
  - ENV: Environment variable (POOLFORGE_*)
  - Local: Local config file (./poolforge.yaml)
  - User: User config file (~/.config/poolforge/config.yaml)
  - Default: Built-in default value`,
		Args: cobra.ExactArgs(1),
		Example: `  # Get a configuration value
  poolforge config get pool-name

  # Output shows value and source:
  # pool-name = tank (from ./poolforge.yaml)
  # compression = zstd (default)
  # log-level = debug (from ENV: POOLFORGE_LOG_LEVEL)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			configValue, err := config.GetConfigValue(key)
			if err != nil {
				return err
			}

			fmt.Printf("%s = %v (%s)\n", configValue.Key, configValue.Value, configValue.Source)

			return nil
		},
	}

	return cmd
}
