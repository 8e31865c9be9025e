// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poolforge/poolforge/pkg/config"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all configuration values",
		Long: `List all configuration values with their sources.

Shows all configuration keys currently set, along with their values
and where they come from (ENV, local config, user config, or default).

Output format: key = value (source)`,
		Example: `  # List all configuration
  poolforge config list

  # Example output:
  # bootloader = zbm (default)
  # compression = lz4 (from ./poolforge.yaml)
  # log-level = debug (from ENV: POOLFORGE_LOG_LEVEL)
  # pool-name = tank (from ~/.config/poolforge/config.yaml)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := config.ListConfigValues()
			if err != nil {
				return err
			}

			if len(values) == 0 {
				fmt.Println("No configuration set")
				return nil
			}

			for _, cv := range values {
				fmt.Printf("%s = %v (%s)\n", cv.Key, cv.Value, cv.Source)
			}

			fmt.Println("\n" + config.CurrentTheme.SubtleStyle().Render("Configuration precedence: ENV > local config > user config > defaults"))

			return nil
		},
	}

	return cmd
}
