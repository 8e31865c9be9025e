// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// InitViper initializes Viper configuration with defaults and search paths
// Precedence order: ENV > dir-conf > user-conf > defaults
func InitViper() {
	// Set config type
	viper.SetConfigType(ConfigType)

	// Set defaults (lowest precedence)
	viper.SetDefault("log-level", "info")
	viper.SetDefault("pool-name", "zroot")
	viper.SetDefault("efi-size", "1G")
	viper.SetDefault("swap-size", "8G")
	viper.SetDefault("compression", "zstd")
	viper.SetDefault("bootloader", "zbm")
	viper.SetDefault("simulate-delay", "400ms")
	viper.SetDefault("use-color", true)

	// Enable environment variable support (highest precedence)
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// LoadConfig reads config files in precedence order
// Precedence: ENV > ./poolforge.yaml > ~/.config/poolforge/config.yaml > defaults
func LoadConfig() error {
	// First, try to read user config from XDG config directory
	viper.SetConfigName(ConfigFileName)
	viper.AddConfigPath(GlobalPaths.ConfigDir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read user config file: %w", err)
		}
		// Config file not found is OK
	}

	// Then, try to merge in local directory config (overrides user config)
	viper.SetConfigName(LocalConfigFile)
	viper.AddConfigPath(".")

	if err := viper.MergeInConfig(); err != nil {
		// Ignore if local config doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read local config file: %w", err)
		}
	}

	return nil
}

// BindFlags binds cobra flags to Viper keys so config files and
// environment variables can override flag defaults
func BindFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})
}

// GetLogLevel returns the log-level configuration value
func GetLogLevel() string {
	return viper.GetString("log-level")
}

// GetPoolName returns the pool-name configuration value
func GetPoolName() string {
	return viper.GetString("pool-name")
}

// GetEFISize returns the efi-size configuration value
func GetEFISize() string {
	return viper.GetString("efi-size")
}

// GetSwapSize returns the swap-size configuration value
func GetSwapSize() string {
	return viper.GetString("swap-size")
}

// GetCompression returns the compression configuration value
func GetCompression() string {
	return viper.GetString("compression")
}

// GetBootloader returns the bootloader configuration value
func GetBootloader() string {
	return viper.GetString("bootloader")
}

// GetUseColor returns whether styled terminal output is enabled
func GetUseColor() bool {
	return viper.GetBool("use-color")
}

// GetSimulateDelay returns the per-step pause for the simulated backend
func GetSimulateDelay() time.Duration {
	d := viper.GetDuration("simulate-delay")
	if d <= 0 {
		d = 400 * time.Millisecond
	}
	return d
}
