// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// Configuration
	EnvPrefix        = "POOLFORGE" // Environment variable prefix for Viper
	ConfigFileName   = "config"    // Config file name for XDG config dir (without extension)
	LocalConfigFile  = "poolforge" // Config file name for current directory (without extension)
	ConfigType       = "yaml"      // Config file type
	DefaultConfigExt = ".yaml"     // Default config file extension
)

// Paths holds all XDG-compliant directory paths
type Paths struct {
	DataDir   string
	CacheDir  string
	ConfigDir string

	// Subdirectories
	LogDir string // Wizard and backend debug logs
}

var (
	// GlobalPaths is the global paths instance
	GlobalPaths *Paths
)

func init() {
	GlobalPaths = GetPaths()
}

// GetPaths returns XDG-compliant directory paths
func GetPaths() *Paths {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to get home directory: %v\n", err)
			os.Exit(1)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to get home directory: %v\n", err)
			os.Exit(1)
		}
		cacheHome = filepath.Join(home, ".cache")
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to get home directory: %v\n", err)
			os.Exit(1)
		}
		configHome = filepath.Join(home, ".config")
	}

	dataDir := filepath.Join(dataHome, "poolforge")
	cacheDir := filepath.Join(cacheHome, "poolforge")
	configDir := filepath.Join(configHome, "poolforge")

	return &Paths{
		DataDir:   dataDir,
		CacheDir:  cacheDir,
		ConfigDir: configDir,
		LogDir:    filepath.Join(dataDir, "logs"),
	}
}

// InitDirs creates all necessary directories
func InitDirs() error {
	dirs := []string{
		GlobalPaths.ConfigDir,
		GlobalPaths.DataDir,
		GlobalPaths.CacheDir,
		GlobalPaths.LogDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
