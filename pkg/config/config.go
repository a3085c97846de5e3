// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// Configuration
	EnvPrefix        = "INGOT"  // Environment variable prefix for Viper
	ConfigFileName   = "config" // Config file name for XDG config dir (without extension)
	LocalConfigFile  = "ingot"  // Config file name for current directory (without extension)
	ConfigType       = "yaml"   // Config file type
	DefaultConfigExt = ".yaml"  // Default config file extension

	// DebugLogFile is written inside DataDir
	DebugLogFile = "debug.log"
)

// Paths holds the XDG-compliant directories used by the installer
type Paths struct {
	DataDir   string
	ConfigDir string
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
	dataHome := xdgDir("XDG_DATA_HOME", ".local", "share")
	configHome := xdgDir("XDG_CONFIG_HOME", ".config")

	return &Paths{
		DataDir:   filepath.Join(dataHome, "ingot"),
		ConfigDir: filepath.Join(configHome, "ingot"),
	}
}

// xdgDir returns $env or falls back to a directory under the user's home
func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to get home directory: %v\n", err)
		os.Exit(1)
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// InitDirs creates all necessary directories
func InitDirs() error {
	dirs := []string{
		GlobalPaths.ConfigDir,
		GlobalPaths.DataDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// UserConfigPath returns the user config file location
func UserConfigPath() string {
	return filepath.Join(GlobalPaths.ConfigDir, ConfigFileName+DefaultConfigExt)
}

// LocalConfigPath returns the per-directory config file location
func LocalConfigPath() string {
	return filepath.Join(".", LocalConfigFile+DefaultConfigExt)
}
