// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Work-Fort/Ingot/pkg/wizard"
)

// InitViper registers registry defaults and the INGOT_ environment mapping.
// Config files are layered on top by LoadConfig.
func InitViper() {
	viper.SetConfigType(ConfigType)

	// Defaults (lowest precedence)
	for key, def := range ConfigRegistry {
		viper.SetDefault(key, def.Default)
	}
	viper.SetDefault("install.dir", wizard.DefaultInstallDir())

	// Environment variables (highest precedence)
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

// LoadConfig merges the user config and then ./ingot.yaml over the defaults.
// Environment variables still win over both.
func LoadConfig() error {
	viper.SetConfigName(ConfigFileName)
	viper.AddConfigPath(GlobalPaths.ConfigDir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read user config file: %w", err)
		}
	} else if err := validateConfigFile(UserConfigPath()); err != nil {
		return err
	}

	// Local directory config overrides user config
	viper.SetConfigName(LocalConfigFile)
	viper.AddConfigPath(".")

	if err := viper.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read local config file: %w", err)
		}
	} else if err := validateConfigFile(LocalConfigPath()); err != nil {
		return err
	}

	return nil
}

// validateConfigFile checks every key of a config file against the registry.
// Unknown keys are logged and skipped.
func validateConfigFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(ConfigType)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file for validation: %w", err)
	}

	for _, key := range flattenKeys(v.AllSettings(), "") {
		if GetKeyDefinition(key) == nil {
			log.Debugf("Ignoring unknown key '%s' in %s", key, path)
			continue
		}
		if err := ValidateValue(key, v.Get(key)); err != nil {
			return fmt.Errorf("invalid value in config file %s: %w", path, err)
		}
	}

	return nil
}

// GetUseTUI returns the use-tui configuration value
func GetUseTUI() bool {
	return viper.GetBool("use-tui")
}

// GetLogLevel returns the log-level configuration value
func GetLogLevel() string {
	return viper.GetString("log-level")
}

// GetInstallDir returns the install.dir configuration value
func GetInstallDir() string {
	return viper.GetString("install.dir")
}

// GetAppName returns the app.name configuration value.
// Empty means the payload's own name is used.
func GetAppName() string {
	return viper.GetString("app.name")
}

// GetAppVersion returns the app.version configuration value
func GetAppVersion() string {
	return viper.GetString("app.version")
}

// GetInstallReceipt reports whether an install receipt is written
func GetInstallReceipt() bool {
	return viper.GetBool("install.receipt")
}

// BindFlags binds the root persistent flags to their config keys
func BindFlags(flags *pflag.FlagSet) error {
	flagsToBind := []string{
		"use-tui",
		"log-level",
	}

	return bindFlags(flags, flagsToBind...)
}

// BindInstallFlags binds the install command's flags to their config keys
func BindInstallFlags(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"install.dir":     "dir",
		"app.name":        "name",
		"app.version":     "app-version",
		"install.receipt": "receipt",
	}

	for key, flagName := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flagName)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
		}
	}

	return nil
}

func bindFlags(flags *pflag.FlagSet, names ...string) error {
	for _, flagName := range names {
		if err := viper.BindPFlag(flagName, flags.Lookup(flagName)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
		}
	}
	return nil
}
