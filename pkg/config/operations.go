// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// ConfigScope selects which config file set and unset operate on
type ConfigScope int

const (
	ScopeLocal ConfigScope = iota // ./ingot.yaml
	ScopeUser                     // ~/.config/ingot/config.yaml
)

// String returns the scope name used in messages
func (s ConfigScope) String() string {
	if s == ScopeUser {
		return "user"
	}
	return "local"
}

// ConfigPath returns the file backing scope
func (s ConfigScope) ConfigPath() string {
	if s == ScopeUser {
		return UserConfigPath()
	}
	return LocalConfigPath()
}

// ConfigValue represents a configuration key-value pair with its source
type ConfigValue struct {
	Key    string
	Value  interface{}
	Source string
}

// GetConfigValue retrieves a configuration value and its source
func GetConfigValue(key string) (*ConfigValue, error) {
	if !viper.IsSet(key) {
		return nil, fmt.Errorf("configuration key not found: %s", key)
	}

	return &ConfigValue{
		Key:    key,
		Value:  viper.Get(key),
		Source: getConfigSource(key),
	}, nil
}

// SetConfigValue validates valueStr for key and writes it to the scope's file
func SetConfigValue(key, valueStr string, scope ConfigScope) error {
	def := GetKeyDefinition(key)
	if def == nil {
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	value := parseValue(def, valueStr)
	if err := ValidateValue(key, value); err != nil {
		return err
	}

	path := scope.ConfigPath()

	v := viper.New()
	v.SetConfigType(ConfigType)
	v.SetConfigFile(path)
	_ = v.ReadInConfig() // missing file is created below

	v.Set(key, value)

	if err := v.SafeWriteConfigAs(path); err != nil {
		if _, ok := err.(viper.ConfigFileAlreadyExistsError); !ok {
			return fmt.Errorf("failed to create config: %w", err)
		}
		if err := v.WriteConfigAs(path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	return nil
}

// UnsetConfigValue removes key from the scope's file.
// Removing a parent key removes everything below it.
func UnsetConfigValue(key string, scope ConfigScope) error {
	path := scope.ConfigPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%s config file does not exist: %s", scope, path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(ConfigType)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if !v.IsSet(key) {
		return fmt.Errorf("key '%s' not found in %s config", key, scope)
	}

	settings := v.AllSettings()
	deleteNestedKey(settings, strings.Split(key, "."))

	// viper cannot delete keys, so the remaining settings are written to a fresh instance
	out := viper.New()
	out.SetConfigFile(path)
	out.SetConfigType(ConfigType)
	for k, val := range settings {
		out.Set(k, val)
	}

	if err := out.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ListConfigValues returns all configuration values with their sources
func ListConfigValues() ([]ConfigValue, error) {
	settings := viper.AllSettings()

	if len(settings) == 0 {
		return []ConfigValue{}, nil
	}

	keys := flattenKeys(settings, "")
	sort.Strings(keys)

	values := make([]ConfigValue, 0, len(keys))
	for _, key := range keys {
		values = append(values, ConfigValue{
			Key:    key,
			Value:  viper.Get(key),
			Source: getConfigSource(key),
		})
	}

	return values, nil
}

// parseValue converts a command-line string to the key's type.
// Bool keys accept yes/no, on/off and enable/disable aliases.
func parseValue(def *ConfigKeyDefinition, valueStr string) interface{} {
	if def.Type != "bool" {
		return valueStr
	}

	switch strings.ToLower(valueStr) {
	case "true", "yes", "on", "enable", "enabled":
		return true
	case "false", "no", "off", "disable", "disabled":
		return false
	}
	return valueStr
}

// deleteNestedKey removes the dotted path from a settings map
func deleteNestedKey(m map[string]interface{}, path []string) {
	if len(path) == 1 {
		delete(m, path[0])
		return
	}

	child, ok := m[path[0]].(map[string]interface{})
	if !ok {
		return
	}
	deleteNestedKey(child, path[1:])
	if len(child) == 0 {
		delete(m, path[0])
	}
}

// keyToEnvVar converts a config key to its environment variable name
func keyToEnvVar(key string) string {
	envKey := strings.ToUpper(EnvPrefix + "_" + strings.ReplaceAll(key, "-", "_"))
	envKey = strings.ReplaceAll(envKey, ".", "_")
	return envKey
}

// getConfigSource determines where a config value comes from
func getConfigSource(key string) string {
	envKey := keyToEnvVar(key)
	if os.Getenv(envKey) != "" {
		return fmt.Sprintf("from ENV: %s", envKey)
	}

	if fileHasKey(LocalConfigPath(), key) {
		return fmt.Sprintf("from ./%s%s", LocalConfigFile, DefaultConfigExt)
	}
	if fileHasKey(UserConfigPath(), key) {
		return fmt.Sprintf("from ~/.config/ingot/%s%s", ConfigFileName, DefaultConfigExt)
	}

	return "default"
}

// fileHasKey reports whether the config file at path sets key
func fileHasKey(path, key string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(ConfigType)
	if err := v.ReadInConfig(); err != nil {
		return false
	}
	return v.IsSet(key)
}

// flattenKeys recursively flattens nested map keys with dot notation
func flattenKeys(m map[string]interface{}, prefix string) []string {
	var keys []string

	for k, v := range m {
		fullKey := k
		if prefix != "" {
			fullKey = prefix + "." + k
		}

		if nestedMap, ok := v.(map[string]interface{}); ok {
			keys = append(keys, flattenKeys(nestedMap, fullKey)...)
		} else {
			keys = append(keys, fullKey)
		}
	}

	return keys
}
