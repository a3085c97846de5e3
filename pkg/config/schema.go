// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-version"
)

// ConfigKeyDefinition defines metadata for a configuration key
type ConfigKeyDefinition struct {
	Key         string      // Configuration key (dot notation)
	Type        string      // "string", "bool", "enum", "version"
	Default     interface{} // Default value
	Description string      // Help text
	EnumValues  []string    // Valid values for enum type (if Type="enum")
}

// ConfigRegistry holds all known configuration keys.
// install.dir has a platform-dependent default set in InitViper.
var ConfigRegistry = map[string]ConfigKeyDefinition{
	"use-tui": {
		Key:         "use-tui",
		Type:        "bool",
		Default:     true,
		Description: "Use the TUI wizard when stdin is a terminal",
	},

	"log-level": {
		Key:         "log-level",
		Type:        "enum",
		Default:     "debug",
		Description: "Log verbosity level",
		EnumValues:  []string{"disabled", "debug", "info", "warn", "error"},
	},

	"install.dir": {
		Key:         "install.dir",
		Type:        "string",
		Default:     "",
		Description: "Directory the executable is installed into",
	},

	"app.name": {
		Key:         "app.name",
		Type:        "string",
		Default:     "",
		Description: "Installed file name (without extension); defaults to the payload name",
	},

	"app.version": {
		Key:         "app.version",
		Type:        "version",
		Default:     "",
		Description: "Version recorded for the payload",
	},

	"install.receipt": {
		Key:         "install.receipt",
		Type:        "bool",
		Default:     true,
		Description: "Write <app>.receipt.yaml next to the installed executable",
	},
}

// GetKeyDefinition returns the definition for key, or nil if unknown
func GetKeyDefinition(key string) *ConfigKeyDefinition {
	def, ok := ConfigRegistry[key]
	if !ok {
		return nil
	}
	return &def
}

// KnownKeys returns all registered keys in sorted order
func KnownKeys() []string {
	keys := make([]string, 0, len(ConfigRegistry))
	for key := range ConfigRegistry {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ValidateValue checks if a value is valid for the given key
func ValidateValue(key string, value interface{}) error {
	def := GetKeyDefinition(key)
	if def == nil {
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	switch def.Type {
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("key '%s' must be a boolean", key)
		}

	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("key '%s' must be a string", key)
		}

	case "enum":
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("key '%s' must be a string", key)
		}
		for _, enumVal := range def.EnumValues {
			if str == enumVal {
				return nil
			}
		}
		return fmt.Errorf("key '%s' must be one of %v (got '%s')", key, def.EnumValues, str)

	case "version":
		// YAML reads unquoted versions such as 1.2 as numbers
		str := fmt.Sprint(value)
		if str == "" {
			return nil
		}
		if _, err := version.NewVersion(str); err != nil {
			return fmt.Errorf("key '%s': %w", key, err)
		}
	}

	return nil
}
