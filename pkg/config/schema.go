// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"regexp"
)

// ScopeConstraints defines per-scope validation rules for a configuration key
type ScopeConstraints struct {
	Forbidden  bool     // If true, this key cannot be set in this scope
	EnumValues []string // Valid enum values for this scope (overrides global EnumValues if set)
	Pattern    string   // Regex pattern for this scope (overrides global Pattern if set)
}

// ConfigKeyDefinition defines metadata for a configuration key
type ConfigKeyDefinition struct {
	Key         string      // Configuration key (dot notation)
	Type        string      // "string", "bool", "enum", "int"
	Default     interface{} // Default value
	Description string      // Help text

	// Global constraints (apply unless overridden by scope-specific constraints)
	EnumValues []string // Valid values for enum type (if Type="enum")
	Pattern    string   // Regex pattern for validation (if Type="string")

	// Per-scope constraints (optional - if nil, key is allowed in scope with global constraints)
	UserConstraints  *ScopeConstraints // Constraints when setting in user config
	LocalConstraints *ScopeConstraints // Constraints when setting in local config
}

// sizePattern accepts the size formats the planner understands ("512M",
// "1G", "1GiB").
const sizePattern = `^[0-9]+(\.[0-9]+)?\s*([KMGT]i?)?B?$`

// durationPattern accepts Go duration strings without sub-millisecond units
const durationPattern = `^[0-9]+(ms|s|m)$`

// ConfigRegistry holds all known configuration keys with per-scope constraints.
//
// Constraint System:
//   - No constraints: Key can be set in any scope with same validation rules
//   - Forbidden constraint: Key cannot be set in the specified scope
//   - Scope-specific EnumValues: Different allowed values per scope
//   - Scope-specific Pattern: Different regex validation per scope
var ConfigRegistry = map[string]ConfigKeyDefinition{
	"log-level": {
		Key:         "log-level",
		Type:        "enum",
		Default:     "info",
		Description: "Log verbosity level",
		EnumValues:  []string{"disabled", "debug", "info", "warn", "error"},
	},

	"pool-name": {
		Key:         "pool-name",
		Type:        "string",
		Default:     "zroot",
		Description: "Default ZFS pool name offered by the wizard",
		Pattern:     `^[A-Za-z][A-Za-z0-9_-]*$`,
	},

	"efi-size": {
		Key:         "efi-size",
		Type:        "string",
		Default:     "1G",
		Description: "EFI system partition size",
		Pattern:     sizePattern,
	},

	"swap-size": {
		Key:         "swap-size",
		Type:        "string",
		Default:     "8G",
		Description: "Swap partition size (0 disables swap)",
		Pattern:     sizePattern,
	},

	"compression": {
		Key:         "compression",
		Type:        "enum",
		Default:     "zstd",
		Description: "Default pool compression algorithm",
		EnumValues:  []string{"zstd", "lz4", "gzip-9", "off"},
	},

	"bootloader": {
		Key:         "bootloader",
		Type:        "enum",
		Default:     "zbm",
		Description: "Default bootloader arrangement",
		EnumValues:  []string{"zbm", "systemd-boot", "refind"},
	},

	"use-color": {
		Key:         "use-color",
		Type:        "bool",
		Default:     true,
		Description: "Render styled output; disable for dumb terminals and logs",
	},

	"simulate-delay": {
		Key:         "simulate-delay",
		Type:        "string",
		Default:     "400ms",
		Description: "Per-step pause for the simulated installation backend",
		Pattern:     durationPattern,
		// a rehearsal knob, kept out of shared install profiles
		LocalConstraints: &ScopeConstraints{
			Forbidden: true,
		},
	},
}

// GetKeyDefinition returns the definition for a key, or nil if not found
func GetKeyDefinition(key string) *ConfigKeyDefinition {
	if def, ok := ConfigRegistry[key]; ok {
		return &def
	}
	return nil
}

// ValidateKeyScope checks if a key can be set in the given scope
// Returns an error if the key is forbidden in the specified scope
func ValidateKeyScope(key string, scope ConfigScope) error {
	def := GetKeyDefinition(key)
	if def == nil {
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	var constraints *ScopeConstraints
	switch scope {
	case ScopeUser:
		constraints = def.UserConstraints
	case ScopeLocal:
		constraints = def.LocalConstraints
	}

	if constraints != nil && constraints.Forbidden {
		switch scope {
		case ScopeUser:
			return fmt.Errorf(
				"key '%s' cannot be set in user config\n\n"+
					"Hint: Remove --global flag:\n"+
					"  poolforge config set %s <value>\n\n"+
					"This key must be set in local config: ./%s%s",
				key, key, LocalConfigFile, DefaultConfigExt,
			)
		case ScopeLocal:
			return fmt.Errorf(
				"key '%s' cannot be set in local config\n\n"+
					"Hint: Use --global flag:\n"+
					"  poolforge config set --global %s <value>\n\n"+
					"User config: ~/.config/poolforge/%s%s",
				key, key, ConfigFileName, DefaultConfigExt,
			)
		}
	}

	return nil
}

// ValidateValue checks if a value is valid for the given key in the specified scope
// Applies per-scope constraints if defined, otherwise uses global constraints
func ValidateValue(key string, value interface{}, scope ConfigScope) error {
	def := GetKeyDefinition(key)
	if def == nil {
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	var constraints *ScopeConstraints
	switch scope {
	case ScopeUser:
		constraints = def.UserConstraints
	case ScopeLocal:
		constraints = def.LocalConstraints
	}

	switch def.Type {
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("key '%s' must be a boolean", key)
		}

	case "int":
		if _, ok := value.(int); !ok {
			return fmt.Errorf("key '%s' must be an integer", key)
		}

	case "string":
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("key '%s' must be a string", key)
		}

		pattern := def.Pattern
		if constraints != nil && constraints.Pattern != "" {
			pattern = constraints.Pattern
		}

		if pattern != "" {
			matched, err := regexp.MatchString(pattern, str)
			if err != nil {
				return fmt.Errorf("pattern validation error: %w", err)
			}
			if !matched {
				return fmt.Errorf(
					"key '%s' value '%s' does not match required format for %s scope",
					key, str, getScopeName(scope),
				)
			}
		}

	case "enum":
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("key '%s' must be a string", key)
		}

		enumValues := def.EnumValues
		if constraints != nil && constraints.EnumValues != nil {
			enumValues = constraints.EnumValues
		}

		valid := false
		for _, enumVal := range enumValues {
			if str == enumVal {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf(
				"key '%s' must be one of %v in %s scope (got '%s')",
				key, enumValues, getScopeName(scope), str,
			)
		}
	}

	return nil
}
