// SPDX-License-Identifier: Apache-2.0
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetConfigValue_ValidatesValue(t *testing.T) {
	tmpDir := t.TempDir()
	GlobalPaths = &Paths{
		ConfigDir: filepath.Join(tmpDir, "config"),
	}
	os.MkdirAll(GlobalPaths.ConfigDir, 0755)

	// Try to set invalid enum value (should fail)
	err := SetConfigValue("compression", "brotli", ScopeUser)
	if err == nil {
		t.Error("SetConfigValue should reject invalid enum value")
	}

	// Try to set valid enum value (should succeed)
	err = SetConfigValue("compression", "lz4", ScopeUser)
	if err != nil {
		t.Errorf("SetConfigValue should accept valid enum: %v", err)
	}
}

func TestSetConfigValue_WritesUserConfig(t *testing.T) {
	tmpDir := t.TempDir()
	GlobalPaths = &Paths{
		ConfigDir: filepath.Join(tmpDir, "config"),
	}
	os.MkdirAll(GlobalPaths.ConfigDir, 0755)

	err := SetConfigValue("pool-name", "tank", ScopeUser)
	if err != nil {
		t.Fatalf("SetConfigValue failed: %v", err)
	}

	configPath := filepath.Join(GlobalPaths.ConfigDir, "config.yaml")
	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}
	if !strings.Contains(string(content), "pool-name") {
		t.Error("pool-name should be written to user config")
	}
	if !strings.Contains(string(content), "tank") {
		t.Error("value should be written to user config")
	}
}

func TestSetConfigValue_ForbiddenKeyInLocalScope(t *testing.T) {
	tmpDir := t.TempDir()
	GlobalPaths = &Paths{
		ConfigDir: filepath.Join(tmpDir, "config"),
	}
	os.MkdirAll(GlobalPaths.ConfigDir, 0755)

	err := SetConfigValue("simulate-delay", "100ms", ScopeLocal)
	if err == nil {
		t.Error("SetConfigValue should reject forbidden key in local scope")
	}
	if !strings.Contains(err.Error(), "cannot be set in local config") {
		t.Errorf("Error should mention local restriction: %v", err)
	}
}

func TestParseValue_Types(t *testing.T) {
	tests := []struct {
		in   string
		want interface{}
	}{
		{"true", true},
		{"yes", true},
		{"on", true},
		{"false", false},
		{"off", false},
		{"8", 8},
		{"1.5", 1.5},
		{"zstd", "zstd"},
		{"400ms", "400ms"},
	}

	for _, tt := range tests {
		got := parseValue(tt.in)
		if got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
		}
	}
}

func TestFlattenKeys(t *testing.T) {
	nested := map[string]interface{}{
		"top": "value",
		"wizard": map[string]interface{}{
			"defaults": map[string]interface{}{
				"pool": "tank",
			},
		},
	}

	keys := flattenKeys(nested, "")
	expectedKeys := []string{"top", "wizard.defaults.pool"}

	if len(keys) != len(expectedKeys) {
		t.Errorf("flattenKeys returned %d keys, want %d", len(keys), len(expectedKeys))
	}

	for _, expected := range expectedKeys {
		found := false
		for _, key := range keys {
			if key == expected {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("flattenKeys missing key: %s", expected)
		}
	}
}

func TestDeleteNestedKey(t *testing.T) {
	settings := map[string]interface{}{
		"pool-name": "tank",
		"wizard": map[string]interface{}{
			"defaults": map[string]interface{}{
				"pool": "tank",
			},
		},
	}

	if err := deleteNestedKey(settings, "wizard.defaults.pool"); err != nil {
		t.Fatalf("deleteNestedKey failed: %v", err)
	}

	defaults := settings["wizard"].(map[string]interface{})["defaults"].(map[string]interface{})
	if _, exists := defaults["pool"]; exists {
		t.Error("nested key should be deleted")
	}

	if err := deleteNestedKey(settings, "missing.key"); err == nil {
		t.Error("deleteNestedKey should report missing keys")
	}
}

func TestKeyToEnvVar(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"pool-name", "POOLFORGE_POOL_NAME"},
		{"log-level", "POOLFORGE_LOG_LEVEL"},
		{"simulate-delay", "POOLFORGE_SIMULATE_DELAY"},
	}

	for _, tt := range tests {
		if got := keyToEnvVar(tt.key); got != tt.want {
			t.Errorf("keyToEnvVar(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
