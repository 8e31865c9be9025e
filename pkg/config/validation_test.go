// SPDX-License-Identifier: Apache-2.0
package config

import (
	"testing"
)

func TestValidateValue_PoolNamePattern(t *testing.T) {
	valid := []string{"zroot", "tank", "pool_1", "data-pool", "Z"}
	for _, v := range valid {
		if err := ValidateValue("pool-name", v, ScopeUser); err != nil {
			t.Errorf("ValidateValue should accept pool name %q: %v", v, err)
		}
	}

	invalid := []string{"", "1pool", "-pool", "pool name", "pool/name"}
	for _, v := range invalid {
		if err := ValidateValue("pool-name", v, ScopeUser); err == nil {
			t.Errorf("ValidateValue should reject pool name %q", v)
		}
	}
}

func TestValidateValue_SizeFormats(t *testing.T) {
	valid := []string{"1G", "512M", "8G", "16GiB", "0", "1.5G"}
	for _, v := range valid {
		if err := ValidateValue("efi-size", v, ScopeUser); err != nil {
			t.Errorf("ValidateValue should accept size %q: %v", v, err)
		}
	}

	invalid := []string{"one gig", "G1", "-1G", "1Q"}
	for _, v := range invalid {
		if err := ValidateValue("swap-size", v, ScopeUser); err == nil {
			t.Errorf("ValidateValue should reject size %q", v)
		}
	}
}

func TestValidateValue_DurationFormat(t *testing.T) {
	valid := []string{"400ms", "1s", "2m", "0ms"}
	for _, v := range valid {
		if err := ValidateValue("simulate-delay", v, ScopeUser); err != nil {
			t.Errorf("ValidateValue should accept duration %q: %v", v, err)
		}
	}

	invalid := []string{"fast", "400", "1h30m", "1.5s"}
	for _, v := range invalid {
		if err := ValidateValue("simulate-delay", v, ScopeUser); err == nil {
			t.Errorf("ValidateValue should reject duration %q", v)
		}
	}
}

func TestValidateValue_EnumValues(t *testing.T) {
	tests := []struct {
		key     string
		valid   []string
		invalid []string
	}{
		{"compression", []string{"zstd", "lz4", "gzip-9", "off"}, []string{"gzip", "zstd-19", ""}},
		{"bootloader", []string{"zbm", "systemd-boot", "refind"}, []string{"grub", "ZBM"}},
		{"log-level", []string{"disabled", "debug", "info", "warn", "error"}, []string{"trace", "verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			for _, v := range tt.valid {
				if err := ValidateValue(tt.key, v, ScopeUser); err != nil {
					t.Errorf("ValidateValue should accept %s=%q: %v", tt.key, v, err)
				}
			}
			for _, v := range tt.invalid {
				if err := ValidateValue(tt.key, v, ScopeUser); err == nil {
					t.Errorf("ValidateValue should reject %s=%q", tt.key, v)
				}
			}
		})
	}
}

func TestValidateValue_TypeMismatch(t *testing.T) {
	if err := ValidateValue("pool-name", 42, ScopeUser); err == nil {
		t.Error("ValidateValue should reject integer for string key")
	}
	if err := ValidateValue("compression", true, ScopeUser); err == nil {
		t.Error("ValidateValue should reject boolean for enum key")
	}
	if err := ValidateValue("use-color", "yes", ScopeUser); err == nil {
		t.Error("ValidateValue should reject string for bool key")
	}
	if err := ValidateValue("use-color", false, ScopeUser); err != nil {
		t.Errorf("ValidateValue should accept boolean for bool key: %v", err)
	}
}

func TestValidateValue_UnknownKey(t *testing.T) {
	if err := ValidateValue("no-such-key", "value", ScopeUser); err == nil {
		t.Error("ValidateValue should reject unknown key")
	}
}
