// Package config is the host-facing YAML-loadable configuration for a
// transform.Transformer: which grammar dialect to gate on, any extra
// reserved name suffixes the embedding host wants closed off, and whether
// to enable structured walk tracing.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/untrustedpy/dialect"
)

// Config is the Transformer's construction-time configuration.
type Config struct {
	Dialect dialect.Dialect `yaml:"dialect"`

	// ExtraReservedSuffixes supplements the built-in "__roles__" suffix
	// check (internal/namepolicy): hosts embedding additional policy
	// hooks under other dunder suffixes can close them off without a code
	// change to this module.
	ExtraReservedSuffixes []string `yaml:"extra_reserved_suffixes"`

	// Trace enables structured per-node walk logging (transform/telemetry).
	Trace bool `yaml:"trace"`
}

// Load decodes a Config from a YAML document.
func Load(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode transform config: %w", err)
	}
	if cfg.Dialect == dialect.DialectInvalid {
		cfg.Dialect = dialect.Modern35Plus
	}
	return cfg, nil
}

// Default returns the zero-configuration default: the modern 3.5+ dialect,
// no extra reserved suffixes, tracing off.
func Default() Config {
	return Config{Dialect: dialect.Modern35Plus}
}
