// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-playback.
//
// go-playback is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete CLI configuration
type Config struct {
	SigningKey SigningKeyConfig `yaml:"signing_key"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SigningKeyConfig contains the signing key defaults
type SigningKeyConfig struct {
	// KeyID is the signing key identifier
	KeyID string `yaml:"key_id"`

	// PrivateKey is inline key material: PEM, base64 PEM, or JWK
	PrivateKey string `yaml:"private_key,omitempty"`

	// PrivateKeyFile points at a file containing key material
	PrivateKeyFile string `yaml:"private_key_file,omitempty"`

	// Passphrase decrypts encrypted PKCS#8 key material
	Passphrase string `yaml:"passphrase,omitempty"`
}

// LoggingConfig controls logging behavior
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the default configuration with environment variable
// overrides applied.
func Default() *Config {
	cfg := &Config{}
	applyEnvOverrides(cfg)
	return cfg
}

// Load reads configuration from a YAML file and applies environment
// variable overrides.
func Load(path string) (*Config, error) {
	// #nosec G304 - Config file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration
func applyEnvOverrides(cfg *Config) {
	if keyID := os.Getenv("PLAYBACK_SIGNING_KEY"); keyID != "" {
		cfg.SigningKey.KeyID = keyID
	}
	if material := os.Getenv("PLAYBACK_PRIVATE_KEY"); material != "" {
		cfg.SigningKey.PrivateKey = material
	}
	if path := os.Getenv("PLAYBACK_PRIVATE_KEY_FILE"); path != "" {
		cfg.SigningKey.PrivateKeyFile = path
	}
	if debug := os.Getenv("PLAYBACK_DEBUG"); debug == "1" || debug == "true" {
		cfg.Logging.Debug = true
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.SigningKey.PrivateKey != "" && c.SigningKey.PrivateKeyFile != "" {
		return fmt.Errorf("signing_key: private_key and private_key_file are mutually exclusive")
	}
	return nil
}
