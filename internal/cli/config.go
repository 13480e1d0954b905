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

package cli

// Config holds CLI-level settings shared by all commands
type Config struct {
	// ConfigFile is the path to the configuration file
	ConfigFile string

	// OutputFormat selects text or json output
	OutputFormat string

	// Verbose enables debug logging
	Verbose bool
}

// NewConfig creates a CLI configuration with defaults
func NewConfig() *Config {
	return &Config{
		OutputFormat: "text",
	}
}
