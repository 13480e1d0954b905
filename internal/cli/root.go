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

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-playback/internal/config"
)

var (
	// Global configuration
	globalConfig *Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "playback",
	Short: "go-playback CLI - Signed playback token tool",
	Long: `go-playback CLI mints and verifies signed playback-authorization
tokens and generates RSA signing keys.

A signing key may be supplied three ways:
  - explicit flags (--key-id, --key-secret, --key-file)
  - a configuration file (signing_key section)
  - environment variables (PLAYBACK_SIGNING_KEY, PLAYBACK_PRIVATE_KEY)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Initialize global config
	globalConfig = NewConfig()

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&globalConfig.ConfigFile, "config", "",
		"config file (default is $HOME/.playback.yaml)")
	rootCmd.PersistentFlags().StringVarP(&globalConfig.OutputFormat, "output", "o", "text",
		"output format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&globalConfig.Verbose, "verbose", "v", false,
		"verbose output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(keygenCmd)
}

// getConfig returns the global configuration
func getConfig() *Config {
	return globalConfig
}

// loadFileConfig loads the configuration file named by --config, or the
// environment-backed defaults when no file is given.
func loadFileConfig() (*config.Config, error) {
	if globalConfig.ConfigFile == "" {
		return config.Default(), nil
	}
	return config.Load(globalConfig.ConfigFile)
}

// handleError prints an error and exits with code 1
func handleError(err error) {
	printer := NewPrinter(globalConfig.OutputFormat, os.Stderr)
	_ = printer.PrintError(err) // Error printing to stderr is best-effort
	os.Exit(1)
}
