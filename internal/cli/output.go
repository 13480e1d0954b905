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
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// PrintToken prints a signed token
func (p *Printer) PrintToken(keyID, token string) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"key_id": keyID,
			"token":  token,
		})
	case OutputFormatText:
		fmt.Fprintln(p.writer, token)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintClaims prints a verified token's header and claims
func (p *Printer) PrintClaims(header map[string]interface{}, claims map[string]interface{}) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"header": header,
			"claims": claims,
		})
	case OutputFormatText:
		fmt.Fprintln(p.writer, "Header:")
		for name, value := range header {
			fmt.Fprintf(p.writer, "  %s: %v\n", name, value)
		}
		fmt.Fprintln(p.writer, "Claims:")
		for name, value := range claims {
			fmt.Fprintf(p.writer, "  %s: %v\n", name, value)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintKeyPair prints a generated signing key pair
func (p *Printer) PrintKeyPair(keyID string, privatePEM, publicPEM []byte) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"key_id":      keyID,
			"private_key": string(privatePEM),
			"public_key":  string(publicPEM),
		})
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Key ID: %s\n\n", keyID)
		fmt.Fprintf(p.writer, "%s\n", privatePEM)
		fmt.Fprintf(p.writer, "%s", publicPEM)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintError prints an error
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"error": err.Error(),
		})
	default:
		fmt.Fprintf(p.writer, "Error: %v\n", err)
		return nil
	}
}

// printJSON marshals v with indentation and writes it
func (p *Printer) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(p.writer, string(data))
	return nil
}
