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
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-playback/pkg/encoding"
)

var verifyPublicKeyFile string

// verifyCmd verifies a signed token against a public key
var verifyCmd = &cobra.Command{
	Use:   "verify <token>",
	Short: "Verify a signed playback token",
	Long: `Verify a token's signature with the signing key's public half and
print its header and claims.

Example:

  playback verify --public-key-file signing-key.pub.pem eyJhbGciOi...`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pemData, err := os.ReadFile(verifyPublicKeyFile)
		if err != nil {
			handleError(err)
		}

		publicKey, err := encoding.DecodePublicKeyPEM(pemData)
		if err != nil {
			handleError(err)
		}

		parsed, err := jwt.Parse(args[0], func(t *jwt.Token) (interface{}, error) {
			return publicKey, nil
		})
		if err != nil {
			handleError(fmt.Errorf("token verification failed: %w", err))
		}

		claims, ok := parsed.Claims.(jwt.MapClaims)
		if !ok {
			handleError(fmt.Errorf("unexpected claims type %T", parsed.Claims))
		}

		printer := NewPrinter(globalConfig.OutputFormat, os.Stdout)
		if err := printer.PrintClaims(parsed.Header, claims); err != nil {
			handleError(err)
		}
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyPublicKeyFile, "public-key-file", "", "path to the PEM public key")
	_ = verifyCmd.MarkFlagRequired("public-key-file")
}
