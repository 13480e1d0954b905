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
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-playback/pkg/encoding"
)

var (
	keygenBits       int
	keygenPassphrase string
	keygenOutDir     string
)

// keygenCmd generates a local RSA signing key pair
var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate an RSA signing key pair",
	Long: `Generate an RSA signing key pair with a fresh key ID. The private
key is written as PKCS#8 PEM (encrypted when --passphrase is given), the
public key as PKIX PEM. With --out-dir the pair is written to
<key-id>.pem and <key-id>.pub.pem; otherwise both are printed.`,
	Run: func(cmd *cobra.Command, args []string) {
		privateKey, err := rsa.GenerateKey(rand.Reader, keygenBits)
		if err != nil {
			handleError(err)
		}

		keyID := uuid.NewString()

		var passphrase []byte
		if keygenPassphrase != "" {
			passphrase = []byte(keygenPassphrase)
		}

		privatePEM, err := encoding.EncodePrivateKeyPEM(privateKey, passphrase)
		if err != nil {
			handleError(err)
		}
		publicPEM, err := encoding.EncodePublicKeyPEM(&privateKey.PublicKey)
		if err != nil {
			handleError(err)
		}

		if keygenOutDir != "" {
			privatePath := filepath.Join(keygenOutDir, keyID+".pem")
			publicPath := filepath.Join(keygenOutDir, keyID+".pub.pem")
			if err := os.WriteFile(privatePath, privatePEM, 0600); err != nil {
				handleError(err)
			}
			if err := os.WriteFile(publicPath, publicPEM, 0644); err != nil {
				handleError(err)
			}
			fmt.Printf("Key ID: %s\n", keyID)
			fmt.Printf("Private key: %s\n", privatePath)
			fmt.Printf("Public key:  %s\n", publicPath)
			return
		}

		printer := NewPrinter(globalConfig.OutputFormat, os.Stdout)
		if err := printer.PrintKeyPair(keyID, privatePEM, publicPEM); err != nil {
			handleError(err)
		}
	},
}

func init() {
	keygenCmd.Flags().IntVar(&keygenBits, "bits", 2048, "RSA key size in bits")
	keygenCmd.Flags().StringVar(&keygenPassphrase, "passphrase", "", "encrypt the private key with a passphrase")
	keygenCmd.Flags().StringVar(&keygenOutDir, "out-dir", "", "write the key pair to this directory")
}
