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
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-playback/pkg/logging"
	"github.com/jeremyhahn/go-playback/pkg/playback"
	"github.com/jeremyhahn/go-playback/pkg/token"
)

var (
	signKeyID      string
	signKeySecret  string
	signKeyFile    string
	signPassphrase string
	signAlgorithm  string
	signIssuer     string
	signSubject    string
	signAudience   string
	signPlaybackID string
	signType       string
	signExpiresIn  time.Duration
	signNotBefore  time.Duration
	signClaims     []string
)

// signCmd mints a signed token
var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Mint a signed playback token",
	Long: `Mint a signed JWT. With --playback-id the token follows the
platform's playback-authorization conventions (playback ID as subject,
resource type as audience); otherwise an arbitrary claim set is signed.

Examples:

  playback sign --playback-id qKC301U2MofV3SDFEM01Gzww02 \
      --key-id 7Ttz2p... --key-file signing-key.pem --expires-in 1h

  playback sign --subject user123 --claim plan=premium --expires-in 15m`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadFileConfig()
		if err != nil {
			handleError(err)
		}

		logger := logging.NewLogger(globalConfig.Verbose || cfg.Logging.Debug)

		defaults := token.Defaults{SigningKeyID: cfg.SigningKey.KeyID}
		if cfg.SigningKey.PrivateKey != "" {
			defaults.PrivateKey = cfg.SigningKey.PrivateKey
		}

		opts := token.NewSigningOptions().
			WithKeyID(signKeyID).
			WithKeySecret(signKeySecret).
			WithKeyFilePath(signKeyFile).
			WithAlgorithm(signAlgorithm).
			WithIssuer(signIssuer).
			WithSubject(signSubject).
			WithAudience(signAudience).
			WithNotBefore(signNotBefore).
			WithExpiration(signExpiresIn)

		// A key file from the config only applies when no explicit
		// material was passed on the command line.
		if opts.KeySecret == "" && opts.KeyFilePath == "" {
			opts.WithKeyFilePath(cfg.SigningKey.PrivateKeyFile)
		}
		if signPassphrase != "" {
			opts.WithKeyPassphrase([]byte(signPassphrase))
		} else if cfg.SigningKey.Passphrase != "" {
			opts.WithKeyPassphrase([]byte(cfg.SigningKey.Passphrase))
		}

		payload, err := parseClaims(signClaims)
		if err != nil {
			handleError(err)
		}

		keyID, err := token.ResolveKeyID(defaults, opts)
		if err != nil {
			handleError(err)
		}
		logger.Debugf("signing with key id %s", keyID)

		signer := token.NewSigner(defaults)
		var signed string
		if signPlaybackID != "" {
			signed, err = playback.Token(signer, signPlaybackID, playback.Audience(signType), opts)
		} else {
			signed, err = signer.Sign(payload, opts)
		}
		if err != nil {
			handleError(err)
		}

		printer := NewPrinter(globalConfig.OutputFormat, os.Stdout)
		if err := printer.PrintToken(keyID, signed); err != nil {
			handleError(err)
		}
	},
}

// parseClaims turns repeated name=value flags into a claim payload
func parseClaims(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	claims := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid claim %q: expected name=value", pair)
		}
		claims[name] = value
	}
	return claims, nil
}

func init() {
	signCmd.Flags().StringVar(&signKeyID, "key-id", "", "signing key identifier")
	signCmd.Flags().StringVar(&signKeySecret, "key-secret", "", "private key material (PEM, base64 PEM, or JWK)")
	signCmd.Flags().StringVar(&signKeyFile, "key-file", "", "path to a private key file")
	signCmd.Flags().StringVar(&signPassphrase, "passphrase", "", "passphrase for encrypted PKCS#8 keys")
	signCmd.Flags().StringVar(&signAlgorithm, "algorithm", "", "signing algorithm (default RS256)")
	signCmd.Flags().StringVar(&signIssuer, "issuer", "", "iss claim")
	signCmd.Flags().StringVar(&signSubject, "subject", "", "sub claim")
	signCmd.Flags().StringVar(&signAudience, "audience", "", "aud claim")
	signCmd.Flags().StringVar(&signPlaybackID, "playback-id", "", "playback ID to authorize (sets sub)")
	signCmd.Flags().StringVar(&signType, "type", string(playback.Video),
		"playback resource type: v (video), t (thumbnail), g (gif), s (storyboard)")
	signCmd.Flags().DurationVar(&signExpiresIn, "expires-in", 0, "token lifetime (e.g. 1h)")
	signCmd.Flags().DurationVar(&signNotBefore, "not-before", 0, "delay before the token becomes valid")
	signCmd.Flags().StringArrayVar(&signClaims, "claim", nil, "additional claim as name=value (repeatable)")
}
