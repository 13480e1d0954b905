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

package token

import (
	"crypto"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// claimAppliers stamp the optional standard claims in a fixed order so
// claim application is deterministic. Each applier contributes its claim
// only when the corresponding option is present; an applied standard
// claim overrides any payload value of the same name.
var claimAppliers = []struct {
	claim string
	value func(opts *SigningOptions, now time.Time) (any, bool)
}{
	{"iss", func(o *SigningOptions, _ time.Time) (any, bool) { return o.Issuer, o.Issuer != "" }},
	{"sub", func(o *SigningOptions, _ time.Time) (any, bool) { return o.Subject, o.Subject != "" }},
	{"aud", func(o *SigningOptions, _ time.Time) (any, bool) { return o.Audience, o.Audience != "" }},
	{"nbf", func(o *SigningOptions, now time.Time) (any, bool) {
		return jwt.NewNumericDate(now.Add(o.NotBefore)), o.NotBefore != 0
	}},
	{"exp", func(o *SigningOptions, now time.Time) (any, bool) {
		return jwt.NewNumericDate(now.Add(o.Expiration)), o.Expiration != 0
	}},
}

// Sign assembles and signs a token with an already-resolved private key.
//
// The claim set is a shallow merge of payload with, when opts.KeyID is
// set, a kid claim (also mirrored into the protected header so verifiers
// can select the matching public key). The standard claims are then
// applied in a fixed order. The header algorithm is opts.Algorithm,
// defaulting to RS256; no compatibility check is made between algorithm
// and key type before delegating, signer failures propagate unchanged
// and nothing is retried.
//
// Example:
//
//	tok, err := token.Sign(map[string]any{"custom": "claim"}, key,
//	    token.NewSigningOptions().
//	        WithKeyID("signing-key-id").
//	        WithSubject("playback-id").
//	        WithExpiration(time.Hour))
func Sign(payload map[string]any, key crypto.PrivateKey, opts *SigningOptions) (string, error) {
	if opts == nil {
		opts = &SigningOptions{}
	}

	claims := jwt.MapClaims{}
	for name, value := range payload {
		claims[name] = value
	}
	if opts.KeyID != "" {
		claims["kid"] = opts.KeyID
	}

	now := time.Now()
	for _, applier := range claimAppliers {
		if value, present := applier.value(opts, now); present {
			claims[applier.claim] = value
		}
	}

	alg := opts.Algorithm
	if alg == "" {
		alg = DefaultAlgorithm
	}
	method := jwt.GetSigningMethod(alg)
	if method == nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}

	tok := jwt.NewWithClaims(method, claims)
	if opts.KeyID != "" {
		tok.Header["kid"] = opts.KeyID
	}

	return tok.SignedString(key)
}
