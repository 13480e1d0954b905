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
	"time"
)

// Default signing algorithm applied when SigningOptions.Algorithm is empty.
const DefaultAlgorithm = "RS256"

// SigningOptions carries the per-call inputs to a signing operation:
// which key to use, where its material comes from, and which standard
// claims to stamp into the token. Options are immutable for the duration
// of one call; the zero value is valid and defers entirely to the
// client-level defaults.
type SigningOptions struct {
	// KeyID identifies the signing key. When set it wins over the
	// client-level SigningKeyID and is embedded in the token as the kid
	// claim and header field.
	KeyID string

	// KeySecret is explicit private key material as text: PEM, base64
	// encoded PEM, or a JWK document. When set it wins over KeyFilePath
	// and the client-level PrivateKey.
	KeySecret string

	// KeySecretBytes is explicit private key material as raw bytes,
	// carrying the same encodings as KeySecret.
	KeySecretBytes []byte

	// Key is an already-parsed private key handle. It bypasses all
	// normalization, letting callers parse once and sign many times.
	Key crypto.PrivateKey

	// KeyFilePath names a UTF-8 text file containing key material.
	// Consulted only when no explicit material is set.
	KeyFilePath string

	// KeyPassphrase decrypts encrypted PKCS#8 key material.
	KeyPassphrase []byte

	// Algorithm selects the JWS algorithm; empty means RS256.
	Algorithm string

	// Standard registered claims. Each is stamped into the token only
	// when present; absent options leave the claim out entirely.
	Issuer   string
	Subject  string
	Audience string

	// NotBefore and Expiration are offsets from the time of signing.
	// Zero means the nbf/exp claim is omitted.
	NotBefore  time.Duration
	Expiration time.Duration
}

// NewSigningOptions returns empty options for chaining.
func NewSigningOptions() *SigningOptions {
	return &SigningOptions{}
}

// WithKeyID sets the signing key identifier and returns the options for chaining.
func (o *SigningOptions) WithKeyID(keyID string) *SigningOptions {
	o.KeyID = keyID
	return o
}

// WithKeySecret sets explicit key material text and returns the options for chaining.
func (o *SigningOptions) WithKeySecret(secret string) *SigningOptions {
	o.KeySecret = secret
	return o
}

// WithKeySecretBytes sets explicit key material bytes and returns the options for chaining.
func (o *SigningOptions) WithKeySecretBytes(secret []byte) *SigningOptions {
	o.KeySecretBytes = secret
	return o
}

// WithKey sets an already-parsed private key and returns the options for chaining.
func (o *SigningOptions) WithKey(key crypto.PrivateKey) *SigningOptions {
	o.Key = key
	return o
}

// WithKeyFilePath sets the key file path and returns the options for chaining.
func (o *SigningOptions) WithKeyFilePath(path string) *SigningOptions {
	o.KeyFilePath = path
	return o
}

// WithKeyPassphrase sets the PKCS#8 passphrase and returns the options for chaining.
func (o *SigningOptions) WithKeyPassphrase(passphrase []byte) *SigningOptions {
	o.KeyPassphrase = passphrase
	return o
}

// WithAlgorithm sets the signing algorithm and returns the options for chaining.
func (o *SigningOptions) WithAlgorithm(alg string) *SigningOptions {
	o.Algorithm = alg
	return o
}

// WithIssuer sets the iss claim and returns the options for chaining.
func (o *SigningOptions) WithIssuer(issuer string) *SigningOptions {
	o.Issuer = issuer
	return o
}

// WithSubject sets the sub claim and returns the options for chaining.
func (o *SigningOptions) WithSubject(subject string) *SigningOptions {
	o.Subject = subject
	return o
}

// WithAudience sets the aud claim and returns the options for chaining.
func (o *SigningOptions) WithAudience(audience string) *SigningOptions {
	o.Audience = audience
	return o
}

// WithNotBefore sets the nbf claim offset and returns the options for chaining.
func (o *SigningOptions) WithNotBefore(d time.Duration) *SigningOptions {
	o.NotBefore = d
	return o
}

// WithExpiration sets the exp claim offset and returns the options for chaining.
func (o *SigningOptions) WithExpiration(d time.Duration) *SigningOptions {
	o.Expiration = d
	return o
}

// Defaults are the long-lived, read-only client-level signing defaults.
// They are consulted only when the corresponding per-call option is
// absent. Application code must not mutate Defaults while signing calls
// are in flight.
type Defaults struct {
	// SigningKeyID is the fallback key identifier.
	SigningKeyID string

	// PrivateKey is fallback key material: a parsed key handle, raw
	// bytes, or text (PEM, base64 PEM, or JWK).
	PrivateKey any
}
