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
	"errors"
	"io/fs"
)

var (
	// ErrNoSigningKey is returned when no signing key identifier could be
	// resolved. A key ID may be supplied as an explicit signing option
	// (WithKeyID), as client configuration (SigningKeyID), or through the
	// PLAYBACK_SIGNING_KEY environment variable at client construction.
	ErrNoSigningKey = errors.New("token: no signing key ID found; pass WithKeyID, " +
		"configure the client SigningKeyID, or set the PLAYBACK_SIGNING_KEY " +
		"environment variable")

	// ErrNoPrivateKey is returned when no private key material could be
	// resolved. Key material may be supplied as an explicit signing option
	// (WithKeySecret or WithKeyFilePath), as client configuration
	// (PrivateKey), or through the PLAYBACK_PRIVATE_KEY environment
	// variable at client construction.
	ErrNoPrivateKey = errors.New("token: no signing private key found; pass " +
		"WithKeySecret or WithKeyFilePath, configure the client PrivateKey, or " +
		"set the PLAYBACK_PRIVATE_KEY environment variable")

	// ErrKeyFormat is returned when key material is present but is not a
	// recognized key handle, PEM text, or base64-encoded PEM.
	ErrKeyFormat = errors.New("token: private key format is invalid: expected " +
		"PEM text or base64-encoded PEM")

	// ErrUnsupportedAlgorithm is returned when the requested signing
	// algorithm is not registered with the JWT library.
	ErrUnsupportedAlgorithm = errors.New("token: unsupported signing algorithm")
)

// Kind classifies a signing failure so callers can branch on the failure
// class without matching individual sentinel errors.
type Kind string

const (
	// KindConfiguration covers missing key IDs or missing key material.
	KindConfiguration Kind = "configuration"

	// KindKeyFormat covers unparseable or unrecognized key material.
	KindKeyFormat Kind = "key_format"

	// KindIO covers failures reading a key file.
	KindIO Kind = "io"

	// KindSigning covers failures raised by the JWT signer itself.
	KindSigning Kind = "signing"

	// KindNone is returned for a nil error.
	KindNone Kind = ""
)

// KindOf returns the failure class of err. Errors that did not originate
// in this package are classified KindSigning, matching the propagation
// policy: signer failures pass through unchanged.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNoSigningKey), errors.Is(err, ErrNoPrivateKey):
		return KindConfiguration
	case errors.Is(err, ErrKeyFormat):
		return KindKeyFormat
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return KindIO
	}

	return KindSigning
}
