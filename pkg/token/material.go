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
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/jeremyhahn/go-playback/pkg/encoding"
)

// materialKind tags the closed set of key material variants. The variant
// is decided once when material enters the package; everything after
// dispatches on the tag instead of re-testing dynamic types.
type materialKind int

const (
	kindPreParsed materialKind = iota
	kindRawBytes
	kindTextPEM
)

// keyMaterial is one resolved key material source. It lives only for the
// duration of a single signing call and is discarded once normalized.
type keyMaterial struct {
	kind       materialKind
	handle     crypto.PrivateKey
	raw        []byte
	text       string
	passphrase []byte
}

// classifyMaterial decides the variant for untyped client-level key
// material. Parsed key handles pass through untouched; anything that is
// not a handle, byte slice, or string is a format error.
func classifyMaterial(v any, passphrase []byte) (keyMaterial, error) {
	switch m := v.(type) {
	case *rsa.PrivateKey, *ecdsa.PrivateKey, ed25519.PrivateKey:
		return keyMaterial{kind: kindPreParsed, handle: m}, nil
	case crypto.Signer:
		// Opaque signer handles (HSM-backed keys and the like) are
		// usable by the JWT library directly.
		return keyMaterial{kind: kindPreParsed, handle: m}, nil
	case []byte:
		return keyMaterial{kind: kindRawBytes, raw: m, passphrase: passphrase}, nil
	case string:
		return keyMaterial{kind: kindTextPEM, text: m, passphrase: passphrase}, nil
	default:
		return keyMaterial{}, fmt.Errorf("%w: unrecognized key material type %T", ErrKeyFormat, v)
	}
}

// normalize converts the material into a private key handle usable by
// the signer. The handle is never re-serialized or logged.
func (m keyMaterial) normalize() (crypto.PrivateKey, error) {
	switch m.kind {
	case kindPreParsed:
		return m.handle, nil
	case kindRawBytes:
		return normalizeText(string(m.raw), m.passphrase)
	case kindTextPEM:
		return normalizeText(m.text, m.passphrase)
	default:
		return nil, ErrKeyFormat
	}
}

// normalizeText turns text key material into a private key. Accepted
// encodings, tried in order: direct PEM, a JWK document, base64-encoded
// PEM. Text that matches none of these is a format error; there is no
// fallback to another material source.
func normalizeText(text string, passphrase []byte) (crypto.PrivateKey, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrKeyFormat
	}

	if strings.HasPrefix(trimmed, encoding.PEMBeginPrefix) {
		return importPEM([]byte(trimmed), passphrase)
	}

	if strings.HasPrefix(trimmed, "{") {
		key, _, err := encoding.DecodeJWKPrivateKey([]byte(trimmed))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyFormat, err)
		}
		return key, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil || !strings.HasPrefix(strings.TrimSpace(string(decoded)), encoding.PEMBeginPrefix) {
		return nil, ErrKeyFormat
	}

	return importPEM(decoded, passphrase)
}

// importPEM imports PEM-armored key material. Legacy PKCS#1 blocks are
// imported as RSA keys; PKCS#8 and encrypted PKCS#8 blocks go through
// the PKCS#8 codec. Key type and signing algorithm are deliberately not
// cross-checked here; a mismatch is the signer's to reject.
func importPEM(data []byte, passphrase []byte) (crypto.PrivateKey, error) {
	key, err := encoding.DecodePrivateKeyPEM(data, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyFormat, err)
	}
	return key, nil
}
