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

package encoding

import (
	"crypto"
	"fmt"

	jose "github.com/go-jose/go-jose/v4"
)

// DecodeJWKPrivateKey decodes a JSON Web Key (RFC 7517) document to a
// private key. The JWK must contain private key material; a public-only
// JWK yields ErrInvalidJWK.
//
// Returns the private key as crypto.PrivateKey (type assert to specific
// type if needed). The embedded kid, if any, is returned alongside the
// key so callers can use it as the signing key identifier.
//
// Example:
//
//	key, kid, err := encoding.DecodeJWKPrivateKey(jwkJSON)
//	rsaKey := key.(*rsa.PrivateKey)
func DecodeJWKPrivateKey(data []byte) (crypto.PrivateKey, string, error) {
	if len(data) == 0 {
		return nil, "", ErrInvalidData
	}

	var jwk jose.JSONWebKey
	if err := jwk.UnmarshalJSON(data); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidJWK, err)
	}

	if jwk.IsPublic() {
		return nil, "", fmt.Errorf("%w: no private key material", ErrInvalidJWK)
	}
	if !jwk.Valid() {
		return nil, "", fmt.Errorf("%w: key failed validation", ErrInvalidJWK)
	}

	return jwk.Key, jwk.KeyID, nil
}
