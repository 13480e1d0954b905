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
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/base64"
	"testing"

	jose "github.com/go-jose/go-jose/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-playback/pkg/encoding"
)

func TestNormalize_PKCS8PEM(t *testing.T) {
	key := testRSAKey(t, 0)

	resolved, err := ResolvePrivateKey(nil, Defaults{}, NewSigningOptions().WithKeySecret(pkcs8PEM(t, key)))
	require.NoError(t, err)
	assertSameRSAKey(t, key, resolved)
}

func TestNormalize_Base64PKCS8PEM(t *testing.T) {
	key := testRSAKey(t, 0)
	encoded := base64.StdEncoding.EncodeToString([]byte(pkcs8PEM(t, key)))

	resolved, err := ResolvePrivateKey(nil, Defaults{}, NewSigningOptions().WithKeySecret(encoded))
	require.NoError(t, err)
	assertSameRSAKey(t, key, resolved)
}

func TestNormalize_PKCS1MatchesPKCS8(t *testing.T) {
	key := testRSAKey(t, 0)

	fromPKCS1, err := ResolvePrivateKey(nil, Defaults{}, NewSigningOptions().WithKeySecret(pkcs1PEM(t, key)))
	require.NoError(t, err)
	fromPKCS8, err := ResolvePrivateKey(nil, Defaults{}, NewSigningOptions().WithKeySecret(pkcs8PEM(t, key)))
	require.NoError(t, err)

	// Both encodings must normalize to the same effective key.
	assertSameRSAKey(t, key, fromPKCS1)
	assertSameRSAKey(t, key, fromPKCS8)
}

func TestNormalize_EncryptedPKCS8(t *testing.T) {
	key := testRSAKey(t, 0)
	passphrase := []byte("playback-test-passphrase")
	pemData, err := encoding.EncodePrivateKeyPEM(key, passphrase)
	require.NoError(t, err)

	opts := NewSigningOptions().
		WithKeySecret(string(pemData)).
		WithKeyPassphrase(passphrase)
	resolved, err := ResolvePrivateKey(nil, Defaults{}, opts)
	require.NoError(t, err)
	assertSameRSAKey(t, key, resolved)

	// Wrong passphrase is a format failure, not a fallthrough.
	opts = NewSigningOptions().
		WithKeySecret(string(pemData)).
		WithKeyPassphrase([]byte("wrong"))
	_, err = ResolvePrivateKey(nil, Defaults{}, opts)
	require.ErrorIs(t, err, ErrKeyFormat)
}

func TestNormalize_JWK(t *testing.T) {
	key := testRSAKey(t, 0)
	jwk := jose.JSONWebKey{Key: key, KeyID: "jwk-test"}
	data, err := jwk.MarshalJSON()
	require.NoError(t, err)

	resolved, err := ResolvePrivateKey(nil, Defaults{}, NewSigningOptions().WithKeySecret(string(data)))
	require.NoError(t, err)
	assertSameRSAKey(t, key, resolved)
}

func TestNormalize_RawBytes(t *testing.T) {
	key := testRSAKey(t, 0)

	resolved, err := ResolvePrivateKey(nil, Defaults{},
		NewSigningOptions().WithKeySecretBytes([]byte(pkcs8PEM(t, key))))
	require.NoError(t, err)
	assertSameRSAKey(t, key, resolved)
}

func TestNormalize_PreParsedBypassesParsing(t *testing.T) {
	key := testRSAKey(t, 0)

	resolved, err := ResolvePrivateKey(nil, Defaults{}, NewSigningOptions().WithKey(key))
	require.NoError(t, err)
	assert.Same(t, key, resolved)

	// Same bypass for a handle supplied as the client default.
	resolved, err = ResolvePrivateKey(nil, Defaults{PrivateKey: key}, NewSigningOptions())
	require.NoError(t, err)
	assert.Same(t, key, resolved)
}

func TestNormalize_ECKeyIsPermitted(t *testing.T) {
	// Algorithm/key-type compatibility is the signer's concern, not the
	// normalizer's, so EC material imports cleanly.
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	pemData, err := encoding.EncodePrivateKeyPEM(ecKey, nil)
	require.NoError(t, err)

	resolved, err := ResolvePrivateKey(nil, Defaults{}, NewSigningOptions().WithKeySecret(string(pemData)))
	require.NoError(t, err)
	assert.IsType(t, &ecdsa.PrivateKey{}, resolved)
}

func TestNormalize_MalformedText(t *testing.T) {
	cases := map[string]string{
		"not PEM, not base64": "this is not a key at all!",
		"valid base64 of non-PEM": base64.StdEncoding.EncodeToString(
			[]byte("still not a key")),
		"empty after trim": "   \n\t  ",
	}

	for name, material := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ResolvePrivateKey(nil, Defaults{}, NewSigningOptions().WithKeySecret(material))
			require.ErrorIs(t, err, ErrKeyFormat)
			assert.Contains(t, err.Error(), "expected PEM text or base64-encoded PEM")
			assert.Equal(t, KindKeyFormat, KindOf(err))
		})
	}
}

func TestNormalize_UnrecognizedMaterialType(t *testing.T) {
	_, err := ResolvePrivateKey(nil, Defaults{PrivateKey: 42}, NewSigningOptions())
	require.ErrorIs(t, err, ErrKeyFormat)
}
