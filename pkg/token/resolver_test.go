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
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKeyID_ExplicitOptionWins(t *testing.T) {
	defaults := Defaults{SigningKeyID: "client-default"}
	opts := NewSigningOptions().WithKeyID("explicit")

	keyID, err := ResolveKeyID(defaults, opts)
	require.NoError(t, err)
	assert.Equal(t, "explicit", keyID)
}

func TestResolveKeyID_ClientDefault(t *testing.T) {
	defaults := Defaults{SigningKeyID: "client-default"}

	keyID, err := ResolveKeyID(defaults, NewSigningOptions())
	require.NoError(t, err)
	assert.Equal(t, "client-default", keyID)

	// nil options defer to the default as well
	keyID, err = ResolveKeyID(defaults, nil)
	require.NoError(t, err)
	assert.Equal(t, "client-default", keyID)
}

func TestResolveKeyID_NoneConfigured(t *testing.T) {
	_, err := ResolveKeyID(Defaults{}, NewSigningOptions())
	require.ErrorIs(t, err, ErrNoSigningKey)
	assert.Equal(t, KindConfiguration, KindOf(err))

	// The error names all three ways a key ID may be supplied.
	assert.Contains(t, err.Error(), "WithKeyID")
	assert.Contains(t, err.Error(), "SigningKeyID")
	assert.Contains(t, err.Error(), "PLAYBACK_SIGNING_KEY")
}

func TestResolvePrivateKey_SecretWinsOverClientDefault(t *testing.T) {
	key := testRSAKey(t, 0)
	defaults := Defaults{PrivateKey: "not even close to a key"}
	opts := NewSigningOptions().WithKeySecret(pkcs8PEM(t, key))

	resolved, err := ResolvePrivateKey(nil, defaults, opts)
	require.NoError(t, err)
	assertSameRSAKey(t, key, resolved)
}

func TestResolvePrivateKey_SecretWinsOverFilePath(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/keys/garbage.pem", []byte("garbage"), 0600))

	key := testRSAKey(t, 0)
	opts := NewSigningOptions().
		WithKeySecret(pkcs8PEM(t, key)).
		WithKeyFilePath("/keys/garbage.pem")

	resolved, err := ResolvePrivateKey(fsys, Defaults{}, opts)
	require.NoError(t, err)
	assertSameRSAKey(t, key, resolved)
}

func TestResolvePrivateKey_FilePath(t *testing.T) {
	key := testRSAKey(t, 0)
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/keys/signing.pem", []byte(pkcs8PEM(t, key)), 0600))

	opts := NewSigningOptions().WithKeyFilePath("/keys/signing.pem")
	resolved, err := ResolvePrivateKey(fsys, Defaults{}, opts)
	require.NoError(t, err)
	assertSameRSAKey(t, key, resolved)
}

func TestResolvePrivateKey_FileReadErrorSurfacesAsIs(t *testing.T) {
	opts := NewSigningOptions().WithKeyFilePath("/keys/missing.pem")

	_, err := ResolvePrivateKey(afero.NewMemMapFs(), Defaults{}, opts)
	require.Error(t, err)

	var pathErr *fs.PathError
	assert.True(t, errors.As(err, &pathErr), "expected the raw *fs.PathError, got %T", err)
	assert.Equal(t, KindIO, KindOf(err))
}

func TestResolvePrivateKey_ClientDefault(t *testing.T) {
	key := testRSAKey(t, 0)
	defaults := Defaults{PrivateKey: pkcs8PEM(t, key)}

	resolved, err := ResolvePrivateKey(nil, defaults, NewSigningOptions())
	require.NoError(t, err)
	assertSameRSAKey(t, key, resolved)
}

func TestResolvePrivateKey_InvalidSecretDoesNotFallThrough(t *testing.T) {
	// A valid client default must not rescue invalid explicit material.
	defaults := Defaults{PrivateKey: pkcs8PEM(t, testRSAKey(t, 0))}
	opts := NewSigningOptions().WithKeySecret("not a key")

	_, err := ResolvePrivateKey(nil, defaults, opts)
	require.ErrorIs(t, err, ErrKeyFormat)
}

func TestResolvePrivateKey_NoneConfigured(t *testing.T) {
	_, err := ResolvePrivateKey(nil, Defaults{}, NewSigningOptions())
	require.ErrorIs(t, err, ErrNoPrivateKey)
	assert.Equal(t, KindConfiguration, KindOf(err))

	// The error names all three ways key material may be supplied.
	assert.Contains(t, err.Error(), "WithKeySecret")
	assert.Contains(t, err.Error(), "WithKeyFilePath")
	assert.Contains(t, err.Error(), "PLAYBACK_PRIVATE_KEY")
}
