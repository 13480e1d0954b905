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
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_ResolvedKeyIDBecomesKID(t *testing.T) {
	key := testRSAKey(t, 0)
	signer := NewSigner(Defaults{SigningKeyID: "default-key", PrivateKey: pkcs8PEM(t, key)})

	// Client default flows into the token.
	signed, err := signer.Sign(nil, NewSigningOptions())
	require.NoError(t, err)
	_, claims := decodeToken(t, signed)
	assert.Equal(t, "default-key", claims["kid"])

	// An explicit option wins over the default.
	signed, err = signer.Sign(nil, NewSigningOptions().WithKeyID("explicit-key"))
	require.NoError(t, err)
	_, claims = decodeToken(t, signed)
	assert.Equal(t, "explicit-key", claims["kid"])
}

func TestSigner_MissingKeyID(t *testing.T) {
	signer := NewSigner(Defaults{PrivateKey: pkcs8PEM(t, testRSAKey(t, 0))})

	_, err := signer.Sign(nil, NewSigningOptions())
	require.ErrorIs(t, err, ErrNoSigningKey)
}

func TestSigner_ConcurrentCallsDoNotCrossContaminate(t *testing.T) {
	keys := [2]struct {
		id  string
		key string
	}{
		{"key-0", pkcs8PEM(t, testRSAKey(t, 0))},
		{"key-1", pkcs8PEM(t, testRSAKey(t, 1))},
	}

	const callsPerKey = 25
	var wg sync.WaitGroup
	for n := range keys {
		for i := 0; i < callsPerKey; i++ {
			wg.Add(1)
			go func(n, i int) {
				defer wg.Done()

				signer := NewSigner(Defaults{
					SigningKeyID: keys[n].id,
					PrivateKey:   keys[n].key,
				})
				subject := fmt.Sprintf("call-%d-%d", n, i)
				signed, err := signer.Sign(nil,
					NewSigningOptions().WithSubject(subject).WithExpiration(time.Hour))
				assert.NoError(t, err)

				// Each token carries only its own key id and claims, and
				// verifies only under its own key.
				claims := verifyToken(t, signed, testRSAKey(t, n))
				assert.Equal(t, keys[n].id, claims["kid"])
				assert.Equal(t, subject, claims["sub"])
			}(n, i)
		}
	}
	wg.Wait()
}
