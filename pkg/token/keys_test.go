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
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"sync"
	"testing"
)

var (
	testKeyOnce sync.Once
	testKeys    [2]*rsa.PrivateKey
)

// testRSAKey returns one of two shared RSA test keys. Generation is
// expensive, so the keys are created once and reused across tests.
func testRSAKey(t *testing.T, i int) *rsa.PrivateKey {
	t.Helper()
	testKeyOnce.Do(func() {
		for n := range testKeys {
			key, err := rsa.GenerateKey(rand.Reader, 2048)
			if err != nil {
				panic(err)
			}
			testKeys[n] = key
		}
	})
	return testKeys[i]
}

// assertSameRSAKey checks that a resolved key handle is the same RSA key
// as want. Parsed keys can differ from the original in precomputed CRT
// values, so the public halves are compared.
func assertSameRSAKey(t *testing.T, want *rsa.PrivateKey, got any) {
	t.Helper()
	rsaKey, ok := got.(*rsa.PrivateKey)
	if !ok {
		t.Fatalf("resolved key is %T, not *rsa.PrivateKey", got)
	}
	if !rsaKey.PublicKey.Equal(&want.PublicKey) {
		t.Fatal("resolved key does not match the supplied material")
	}
}

// pkcs8PEM encodes key as an unencrypted PKCS#8 PEM string.
func pkcs8PEM(t *testing.T, key *rsa.PrivateKey) string {
	t.Helper()
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("MarshalPKCS8PrivateKey failed: %v", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
}

// pkcs1PEM encodes key as a legacy PKCS#1 PEM string.
func pkcs1PEM(t *testing.T, key *rsa.PrivateKey) string {
	t.Helper()
	der := x509.MarshalPKCS1PrivateKey(key)
	return string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: der}))
}
