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
	"bytes"
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// PEM block types
const (
	PEMTypeRSAPrivateKey       = "RSA PRIVATE KEY"
	PEMTypeECPrivateKey        = "EC PRIVATE KEY"
	PEMTypePrivateKey          = "PRIVATE KEY"
	PEMTypeEncryptedPrivateKey = "ENCRYPTED PRIVATE KEY"
	PEMTypePublicKey           = "PUBLIC KEY"
)

// PEMBeginPrefix is the marker every PEM-armored block starts with.
// Key material that does not start with this prefix (after trimming)
// is not direct PEM text.
const PEMBeginPrefix = "-----BEGIN"

// DecodePrivateKeyPEM decodes PEM encoded data to a private key. The
// block type selects the import path:
//
//   - "RSA PRIVATE KEY":       legacy PKCS#1, imported as an RSA key
//   - "PRIVATE KEY":           PKCS#8
//   - "ENCRYPTED PRIVATE KEY": PKCS#8, decrypted with password
//   - "EC PRIVATE KEY":        SEC 1
//
// Returns the private key as crypto.PrivateKey (type assert to specific
// type if needed).
//
// Example:
//
//	key, err := encoding.DecodePrivateKeyPEM(pemData, nil)
//	rsaKey := key.(*rsa.PrivateKey)
func DecodePrivateKeyPEM(data []byte, password []byte) (crypto.PrivateKey, error) {
	if len(data) == 0 {
		return nil, ErrInvalidData
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMEncoding
	}

	switch block.Type {
	case PEMTypeRSAPrivateKey:
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse PKCS#1 private key: %w", err)
		}
		return key, nil
	case PEMTypeECPrivateKey:
		key, err := x509.ParseECPrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse EC private key: %w", err)
		}
		return key, nil
	case PEMTypePrivateKey, PEMTypeEncryptedPrivateKey:
		return DecodePKCS8(block.Bytes, password)
	default:
		return nil, fmt.Errorf("%w: unexpected block type %q", ErrInvalidPEMEncoding, block.Type)
	}
}

// EncodePrivateKeyPEM encodes a private key to PEM format.
// If a password is provided, the key will be encrypted using PKCS#8.
// If password is nil or empty, the key will be encoded without encryption.
//
// Example:
//
//	pemData, err := encoding.EncodePrivateKeyPEM(privateKey, []byte("password"))
func EncodePrivateKeyPEM(privateKey crypto.PrivateKey, password []byte) ([]byte, error) {
	if privateKey == nil {
		return nil, ErrInvalidPrivateKey
	}

	der, err := EncodePKCS8(privateKey, password)
	if err != nil {
		return nil, err
	}

	blockType := PEMTypePrivateKey
	if len(password) > 0 {
		blockType = PEMTypeEncryptedPrivateKey
	}

	var buf bytes.Buffer
	if err := pem.Encode(&buf, &pem.Block{Type: blockType, Bytes: der}); err != nil {
		return nil, fmt.Errorf("failed to encode PEM: %w", err)
	}

	return buf.Bytes(), nil
}

// EncodePublicKeyPEM encodes a public key to PEM format (PKIX
// SubjectPublicKeyInfo).
//
// Example:
//
//	pemData, err := encoding.EncodePublicKeyPEM(publicKey)
func EncodePublicKeyPEM(publicKey crypto.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, ErrInvalidPublicKey
	}

	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal PKIX public key: %w", err)
	}

	var buf bytes.Buffer
	if err := pem.Encode(&buf, &pem.Block{Type: PEMTypePublicKey, Bytes: der}); err != nil {
		return nil, fmt.Errorf("failed to encode PEM: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodePublicKeyPEM decodes PEM encoded data to a public key.
//
// Returns the public key as crypto.PublicKey (type assert to specific
// type if needed).
//
// Example:
//
//	key, err := encoding.DecodePublicKeyPEM(pemData)
//	rsaPub := key.(*rsa.PublicKey)
func DecodePublicKeyPEM(data []byte) (crypto.PublicKey, error) {
	if len(data) == 0 {
		return nil, ErrInvalidData
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMEncoding
	}

	pubKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PKIX public key: %w", err)
	}

	return pubKey, nil
}
