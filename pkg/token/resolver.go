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

	"github.com/spf13/afero"
)

// ResolveKeyID determines the signing key identifier for one call.
// Precedence: the explicit option wins, then the client-level default.
// Deterministic, no I/O.
func ResolveKeyID(defaults Defaults, opts *SigningOptions) (string, error) {
	if opts != nil && opts.KeyID != "" {
		return opts.KeyID, nil
	}
	if defaults.SigningKeyID != "" {
		return defaults.SigningKeyID, nil
	}
	return "", ErrNoSigningKey
}

// ResolvePrivateKey determines and normalizes the private key material
// for one call. Exactly one source is consulted, first match wins:
//
//  1. explicit material on the options (Key, KeySecretBytes, KeySecret)
//  2. the options' KeyFilePath, read through fsys as UTF-8 text
//  3. the client-level default PrivateKey
//
// A source that is present but invalid fails the call; there is no
// fallback to a later source. File read failures surface unchanged.
// fsys may be nil, in which case the OS filesystem is used.
func ResolvePrivateKey(fsys afero.Fs, defaults Defaults, opts *SigningOptions) (crypto.PrivateKey, error) {
	material, err := selectMaterial(fsys, defaults, opts)
	if err != nil {
		return nil, err
	}
	return material.normalize()
}

func selectMaterial(fsys afero.Fs, defaults Defaults, opts *SigningOptions) (keyMaterial, error) {
	if opts == nil {
		opts = &SigningOptions{}
	}

	switch {
	case opts.Key != nil:
		return keyMaterial{kind: kindPreParsed, handle: opts.Key}, nil
	case opts.KeySecretBytes != nil:
		return keyMaterial{kind: kindRawBytes, raw: opts.KeySecretBytes, passphrase: opts.KeyPassphrase}, nil
	case opts.KeySecret != "":
		return keyMaterial{kind: kindTextPEM, text: opts.KeySecret, passphrase: opts.KeyPassphrase}, nil
	case opts.KeyFilePath != "":
		if fsys == nil {
			fsys = afero.NewOsFs()
		}
		data, err := afero.ReadFile(fsys, opts.KeyFilePath)
		if err != nil {
			return keyMaterial{}, err
		}
		return keyMaterial{kind: kindTextPEM, text: string(data), passphrase: opts.KeyPassphrase}, nil
	case defaults.PrivateKey != nil:
		return classifyMaterial(defaults.PrivateKey, opts.KeyPassphrase)
	default:
		return keyMaterial{}, ErrNoPrivateKey
	}
}
