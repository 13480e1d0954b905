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

import "github.com/spf13/afero"

// Signer issues signed tokens against a fixed set of client-level
// defaults. It holds no mutable state: concurrent Sign calls are safe
// and resolve their key material independently.
type Signer struct {
	defaults Defaults
	fsys     afero.Fs
}

// NewSigner creates a signer over the given defaults, reading key files
// from the OS filesystem.
func NewSigner(defaults Defaults) *Signer {
	return NewSignerFS(defaults, afero.NewOsFs())
}

// NewSignerFS creates a signer that reads key files through fsys.
func NewSignerFS(defaults Defaults, fsys afero.Fs) *Signer {
	return &Signer{defaults: defaults, fsys: fsys}
}

// Defaults returns the signer's client-level defaults.
func (s *Signer) Defaults() Defaults {
	return s.defaults
}

// Sign resolves the key ID and private key material per the fixed
// precedence rules, then builds and signs the token. The resolved key
// ID is embedded as the kid claim and header field. Either a complete
// token string is returned or an error; there is no partial output.
func (s *Signer) Sign(payload map[string]any, opts *SigningOptions) (string, error) {
	if opts == nil {
		opts = &SigningOptions{}
	}

	keyID, err := ResolveKeyID(s.defaults, opts)
	if err != nil {
		return "", err
	}

	key, err := ResolvePrivateKey(s.fsys, s.defaults, opts)
	if err != nil {
		return "", err
	}

	signOpts := *opts
	signOpts.KeyID = keyID
	return Sign(payload, key, &signOpts)
}
