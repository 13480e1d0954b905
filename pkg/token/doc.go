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

// Package token resolves signing keys and builds signed JWTs for
// playback authorization.
//
// A signing call flows through three stages: the key resolver picks the
// key identifier (explicit option, then client default), the key
// normalizer turns whatever material was supplied (parsed handle, raw
// bytes, PEM text, base64-encoded PEM, encrypted PKCS#8, or a JWK
// document) into a private key handle, and the token builder merges the
// caller payload with the standard claims and signs. Exactly one key ID
// and one material source are used per call; normalized key handles are
// never re-serialized or logged.
package token
