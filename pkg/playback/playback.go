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

// Package playback maps the platform's playback-authorization token
// conventions onto the generic token signer: the playback ID rides in
// the sub claim and the requested resource type in the aud claim.
package playback

import (
	"time"

	"github.com/jeremyhahn/go-playback/pkg/token"
)

// Audience identifies which playback resource a token authorizes.
type Audience string

const (
	// Video authorizes video stream playback.
	Video Audience = "v"

	// Thumbnail authorizes thumbnail image retrieval.
	Thumbnail Audience = "t"

	// GIF authorizes animated GIF retrieval.
	GIF Audience = "g"

	// Storyboard authorizes storyboard (trick-play) retrieval.
	Storyboard Audience = "s"
)

// DefaultExpiration is applied to playback tokens when the caller does
// not choose an expiration.
const DefaultExpiration = 7 * 24 * time.Hour

// Token signs a playback-authorization token for the given playback ID
// and resource audience. Any subject or audience already present on
// opts is overridden; other options pass through untouched.
//
// Example:
//
//	tok, err := playback.Token(signer, "qKC301U2MofV3SDFEM01Gzww02", playback.Video,
//	    token.NewSigningOptions().WithExpiration(time.Hour))
func Token(s *token.Signer, playbackID string, aud Audience, opts *token.SigningOptions) (string, error) {
	var signOpts token.SigningOptions
	if opts != nil {
		signOpts = *opts
	}
	signOpts.Subject = playbackID
	signOpts.Audience = string(aud)
	if signOpts.Expiration == 0 {
		signOpts.Expiration = DefaultExpiration
	}
	return s.Sign(nil, &signOpts)
}
