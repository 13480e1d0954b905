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

// Package client provides the go-playback API client. The client holds
// the long-lived signing defaults (key ID and private key material,
// typically materialized from the environment at construction) and the
// token signing surface built on them.
package client

import (
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/jeremyhahn/go-playback/pkg/logging"
	"github.com/jeremyhahn/go-playback/pkg/metrics"
	"github.com/jeremyhahn/go-playback/pkg/playback"
	"github.com/jeremyhahn/go-playback/pkg/token"
)

// Environment variables consumed at client construction. They are read
// once by New/FromEnv and never again during signing calls.
const (
	EnvSigningKey = "PLAYBACK_SIGNING_KEY"
	EnvPrivateKey = "PLAYBACK_PRIVATE_KEY"
)

// DefaultBaseURL is the platform API endpoint.
const DefaultBaseURL = "https://api.playback.example.com"

// Client is a go-playback API client. Its configuration is read-only
// after construction; concurrent use is safe.
type Client struct {
	baseURL      string
	signingKeyID string
	privateKey   any
	fsys         afero.Fs
	logger       *logging.Logger
	signer       *token.Signer
}

// Option configures a Client at construction.
type Option func(*Client)

// WithBaseURL overrides the platform API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithSigningKeyID sets the client-level signing key identifier.
func WithSigningKeyID(keyID string) Option {
	return func(c *Client) { c.signingKeyID = keyID }
}

// WithPrivateKey sets the client-level private key material: a parsed
// key handle, raw bytes, or text (PEM, base64 PEM, or JWK).
func WithPrivateKey(material any) Option {
	return func(c *Client) { c.privateKey = material }
}

// WithLogger replaces the default logger.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithFS routes key file reads through fsys instead of the OS
// filesystem.
func WithFS(fsys afero.Fs) Option {
	return func(c *Client) { c.fsys = fsys }
}

// New creates a client. Signing defaults not set explicitly are
// materialized from the PLAYBACK_SIGNING_KEY and PLAYBACK_PRIVATE_KEY
// environment variables, once, here.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		fsys:    afero.NewOsFs(),
		logger:  logging.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.signingKeyID == "" {
		c.signingKeyID = os.Getenv(EnvSigningKey)
	}
	if c.privateKey == nil {
		if material := os.Getenv(EnvPrivateKey); material != "" {
			c.privateKey = material
		}
	}

	c.signer = token.NewSignerFS(token.Defaults{
		SigningKeyID: c.signingKeyID,
		PrivateKey:   c.privateKey,
	}, c.fsys)

	return c
}

// FromEnv creates a client configured entirely from the environment.
func FromEnv() *Client {
	return New()
}

// BaseURL returns the configured platform API endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SigningKeyID returns the client-level signing key identifier, if any.
func (c *Client) SigningKeyID() string {
	return c.signingKeyID
}

// Signer returns the token signer bound to this client's defaults.
func (c *Client) Signer() *token.Signer {
	return c.signer
}

// SignToken signs a token over payload using the client defaults plus
// the per-call options. Key material never appears in logs.
func (c *Client) SignToken(payload map[string]any, opts *token.SigningOptions) (string, error) {
	started := time.Now()
	tok, err := c.signer.Sign(payload, opts)
	metrics.RecordSign(err, started)
	if err != nil {
		c.logger.Debugf("token signing failed: kind=%s", token.KindOf(err))
		return "", err
	}
	c.logger.Debug("token signed")
	return tok, nil
}

// SignPlaybackToken signs a playback-authorization token for the given
// playback ID and resource audience.
func (c *Client) SignPlaybackToken(playbackID string, aud playback.Audience, opts *token.SigningOptions) (string, error) {
	started := time.Now()
	tok, err := playback.Token(c.signer, playbackID, aud, opts)
	metrics.RecordSign(err, started)
	if err != nil {
		c.logger.Debugf("playback token signing failed: kind=%s", token.KindOf(err))
		return "", err
	}
	c.logger.Debug("playback token signed", "aud", string(aud))
	return tok, nil
}
