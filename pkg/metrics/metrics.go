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

// Package metrics provides Prometheus metrics for token signing
// operations. Counters and histograms register with the default
// registry; applications embedding the client expose them through
// their own /metrics handler.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jeremyhahn/go-playback/pkg/token"
)

const (
	// Namespace is the Prometheus namespace for all go-playback metrics
	Namespace = "playback"

	// Label names
	LabelStatus    = "status"
	LabelErrorType = "error_type"

	// Status values
	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	// TokensSignedTotal tracks the total number of signing operations by status.
	TokensSignedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "tokens_signed_total",
			Help:      "Total number of token signing operations by status",
		},
		[]string{LabelStatus},
	)

	// SignErrorsTotal tracks signing failures by failure class
	// (configuration, key_format, io, signing).
	SignErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "sign_errors_total",
			Help:      "Total number of signing failures by failure class",
		},
		[]string{LabelErrorType},
	)

	// SignDuration tracks the duration of signing operations in seconds.
	// Buckets are optimized for typical RSA signing latencies.
	SignDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "sign_duration_seconds",
			Help:      "Duration of token signing operations in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)
)

// RecordSign records the outcome of one signing operation.
func RecordSign(err error, started time.Time) {
	SignDuration.Observe(time.Since(started).Seconds())
	if err == nil {
		TokensSignedTotal.WithLabelValues(StatusSuccess).Inc()
		return
	}
	TokensSignedTotal.WithLabelValues(StatusError).Inc()
	SignErrorsTotal.WithLabelValues(string(token.KindOf(err))).Inc()
}
