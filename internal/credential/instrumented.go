// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package credential

import (
	"errors"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/holomush/credhash/pkg/errutil"
)

// Metrics contains Prometheus metrics for hashing and verification.
type Metrics struct {
	HashTotal   *prometheus.CounterVec
	VerifyTotal *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// NewMetrics creates and registers credential metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HashTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "credhash_hash_total",
				Help: "Total number of records produced by scheme and status",
			},
			[]string{"scheme", "status"},
		),
		VerifyTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "credhash_verify_total",
				Help: "Total number of verifications by record scheme and result",
			},
			[]string{"scheme", "result"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "credhash_operation_duration_seconds",
				Help:    "Duration of hash and verify operations",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"operation"},
		),
	}

	reg.MustRegister(m.HashTotal)
	reg.MustRegister(m.VerifyTotal)
	reg.MustRegister(m.Duration)

	return m
}

// Verify result labels.
const (
	ResultMatch     = "match"
	ResultMismatch  = "mismatch"
	ResultMalformed = "malformed"
	ResultError     = "error"
)

// InstrumentedHasher wraps a Hasher with metrics and failure logging.
// Passwords and records are never logged.
type InstrumentedHasher struct {
	next    Hasher
	metrics *Metrics
	logger  *slog.Logger
}

// Instrument wraps next. A nil logger uses slog.Default().
func Instrument(next Hasher, metrics *Metrics, logger *slog.Logger) *InstrumentedHasher {
	if logger == nil {
		logger = slog.Default()
	}
	return &InstrumentedHasher{
		next:    next,
		metrics: metrics,
		logger:  logger.With("component", "credential", "scheme", string(next.Scheme())),
	}
}

// Scheme returns the wrapped hasher's scheme.
func (h *InstrumentedHasher) Scheme() Scheme {
	return h.next.Scheme()
}

// Hash delegates to the wrapped hasher.
func (h *InstrumentedHasher) Hash(password string) (string, error) {
	start := time.Now()
	record, err := h.next.Hash(password)
	h.metrics.Duration.WithLabelValues("hash").Observe(time.Since(start).Seconds())

	status := "ok"
	if err != nil {
		status = "error"
		errutil.LogError(h.logger, "hash failed", err)
	}
	h.metrics.HashTotal.WithLabelValues(string(h.next.Scheme()), status).Inc()

	return record, err
}

// Verify delegates to the wrapped hasher.
func (h *InstrumentedHasher) Verify(record, candidate string) (bool, error) {
	start := time.Now()
	ok, err := h.next.Verify(record, candidate)
	h.metrics.Duration.WithLabelValues("verify").Observe(time.Since(start).Seconds())

	var result string
	switch {
	case errors.Is(err, ErrMalformedRecord):
		result = ResultMalformed
		h.logger.Warn("malformed record", "record_length", len(record), "code", errutil.Code(err))
	case err != nil:
		result = ResultError
		errutil.LogError(h.logger, "verify failed", err)
	case ok:
		result = ResultMatch
	default:
		result = ResultMismatch
	}
	h.metrics.VerifyTotal.WithLabelValues(string(Detect(record)), result).Inc()

	return ok, err
}

// NeedsUpgrade forwards to the wrapped hasher if it implements Upgrader.
func (h *InstrumentedHasher) NeedsUpgrade(record string) bool {
	if u, ok := h.next.(Upgrader); ok {
		return u.NeedsUpgrade(record)
	}
	return false
}
