// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package credential

import (
	"errors"
	"fmt"

	"github.com/samber/oops"
)

// Error codes attached to errors returned by this package.
const (
	CodeMalformedRecord    = "CREDENTIAL_MALFORMED_RECORD"
	CodeEntropyUnavailable = "CREDENTIAL_ENTROPY_UNAVAILABLE"
	CodeUnknownScheme      = "CREDENTIAL_UNKNOWN_SCHEME"
)

var (
	// ErrMalformedRecord is returned when a stored record cannot be decoded.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrEntropyUnavailable is returned when the random source cannot supply a salt.
	// It is not retryable.
	ErrEntropyUnavailable = errors.New("entropy unavailable")

	// ErrUnknownScheme is returned by New for an unsupported scheme name.
	ErrUnknownScheme = errors.New("unknown scheme")
)

// malformedRecord builds an ErrMalformedRecord carrying the scheme and record
// length. The record itself is never attached.
func malformedRecord(scheme Scheme, record, format string, args ...any) error {
	return oops.Code(CodeMalformedRecord).
		With("scheme", string(scheme)).
		With("record_length", len(record)).
		Wrap(fmt.Errorf("%w: %s", ErrMalformedRecord, fmt.Sprintf(format, args...)))
}

func entropyUnavailable(n int, cause error) error {
	return oops.Code(CodeEntropyUnavailable).
		With("salt_length", n).
		Wrap(fmt.Errorf("%w: %w", ErrEntropyUnavailable, cause))
}
