// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package credential

import (
	"crypto/rand"
	"io"
	"strings"
)

// Scheme names a record layout and the hash function behind it.
type Scheme string

// Supported schemes.
const (
	SchemeUnknown      Scheme = "unknown"
	SchemeSaltedSHA256 Scheme = "salted-sha256"
	SchemeArgon2id     Scheme = "argon2id"
)

// ParseScheme normalizes a scheme name, ignoring case and surrounding
// whitespace. It reports false for names that are not a supported scheme.
func ParseScheme(name string) (Scheme, bool) {
	switch s := Scheme(strings.ToLower(strings.TrimSpace(name))); s {
	case SchemeSaltedSHA256, SchemeArgon2id:
		return s, true
	default:
		return SchemeUnknown, false
	}
}

// Hasher produces and checks self-contained password records.
type Hasher interface {
	// Hash produces a new record for password with a fresh random salt.
	Hash(password string) (string, error)

	// Verify checks candidate against a stored record.
	// Returns (true, nil) on match, (false, nil) on mismatch, or an
	// ErrMalformedRecord error when the record cannot be decoded.
	Verify(record, candidate string) (bool, error)

	// Scheme reports the scheme of the records Hash produces.
	Scheme() Scheme
}

// Upgrader is implemented by hashers that can tell when a stored record was
// produced by a scheme other than their own.
type Upgrader interface {
	NeedsUpgrade(record string) bool
}

// Option configures a hasher.
type Option func(*options)

type options struct {
	random io.Reader
}

// WithRandom sets the source salts are read from. The reader must be safe for
// concurrent use if the hasher is shared. Defaults to crypto/rand.Reader.
func WithRandom(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.random = r
		}
	}
}

func newOptions(opts []Option) options {
	o := options{random: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// readSalt draws n bytes from r. A short read is treated the same as a failed one.
func readSalt(r io.Reader, n int) ([]byte, error) {
	salt := make([]byte, n)
	if _, err := io.ReadFull(r, salt); err != nil {
		return nil, entropyUnavailable(n, err)
	}
	return salt, nil
}
