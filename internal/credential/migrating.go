// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package credential

import (
	"fmt"
	"strings"

	"github.com/samber/oops"
)

// MigratingHasher hashes with one scheme and verifies records of any
// supported scheme.
type MigratingHasher struct {
	primary Hasher
	salted  *SaltedHasher
	argon   *Argon2idHasher
}

// New returns a MigratingHasher whose new records use the named scheme.
func New(scheme string, opts ...Option) (*MigratingHasher, error) {
	m := &MigratingHasher{
		salted: NewSaltedHasher(opts...),
		argon:  NewArgon2idHasher(opts...),
	}

	parsed, ok := ParseScheme(scheme)
	if !ok {
		return nil, oops.Code(CodeUnknownScheme).
			With("scheme", scheme).
			Wrap(fmt.Errorf("%w: %q", ErrUnknownScheme, scheme))
	}

	m.primary = m.salted
	if parsed == SchemeArgon2id {
		m.primary = m.argon
	}

	return m, nil
}

// Scheme returns the scheme new records are produced with.
func (m *MigratingHasher) Scheme() Scheme {
	return m.primary.Scheme()
}

// Hash produces a record with the primary scheme.
func (m *MigratingHasher) Hash(password string) (string, error) {
	return m.primary.Hash(password)
}

// Verify checks candidate against a record of either scheme. Records that do
// not carry the argon2id prefix are treated as salted-sha256.
func (m *MigratingHasher) Verify(record, candidate string) (bool, error) {
	if strings.HasPrefix(record, argon2idPrefix) {
		return m.argon.Verify(record, candidate)
	}
	return m.salted.Verify(record, candidate)
}

// NeedsUpgrade returns true if record was not produced by the primary scheme.
// Callers typically re-hash after a successful Verify when this is true.
func (m *MigratingHasher) NeedsUpgrade(record string) bool {
	return Detect(record) != m.Scheme()
}
