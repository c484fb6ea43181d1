// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package credential

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Salted record layout: hex(salt) || hex(sha256(salt || password)).
const (
	SaltLen    = 16
	DigestLen  = sha256.Size
	SaltHexLen = 2 * SaltLen
	RecordLen  = SaltHexLen + 2*DigestLen
)

// SaltedHasher implements Hasher with a single salted SHA-256 pass.
//
// It exists for compatibility with stored 96-character records. New records
// that do not need that format should use Argon2idHasher.
type SaltedHasher struct {
	opts options
}

// NewSaltedHasher creates a new SaltedHasher.
func NewSaltedHasher(opts ...Option) *SaltedHasher {
	return &SaltedHasher{opts: newOptions(opts)}
}

// Scheme returns SchemeSaltedSHA256.
func (h *SaltedHasher) Scheme() Scheme {
	return SchemeSaltedSHA256
}

// Hash returns a 96-character lowercase hex record for password.
func (h *SaltedHasher) Hash(password string) (string, error) {
	salt, err := readSalt(h.opts.random, SaltLen)
	if err != nil {
		return "", err
	}

	digest := saltedDigest(salt, password)

	var b strings.Builder
	b.Grow(RecordLen)
	b.WriteString(hex.EncodeToString(salt))
	b.WriteString(hex.EncodeToString(digest))
	return b.String(), nil
}

// Verify checks candidate against record.
//
// The first 32 characters must be hex and are decoded as the salt. The rest
// of the record is the expected digest; a tail of the wrong length or with
// non-hex characters never matches but is not an error.
func (h *SaltedHasher) Verify(record, candidate string) (bool, error) {
	salt, err := decodeSalt(record)
	if err != nil {
		return false, err
	}

	expected := strings.ToLower(record[SaltHexLen:])
	computed := hex.EncodeToString(saltedDigest(salt, candidate))

	// Only the tail length can leak, and the record layout makes that public.
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expected)) == 1, nil
}

func decodeSalt(record string) ([]byte, error) {
	if len(record) < SaltHexLen {
		return nil, malformedRecord(SchemeSaltedSHA256, record,
			"record has %d characters, need at least %d", len(record), SaltHexLen)
	}

	salt, err := hex.DecodeString(record[:SaltHexLen])
	if err != nil {
		return nil, malformedRecord(SchemeSaltedSHA256, record, "salt is not hex: %v", err)
	}
	return salt, nil
}

func saltedDigest(salt []byte, password string) []byte {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(password))
	return h.Sum(nil)
}
