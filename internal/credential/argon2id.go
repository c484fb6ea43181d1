// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package credential

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// OWASP-recommended argon2id parameters.
const (
	argon2Time    = 1         // iterations
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4         // parallelism
	argon2SaltLen = 16        // salt length in bytes
	argon2KeyLen  = 32        // output length in bytes
)

const argon2idPrefix = "$argon2id$"

// Upper bounds on work factors read from a stored record. Records beyond
// them are rejected before any key derivation runs.
const (
	argon2MaxMemory = 16 * argon2Memory // KiB, 1 GiB
	argon2MaxTime   = 10
)

// Argon2idHasher implements Hasher using argon2id with fixed parameters.
type Argon2idHasher struct {
	opts options
}

// NewArgon2idHasher creates a new Argon2idHasher.
func NewArgon2idHasher(opts ...Option) *Argon2idHasher {
	return &Argon2idHasher{opts: newOptions(opts)}
}

// Scheme returns SchemeArgon2id.
func (h *Argon2idHasher) Scheme() Scheme {
	return SchemeArgon2id
}

// Hash produces an argon2id PHC record of the password.
func (h *Argon2idHasher) Hash(password string) (string, error) {
	salt, err := readSalt(h.opts.random, argon2SaltLen)
	if err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory,
		argon2Time,
		argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify checks candidate against an argon2id PHC record, recomputing the key
// with the parameters stored in the record.
func (h *Argon2idHasher) Verify(record, candidate string) (bool, error) {
	phc, err := parsePHC(record)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(candidate), phc.salt, phc.time, phc.memory, phc.threads, uint32(len(phc.key)))

	return subtle.ConstantTimeCompare(computed, phc.key) == 1, nil
}

// phcRecord is a decoded argon2id PHC string.
type phcRecord struct {
	version int
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

func parsePHC(record string) (phcRecord, error) {
	var rec phcRecord

	parts := strings.Split(record, "$")
	if len(parts) != 6 {
		return rec, malformedRecord(SchemeArgon2id, record, "invalid hash format")
	}

	if parts[1] != "argon2id" {
		return rec, malformedRecord(SchemeArgon2id, record, "unsupported hash algorithm: %s", parts[1])
	}

	if _, err := fmt.Sscanf(parts[2], "v=%d", &rec.version); err != nil {
		return rec, malformedRecord(SchemeArgon2id, record, "version: %v", err)
	}
	if rec.version != argon2.Version {
		return rec, malformedRecord(SchemeArgon2id, record, "unsupported argon2 version %d", rec.version)
	}

	var threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &rec.memory, &rec.time, &threads); err != nil {
		return rec, malformedRecord(SchemeArgon2id, record, "parameters: %v", err)
	}

	// Validate threads fits in uint8 to prevent silent truncation
	if threads == 0 || threads > 255 {
		return rec, malformedRecord(SchemeArgon2id, record, "threads value %d out of range", threads)
	}
	rec.threads = uint8(threads)

	if rec.memory == 0 || rec.memory > argon2MaxMemory {
		return rec, malformedRecord(SchemeArgon2id, record, "memory value %d out of range", rec.memory)
	}

	if rec.time == 0 || rec.time > argon2MaxTime {
		return rec, malformedRecord(SchemeArgon2id, record, "time value %d out of range", rec.time)
	}

	var err error
	if rec.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return rec, malformedRecord(SchemeArgon2id, record, "salt: %v", err)
	}

	if rec.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return rec, malformedRecord(SchemeArgon2id, record, "key: %v", err)
	}

	// Validate key length to prevent integer overflow in uint32 conversion
	if keyLen := len(rec.key); keyLen == 0 || keyLen > 1<<30 {
		return rec, malformedRecord(SchemeArgon2id, record, "invalid key length: %d", keyLen)
	}

	return rec, nil
}
